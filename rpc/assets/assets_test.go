// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/asset"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/provenance"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc/assets"
	"github.com/bitmark-inc/registryd/rpc/mocks"
)

func sampleAsset() *asset.DigitalAsset {
	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return &asset.DigitalAsset{
		Id:               "asset-1",
		Title:            "sunrise",
		AssetType:        asset.Image,
		CreatorId:        "ann",
		HolderId:         "ann",
		ContentHash:      "01abcd",
		RegistrationDate: now,
		LastModified:     now,
		TransferHistory:  []asset.Transfer{},
		Status:           asset.Active,
		Metadata: asset.Metadata{
			FileFormat:     "png",
			FileSize:       1024,
			AdditionalTags: []string{},
		},
	}
}

func setup(t *testing.T) (*gomock.Controller, *mocks.MockRegistry, *assets.Assets) {
	fixtures.SetupTestLogger()
	ctl := gomock.NewController(t)
	r := mocks.NewMockRegistry(ctl)
	return ctl, r, assets.New(logger.New(fixtures.LogCategory), r)
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestAssetsRegister(t *testing.T) {
	ctl, r, a := setup(t)
	defer teardown(ctl)

	arguments := registry.RegisterArguments{
		Title:       "sunrise",
		AssetType:   asset.Image,
		CreatorId:   "ann",
		ContentHash: "01abcd",
		Metadata: asset.Metadata{
			FileFormat: "png",
			FileSize:   1024,
		},
	}
	expected := sampleAsset()
	r.EXPECT().Register(arguments).Return(expected, nil).Times(1)

	var reply assets.Reply
	err := a.Register(&arguments, &reply)
	assert.Nil(t, err, "register error")
	assert.Equal(t, expected, reply.Asset, "wrong asset")
}

func TestAssetsRegisterRejected(t *testing.T) {
	ctl, r, a := setup(t)
	defer teardown(ctl)

	arguments := registry.RegisterArguments{CreatorId: "ann"}
	r.EXPECT().Register(arguments).Return(nil, fault.MissingTitle).Times(1)

	var reply assets.Reply
	err := a.Register(&arguments, &reply)
	assert.True(t, errors.Is(err, fault.MissingTitle), "wrong error")
	assert.True(t, strings.HasPrefix(err.Error(), fault.CodeValidation+": "), "missing code prefix: %s", err)
	assert.Nil(t, reply.Asset, "unexpected asset")
}

func TestAssetsGet(t *testing.T) {
	ctl, r, a := setup(t)
	defer teardown(ctl)

	expected := sampleAsset()
	r.EXPECT().Get("asset-1").Return(expected, nil).Times(1)
	r.EXPECT().Get("missing").Return(nil, fault.AssetNotFound).Times(1)

	var reply assets.Reply
	err := a.Get(&assets.GetArguments{Id: "asset-1"}, &reply)
	assert.Nil(t, err, "get error")
	assert.Equal(t, expected, reply.Asset, "wrong asset")

	var missing assets.Reply
	err = a.Get(&assets.GetArguments{Id: "missing"}, &missing)
	assert.True(t, fault.IsErrNotFound(err), "wrong error: %s", err)
	assert.True(t, strings.HasPrefix(err.Error(), fault.CodeNotFound), "missing code prefix: %s", err)

	err = a.Get(&assets.GetArguments{}, &missing)
	assert.True(t, errors.Is(err, fault.MissingId), "empty id: %s", err)
	assert.True(t, strings.HasPrefix(err.Error(), fault.CodeValidation+": "), "missing code prefix: %s", err)
}

func TestAssetsHoldings(t *testing.T) {
	ctl, r, a := setup(t)
	defer teardown(ctl)

	expected := []*asset.DigitalAsset{sampleAsset()}
	r.EXPECT().ListByCreator("ann").Return(expected, nil).Times(1)
	r.EXPECT().ListByCreator("bob").Return([]*asset.DigitalAsset{}, nil).Times(1)

	var reply assets.HoldingsReply
	err := a.Holdings(&assets.HoldingsArguments{CreatorId: "ann"}, &reply)
	assert.Nil(t, err, "holdings error")
	assert.Equal(t, expected, reply.Assets, "wrong assets")

	var empty assets.HoldingsReply
	err = a.Holdings(&assets.HoldingsArguments{CreatorId: "bob"}, &empty)
	assert.Nil(t, err, "holdings error")
	assert.Equal(t, 0, len(empty.Assets), "wrong asset count")
}

func TestAssetsTransfer(t *testing.T) {
	ctl, r, a := setup(t)
	defer teardown(ctl)

	transferred := sampleAsset()
	transferred.HolderId = "bob"
	transferred.Status = asset.Transferred

	r.EXPECT().Transfer("asset-1", "ann", "bob", asset.Full).Return(transferred, nil).Times(1)
	r.EXPECT().Transfer("asset-1", "eve", "bob", asset.Full).Return(nil, fault.NotOwner).Times(1)

	var reply assets.Reply
	err := a.Transfer(&assets.TransferArguments{Id: "asset-1", Caller: "ann", To: "bob", TransferType: asset.Full}, &reply)
	assert.Nil(t, err, "transfer error")
	assert.Equal(t, "bob", reply.Asset.HolderId, "wrong holder")

	var rejected assets.Reply
	err = a.Transfer(&assets.TransferArguments{Id: "asset-1", Caller: "eve", To: "bob", TransferType: asset.Full}, &rejected)
	assert.True(t, fault.IsErrForbidden(err), "wrong error: %s", err)
	assert.True(t, strings.HasPrefix(err.Error(), fault.CodeForbidden), "missing code prefix: %s", err)

	err = a.Transfer(&assets.TransferArguments{Id: "asset-1", To: "bob", TransferType: asset.Full}, &rejected)
	assert.True(t, errors.Is(err, fault.MissingCaller), "missing caller: %s", err)
	assert.True(t, strings.HasPrefix(err.Error(), fault.CodeValidation+": "), "missing code prefix: %s", err)
}

func TestAssetsUpdateMetadata(t *testing.T) {
	ctl, r, a := setup(t)
	defer teardown(ctl)

	format := "jpeg"
	update := asset.MetadataUpdate{FileFormat: &format}
	updated := sampleAsset()
	updated.Metadata.FileFormat = format

	r.EXPECT().UpdateMetadata("asset-1", "ann", update).Return(updated, nil).Times(1)

	var reply assets.Reply
	err := a.UpdateMetadata(&assets.UpdateArguments{Id: "asset-1", Caller: "ann", Metadata: update}, &reply)
	assert.Nil(t, err, "update error")
	assert.Equal(t, "jpeg", reply.Asset.Metadata.FileFormat, "wrong format")
}

func TestAssetsRevoke(t *testing.T) {
	ctl, r, a := setup(t)
	defer teardown(ctl)

	revoked := sampleAsset()
	revoked.Status = asset.Revoked

	r.EXPECT().Revoke("asset-1", "ann").Return(revoked, nil).Times(1)
	r.EXPECT().Revoke("asset-1", "ann").Return(nil, fault.AlreadyRevoked).Times(1)

	var reply assets.Reply
	err := a.Revoke(&assets.RevokeArguments{Id: "asset-1", Caller: "ann"}, &reply)
	assert.Nil(t, err, "revoke error")
	assert.Equal(t, asset.Revoked, reply.Asset.Status, "wrong status")

	var again assets.Reply
	err = a.Revoke(&assets.RevokeArguments{Id: "asset-1", Caller: "ann"}, &again)
	assert.True(t, fault.IsErrState(err), "wrong error: %s", err)
	assert.True(t, strings.HasPrefix(err.Error(), fault.CodeState), "missing code prefix: %s", err)
}

func TestAssetsProvenance(t *testing.T) {
	ctl, r, a := setup(t)
	defer teardown(ctl)

	record := provenance.Of(sampleAsset())
	r.EXPECT().Provenance("asset-1").Return(&record, nil).Times(1)

	var reply assets.ProvenanceReply
	err := a.Provenance(&assets.GetArguments{Id: "asset-1"}, &reply)
	assert.Nil(t, err, "provenance error")
	assert.Equal(t, []string{"ann"}, reply.Provenance.Holders, "wrong holders")
}

func TestAssetsRateLimit(t *testing.T) {
	ctl, r, a := setup(t)
	defer teardown(ctl)

	a.Limiter = rate.NewLimiter(rate.Limit(0.001), 0)
	r.EXPECT().Get(gomock.Any()).Times(0)

	var reply assets.Reply
	err := a.Get(&assets.GetArguments{Id: "asset-1"}, &reply)
	assert.True(t, errors.Is(err, fault.RateLimiting), "wrong error: %s", err)
	assert.Equal(t, fault.CodeValidation+": "+fault.RateLimiting.Error(), err.Error(), "wrong message")
}

// requests rejected before reaching the registry carry the same code prefix
func TestAssetsMissingArguments(t *testing.T) {
	ctl, _, a := setup(t)
	defer teardown(ctl)

	var reply assets.Reply
	var holdings assets.HoldingsReply
	var history assets.ProvenanceReply

	errs := []error{
		a.Register(nil, &reply),
		a.Get(nil, &reply),
		a.Holdings(nil, &holdings),
		a.Transfer(nil, &reply),
		a.UpdateMetadata(nil, &reply),
		a.Revoke(nil, &reply),
		a.Provenance(nil, &history),
	}
	for i, err := range errs {
		if !assert.NotNil(t, err, "%d: no error", i) {
			continue
		}
		assert.True(t, fault.IsErrInvalid(err), "%d: wrong class: %s", i, err)
		assert.True(t, strings.HasPrefix(err.Error(), fault.CodeValidation+": "), "%d: missing code prefix: %s", i, err)
	}
}
