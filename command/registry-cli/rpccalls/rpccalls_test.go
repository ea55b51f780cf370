// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/asset"
	"github.com/bitmark-inc/registryd/command/registry-cli/rpccalls"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/provenance"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc/assets"
	"github.com/bitmark-inc/registryd/rpc/mocks"
	"github.com/bitmark-inc/registryd/rpc/server"
)

var epoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func sample(id string, holder string, status asset.Status) *asset.DigitalAsset {
	return &asset.DigitalAsset{
		Id:               id,
		Title:            "sunrise",
		AssetType:        asset.Image,
		CreatorId:        "ann",
		HolderId:         holder,
		ContentHash:      "01abcd",
		RegistrationDate: epoch,
		LastModified:     epoch,
		TransferHistory:  []asset.Transfer{},
		Status:           status,
		Metadata: asset.Metadata{
			FileFormat:     "png",
			FileSize:       10,
			AdditionalTags: []string{},
		},
	}
}

func setup(t *testing.T, verbose bool) (*gomock.Controller, *mocks.MockRegistry, *rpccalls.Client, *bytes.Buffer) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	r := mocks.NewMockRegistry(ctl)

	var c counter.Counter
	s := server.Create(logger.New(fixtures.LogCategory), "v-cli", r, &c)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	var out bytes.Buffer
	return ctl, r, rpccalls.NewClientWithConnection(clientConn, verbose, &out), &out
}

func TestRegisterAndGet(t *testing.T) {
	ctl, r, client, _ := setup(t, false)
	defer fixtures.TeardownTestLogger()
	defer ctl.Finish()
	defer client.Close()

	arguments := registry.RegisterArguments{
		Title:       "sunrise",
		AssetType:   asset.Image,
		CreatorId:   "ann",
		ContentHash: "01abcd",
		Metadata: asset.Metadata{
			FileFormat:     "png",
			FileSize:       10,
			AdditionalTags: []string{},
		},
	}
	r.EXPECT().Register(arguments).Return(sample("a1", "ann", asset.Active), nil).Times(1)
	r.EXPECT().Get("a1").Return(sample("a1", "ann", asset.Active), nil).Times(1)

	a, err := client.Register(&arguments)
	assert.Nil(t, err, "register error")
	assert.Equal(t, "a1", a.Id, "wrong id")
	assert.True(t, epoch.Equal(a.RegistrationDate), "wrong registration date")

	a, err = client.Get("a1")
	assert.Nil(t, err, "get error")
	assert.Equal(t, asset.Image, a.AssetType, "wrong type")
	assert.Equal(t, "ann", a.HolderId, "wrong holder")
}

func TestTransferRejected(t *testing.T) {
	ctl, r, client, _ := setup(t, false)
	defer fixtures.TeardownTestLogger()
	defer ctl.Finish()
	defer client.Close()

	r.EXPECT().Transfer("a1", "eve", "bob", asset.License).Return(nil, fault.NotOwner).Times(1)

	_, err := client.Transfer(&assets.TransferArguments{Id: "a1", Caller: "eve", To: "bob", TransferType: asset.License})
	assert.NotNil(t, err, "transfer accepted")
	assert.True(t, strings.HasPrefix(err.Error(), fault.CodeForbidden), "wrong error: %s", err)
}

func TestHoldingsRevokeProvenance(t *testing.T) {
	ctl, r, client, _ := setup(t, false)
	defer fixtures.TeardownTestLogger()
	defer ctl.Finish()
	defer client.Close()

	held := []*asset.DigitalAsset{sample("a1", "ann", asset.Active), sample("a2", "ann", asset.Active)}
	revoked := sample("a1", "ann", asset.Revoked)
	record := provenance.Of(revoked)

	r.EXPECT().ListByCreator("ann").Return(held, nil).Times(1)
	r.EXPECT().Revoke("a1", "ann").Return(revoked, nil).Times(1)
	r.EXPECT().Provenance("a1").Return(&record, nil).Times(1)

	list, err := client.Holdings("ann")
	assert.Nil(t, err, "holdings error")
	assert.Equal(t, 2, len(list), "wrong count")
	assert.Equal(t, "a2", list[1].Id, "wrong order")

	a, err := client.Revoke("a1", "ann")
	assert.Nil(t, err, "revoke error")
	assert.Equal(t, asset.Revoked, a.Status, "wrong status")

	p, err := client.Provenance("a1")
	assert.Nil(t, err, "provenance error")
	assert.Equal(t, asset.Revoked, p.Status, "wrong provenance status")
	assert.Equal(t, []string{"ann"}, p.Holders, "wrong holders")
	assert.Equal(t, []string{}, p.Licensees, "wrong licensees")
}

func TestVerboseInfo(t *testing.T) {
	ctl, r, client, out := setup(t, true)
	defer fixtures.TeardownTestLogger()
	defer ctl.Finish()
	defer client.Close()

	r.EXPECT().Statistics().Return(registry.Statistics{Registered: 2}).Times(1)

	info, err := client.GetInfo()
	assert.Nil(t, err, "info error")
	assert.Equal(t, "v-cli", info.Version, "wrong version")
	assert.Equal(t, uint64(2), info.Operations.Registered, "wrong registered")

	assert.Contains(t, out.String(), "Node.Info Request", "missing request trace")
	assert.Contains(t, out.String(), "Node.Info Reply", "missing reply trace")
}
