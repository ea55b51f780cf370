// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assets

import (
	"fmt"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/asset"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/provenance"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

const (
	rateLimitAssets = 200
	rateBurstAssets = 100
)

// Assets - type for the RPC
type Assets struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

// New - create the asset RPC service
func New(log *logger.L, reg registry.Registry) *Assets {
	return &Assets{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAssets, rateBurstAssets),
		Registry: reg,
	}
}

// prefix the error with its stable code so clients can classify it
func (assets *Assets) failed(method string, err error) error {
	kind := fault.Kind(err)
	if fault.CodeInternal == kind {
		assets.Log.Errorf("%s: error: %s", method, err)
	} else {
		assets.Log.Debugf("%s: %s: %s", method, kind, err)
	}
	return fmt.Errorf("%s: %w", kind, err)
}

// Reply - a single asset
type Reply struct {
	Asset *asset.DigitalAsset `json:"asset"`
}

// ---

// Register - create a new asset held by its creator
func (assets *Assets) Register(arguments *registry.RegisterArguments, reply *Reply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return assets.failed("Assets.Register", err)
	}
	if nil == arguments {
		return assets.failed("Assets.Register", fault.MissingParameters)
	}

	assets.Log.Infof("Assets.Register: creator: %q  title: %q", arguments.CreatorId, arguments.Title)

	a, err := assets.Registry.Register(*arguments)
	if nil != err {
		return assets.failed("Assets.Register", err)
	}
	reply.Asset = a
	return nil
}

// ---

// GetArguments - arguments for Get and Provenance
type GetArguments struct {
	Id string `json:"id"`
}

// Get - fetch one asset
func (assets *Assets) Get(arguments *GetArguments, reply *Reply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return assets.failed("Assets.Get", err)
	}
	if nil == arguments || "" == arguments.Id {
		return assets.failed("Assets.Get", fault.MissingId)
	}

	a, err := assets.Registry.Get(arguments.Id)
	if nil != err {
		return assets.failed("Assets.Get", err)
	}
	reply.Asset = a
	return nil
}

// ---

// HoldingsArguments - arguments for RPC request
type HoldingsArguments struct {
	CreatorId string `json:"creatorId"`
}

// HoldingsReply - results from RPC request
type HoldingsReply struct {
	Assets []*asset.DigitalAsset `json:"assets"`
}

// Holdings - all assets currently held by a creator
func (assets *Assets) Holdings(arguments *HoldingsArguments, reply *HoldingsReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return assets.failed("Assets.Holdings", err)
	}
	if nil == arguments {
		return assets.failed("Assets.Holdings", fault.MissingParameters)
	}

	list, err := assets.Registry.ListByCreator(arguments.CreatorId)
	if nil != err {
		return assets.failed("Assets.Holdings", err)
	}
	reply.Assets = list
	return nil
}

// ---

// TransferArguments - arguments for RPC request
type TransferArguments struct {
	Id           string             `json:"id"`
	Caller       string             `json:"caller"`
	To           string             `json:"to"`
	TransferType asset.TransferType `json:"transferType"`
}

// Transfer - record a full transfer or a licence
func (assets *Assets) Transfer(arguments *TransferArguments, reply *Reply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return assets.failed("Assets.Transfer", err)
	}
	if nil == arguments {
		return assets.failed("Assets.Transfer", fault.MissingParameters)
	}
	if "" == arguments.Caller {
		return assets.failed("Assets.Transfer", fault.MissingCaller)
	}

	assets.Log.Infof("Assets.Transfer: %q  %s: %q → %q", arguments.Id, arguments.TransferType, arguments.Caller, arguments.To)

	a, err := assets.Registry.Transfer(arguments.Id, arguments.Caller, arguments.To, arguments.TransferType)
	if nil != err {
		return assets.failed("Assets.Transfer", err)
	}
	reply.Asset = a
	return nil
}

// ---

// UpdateArguments - arguments for RPC request
type UpdateArguments struct {
	Id       string               `json:"id"`
	Caller   string               `json:"caller"`
	Metadata asset.MetadataUpdate `json:"metadata"`
}

// UpdateMetadata - merge a partial metadata update
func (assets *Assets) UpdateMetadata(arguments *UpdateArguments, reply *Reply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return assets.failed("Assets.UpdateMetadata", err)
	}
	if nil == arguments {
		return assets.failed("Assets.UpdateMetadata", fault.MissingParameters)
	}

	a, err := assets.Registry.UpdateMetadata(arguments.Id, arguments.Caller, arguments.Metadata)
	if nil != err {
		return assets.failed("Assets.UpdateMetadata", err)
	}
	reply.Asset = a
	return nil
}

// ---

// RevokeArguments - arguments for RPC request
type RevokeArguments struct {
	Id     string `json:"id"`
	Caller string `json:"caller"`
}

// Revoke - permanently withdraw an asset
func (assets *Assets) Revoke(arguments *RevokeArguments, reply *Reply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return assets.failed("Assets.Revoke", err)
	}
	if nil == arguments {
		return assets.failed("Assets.Revoke", fault.MissingParameters)
	}
	if "" == arguments.Caller {
		return assets.failed("Assets.Revoke", fault.MissingCaller)
	}

	assets.Log.Infof("Assets.Revoke: %q  by: %q", arguments.Id, arguments.Caller)

	a, err := assets.Registry.Revoke(arguments.Id, arguments.Caller)
	if nil != err {
		return assets.failed("Assets.Revoke", err)
	}
	reply.Asset = a
	return nil
}

// ---

// ProvenanceReply - results from RPC request
type ProvenanceReply struct {
	Provenance *provenance.Record `json:"provenance"`
}

// Provenance - the chain of custody of an asset
func (assets *Assets) Provenance(arguments *GetArguments, reply *ProvenanceReply) error {
	if err := ratelimit.Limit(assets.Limiter); nil != err {
		return assets.failed("Assets.Provenance", err)
	}
	if nil == arguments || "" == arguments.Id {
		return assets.failed("Assets.Provenance", fault.MissingId)
	}

	p, err := assets.Registry.Provenance(arguments.Id)
	if nil != err {
		return assets.failed("Assets.Provenance", err)
	}
	reply.Provenance = p
	return nil
}
