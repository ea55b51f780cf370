// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/registryd/asset"
	"github.com/bitmark-inc/registryd/provenance"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc/assets"
)

// Register - create a new asset
func (client *Client) Register(arguments *registry.RegisterArguments) (*asset.DigitalAsset, error) {
	var reply assets.Reply
	if err := client.call("Assets.Register", arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Asset, nil
}

// Get - fetch an asset by id
func (client *Client) Get(id string) (*asset.DigitalAsset, error) {
	var reply assets.Reply
	if err := client.call("Assets.Get", &assets.GetArguments{Id: id}, &reply); nil != err {
		return nil, err
	}
	return reply.Asset, nil
}

// Holdings - assets held by a creator
func (client *Client) Holdings(creatorId string) ([]*asset.DigitalAsset, error) {
	var reply assets.HoldingsReply
	if err := client.call("Assets.Holdings", &assets.HoldingsArguments{CreatorId: creatorId}, &reply); nil != err {
		return nil, err
	}
	return reply.Assets, nil
}

// Transfer - transfer or license an asset
func (client *Client) Transfer(arguments *assets.TransferArguments) (*asset.DigitalAsset, error) {
	var reply assets.Reply
	if err := client.call("Assets.Transfer", arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Asset, nil
}

// UpdateMetadata - merge metadata fields
func (client *Client) UpdateMetadata(arguments *assets.UpdateArguments) (*asset.DigitalAsset, error) {
	var reply assets.Reply
	if err := client.call("Assets.UpdateMetadata", arguments, &reply); nil != err {
		return nil, err
	}
	return reply.Asset, nil
}

// Revoke - withdraw an asset
func (client *Client) Revoke(id string, caller string) (*asset.DigitalAsset, error) {
	var reply assets.Reply
	if err := client.call("Assets.Revoke", &assets.RevokeArguments{Id: id, Caller: caller}, &reply); nil != err {
		return nil, err
	}
	return reply.Asset, nil
}

// Provenance - chain of custody of an asset
func (client *Client) Provenance(id string) (*provenance.Record, error) {
	var reply assets.ProvenanceReply
	if err := client.call("Assets.Provenance", &assets.GetArguments{Id: id}, &reply); nil != err {
		return nil, err
	}
	return reply.Provenance, nil
}
