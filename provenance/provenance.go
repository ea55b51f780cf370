// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package provenance - the transfer history of an asset
package provenance

import (
	"github.com/bitmark-inc/registryd/asset"
)

// Append - history with one more transfer at the end
//
// the input slice is never written, so a history shared with a stored
// record stays unchanged
func Append(history []asset.Transfer, t asset.Transfer) []asset.Transfer {
	result := make([]asset.Transfer, len(history), len(history)+1)
	copy(result, history)
	return append(result, t)
}

// Holders - the chain of holders of record
//
// starts with the creator and adds the recipient of each FULL
// transfer; licences do not change the holder
func Holders(creatorId string, history []asset.Transfer) []string {
	holders := []string{creatorId}
	for _, t := range history {
		if asset.Full == t.TransferType {
			holders = append(holders, t.ToId)
		}
	}
	return holders
}

// Licensees - recipients of LICENSE transfers in grant order
func Licensees(history []asset.Transfer) []string {
	licensees := []string{}
	for _, t := range history {
		if asset.License == t.TransferType {
			licensees = append(licensees, t.ToId)
		}
	}
	return licensees
}

// Record - the provenance report for one asset
type Record struct {
	Id        string           `json:"id"`
	CreatorId string           `json:"creatorId"`
	HolderId  string           `json:"holderId"`
	Status    asset.Status     `json:"status"`
	History   []asset.Transfer `json:"history"`
	Holders   []string         `json:"holders"`
	Licensees []string         `json:"licensees"`
}

// Of - build the provenance report for an asset
func Of(a *asset.DigitalAsset) Record {
	history := make([]asset.Transfer, len(a.TransferHistory))
	copy(history, a.TransferHistory)
	return Record{
		Id:        a.Id,
		CreatorId: a.CreatorId,
		HolderId:  a.HolderId,
		Status:    a.Status,
		History:   history,
		Holders:   Holders(a.CreatorId, a.TransferHistory),
		Licensees: Licensees(a.TransferHistory),
	}
}
