// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - index of the assets each holder currently holds
//
// Three pools make up the index:
//
//	HolderNextCount  holder          → next count
//	HolderList       holder ⧺ count  → asset id  (insertion ordered)
//	HolderIndex      holder ⧺ id     → count     (position, for delete)
//
// holder is Varint64(length) ⧺ bytes so that no holder's key range
// contains another holder's keys, and count is 8 byte big endian.
//
// The index does no locking of its own: a caller must serialise all
// updates for a given holder.
package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/registryd/storage"
	"github.com/bitmark-inc/registryd/util"
)

const uint64ByteSize = 8

// Index - holder to assets index
type Index struct {
	nextCount *storage.PoolHandle
	list      *storage.PoolHandle
	position  *storage.PoolHandle
}

// Holding - one entry in a holder's list
type Holding struct {
	N       uint64 `json:"n,string"`
	AssetId string `json:"assetId"`
}

// NewIndex - index over the holder pools of a database
func NewIndex(database *storage.Database) *Index {
	return &Index{
		nextCount: database.Pool.HolderNextCount,
		list:      database.Pool.HolderList,
		position:  database.Pool.HolderIndex,
	}
}

func holderKey(holder string) []byte {
	key := util.ToVarint64(uint64(len(holder)))
	return append(key, holder...)
}

func countBytes(n uint64) []byte {
	b := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(b, n)
	return b
}

// AddHolding - append an asset to the end of a holder's list
//
// does nothing if the holder already has the asset
func (x *Index) AddHolding(trx *storage.Transaction, holder string, assetId string) error {
	hKey := holderKey(holder)
	pKey := append(append([]byte{}, hKey...), assetId...)

	present, err := trx.Has(x.position, pKey)
	if nil != err || present {
		return err
	}

	count := uint64(0)
	next, err := trx.Get(x.nextCount, hKey)
	if nil != err {
		return err
	}
	if len(next) >= uint64ByteSize {
		count = binary.BigEndian.Uint64(next)
	}

	n := countBytes(count)
	lKey := append(append([]byte{}, hKey...), n...)

	trx.Put(x.list, lKey, []byte(assetId))
	trx.Put(x.position, pKey, n)
	trx.Put(x.nextCount, hKey, countBytes(count+1))
	return nil
}

// RemoveHolding - take an asset out of a holder's list
//
// does nothing if the holder does not have the asset
func (x *Index) RemoveHolding(trx *storage.Transaction, holder string, assetId string) error {
	hKey := holderKey(holder)
	pKey := append(append([]byte{}, hKey...), assetId...)

	n, err := trx.Get(x.position, pKey)
	if nil != err || nil == n {
		return err
	}

	lKey := append(append([]byte{}, hKey...), n...)
	trx.Delete(x.list, lKey)
	trx.Delete(x.position, pKey)
	return nil
}

// Holds - check if a holder has an asset
func (x *Index) Holds(reader storage.Getter, holder string, assetId string) (bool, error) {
	pKey := append(holderKey(holder), assetId...)
	return reader.Has(x.position, pKey)
}

// ListHoldings - all asset ids of a holder in the order they were added
//
// an unknown holder gives an empty list
func (x *Index) ListHoldings(reader storage.Reader, holder string) ([]string, error) {
	ids := []string{}
	err := reader.NewFetchCursor(x.list).Range(holderKey(holder)).Map(func(key []byte, value []byte) error {
		ids = append(ids, string(value))
		return nil
	})
	if nil != err {
		return nil, err
	}
	return ids, nil
}

// HoldingsFrom - a page of a holder's list starting at count start
func (x *Index) HoldingsFrom(reader storage.Reader, holder string, start uint64, count int) ([]Holding, error) {
	hKey := holderKey(holder)

	cursor := reader.NewFetchCursor(x.list).Seek(append(append([]byte{}, hKey...), countBytes(start)...))

	// holder ⧺ count → asset id
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	holdings := make([]Holding, 0, len(items))
loop:
	for _, item := range items {
		split := len(item.Key) - uint64ByteSize
		if split <= 0 || !bytes.Equal(hKey, item.Key[:split]) {
			break loop
		}
		holdings = append(holdings, Holding{
			N:       binary.BigEndian.Uint64(item.Key[split:]),
			AssetId: string(item.Value),
		})
	}
	return holdings, nil
}
