// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"fmt"

	"github.com/bitmark-inc/registryd/storage"
)

// Store - primary asset records keyed by id
type Store struct {
	pool *storage.PoolHandle
}

// NewStore - asset store over the database asset pool
func NewStore(database *storage.Database) *Store {
	return &Store{
		pool: database.Pool.Assets,
	}
}

// Put - insert or replace the record for a.Id
func (s *Store) Put(trx *storage.Transaction, a *DigitalAsset) {
	trx.Put(s.pool, []byte(a.Id), a.Pack())
}

// Get - fetch a record
//
// the second result is false if no record exists for the id
func (s *Store) Get(reader storage.Getter, id string) (*DigitalAsset, bool, error) {
	packed, err := reader.Get(s.pool, []byte(id))
	if nil != err {
		return nil, false, err
	}
	if nil == packed {
		return nil, false, nil
	}

	a, err := Unpack(packed)
	if nil != err {
		return nil, false, fmt.Errorf("asset: %q: %w", id, err)
	}
	return a, true, nil
}

// Count - number of stored records
func (s *Store) Count(reader storage.Reader) (int, error) {
	n := 0
	err := reader.NewFetchCursor(s.pool).Map(func(key []byte, value []byte) error {
		n += 1
		return nil
	})
	return n, err
}

// Map - run a function on every record in id order
func (s *Store) Map(reader storage.Reader, f func(a *DigitalAsset) error) error {
	return reader.NewFetchCursor(s.pool).Map(func(key []byte, value []byte) error {
		a, err := Unpack(value)
		if nil != err {
			return fmt.Errorf("asset: %q: %w", key, err)
		}
		return f(a)
	})
}
