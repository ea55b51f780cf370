// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/registryd/fault"
)

// Snapshot - a frozen view of the database
type Snapshot struct {
	snapshot *leveldb.Snapshot
}

// NewSnapshot - capture the current committed state
//
// Release must be called when finished
func (d *Database) NewSnapshot() (*Snapshot, error) {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return nil, fault.DatabaseIsNotSet
	}
	s, err := d.db.GetSnapshot()
	if nil != err {
		return nil, err
	}
	return &Snapshot{snapshot: s}, nil
}

// Get - read a value as of the snapshot
func (s *Snapshot) Get(p *PoolHandle, key []byte) ([]byte, error) {
	return get(s.snapshot, p, key)
}

// Has - check a key as of the snapshot
func (s *Snapshot) Has(p *PoolHandle, key []byte) (bool, error) {
	return has(s.snapshot, p, key)
}

// NewFetchCursor - cursor over a pool as of the snapshot
func (s *Snapshot) NewFetchCursor(p *PoolHandle) *FetchCursor {
	return newFetchCursor(s.snapshot, p)
}

// Release - free the snapshot
func (s *Snapshot) Release() {
	s.snapshot.Release()
}
