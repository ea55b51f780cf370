// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/registryd/fault"
)

// PoolHandle - a prefixed key range within a database
type PoolHandle struct {
	prefix byte
	limit  []byte
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Getter - point reads
type Getter interface {
	Get(pool *PoolHandle, key []byte) ([]byte, error)
	Has(pool *PoolHandle, key []byte) (bool, error)
}

// Reader - point reads and ordered range scans
type Reader interface {
	Getter
	NewFetchCursor(pool *PoolHandle) *FetchCursor
}

// both *leveldb.DB and *leveldb.Snapshot
type source interface {
	Get(key []byte, ro *ldb_opt.ReadOptions) ([]byte, error)
	Has(key []byte, ro *ldb_opt.ReadOptions) (bool, error)
	NewIterator(slice *ldb_util.Range, ro *ldb_opt.ReadOptions) iterator.Iterator
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// read a value for a given key
//
// a missing key gives nil, nil
func get(s source, p *PoolHandle, key []byte) ([]byte, error) {
	if nil == s {
		return nil, fault.DatabaseIsNotSet
	}
	value, err := s.Get(p.prefixKey(key), nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}

func has(s source, p *PoolHandle, key []byte) (bool, error) {
	if nil == s {
		return false, fault.DatabaseIsNotSet
	}
	return s.Has(p.prefixKey(key), nil)
}

// Get - read a committed value
//
// returns nil if the key is not present
func (d *Database) Get(p *PoolHandle, key []byte) ([]byte, error) {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return nil, fault.DatabaseIsNotSet
	}
	return get(d.db, p, key)
}

// Has - check if a committed key exists
func (d *Database) Has(p *PoolHandle, key []byte) (bool, error) {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return false, fault.DatabaseIsNotSet
	}
	return has(d.db, p, key)
}

// NewFetchCursor - cursor over the committed contents of a pool
func (d *Database) NewFetchCursor(p *PoolHandle) *FetchCursor {
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return newFetchCursor(nil, p)
	}
	return newFetchCursor(d.db, p)
}
