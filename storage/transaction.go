// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/registryd/fault"
)

// Transaction - a set of writes applied atomically by Commit
//
// not safe for concurrent use; each caller begins its own
type Transaction struct {
	database *Database
	batch    *leveldb.Batch
	pending  *pendingCache
	done     bool
}

// Begin - start a new transaction
func (d *Database) Begin() *Transaction {
	return &Transaction{
		database: d,
		batch:    new(leveldb.Batch),
		pending:  newPendingCache(),
	}
}

// Get - read a value, including writes made by this transaction
func (t *Transaction) Get(p *PoolHandle, key []byte) ([]byte, error) {
	if t.done {
		return nil, fault.TransactionIsNotReady
	}
	pKey := p.prefixKey(key)
	if value, written, present := t.pending.get(pKey); written {
		if !present {
			return nil, nil
		}
		return value, nil
	}
	return t.database.Get(p, key)
}

// Has - check if a key exists, including writes made by this transaction
func (t *Transaction) Has(p *PoolHandle, key []byte) (bool, error) {
	if t.done {
		return false, fault.TransactionIsNotReady
	}
	if _, written, present := t.pending.get(p.prefixKey(key)); written {
		return present, nil
	}
	return t.database.Has(p, key)
}

// Put - store a key/value pair
func (t *Transaction) Put(p *PoolHandle, key []byte, value []byte) {
	pKey := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)
	t.batch.Put(pKey, v)
	t.pending.set(dbPut, pKey, v)
}

// Delete - remove a key
func (t *Transaction) Delete(p *PoolHandle, key []byte) {
	pKey := p.prefixKey(key)
	t.batch.Delete(pKey)
	t.pending.set(dbDelete, pKey, nil)
}

// Commit - write all changes as a single atomic batch
//
// the transaction cannot be used afterwards, even if an error occurred
func (t *Transaction) Commit() error {
	if t.done {
		return fault.TransactionIsNotReady
	}
	defer t.finish()

	if 0 == t.batch.Len() {
		return nil
	}

	d := t.database
	d.RLock()
	defer d.RUnlock()
	if nil == d.db {
		return fault.DatabaseIsNotSet
	}
	return d.db.Write(t.batch, &ldb_opt.WriteOptions{Sync: d.sync})
}

// Abort - discard all changes
func (t *Transaction) Abort() {
	if !t.done {
		t.finish()
	}
}

func (t *Transaction) finish() {
	t.done = true
	t.batch.Reset()
	t.pending.clear()
}
