// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
)

func TestTransactionReadsOwnWrites(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	pool := d.Pool.TestData
	key := []byte("key")

	trx := d.Begin()
	trx.Put(pool, key, []byte("value"))

	value, err := trx.Get(pool, key)
	assert.Nil(t, err, "transaction get error")
	assert.Equal(t, []byte("value"), value, "transaction should see its own write")

	// not yet visible outside the transaction
	value, err = d.Get(pool, key)
	assert.Nil(t, err, "database get error")
	assert.Nil(t, value, "uncommitted write visible")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	value, err = d.Get(pool, key)
	assert.Nil(t, err, "database get error")
	assert.Equal(t, []byte("value"), value, "committed value")
}

func TestTransactionDeleteHidesCommitted(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	populate(t, d)
	pool := d.Pool.TestData
	key := []byte("key-two")

	trx := d.Begin()
	trx.Delete(pool, key)

	present, err := trx.Has(pool, key)
	assert.Nil(t, err, "has error")
	assert.False(t, present, "deleted key still present in transaction")

	value, err := trx.Get(pool, key)
	assert.Nil(t, err, "get error")
	assert.Nil(t, value, "deleted key has value in transaction")

	present, err = d.Has(pool, key)
	assert.Nil(t, err, "has error")
	assert.True(t, present, "delete leaked before commit")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	present, err = d.Has(pool, key)
	assert.Nil(t, err, "has error")
	assert.False(t, present, "key survived committed delete")
}

func TestTransactionAbort(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	pool := d.Pool.TestData

	trx := d.Begin()
	trx.Put(pool, []byte("a"), []byte("1"))
	trx.Put(pool, []byte("b"), []byte("2"))
	trx.Abort()

	present, err := d.Has(pool, []byte("a"))
	assert.Nil(t, err, "has error")
	assert.False(t, present, "aborted write is present")

	err = trx.Commit()
	assert.Equal(t, fault.TransactionIsNotReady, err, "commit after abort")

	_, err = trx.Get(pool, []byte("a"))
	assert.Equal(t, fault.TransactionIsNotReady, err, "get after abort")
}

func TestTransactionPutCopiesValue(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	pool := d.Pool.TestData
	buffer := []byte("original")

	trx := d.Begin()
	trx.Put(pool, []byte("k"), buffer)
	copy(buffer, "mutated!")
	err := trx.Commit()
	assert.Nil(t, err, "commit error")

	value, err := d.Get(pool, []byte("k"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("original"), value, "caller buffer changed stored value")
}

func TestEmptyCommit(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	trx := d.Begin()
	assert.Nil(t, trx.Commit(), "empty commit")
}

func TestCommitAfterClose(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	trx := d.Begin()
	trx.Put(d.Pool.TestData, []byte("k"), []byte("v"))
	d.Close()

	assert.Equal(t, fault.DatabaseIsNotSet, trx.Commit(), "commit on closed database")
}
