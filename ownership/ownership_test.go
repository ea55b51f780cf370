// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/ownership"
	"github.com/bitmark-inc/registryd/storage"
)

func setup(t *testing.T) (*fixtures.TestDatabase, *ownership.Index) {
	fixtures.SetupTestLogger()
	d := fixtures.SetupTestDatabase(t)
	return d, ownership.NewIndex(d.Database)
}

func teardown(d *fixtures.TestDatabase) {
	d.Teardown()
	fixtures.TeardownTestLogger()
}

func commit(t *testing.T, trx *storage.Transaction) {
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}

func TestAddInInsertionOrder(t *testing.T) {
	d, x := setup(t)
	defer teardown(d)

	trx := d.Begin()
	for _, id := range []string{"zeta", "alpha", "mu"} {
		assert.Nil(t, x.AddHolding(trx, "alice", id), "add %s", id)
	}
	commit(t, trx)

	ids, err := x.ListHoldings(d, "alice")
	assert.Nil(t, err, "list error")
	assert.Equal(t, []string{"zeta", "alpha", "mu"}, ids, "insertion order")
}

func TestAddIsIdempotent(t *testing.T) {
	d, x := setup(t)
	defer teardown(d)

	trx := d.Begin()
	assert.Nil(t, x.AddHolding(trx, "alice", "a1"), "first add")
	assert.Nil(t, x.AddHolding(trx, "alice", "a1"), "second add in same transaction")
	commit(t, trx)

	trx = d.Begin()
	assert.Nil(t, x.AddHolding(trx, "alice", "a1"), "add after commit")
	commit(t, trx)

	ids, err := x.ListHoldings(d, "alice")
	assert.Nil(t, err, "list error")
	assert.Equal(t, []string{"a1"}, ids, "duplicate entry")
}

func TestRemove(t *testing.T) {
	d, x := setup(t)
	defer teardown(d)

	trx := d.Begin()
	assert.Nil(t, x.AddHolding(trx, "alice", "a1"), "add a1")
	assert.Nil(t, x.AddHolding(trx, "alice", "a2"), "add a2")
	assert.Nil(t, x.AddHolding(trx, "alice", "a3"), "add a3")
	commit(t, trx)

	trx = d.Begin()
	assert.Nil(t, x.RemoveHolding(trx, "alice", "a2"), "remove a2")
	assert.Nil(t, x.RemoveHolding(trx, "alice", "absent"), "remove absent")
	assert.Nil(t, x.RemoveHolding(trx, "nobody", "a1"), "remove from unknown holder")
	commit(t, trx)

	ids, err := x.ListHoldings(d, "alice")
	assert.Nil(t, err, "list error")
	assert.Equal(t, []string{"a1", "a3"}, ids, "after remove")

	held, err := x.Holds(d, "alice", "a2")
	assert.Nil(t, err, "holds error")
	assert.False(t, held, "removed asset still held")

	// re-adding goes to the end
	trx = d.Begin()
	assert.Nil(t, x.AddHolding(trx, "alice", "a2"), "re-add a2")
	commit(t, trx)

	ids, err = x.ListHoldings(d, "alice")
	assert.Nil(t, err, "list error")
	assert.Equal(t, []string{"a1", "a3", "a2"}, ids, "re-added at end")
}

func TestMoveBetweenHolders(t *testing.T) {
	d, x := setup(t)
	defer teardown(d)

	trx := d.Begin()
	assert.Nil(t, x.AddHolding(trx, "alice", "a1"), "add")
	commit(t, trx)

	trx = d.Begin()
	assert.Nil(t, x.RemoveHolding(trx, "alice", "a1"), "remove")
	assert.Nil(t, x.AddHolding(trx, "bob", "a1"), "add")
	commit(t, trx)

	held, err := x.Holds(d, "alice", "a1")
	assert.Nil(t, err, "holds error")
	assert.False(t, held, "old holder")

	held, err = x.Holds(d, "bob", "a1")
	assert.Nil(t, err, "holds error")
	assert.True(t, held, "new holder")
}

func TestHoldersDoNotOverlap(t *testing.T) {
	d, x := setup(t)
	defer teardown(d)

	// "ab" would share a key prefix with "a" without the length byte
	trx := d.Begin()
	assert.Nil(t, x.AddHolding(trx, "a", "x1"), "add a")
	assert.Nil(t, x.AddHolding(trx, "ab", "x2"), "add ab")
	assert.Nil(t, x.AddHolding(trx, "", "x3"), "add empty")
	commit(t, trx)

	ids, err := x.ListHoldings(d, "a")
	assert.Nil(t, err, "list error")
	assert.Equal(t, []string{"x1"}, ids, "holder a")

	ids, err = x.ListHoldings(d, "ab")
	assert.Nil(t, err, "list error")
	assert.Equal(t, []string{"x2"}, ids, "holder ab")

	ids, err = x.ListHoldings(d, "nobody")
	assert.Nil(t, err, "list error")
	assert.Equal(t, []string{}, ids, "unknown holder")
}

func TestHoldingsFrom(t *testing.T) {
	d, x := setup(t)
	defer teardown(d)

	trx := d.Begin()
	for _, id := range []string{"a0", "a1", "a2", "a3"} {
		assert.Nil(t, x.AddHolding(trx, "ann", id), "add %s", id)
	}
	assert.Nil(t, x.AddHolding(trx, "bob", "b0"), "add bob")
	commit(t, trx)

	page, err := x.HoldingsFrom(d, "ann", 1, 2)
	assert.Nil(t, err, "page error")
	assert.Equal(t, []ownership.Holding{{N: 1, AssetId: "a1"}, {N: 2, AssetId: "a2"}}, page, "middle page")

	page, err = x.HoldingsFrom(d, "ann", 3, 10)
	assert.Nil(t, err, "page error")
	assert.Equal(t, []ownership.Holding{{N: 3, AssetId: "a3"}}, page, "stops at next holder")
}
