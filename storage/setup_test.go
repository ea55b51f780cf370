// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/storage"
)

func TestReopen(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	populate(t, d)
	d.Close()

	// closed database
	_, err := d.Get(d.Pool.TestData, []byte("key-one"))
	assert.Equal(t, fault.DatabaseIsNotSet, err, "get on closed database")

	readOnly, err := storage.Open(d.Path(), storage.ReadOnly)
	assert.Nil(t, err, "read only open error")
	defer readOnly.Close()

	value, err := readOnly.Get(readOnly.Pool.TestData, []byte("key-one"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("data-one"), value, "value after reopen")
}

func TestPoolsAreDistinct(t *testing.T) {
	d := setup(t)
	defer teardown(d)

	trx := d.Begin()
	trx.Put(d.Pool.Assets, []byte("k"), []byte("asset"))
	trx.Put(d.Pool.TestData, []byte("k"), []byte("test"))
	assert.Nil(t, trx.Commit(), "commit error")

	value, err := d.Get(d.Pool.Assets, []byte("k"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("asset"), value, "asset pool value")

	elements, err := d.NewFetchCursor(d.Pool.TestData).Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 1, len(elements), "test pool leaked other pool")
}
