// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/bitmark-inc/registryd/fixtures"
	"github.com/bitmark-inc/registryd/storage"
)

// common test setup routines

// configure for testing
func setup(t *testing.T) *fixtures.TestDatabase {
	fixtures.SetupTestLogger()
	return fixtures.SetupTestDatabase(t)
}

// post test cleanup
func teardown(d *fixtures.TestDatabase) {
	d.Teardown()
	fixtures.TeardownTestLogger()
}

// a string data item
type stringElement struct {
	key   string
	value string
}

// make an element array
func makeElements(input []stringElement) []storage.Element {
	output := make([]storage.Element, 0, len(input))
	for _, e := range input {
		output = append(output, storage.Element{
			Key:   []byte(e.key),
			Value: []byte(e.value),
		})
	}
	return output
}

// data written in random order
var unorderedElements = []stringElement{
	{"key-one", "data-one"},
	{"key-two", "data-two"},
	{"key-three", "data-three"},
	{"key-four", "data-four"},
	{"key-five", "data-five"},
	{"key-six", "data-six"},
	{"key-seven", "data-seven"},
}

// this is the expected order
var expectedElements = makeElements([]stringElement{
	{"key-five", "data-five"},
	{"key-four", "data-four"},
	{"key-one", "data-one"},
	{"key-seven", "data-seven"},
	{"key-six", "data-six"},
	{"key-three", "data-three"},
	{"key-two", "data-two"},
})

// a key that must not exist
var nonExistentKey = []byte("/nonexistent")

// write all the test data in a single transaction
func populate(t *testing.T, d *fixtures.TestDatabase) {
	trx := d.Begin()
	for _, e := range unorderedElements {
		trx.Put(d.Pool.TestData, []byte(e.key), []byte(e.value))
	}
	err := trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
