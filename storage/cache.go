// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

// pending writes of a single transaction
//
// a deleted key is remembered so that it hides the committed value
type pendingCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

func newPendingCache() *pendingCache {
	return &pendingCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// second result: the key was written in this transaction
// third result: the key is present
func (c *pendingCache) get(key []byte) ([]byte, bool, bool) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return nil, false, false
	}

	data := obj.(cacheData)
	if dbDelete == data.op {
		return nil, true, false
	}
	return data.value, true, true
}

func (c *pendingCache) set(op dbOperation, key []byte, value []byte) {
	c.cache.Set(string(key), cacheData{op: op, value: value}, cache.NoExpiration)
}

func (c *pendingCache) clear() {
	c.cache.Flush()
}
