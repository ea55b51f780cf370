// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sort"
	"sync"
)

// a set of mutexes created on demand, one per key
//
// entries are dropped when no goroutine holds or waits for them
type keyLocks struct {
	sync.Mutex
	entries map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	references int
}

func newKeyLocks() *keyLocks {
	return &keyLocks{
		entries: make(map[string]*keyLock),
	}
}

// lock all the keys in sorted order, duplicates are ignored
//
// the returned function unlocks them
func (l *keyLocks) lock(keys ...string) func() {
	sorted := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			sorted = append(sorted, k)
		}
	}
	sort.Strings(sorted)

	held := make([]*keyLock, 0, len(sorted))
	for _, k := range sorted {
		held = append(held, l.acquire(k))
	}

	return func() {
		for i := len(sorted) - 1; i >= 0; i -= 1 {
			l.release(sorted[i], held[i])
		}
	}
}

func (l *keyLocks) acquire(key string) *keyLock {
	l.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &keyLock{}
		l.entries[key] = e
	}
	e.references += 1
	l.Unlock()

	e.Lock()
	return e
}

func (l *keyLocks) release(key string, e *keyLock) {
	e.Unlock()

	l.Lock()
	e.references -= 1
	if 0 == e.references {
		delete(l.entries, key)
	}
	l.Unlock()
}

// number of keys currently held or waited for
func (l *keyLocks) size() int {
	l.Lock()
	defer l.Unlock()
	return len(l.entries)
}
