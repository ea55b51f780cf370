// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// A single LevelDB database is split into pools by a one byte key
// prefix.  The pools are declared as fields of the Pools struct with
// a prefix tag and are set up by Open.
//
// All writes go through a Transaction: a LevelDB batch together with a
// cache of the pending writes, so that later reads in the same
// transaction see earlier writes.  Commit writes the batch atomically.
//
// Consistent multi-key reads use a Snapshot.
package storage
