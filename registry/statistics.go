// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync/atomic"
)

// updated with sync/atomic
type counters struct {
	registered  uint64
	transfers   uint64
	licences    uint64
	updates     uint64
	revocations uint64
	reads       uint64
	rejected    uint64
	failures    uint64
}

// Statistics - operation counts since start
type Statistics struct {
	Registered  uint64 `json:"registered,string"`
	Transfers   uint64 `json:"transfers,string"`
	Licences    uint64 `json:"licences,string"`
	Updates     uint64 `json:"updates,string"`
	Revocations uint64 `json:"revocations,string"`
	Reads       uint64 `json:"reads,string"`
	Rejected    uint64 `json:"rejected,string"`
	Failures    uint64 `json:"failures,string"`
}

// Statistics - current operation counts
func (s *Service) Statistics() Statistics {
	return Statistics{
		Registered:  atomic.LoadUint64(&s.counters.registered),
		Transfers:   atomic.LoadUint64(&s.counters.transfers),
		Licences:    atomic.LoadUint64(&s.counters.licences),
		Updates:     atomic.LoadUint64(&s.counters.updates),
		Revocations: atomic.LoadUint64(&s.counters.revocations),
		Reads:       atomic.LoadUint64(&s.counters.reads),
		Rejected:    atomic.LoadUint64(&s.counters.rejected),
		Failures:    atomic.LoadUint64(&s.counters.failures),
	}
}
