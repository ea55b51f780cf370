// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a gauge that can be incremented or decremented from any
// goroutine and remembers the highest value it reached
type Counter struct {
	current uint64
	peak    uint64
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	n := atomic.AddUint64(&c.current, 1)
	for {
		p := atomic.LoadUint64(&c.peak)
		if n <= p || atomic.CompareAndSwapUint64(&c.peak, p, n) {
			return n
		}
	}
}

// Decrement - subtract 1 from a counter, returns new value
func (c *Counter) Decrement() uint64 {
	return atomic.AddUint64(&c.current, ^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64(&c.current)
}

// Peak - highest value seen
func (c *Counter) Peak() uint64 {
	return atomic.LoadUint64(&c.peak)
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
