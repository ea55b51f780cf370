// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/registryd/fault"
)

// Packed - a binary record built from varint prefixed fields
type Packed []byte

// AppendUint64 - append a single Varint64
func (buffer Packed) AppendUint64(value uint64) Packed {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a count prefixed byte string
func (buffer Packed) AppendBytes(data []byte) Packed {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// AppendString - append a count prefixed UTF-8 string
func (buffer Packed) AppendString(s string) Packed {
	return buffer.AppendBytes([]byte(s))
}

// Unpacker - sequential reader for a Packed record
//
// the first failure sticks, so a sequence of reads can be checked
// once with Err()
type Unpacker struct {
	buffer []byte
	n      int
	err    error
}

// NewUnpacker - start reading from the beginning of a record
func NewUnpacker(record []byte) *Unpacker {
	return &Unpacker{
		buffer: record,
	}
}

// Uint64 - read the next Varint64
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = fault.RecordTruncated
		return 0
	}
	u.n += count
	return value
}

// Count - read a list length
//
// every item takes at least one byte, so a count larger than the rest
// of the record means truncation
func (u *Unpacker) Count() int {
	n := u.Uint64()
	if nil != u.err {
		return 0
	}
	if n > uint64(len(u.buffer)-u.n) {
		u.err = fault.RecordTruncated
		return 0
	}
	return int(n)
}

// Bytes - read the next count prefixed byte string as a fresh copy
func (u *Unpacker) Bytes() []byte {
	length := u.Uint64()
	if nil != u.err {
		return nil
	}
	if length > uint64(len(u.buffer)-u.n) {
		u.err = fault.RecordTruncated
		return nil
	}
	end := u.n + int(length)
	data := make([]byte, length)
	copy(data, u.buffer[u.n:end])
	u.n = end
	return data
}

// String - read the next count prefixed string
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Remaining - number of unread bytes
func (u *Unpacker) Remaining() int {
	return len(u.buffer) - u.n
}

// Err - first error encountered, if any
func (u *Unpacker) Err() error {
	return u.err
}
