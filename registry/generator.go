// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"time"

	"github.com/google/uuid"
)

// IdGenerator - source of fresh asset and transfer ids
type IdGenerator interface {
	NewId() string
}

// Clock - source of timestamps
type Clock interface {
	Now() time.Time
}

// random version 4 UUIDs
type uuidGenerator struct{}

func (uuidGenerator) NewId() string {
	return uuid.New().String()
}

// wall clock in UTC
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
