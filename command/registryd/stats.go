// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc"
)

const (
	mega = 1048576
)

// periodically log the registry counters
type statistics struct {
	log      *logger.L
	registry registry.Registry
	interval time.Duration
}

func (s *statistics) Run(_ interface{}, shutdown <-chan struct{}) {
	s.log.Infof("interval: %s", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			s.report()
		}
	}

	// final figures
	s.report()
	s.log.Info("stopped")
}

func (s *statistics) report() {
	text, err := json.Marshal(s.registry.Statistics())
	if nil != err {
		s.log.Errorf("marshal error: %s", err)
		return
	}
	s.log.Infof("registry: %s  rpc connections: %d", text, rpc.ConnectionCount())
}

// log memory use alongside the registry counters
type memoryStatistics struct {
	log      *logger.L
	interval time.Duration
}

func (m *memoryStatistics) Run(_ interface{}, shutdown <-chan struct{}) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
		}

		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)

		a := ms.Alloc / mega
		t := ms.TotalAlloc / mega
		s := ms.Sys / mega
		m.log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)
	}
}
