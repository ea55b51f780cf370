// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/fault"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry registry.Registry
	counter  *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, reg registry.Registry) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Registry: reg,
		counter:  counter,
	}
}

func (node *Node) failed(err error) error {
	node.Log.Debugf("Node.Info: %s", err)
	return fmt.Errorf("%s: %w", fault.Kind(err), err)
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version     string              `json:"version"`
	Uptime      string              `json:"uptime"`
	RPCs        uint64              `json:"rpcs"`
	PeakRPCs    uint64              `json:"peakRPCs"`
	Operations  registry.Statistics `json:"operations"`
	CurrentTime time.Time           `json:"currentTime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return node.failed(err)
	}

	if nil == node.Registry {
		return node.failed(fault.DatabaseIsNotSet)
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.PeakRPCs = node.counter.Peak()
	reply.Operations = node.Registry.Statistics()
	reply.CurrentTime = time.Now().UTC()
	return nil
}
