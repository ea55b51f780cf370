// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/counter"
	"github.com/bitmark-inc/registryd/registry"
	"github.com/bitmark-inc/registryd/rpc/assets"
	"github.com/bitmark-inc/registryd/rpc/node"
)

// Create - an RPC server offering the Assets and Node services
func Create(log *logger.L, version string, reg registry.Registry, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(assets.New(log, reg))
	_ = server.Register(node.New(log, start, version, rpcCount, reg))

	return server
}
