// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client access to the registry
//
// JSON-RPC (net/rpc/jsonrpc) over TLS on the client_rpc listeners,
// and the same calls as HTTPS POST to /registryd/rpc on the https_rpc
// listeners.
//
// Services:
//
//	Assets.Register        create an asset
//	Assets.Get             fetch one asset by id
//	Assets.Holdings        assets a creator currently holds
//	Assets.Transfer        FULL or LICENSE transfer
//	Assets.UpdateMetadata  shallow merge of metadata fields
//	Assets.Revoke          retire an asset
//	Assets.Provenance      history and chain of holders
//	Node.Info              version, uptime and counters
package rpc
