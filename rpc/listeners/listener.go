// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/registryd/fault"
)

const (
	minConnectionCount = 1
)

// Listener - a set of network endpoints serving requests
type Listener interface {
	Serve() error
	Addresses() []net.Addr
	Close()
}

// convert listen strings to network/address pairs
//
// "*:PORT" is changed to "[::]:PORT" on the assumption that this will
// listen on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	addresses := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			return nil, nil, fault.InvalidIpAddress
		}

		host := ""
		addresses[i] = listen
		switch listen[0] {
		case '*':
			parts := strings.Split(listen, ":")
			if 2 != len(parts) {
				return nil, nil, fault.InvalidIpAddress
			}
			addresses[i] = "[::]:" + parts[1]
			host = "::"
			networks[i] = "tcp"
		case '[':
			host = strings.Split(listen[1:], "]:")[0]
			networks[i] = "tcp6"
		default:
			host = strings.Split(listen, ":")[0]
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			err := fault.InvalidIpAddress
			log.Errorf("listen: %q  error: %s", listen, err)
			return nil, nil, err
		}
	}

	return networks, addresses, nil
}
