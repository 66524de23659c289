// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/fault"
)

const (
	minConnectionCount = 1
)

// Listener - a started server that can be stopped
type Listener interface {
	Serve() error
	Close() error
}

// convert each listen address to its network type
//
// "*:PORT" is rewritten in place to "[::]:PORT" on the assumption
// that this will listen on tcp4 and tcp6
func parseListenAddress(addrs []string, log *logger.L) ([]string, error) {
	parsed := make([]string, len(addrs))
	for i, listen := range addrs {
		if "" == listen {
			log.Errorf("rpc server listen error: %s", fault.ErrInvalidIPAddress)
			return nil, fault.ErrInvalidIPAddress
		}
		if '*' == listen[0] {
			n := strings.LastIndex(listen, ":")
			if n < 0 {
				return nil, fault.ErrInvalidIPAddress
			}
			addrs[i] = "[::]" + listen[n:]
			listen = "::"
			parsed[i] = "tcp"
		} else if '[' == listen[0] {
			listen = strings.Split(listen[1:], "]:")[0]
			parsed[i] = "tcp6"
		} else {
			listen = strings.Split(listen, ":")[0]
			parsed[i] = "tcp4"
		}

		if ip := net.ParseIP(listen); nil == ip {
			err := fault.ErrInvalidIPAddress
			log.Errorf("rpc server listen error: %s", err)
			return nil, err
		}
	}

	return parsed, nil
}

// close every listener, returning the first error
func closeAll(listeners []net.Listener) error {
	var first error
	for _, l := range listeners {
		if err := l.Close(); nil != err && nil == first {
			first = err
		}
	}
	return first
}
