// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/rpc/treeservice"
)

// Create - an RPC server with every service registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, eng treeservice.Engine) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(treeservice.New(log, eng, start, version, rpcCount))

	return server
}
