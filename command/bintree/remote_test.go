// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"net/rpc/jsonrpc"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/engine"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/rpc/certificate"
	"github.com/bitmark-inc/bintree/rpc/fixtures"
	"github.com/bitmark-inc/bintree/rpc/server"
)

// start a bintreed style TLS JSON-RPC server
func startServer(t *testing.T) (string, func()) {
	log := logger.New(fixtures.LogCategory)
	tlsConfig, _, err := certificate.Get(log, "test", fixtures.Certificate(), fixtures.Key())
	require.NoError(t, err, "certificate")

	c := counter.Counter(0)
	e := engine.New(log, engine.Complete, 0, 0)
	r := server.Create(log, "1.0", &c, e)

	l, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	require.NoError(t, err, "listen")

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go r.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	return l.Addr().String(), func() {
		l.Close()
	}
}

func TestRemote(t *testing.T) {
	address, stop := startServer(t)
	defer stop()

	r := runResult(t, "-x", address, "-p", "bst", "-k", "20,10,30", "inorder")
	assert.Equal(t, []int{10, 20, 30}, r.Keys, "remote in order")

	// the daemon keeps its tree between connections
	r = runResult(t, "--connect", address, "--policy", "bst", "-k", "40", "inorder")
	assert.Equal(t, []int{10, 20, 30, 40}, r.Keys, "kept tree")

	// no policy uses the daemon's own
	r = runResult(t, "-x", address, "-k", "5", "levelorder")
	assert.Equal(t, []int{20, 10, 30, 5, 40}, r.Keys, "daemon policy")

	r = runResult(t, "-x", address, "level", "40")
	assert.True(t, r.Found, "found")
	assert.Equal(t, 2, r.Value, "level")

	r = runResult(t, "-x", address, "level", "5")
	assert.Equal(t, 2, r.Value, "level")

	out, err := run(t, "", "-x", address, "info")
	require.NoError(t, err, "info")
	assert.Contains(t, out, "\"version\": \"1.0\"", "daemon version")

	_, err = run(t, "", "-x", address, "print")
	assert.Equal(t, fault.ErrNotImplemented, err, "remote print")
}

func TestRemoteIgnoresFilePolicy(t *testing.T) {
	address, stop := startServer(t)
	defer stop()

	dir, err := ioutil.TempDir("", "bintree-test")
	require.NoError(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "tree.conf")
	content := `return { tree = { policy = "bst", keys = { 30, 20, 10 } } }`
	require.NoError(t, ioutil.WriteFile(fileName, []byte(content), 0600), "write")

	// keys from the file go into the daemon's complete tree
	r := runResult(t, "-c", fileName, "-x", address, "inorder")
	assert.Equal(t, []int{20, 30, 10}, r.Keys, "daemon policy")

	// connect taken from the file behaves the same
	connectName := filepath.Join(dir, "connect.conf")
	content = fmt.Sprintf(`return { connect = %q, tree = { policy = "bst", keys = { 25 } } }`, address)
	require.NoError(t, ioutil.WriteFile(connectName, []byte(content), 0600), "write")

	// a bst insert would place 25 to the right of 20
	r = runResult(t, "-c", connectName, "inorder")
	assert.Equal(t, []int{25, 20, 30, 10}, r.Keys, "file connect")
}
