// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/command/bintree/rpccalls"
	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/engine"
	"github.com/bitmark-inc/bintree/rpc/certificate"
	"github.com/bitmark-inc/bintree/rpc/fixtures"
	"github.com/bitmark-inc/bintree/rpc/server"
)

var address string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	log := logger.New(fixtures.LogCategory)
	tlsConfig, _, err := certificate.Get(log, "test", fixtures.Certificate(), fixtures.Key())
	if nil != err {
		panic(err)
	}

	c := counter.Counter(0)
	e := engine.New(log, engine.BST, 0, 0)
	r := server.Create(log, "1.0", &c, e)

	l, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	if nil != err {
		panic(err)
	}
	address = l.Addr().String()

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go r.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	_ = l.Close()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestClient(t *testing.T) {
	var verbose bytes.Buffer
	client, err := rpccalls.NewClient(address, true, &verbose)
	require.NoError(t, err, "connect")
	defer client.Close()

	inserted, err := client.Insert("", []int{50, 30, 70, 20, 40})
	require.NoError(t, err, "insert")
	assert.Equal(t, 5, inserted.Inserted, "inserted")
	assert.Equal(t, 5, inserted.Count, "count")

	result, err := client.Query("inorder", 0)
	require.NoError(t, err, "query")
	assert.Equal(t, []int{20, 30, 40, 50, 70}, result.Keys, "in order")

	result, err = client.Query("ancestor", 40)
	require.NoError(t, err, "query")
	assert.True(t, result.Found, "found")
	assert.Equal(t, 30, result.Value, "parent")

	_, err = client.Query("rotate", 0)
	assert.Error(t, err, "unknown operation")

	_, err = client.Insert("splay", []int{1})
	assert.Error(t, err, "bad policy")

	operations, err := client.Operations()
	require.NoError(t, err, "operations")
	assert.Equal(t, len(engine.Operations()), len(operations.Operations), "catalogue size")

	info, err := client.GetInfo()
	require.NoError(t, err, "info")
	assert.Equal(t, "bst", info.Policy, "policy")
	assert.Equal(t, 5, info.Count, "count")
	assert.Equal(t, "1.0", info.Version, "version")

	assert.Contains(t, verbose.String(), "Query Request:", "verbose output")
}

func TestClientConnectFailure(t *testing.T) {
	_, err := rpccalls.NewClient("127.0.0.1:1", false, nil)
	assert.Error(t, err, "connect")
}
