// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"
)

const sampleConfiguration = `
local M = {}

M.data_directory = "."
M.pidfile = "bintreed.pid"

M.tree = {
    policy = "bst",
    keys = { 16, 8, 24, 4, 12, 20, 28 },
    maximum_nodes = 1000,
    cache_expiry = 30,
}

M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
    certificate = "tree.crt",
    private_key = "/etc/bintree/tree.key",
}

M.logging = {
    size = 4096,
    count = 3,
    levels = {
        DEFAULT = "info",
        engine = "debug",
    },
}

return M
`

func TestGetConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, sampleConfiguration)
	defer cleanup()

	options, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	dir := filepath.Dir(fileName)

	assert.Equal(t, dir+"/", options.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "bintreed.pid"), options.PidFile, "pid file")

	assert.Equal(t, "bst", options.Tree.Policy, "policy")
	assert.Equal(t, []int{16, 8, 24, 4, 12, 20, 28}, options.Tree.Keys, "keys")
	assert.Equal(t, 1000, options.Tree.MaximumNodes, "maximum nodes")
	assert.Equal(t, 30, options.Tree.CacheExpiry, "cache expiry")

	assert.Equal(t, uint64(5), options.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "rpc listen")
	assert.Equal(t, filepath.Join(dir, "tree.crt"), options.ClientRPC.Certificate, "relative certificate")
	assert.Equal(t, "/etc/bintree/tree.key", options.ClientRPC.PrivateKey, "absolute key")

	assert.Equal(t, uint64(defaultRPCClients), options.HttpsRPC.MaximumConnections, "https default")
	assert.Equal(t, 0, len(options.HttpsRPC.Listen), "https disabled")
	assert.Equal(t, filepath.Join(dir, defaultCertificateFile), options.HttpsRPC.Certificate, "https certificate")

	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), options.Logging.Directory, "log directory")
	assert.Equal(t, defaultLogFile, options.Logging.File, "log file")
	assert.Equal(t, 4096, options.Logging.Size, "log size")
	assert.Equal(t, 3, options.Logging.Count, "log count")
	assert.Equal(t, "debug", options.Logging.Levels["engine"], "engine level")
	assert.True(t, dirExists(options.Logging.Directory), "log directory created")
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { data_directory = "." }`)
	defer cleanup()

	options, err := getConfiguration(fileName)
	require.NoError(t, err, "get configuration")

	assert.Equal(t, defaultPolicy, options.Tree.Policy, "policy")
	assert.Equal(t, 0, len(options.Tree.Keys), "keys")
	assert.Equal(t, defaultCacheExpiry, options.Tree.CacheExpiry, "expiry")
	assert.Equal(t, "", options.PidFile, "pid file")
	assert.Equal(t, "critical", options.Logging.Levels[logger.DefaultTag], "default level")
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		name    string
		content string
	}{
		{"missing data directory", `return { }`},
		{"home data directory", `return { data_directory = "~" }`},
		{"absent data directory", `return { data_directory = "/no/such/directory/for/bintree" }`},
		{"bad policy", `return { data_directory = ".", tree = { policy = "avl" } }`},
		{"negative maximum", `return { data_directory = ".", tree = { maximum_nodes = -1 } }`},
		{"log file path", `return { data_directory = ".", logging = { file = "x/y.log" } }`},
		{"not a table", `return "bintree"`},
		{"syntax", `M = {`},
	}

	for _, item := range items {
		fileName, cleanup := writeConfiguration(t, item.content)
		_, err := getConfiguration(fileName)
		assert.Error(t, err, item.name)
		cleanup()
	}
}
