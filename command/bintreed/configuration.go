// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/configuration"
	"github.com/bitmark-inc/bintree/engine"
	"github.com/bitmark-inc/bintree/rpc/listeners"
	"github.com/bitmark-inc/bintree/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultPolicy      = "complete"
	defaultCacheExpiry = 120 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "bintreed.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// decoding merges into an existing map so each parse needs its own
func (m LoglevelMap) copy() map[string]string {
	levels := make(map[string]string, len(m))
	for tag, level := range m {
		levels[tag] = level
	}
	return levels
}

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string `gluamapper:"pidfile" json:"pidfile"`

	Tree engine.Configuration `gluamapper:"tree" json:"tree"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Logging   logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Tree: engine.Configuration{
			Policy:       defaultPolicy,
			Keys:         []int{},
			MaximumNodes: 0, // unlimited
			CacheExpiry:  defaultCacheExpiry,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.copy(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// reject an unknown policy before anything is started
	if _, err := engine.ParsePolicy(options.Tree.Policy); nil != err {
		return nil, fmt.Errorf("Policy: %q error: %s", options.Tree.Policy, err)
	}
	if options.Tree.MaximumNodes < 0 {
		return nil, fmt.Errorf("MaximumNodes: %d must not be negative", options.Tree.MaximumNodes)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.HttpsRPC.Certificate,
		&options.HttpsRPC.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// log file must be a plain name within the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// create the log directory if it does not already exist
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
