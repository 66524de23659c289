// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/counter"
	"github.com/bitmark-inc/bintree/engine"
	"github.com/bitmark-inc/bintree/fault"
	"github.com/bitmark-inc/bintree/rpc/certificate"
	"github.com/bitmark-inc/bintree/rpc/handler"
	"github.com/bitmark-inc/bintree/rpc/listeners"
	"github.com/bitmark-inc/bintree/rpc/server"
)

const (
	rpcName   = "client_rpc"
	httpsName = "https_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	listeners []listeners.Listener

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// number of current JSON-RPC connections
var connectionCountRPC counter.Counter

// Initialise - start the RPC and HTTPS listeners serving the engine
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, eng *engine.Engine) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, eng),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	if err := rpcListener.Serve(); nil != err {
		return err
	}
	globalData.listeners = append(globalData.listeners, rpcListener)

	httpsListener, err := initialiseHTTPS(log, httpsConfiguration, version, eng)
	if nil != err {
		stop()
		return err
	}
	if nil != httpsListener {
		globalData.listeners = append(globalData.listeners, httpsListener)
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

func initialiseHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, version string, eng *engine.Engine) (listeners.Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil, nil
	}

	tlsConfig, fingerprint, err := certificate.Load(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	h := handler.New(
		log,
		server.Create(log, version, &connectionCountRPC, eng),
		time.Now(),
		version,
		configuration.MaximumConnections,
		eng,
	)

	l, err := listeners.NewHTTPS(configuration, log, tlsConfig, h)
	if nil != err || nil == l {
		return nil, err
	}
	if err := l.Serve(); nil != err {
		return nil, err
	}
	return l, nil
}

// must hold lock
func stop() {
	for _, l := range globalData.listeners {
		if err := l.Close(); nil != err {
			globalData.log.Warnf("close listener error: %s", err)
		}
	}
	globalData.listeners = nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	stop()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - number of live JSON-RPC connections
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}
