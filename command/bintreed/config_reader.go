// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bintree/engine"
)

const (
	readerLoggerPrefix = "config-reader"
	settleDelay        = 500 * time.Millisecond
)

// Rebuilder - replace the contents of a running tree
type Rebuilder interface {
	Rebuild(engine.Policy, []int, int) error
}

// reload the tree whenever the watcher reports a change
type configReader struct {
	log      *logger.L
	fileName string
	delay    time.Duration
	target   Rebuilder
	channels WatcherChannel
}

func newConfigReader(log *logger.L, fileName string, target Rebuilder, channels WatcherChannel) *configReader {
	return &configReader{
		log:      log,
		fileName: fileName,
		delay:    settleDelay,
		target:   target,
		channels: channels,
	}
}

// Run - background process reloading the tree on each change event
func (c *configReader) Run(args interface{}, shutdown <-chan struct{}) {
	c.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop

		case <-c.channels.change:
			c.log.Debugf("receive file change event, wait %s to settle", c.delay)
			select {
			case <-time.After(c.delay):
			case <-shutdown:
				break loop
			}
			if err := c.Refresh(); nil != err {
				c.log.Errorf("failed to read configuration from: %q error: %s", c.fileName, err)
			}

		case <-c.channels.remove:
			c.log.Warn("config file removed, keeping current tree")
		}
	}

	c.log.Info("shutting down…")
	c.log.Flush()
}

// Refresh - read the configuration file and rebuild the tree from it
func (c *configReader) Refresh() error {
	configuration, err := getConfiguration(c.fileName)
	if nil != err {
		return err
	}

	policy, err := engine.ParsePolicy(configuration.Tree.Policy)
	if nil != err {
		return err
	}

	if err := c.target.Rebuild(policy, configuration.Tree.Keys, configuration.Tree.MaximumNodes); nil != err {
		return err
	}

	c.log.Infof("tree rebuilt: policy: %s  keys: %d  maximum nodes: %d", policy, len(configuration.Tree.Keys), configuration.Tree.MaximumNodes)
	return nil
}
