// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// Configuration - configuration file data for the tree
type Configuration struct {
	Policy       string `gluamapper:"policy" json:"policy"`
	Keys         []int  `gluamapper:"keys" json:"keys"`
	MaximumNodes int    `gluamapper:"maximum_nodes" json:"maximum_nodes"`
	CacheExpiry  int    `gluamapper:"cache_expiry" json:"cache_expiry"` // seconds
}

// NewFromConfiguration - create an engine and load the configured keys
func NewFromConfiguration(log *logger.L, configuration *Configuration) (*Engine, error) {
	policy, err := ParsePolicy(configuration.Policy)
	if nil != err {
		log.Errorf("policy: %q error: %s", configuration.Policy, err)
		return nil, err
	}

	expiry := time.Duration(configuration.CacheExpiry) * time.Second
	e := New(log, policy, configuration.MaximumNodes, expiry)

	if _, err := e.Insert(configuration.Keys...); nil != err {
		return nil, err
	}
	return e, nil
}
