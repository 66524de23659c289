// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/bintree/configuration"
	"github.com/bitmark-inc/bintree/engine"
)

// Configuration - optional file of keys and connection
//
// the "tree" table has the same layout as in bintreed's file so a
// daemon configuration can be used directly
type Configuration struct {
	Connect string               `gluamapper:"connect" json:"connect"`
	Tree    engine.Configuration `gluamapper:"tree" json:"tree"`
}

func getConfiguration(fileName string) (*Configuration, error) {
	options := &Configuration{
		Tree: engine.Configuration{
			Keys: []int{},
		},
	}

	if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
		return nil, err
	}
	return options, nil
}
