// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bintree/engine"
)

const defaultDistance = 2

func runAll(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	results, err := queryAll(m.tree, c.Args())
	if nil != err {
		return err
	}

	printJson(m.w, results)
	return nil
}

// run every read-only operation, keyed operations use KEY or the
// last key in level order and distance uses DISTANCE or 2
func queryAll(tree treeAccess, arguments []string) ([]engine.Result, error) {

	key := 0
	if len(arguments) > 0 {
		n, err := parseArgument(arguments[0])
		if nil != err {
			return nil, err
		}
		key = n
	} else {
		r, err := tree.Query("levelorder", 0)
		if nil != err {
			return nil, err
		}
		if len(r.Keys) > 0 {
			key = r.Keys[len(r.Keys)-1]
		}
	}

	distance := defaultDistance
	if len(arguments) > 1 {
		n, err := parseArgument(arguments[1])
		if nil != err {
			return nil, err
		}
		distance = n
	}

	results := make([]engine.Result, 0, len(engine.Operations()))
	for _, op := range engine.Operations() {
		if op.Mutates {
			continue
		}

		argument := 0
		switch op.Argument {
		case engine.KeyArgument:
			argument = key
		case engine.DistanceArgument:
			argument = distance
		}

		r, err := tree.Query(op.Name, argument)
		if nil != err {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
