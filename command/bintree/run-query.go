// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bintree/engine"
	"github.com/bitmark-inc/bintree/fault"
)

func runOperation(op engine.Operation) cli.ActionFunc {
	return func(c *cli.Context) error {

		m := c.App.Metadata["config"].(*metadata)

		argument := 0
		if engine.NoArgument != op.Argument {
			n, err := parseArgument(c.Args().First())
			if nil != err {
				return err
			}
			argument = n
		}

		result, err := m.tree.Query(op.Name, argument)
		if nil != err {
			return err
		}

		printJson(m.w, result)
		return nil
	}
}

func parseArgument(s string) (int, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return 0, fault.ErrMissingParameters
	}
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, fault.ErrInvalidKey
	}
	return n, nil
}
