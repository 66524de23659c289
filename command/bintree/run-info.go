// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info, err := m.tree.Info()
	if nil != err {
		return err
	}

	printJson(m.w, info)
	return nil
}

func runOperations(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	operations, err := m.tree.Operations()
	if nil != err {
		return err
	}

	printJson(m.w, operations)
	return nil
}

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	depth, err := m.tree.Print(m.w)
	if nil != err {
		return err
	}
	if 0 == depth {
		fmt.Fprintf(m.w, "tree is empty\n")
	} else if m.verbose {
		fmt.Fprintf(m.e, "depth: %d\n", depth)
	}
	return nil
}
