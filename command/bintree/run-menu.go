// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bintree/engine"
)

func runMenu(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	return menu(m.tree, m.r, m.w)
}

// read option numbers and arguments until 0, "q" or end of input
func menu(tree treeAccess, r io.Reader, w io.Writer) error {

	scanner := bufio.NewScanner(r)
	next := func(prompt string) (string, bool) {
		fmt.Fprintf(w, "%s: ", prompt)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	printMenu(w)

	for {
		line, ok := next("option")
		if !ok {
			fmt.Fprintf(w, "\n")
			return scanner.Err()
		}

		switch line {
		case "":
			continue
		case "0", "q", "quit", "exit":
			return nil
		case "?", "h", "help":
			printMenu(w)
			continue
		}

		n, err := strconv.Atoi(line)
		if nil != err {
			fmt.Fprintf(w, "error: invalid option: %q\n", line)
			continue
		}
		op, ok := engine.LookupNumber(n)
		if !ok {
			fmt.Fprintf(w, "error: no such option: %d\n", n)
			continue
		}

		argument := 0
		if engine.NoArgument != op.Argument {
			s, ok := next(op.Argument.String())
			if !ok {
				fmt.Fprintf(w, "\n")
				return scanner.Err()
			}
			argument, err = parseArgument(s)
			if nil != err {
				fmt.Fprintf(w, "error: %s\n", err)
				continue
			}
		}

		result, err := tree.Query(op.Name, argument)
		if nil != err {
			fmt.Fprintf(w, "error: %s\n", err)
			continue
		}
		printJson(w, result)
	}
}

func printMenu(w io.Writer) {
	for _, op := range engine.Operations() {
		argument := ""
		if engine.NoArgument != op.Argument {
			argument = strings.ToUpper(op.Argument.String())
		}
		fmt.Fprintf(w, "  %2d: %-18s %-8s - %s\n", op.Number, op.Name, argument, op.Description)
	}
	fmt.Fprintf(w, "   0: exit\n")
}
