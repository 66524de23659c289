// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/bintree/command/bintree/rpccalls"
	"github.com/bitmark-inc/bintree/engine"
	"github.com/bitmark-inc/bintree/util"
)

type metadata struct {
	tree    treeAccess
	verbose bool
	e       io.Writer
	w       io.Writer
	r       io.Reader
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultLogFile = "bintree.log"
	cacheExpiry    = time.Minute
)

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	logging := logger.Configuration{
		Directory: os.TempDir(),
		File:      defaultLogFile,
		Size:      1024 * 1024,
		Count:     2,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "info",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		exitwithstatus.Message("logger setup failed with error: %s", err)
	}
	defer logger.Finalise()

	app := newApp(os.Stdout, os.Stderr, os.Stdin)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer, r io.Reader) *cli.App {

	app := cli.NewApp()
	app.Name = "bintree"
	app.Usage = "build a binary tree and query it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "policy, p",
			Value: "",
			Usage: " insertion `POLICY` [complete|bst]",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: "",
			Usage: " `KEYS` to insert e.g. \"1..31\" or \"16,8,24\"",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE` providing the tree keys",
		},
		cli.StringFlag{
			Name:  "connect, x",
			Value: "",
			Usage: " query a bintreed at `HOST:PORT` instead of a local tree",
		},
	}

	app.Commands = operationCommands()
	app.Commands = append(app.Commands,
		cli.Command{
			Name:      "all",
			Usage:     "run every query",
			ArgsUsage: "[KEY [DISTANCE]]",
			Action:    runAll,
		},
		cli.Command{
			Name:   "menu",
			Usage:  "interactive numbered menu",
			Action: runMenu,
		},
		cli.Command{
			Name:   "print",
			Usage:  "draw the tree",
			Action: runPrint,
		},
		cli.Command{
			Name:   "info",
			Usage:  "display tree status",
			Action: runInfo,
		},
		cli.Command{
			Name:   "operations",
			Usage:  "list the available queries",
			Action: runOperations,
		},
		cli.Command{
			Name:  "version",
			Usage: "display bintree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	)

	// build or connect to the tree
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress building the tree for certain commands
		switch c.Args().Get(0) {
		case "", "help", "h", "version":
			return nil
		}

		options := &Configuration{
			Tree: engine.Configuration{
				Keys: []int{},
			},
		}
		if file := c.GlobalString("config"); "" != file {
			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}
			var err error
			options, err = getConfiguration(file)
			if nil != err {
				return err
			}
		}

		keys, err := util.ParseKeys(c.GlobalString("keys"))
		if nil != err {
			return err
		}
		keys = append(options.Tree.Keys, keys...)

		connect := c.GlobalString("connect")
		if "" == connect {
			connect = options.Connect
		}

		// only the flag selects a remote policy, otherwise the
		// daemon's own policy applies
		policyName := c.GlobalString("policy")
		if "" == policyName && "" == connect {
			policyName = options.Tree.Policy
		}
		policy, err := engine.ParsePolicy(policyName)
		if nil != err {
			return err
		}

		var tree treeAccess
		if "" != connect {
			if verbose {
				fmt.Fprintf(e, "connect: %s\n", connect)
			}
			client, err := rpccalls.NewClient(connect, verbose, e)
			if nil != err {
				return err
			}
			tree = &remoteTree{client: client}
		} else {
			eng := engine.New(logger.New("engine"), policy, options.Tree.MaximumNodes, cacheExpiry)
			tree = &localTree{engine: eng, start: time.Now()}
			// local inserts follow the tree's own policy
			policyName = ""
		}

		if len(keys) > 0 {
			if verbose {
				fmt.Fprintf(e, "insert: %s\n", util.FormatKeys(keys))
			}
			if _, err := tree.Insert(policyName, keys); nil != err {
				tree.Close()
				return err
			}
		}

		c.App.Metadata["config"] = &metadata{
			tree:    tree,
			verbose: verbose,
			e:       e,
			w:       w,
			r:       r,
		}

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.tree.Close()
		delete(c.App.Metadata, "config")
		return nil
	}

	return app
}

// one command per catalogue entry
func operationCommands() []cli.Command {
	ops := engine.Operations()
	commands := make([]cli.Command, 0, len(ops))
	for _, op := range ops {
		command := cli.Command{
			Name:   op.Name,
			Usage:  op.Description,
			Action: runOperation(op),
		}
		if engine.NoArgument != op.Argument {
			command.ArgsUsage = strings.ToUpper(op.Argument.String())
		}
		commands = append(commands, command)
	}
	return commands
}
