// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/solnote/configuration"
)

type metadata struct {
	config  *configuration.Configuration
	log     *logger.L
	logging bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "note-cli"
	app.Usage = "add, update and delete notes held by a Solana program"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "cluster, n",
			Value: "",
			Usage: " connect to `CLUSTER` [devnet|testnet|mainnet-beta|localnet]",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "env-file, e",
			Value: configuration.DefaultEnvironmentFile,
			Usage: " read PRIVATE_KEY and PROGRAM_ID from `FILE`",
		},
		cli.StringFlag{
			Name:  "layout, l",
			Value: "",
			Usage: " string length prefix `LAYOUT` [compact|borsh]",
		},
	}

	noteFlags := []cli.Flag{
		cli.UintFlag{
			Name:  "id, i",
			Value: 0,
			Usage: "*note `ID` (0..65535)",
		},
		cli.StringFlag{
			Name:  "title, t",
			Value: "",
			Usage: " note `TITLE`",
		},
		cli.StringFlag{
			Name:  "body, b",
			Value: "",
			Usage: " note `BODY`",
		},
		cli.BoolFlag{
			Name:  "dry-run, d",
			Usage: " print the signed transaction instead of sending it",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a payer key pair, suitable for PRIVATE_KEY",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "add",
			Usage:     "create a new note",
			ArgsUsage: "\n   (* = required)",
			Flags:     noteFlags,
			Action:    runAdd,
		},
		{
			Name:      "update",
			Usage:     "replace the title and body of an existing note",
			ArgsUsage: "\n   (* = required)",
			Flags:     noteFlags,
			Action:    runUpdate,
		},
		{
			Name:      "delete",
			Usage:     "remove a note",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				noteFlags[0],
				noteFlags[3],
			},
			Action: runDelete,
		},
		{
			Name:      "address",
			Usage:     "display the account address that holds a note",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				noteFlags[0],
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " base58 owner `KEY` (default is the PRIVATE_KEY owner)",
				},
			},
			Action: runAddress,
		},
		{
			Name:      "encode",
			Usage:     "display the instruction data of a note without sending it",
			ArgsUsage: "\n   (* = required)",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "variant, r",
					Value: "update",
					Usage: " instruction `VARIANT` [add|update|delete]",
				},
				cli.BoolFlag{
					Name:  "go, g",
					Usage: " output as a Go byte slice",
				},
			}, noteFlags[:3]...),
			Action: runEncode,
		},
		{
			Name:  "version",
			Usage: "display note-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading configuration for certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version", "generate":
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file := c.GlobalString("config")
		envFile := c.GlobalString("env-file")
		if verbose {
			fmt.Fprintf(e, "config file: %q\n", file)
			fmt.Fprintf(e, "env file: %q\n", envFile)
		}

		config, err := configuration.Load(file, envFile)
		if nil != err {
			return err
		}

		if cluster := c.GlobalString("cluster"); "" != cluster {
			if err := config.SetCluster(cluster); nil != err {
				return err
			}
		}
		if layout := c.GlobalString("layout"); "" != layout {
			if err := config.SetLayout(layout); nil != err {
				return err
			}
		}

		m := &metadata{
			config:  config,
			verbose: verbose,
			e:       e,
			w:       w,
		}

		if err := config.MakeLogDirectory(); nil != err {
			return err
		}
		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		m.logging = true
		m.log = logger.New(app.Name)
		m.log.Infof("version: %s  cluster: %s  layout: %s", version, config.Cluster, config.Layout)

		c.App.Metadata["config"] = m
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && m.logging {
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
