// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/solnote/chain"
	"github.com/bitmark-inc/solnote/configuration"
	"github.com/bitmark-inc/solnote/fault"
	"github.com/bitmark-inc/solnote/noterecord"
	"github.com/bitmark-inc/solnote/pipeline"
	"github.com/bitmark-inc/solnote/rpccalls"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// the note sent when no options are given
const (
	defaultId    = 0
	defaultTitle = "Introduction Part 2"
	defaultBody  = "This note was edited."
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "env-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'e'},
		{Long: "id", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'i'},
		{Long: "title", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 't'},
		{Long: "body", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'b'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s: version: %s\n", program, version)
		return
	}

	if len(options["help"]) > 0 || 0 != len(arguments) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] [--config-file=FILE] [--env-file=FILE] [--id=N] [--title=TEXT] [--body=TEXT]", program)
	}

	verbose := len(options["verbose"]) > 0

	configurationFile := lastOption(options, "config-file", "")
	environmentFile := lastOption(options, "env-file", configuration.DefaultEnvironmentFile)

	theConfiguration, err := configuration.Load(configurationFile, environmentFile)
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	record, err := noteFromOptions(options)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// key material is checked before logging or networking starts
	request, err := pipeline.NewRequest(record, theConfiguration.NoteLayout(), theConfiguration.PrivateKey, theConfiguration.ProgramId)
	if nil != err {
		exitwithstatus.Message("%s: %s error: %s", program, fault.Classify(err), err)
	}

	if err := theConfiguration.MakeLogDirectory(); nil != err {
		exitwithstatus.Message("%s: log directory error: %s", program, err)
	}
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	log.Infof("version: %s", version)
	log.Infof("cluster: %s  layout: %s", theConfiguration.Cluster, theConfiguration.Layout)

	rpcURL, wsURL, err := theConfiguration.Endpoints()
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	ctx := context.Background()

	client, err := rpccalls.NewClient(ctx, rpcURL, wsURL, verbose, os.Stderr)
	if nil != err {
		log.Criticalf("connect error: %s", err)
		exitwithstatus.Message("%s: %s error: %s", program, fault.Classify(err), err)
	}
	defer client.Close()

	result, err := pipeline.New(logger.New("pipeline"), client).Run(ctx, request)
	if nil != err {
		log.Criticalf("run error: %s", err)
		exitwithstatus.Message("%s: %s error: %s", program, fault.Classify(err), err)
	}

	fmt.Printf("Transaction: %s\n", chain.ExplorerURL(result.Signature.String(), theConfiguration.Cluster))
}

// the final occurrence of an option wins
func lastOption(options map[string][]string, name string, defaultValue string) string {
	values := options[name]
	if 0 == len(values) {
		return defaultValue
	}
	return values[len(values)-1]
}

// an edit of the example note unless overridden
func noteFromOptions(options map[string][]string) (noterecord.NoteRecord, error) {

	id, err := strconv.ParseUint(lastOption(options, "id", strconv.Itoa(defaultId)), 10, 16)
	if nil != err {
		return noterecord.NoteRecord{}, fault.ErrInvalidNoteId
	}

	return noterecord.NoteRecord{
		Variant: noterecord.UpdateNoteTag,
		Id:      uint16(id),
		Title:   lastOption(options, "title", defaultTitle),
		Body:    lastOption(options, "body", defaultBody),
	}, nil
}
