// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/ordertree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "balanced", HasArg: getoptions.NO_ARGUMENT, Short: 'b'},
		{Long: "delete", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "find", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'F'},
		{Long: "next", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
		{Long: "prev", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'p'},
		{Long: "print", HasArg: getoptions.NO_ARGUMENT, Short: 'P'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || (0 == len(arguments) && 0 == len(options["file"])) {
		exitwithstatus.Message("usage: %s [--help] [--version] [--verbose] [--config=FILE] [--file=KEYS] [--balanced] [--delete=KEY]... [--find=KEY]... [--next=KEY]... [--prev=KEY]... [--print] [--json] [key...]", program)
	}

	verbose := len(options["verbose"]) > 0

	configurationFile := ""
	if len(options["config"]) > 0 {
		configurationFile = options["config"][0]
	}
	config, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}
	if verbose {
		config.Logging.Console = true
		config.Logging.Levels["main"] = "debug"
	}

	// start logging
	if err = logger.Initialise(config.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	log := logger.New("main")
	log.Infof("starting: %s version: %s", program, version)

	r := &request{
		keyType:  config.KeyType,
		balanced: config.Balanced || len(options["balanced"]) > 0,
		keys:     arguments,
		deletes:  options["delete"],
	}

	for _, fileName := range options["file"] {
		f, err := os.Open(fileName)
		if nil != err {
			exitwithstatus.Message("%s: open: %q error: %s", program, fileName, err)
		}
		texts, err := readKeys(f)
		f.Close()
		if nil != err {
			exitwithstatus.Message("%s: read: %q error: %s", program, fileName, err)
		}
		log.Debugf("read: %d keys from: %q", len(texts), fileName)
		r.keys = append(r.keys, texts...)
	}

	for _, op := range []string{opFind, opNext, opPrev} {
		for _, k := range options[op] {
			r.queries = append(r.queries, query{operation: op, key: k})
		}
	}

	tree, rpt, err := process(log, r)
	if nil != err {
		fault.Criticalf("process failed with error: %s", err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}

	if len(options["print"]) > 0 {
		tree.Print(verbose)
	}

	if len(options["json"]) > 0 {
		printJson(os.Stdout, "", rpt)
		return
	}

	fmt.Printf("count: %d  height: %d  rotations: %d\n", rpt.Count, rpt.Height, rpt.Rotations)
	for _, q := range rpt.Queries {
		result := "-"
		if nil != q.Result {
			result = *q.Result
		}
		fmt.Printf("%s %s → %s\n", q.Operation, q.Key, result)
	}
	for _, k := range rpt.Missing {
		fmt.Printf("not found: %s\n", k)
	}
}
