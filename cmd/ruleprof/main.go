// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ruleprof extracts, parses and averages rule profiling statistics
// from the logs of a multi-process Snort run.
//
// Usage:
//
//	ruleprof [-hV] [file]
//
// Snort workers tag every syslog line with their process id, so the
// per-process profiling tables arrive interleaved in one log. Ruleprof
// splits the input back into per-process streams, keeps the streams
// that contain a "Rule Profile Statistics (all rules)" table, averages
// the per-rule counters across processes, and prints a single table
// ranked by each rule's mean reported position.
//
// With no file argument, ruleprof reads from standard input.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/snorttools/ruleprof/proffmt"
	"github.com/snorttools/ruleprof/profstat"
)

const version = "1.0.0"

var exit = os.Exit

func main() {
	log.SetPrefix("ruleprof: ")
	log.SetFlags(0)

	if err := ruleprof(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// ruleprof runs the tool with the given arguments, writing the report
// to w and usage errors to wErr.
func ruleprof(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("ruleprof", flag.ExitOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), `Usage: ruleprof [-hV] [file]

Extract, parse and average rule profiling statistics for Snort.

Optional arguments:
  file
    	input filename (default: stdin)

Other options:
`)
		flags.PrintDefaults()
	}
	var showVersion bool
	flags.BoolVar(&showVersion, "V", false, "output version information and exit")
	flags.BoolVar(&showVersion, "version", false, "output version information and exit")
	flags.Parse(args)
	if showVersion {
		fmt.Fprintf(w, "ruleprof %s\n", version)
		return nil
	}
	if flags.NArg() > 1 {
		flags.Usage()
		exit(2)
	}

	files := proffmt.Files{Paths: flags.Args(), AllowStdin: true}
	var streams profstat.StreamSet
	for files.Scan() {
		streams.Add(files.Result())
	}
	if err := files.Err(); err != nil {
		return err
	}

	var c profstat.Collection
	c.AddStreams(&streams)
	t := c.Table()
	profstat.SortTable(t, profstat.ByRank)
	return profstat.FormatText(w, t)
}
