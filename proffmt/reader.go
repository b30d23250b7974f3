// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proffmt reads the rule profiling statistics Snort emits
// through syslog.
//
// Every worker process tags its lines with "[<pid>]:". This package
// recognizes those tags, the "Rule Profile Statistics (all rules)"
// table heading, and the fixed twelve-field statistics rows that make
// up each per-process profiling table.
package proffmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Line is a single classified input line: the raw content with
// trailing whitespace removed, the process identifier it carries, and
// whether it contains the profiling table heading.
type Line struct {
	PID     string
	Text    string
	Heading bool
}

// A Reader extracts identifier-bearing lines from a log stream.
//
// Its API is modeled on bufio.Scanner: Scan advances to the next line
// that carries a process identifier and Result returns it. Lines with
// no identifier never reach the caller; they cannot belong to any
// process stream.
//
// To construct a new Reader, either call NewReader, or call Reset on a
// zeroed Reader.
type Reader struct {
	s        *bufio.Scanner
	fileName string
	line     Line
	err      error
}

// NewReader constructs a Reader that reads from r. fileName is used in
// error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the Reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = Line{}
	r.err = nil
}

// Scan advances the Reader to the next identifier-bearing line and
// reports whether one was found. At EOF or on an I/O error it returns
// false, in which case the caller should use the Err method to check
// for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	for r.s.Scan() {
		text := strings.TrimRight(r.s.Text(), " \t")
		pid, _, ok := pidOf(text)
		if !ok {
			continue
		}
		r.line = Line{PID: pid, Text: text, Heading: hasTableHeading(text)}
		return true
	}
	if err := r.s.Err(); err != nil {
		r.err = fmt.Errorf("%s: %w", r.fileName, err)
	}
	return false
}

// Result returns the line read by the last call to Scan.
func (r *Reader) Result() Line {
	return r.line
}

// Err returns the first I/O error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}
