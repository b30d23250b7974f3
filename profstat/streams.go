// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profstat

import "github.com/snorttools/ruleprof/proffmt"

// A StreamSet demultiplexes classified log lines into per-process
// streams and tracks which streams are eligible for aggregation.
//
// Lines are buffered for every identifier as they arrive; eligibility
// is granted the first time one of an identifier's lines carries the
// profiling table heading. Filtering happens when streams are read
// back, so a heading seen after earlier lines from the same process
// still qualifies the whole stream, from its first line onward.
type StreamSet struct {
	lines    map[string][]string
	eligible map[string]bool
	order    []string // identifiers in first-eligible order
}

// Add records one classified line in its process stream.
func (s *StreamSet) Add(l proffmt.Line) {
	if s.lines == nil {
		s.lines = make(map[string][]string)
		s.eligible = make(map[string]bool)
	}
	if l.Heading && !s.eligible[l.PID] {
		s.eligible[l.PID] = true
		s.order = append(s.order, l.PID)
	}
	s.lines[l.PID] = append(s.lines[l.PID], l.Text)
}

// NumProcs returns the number of eligible process streams. The report
// header states this count.
func (s *StreamSet) NumProcs() int {
	return len(s.order)
}

// Eligible returns the eligible process identifiers in the order each
// first became eligible.
func (s *StreamSet) Eligible() []string {
	return s.order
}

// Lines returns the retained lines for pid, in input order. It returns
// nil for identifiers never marked eligible.
func (s *StreamSet) Lines(pid string) []string {
	if !s.eligible[pid] {
		return nil
	}
	return s.lines[pid]
}
