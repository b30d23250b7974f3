// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profstat aggregates rule profiling statistics across process
// streams and renders the averaged report.
package profstat

import (
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/snorttools/ruleprof/proffmt"
)

// A Field indexes one of the averaged counters of a statistics row.
type Field int

const (
	FieldRank Field = iota
	FieldChecks
	FieldMatches
	FieldAlerts
	FieldMicrosecs
	FieldAvgCheck
	FieldAvgMatch
	FieldAvgNonmatch
	FieldDis

	numFields
)

// fieldValues flattens a row's averaged counters into Field order.
func fieldValues(r proffmt.Row) [numFields]float64 {
	return [numFields]float64{
		r.Rank, r.Checks, r.Matches, r.Alerts, r.Microsecs,
		r.AvgCheck, r.AvgMatch, r.AvgNonmatch, r.Dis,
	}
}

// A Metrics holds the repeated measurements of a single rule signature
// across process streams, one sample slice per field.
type Metrics struct {
	Values [numFields][]float64
}

// A Collection is a set of profiling measurements grouped by rule
// signature.
type Collection struct {
	// Sigs gives the signature keys in the order first seen.
	Sigs []string

	// Metrics holds the accumulated samples for each signature.
	Metrics map[string]*Metrics

	procs int
}

// AddStreams parses every retained line of every eligible stream in s
// and accumulates the rows by rule signature. Lines that do not match
// the statistics row shape are skipped; that is the normal case for
// headings, table boundaries and column labels.
func (c *Collection) AddStreams(s *StreamSet) {
	c.procs += s.NumProcs()
	for _, pid := range s.Eligible() {
		for _, line := range s.Lines(pid) {
			if row, ok := proffmt.ParseRow(line); ok {
				c.add(row)
			}
		}
	}
}

func (c *Collection) add(row proffmt.Row) {
	if c.Metrics == nil {
		c.Metrics = make(map[string]*Metrics)
	}
	sig := row.Sig()
	m, ok := c.Metrics[sig]
	if !ok {
		m = new(Metrics)
		c.Metrics[sig] = m
		c.Sigs = append(c.Sigs, sig)
	}
	vals := fieldValues(row)
	for f := range vals {
		m.Values[f] = append(m.Values[f], vals[f])
	}
}

// An Aggregate holds the per-field arithmetic means for one rule
// signature, rounded to one decimal place.
type Aggregate struct {
	Sig   string
	Means [numFields]float64
}

// Mean returns the aggregate's mean for field f.
func (a *Aggregate) Mean(f Field) float64 {
	return a.Means[f]
}

// A Table is the finalized report content: one row per distinct rule
// signature, plus the eligible process count for the report header.
type Table struct {
	Procs int
	Rows  []*Aggregate
}

// Table finalizes the collection into report rows. Each field is the
// arithmetic mean of that field's samples, rounded to one decimal
// place, half away from zero. Rows appear in first-seen signature
// order; use SortTable to order them for the report.
func (c *Collection) Table() *Table {
	t := &Table{Procs: c.procs}
	for _, sig := range c.Sigs {
		m := c.Metrics[sig]
		agg := &Aggregate{Sig: sig}
		for f := Field(0); f < numFields; f++ {
			agg.Means[f] = round1(stats.Mean(m.Values[f]))
		}
		t.Rows = append(t.Rows, agg)
	}
	return t
}

// round1 rounds v to one decimal place, half away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
