// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proffmt

import (
	"strconv"
	"strings"
)

// A Row is one parsed profiling statistics row.
//
// GID, SID and Rev hold the captured integer text; the signature key
// is built from the text rather than from parsed values so keys never
// pick up a decimal point. The remaining fields are the per-rule
// counters, widened to float64 so repeated measurements average
// uniformly.
type Row struct {
	GID, SID, Rev string

	Rank        float64
	Checks      float64
	Matches     float64
	Alerts      float64
	Microsecs   float64
	AvgCheck    float64
	AvgMatch    float64
	AvgNonmatch float64
	Dis         float64
}

// Sig returns the rule signature key "gid:sid:rev".
func (r *Row) Sig() string {
	return r.GID + ":" + r.SID + ":" + r.Rev
}

// rowFields is the arity of a statistics row: rank, sid, gid, rev,
// checks, matches, alerts, microsecs, avg/check, avg/match,
// avg/nonmatch, dis.
const rowFields = 12

// decimalField marks the positions that must carry a fractional part.
// Every other field must be a bare non-negative integer.
var decimalField = [rowFields]bool{8: true, 9: true, 10: true}

// ParseRow matches line against the twelve-field statistics row shape
// and decodes it. ok is false for any other line, including headings,
// table boundaries and column labels; callers skip those silently.
func ParseRow(line string) (Row, bool) {
	_, rest, ok := pidOf(line)
	if !ok {
		return Row{}, false
	}
	fields, ok := splitSpaces(line[rest:])
	if !ok {
		return Row{}, false
	}
	var vals [rowFields]float64
	for i, f := range fields {
		if !wellFormed(f, decimalField[i]) {
			return Row{}, false
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Row{}, false
		}
		vals[i] = v
	}
	return Row{
		SID:         fields[1],
		GID:         fields[2],
		Rev:         fields[3],
		Rank:        vals[0],
		Checks:      vals[4],
		Matches:     vals[5],
		Alerts:      vals[6],
		Microsecs:   vals[7],
		AvgCheck:    vals[8],
		AvgMatch:    vals[9],
		AvgNonmatch: vals[10],
		Dis:         vals[11],
	}, true
}

// splitSpaces splits s on runs of ASCII spaces into exactly rowFields
// fields. A statistics row has at least one space between the
// identifier and the first field, so s must begin with a space.
// Separators are spaces only; a field containing a tab fails the
// well-formedness checks above rather than splitting.
func splitSpaces(s string) ([]string, bool) {
	if !strings.HasPrefix(s, " ") {
		return nil, false
	}
	fields := make([]string, 0, rowFields)
	for i := 0; i < len(s); {
		for i < len(s) && s[i] == ' ' {
			i++
		}
		j := i
		for j < len(s) && s[j] != ' ' {
			j++
		}
		if j > i {
			if len(fields) == rowFields {
				return nil, false
			}
			fields = append(fields, s[i:j])
		}
		i = j
	}
	if len(fields) != rowFields {
		return nil, false
	}
	return fields, true
}

// wellFormed reports whether f is a bare non-negative integer or, when
// dec is set, a decimal with digits on both sides of a single point.
func wellFormed(f string, dec bool) bool {
	dot := -1
	for i := 0; i < len(f); i++ {
		switch {
		case isDigit(f[i]):
		case f[i] == '.' && dec && dot < 0:
			dot = i
		default:
			return false
		}
	}
	if dec {
		return dot > 0 && dot < len(f)-1
	}
	return len(f) > 0
}
