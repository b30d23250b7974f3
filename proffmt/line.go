// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proffmt

import "strings"

// Line classification.
//
// Each rule for recognizing a line shape is a named function so the
// shapes stay independently testable: pidOf extracts the embedded
// process identifier, hasTableHeading detects the profiling table
// heading, and ParseRow (row.go) matches the statistics row.

// tableHeading is the literal Snort prints above each per-process
// profiling table. A stream qualifies for aggregation only if one of
// its lines contains it.
const tableHeading = "Rule Profile Statistics (all rules)"

// hasTableHeading reports whether line contains the profiling table
// heading. The heading marks a stream as eligible; it carries no data
// itself.
func hasTableHeading(line string) bool {
	return strings.Contains(line, tableHeading)
}

// pidOf returns the process identifier embedded in line as
// "...[<digits>]:..." along with the offset just past the closing
// "]:". If the tag appears more than once, the last well-formed
// occurrence wins. ok is false if the line carries no identifier.
func pidOf(line string) (pid string, rest int, ok bool) {
	for end := len(line); end > 0; {
		i := strings.LastIndex(line[:end], "]:")
		if i < 0 {
			break
		}
		j := i
		for j > 0 && isDigit(line[j-1]) {
			j--
		}
		if j < i && j > 0 && line[j-1] == '[' {
			return line[j:i], i + 2, true
		}
		end = i
	}
	return "", 0, false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
