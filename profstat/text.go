// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profstat

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/snorttools/ruleprof/internal/texttab"
)

// headings are the report column labels, in output order.
var headings = []string{
	"Num", "SID", "GID", "Rev", "Checks", "Matches",
	"Alerts", "Microsecs", "Avg/Check", "Avg/Match",
	"Avg/Nonmatch", "dis",
}

// colWidths are the fixed minimum column widths of the report. A
// column grows only if a value outruns its width.
var colWidths = []int{6, 8, 3, 3, 11, 11, 9, 19, 9, 9, 12, 9}

// FormatText renders t to w as the averaged profiling report: a title
// carrying the eligible process count, an "=" underline matching the
// title's length, right-aligned column headings with per-heading "="
// underlines, and one data row per signature. Rows render in t's
// current order; callers sort t first.
func FormatText(w io.Writer, t *Table) error {
	title := fmt.Sprintf("Average Rule Profile Statistics (across %d processes) (all rules)", t.Procs)
	if _, err := fmt.Fprintf(w, " %s\n %s\n", title, strings.Repeat("=", len(title))); err != nil {
		return err
	}

	var tab texttab.Table
	for col, wd := range colWidths {
		tab.SetMinWidth(col, wd)
	}
	row := func(cells ...string) {
		tab.Row()
		for _, cell := range cells {
			if tab.CurCol() == 0 {
				// The reference report indents every row by
				// one space.
				tab.Cell(cell, texttab.Right, texttab.LeftMargin(" "))
				continue
			}
			tab.Cell(cell, texttab.Right)
		}
	}

	row(headings...)
	under := make([]string, len(headings))
	for i, h := range headings {
		under[i] = strings.Repeat("=", len(h))
	}
	row(under...)

	for _, agg := range t.Rows {
		gid, sid, rev := splitSig(agg.Sig)
		row(mean1(agg, FieldRank), sid, gid, rev,
			mean1(agg, FieldChecks), mean1(agg, FieldMatches),
			mean1(agg, FieldAlerts), mean1(agg, FieldMicrosecs),
			mean1(agg, FieldAvgCheck), mean1(agg, FieldAvgMatch),
			mean1(agg, FieldAvgNonmatch), mean1(agg, FieldDis))
	}
	return tab.Format(w)
}

// mean1 renders a mean with exactly one decimal digit.
func mean1(a *Aggregate, f Field) string {
	return strconv.FormatFloat(a.Mean(f), 'f', 1, 64)
}

// splitSig splits a signature key back into its gid, sid and rev text.
func splitSig(sig string) (gid, sid, rev string) {
	parts := strings.SplitN(sig, ":", 3)
	return parts[0], parts[1], parts[2]
}
