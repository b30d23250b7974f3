// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profstat

import "sort"

// A SortFunc abstracts the sorting interface to compare two rows of a
// Table.
type SortFunc func(*Table, int, int) bool

// ByRank sorts tables by mean reported rank. The profiling table gives
// each rule an ordinal position per process; the report orders rules
// by the mean of those positions. Ties may land in either order.
func ByRank(t *Table, i, j int) bool {
	return t.Rows[i].Mean(FieldRank) < t.Rows[j].Mean(FieldRank)
}

// BySig sorts tables by the rule signature key.
func BySig(t *Table, i, j int) bool {
	return t.Rows[i].Sig < t.Rows[j].Sig
}

// SortReverse returns a SortFunc that is the reverse of the input
// SortFunc.
func SortReverse(sortFunc SortFunc) SortFunc {
	return func(t *Table, i, j int) bool { return !sortFunc(t, i, j) }
}

// SortTable sorts a Table t (in place) by the given SortFunc.
func SortTable(t *Table, sortFunc SortFunc) {
	sort.Slice(t.Rows, func(i, j int) bool { return sortFunc(t, i, j) })
}
