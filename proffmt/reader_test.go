// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proffmt

import (
	"reflect"
	"strings"
	"testing"
)

func readAll(t *testing.T, data string) []Line {
	t.Helper()
	r := NewReader(strings.NewReader(data), "test")
	var out []Line
	for r.Scan() {
		out = append(out, r.Result())
	}
	if err := r.Err(); err != nil {
		t.Fatal("reading failed: ", err)
	}
	return out
}

func TestReader(t *testing.T) {
	data := `starting capture on eth0
snort[11]: Rule Profile Statistics (all rules)
no tag on this line either
snort[22]: some worker chatter
snort[11]:      1      100   1   2         10         5         1                  50       5.0      10.0         5.25         0
`
	got := readAll(t, data)
	want := []Line{
		{PID: "11", Text: "snort[11]: Rule Profile Statistics (all rules)", Heading: true},
		{PID: "22", Text: "snort[22]: some worker chatter", Heading: false},
		{PID: "11", Text: "snort[11]:      1      100   1   2         10         5         1                  50       5.0      10.0         5.25         0", Heading: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got:\n%+v\nwant:\n%+v", got, want)
	}
}

func TestReaderEmpty(t *testing.T) {
	if got := readAll(t, ""); got != nil {
		t.Errorf("got %+v, want no lines", got)
	}
}

func TestReaderReset(t *testing.T) {
	r := NewReader(strings.NewReader("snort[1]: a\n"), "first")
	if !r.Scan() {
		t.Fatal("Scan failed on first input")
	}
	r.Reset(strings.NewReader("snort[2]: b\n"), "second")
	if !r.Scan() {
		t.Fatal("Scan failed after Reset")
	}
	if got := r.Result(); got.PID != "2" {
		t.Errorf("PID after Reset = %q, want %q", got.PID, "2")
	}
	if r.Scan() {
		t.Error("Scan succeeded past EOF")
	}
	if err := r.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
