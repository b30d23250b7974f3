// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proffmt

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.log", "snort[1]: one\nuntagged\nsnort[2]: two\n")
	b := writeFile(t, dir, "b.log", "snort[3]: three\n")

	files := Files{Paths: []string{a, b}}
	var pids []string
	for files.Scan() {
		pids = append(pids, files.Result().PID)
	}
	if err := files.Err(); err != nil {
		t.Fatal(err)
	}
	want := []string{"1", "2", "3"}
	if len(pids) != len(want) {
		t.Fatalf("got %d lines, want %d", len(pids), len(want))
	}
	for i, pid := range pids {
		if pid != want[i] {
			t.Errorf("line %d: PID = %q, want %q", i, pid, want[i])
		}
	}
}

func TestFilesMissing(t *testing.T) {
	files := Files{Paths: []string{filepath.Join(t.TempDir(), "nope.log")}}
	if files.Scan() {
		t.Error("Scan succeeded on a missing file")
	}
	if files.Err() == nil {
		t.Error("Err() = nil, want open error")
	}
}

func TestFilesNoInputs(t *testing.T) {
	// Without AllowStdin an empty path list reads nothing.
	var files Files
	if files.Scan() {
		t.Error("Scan succeeded with no inputs")
	}
	if err := files.Err(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
