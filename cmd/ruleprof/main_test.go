// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/snorttools/ruleprof/internal/diff"
)

func TestReport(t *testing.T) {
	golden(t, "sample", "sample.txt")
}

func TestEmptyInput(t *testing.T) {
	golden(t, "empty", "empty.txt")
}

func TestVersion(t *testing.T) {
	var got, gotErr bytes.Buffer
	if err := ruleprof(&got, &gotErr, []string{"-V"}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if want := "ruleprof " + version + "\n"; got.String() != want {
		t.Errorf("got %q, want %q", got.String(), want)
	}
}

func TestMissingFile(t *testing.T) {
	var got, gotErr bytes.Buffer
	err := ruleprof(&got, &gotErr, []string{"testdata/no-such-file.txt"})
	if err == nil {
		t.Fatal("expected an error for a missing input file")
	}
	if !strings.Contains(err.Error(), "no-such-file.txt") {
		t.Errorf("error %q does not name the file", err)
	}
}

func golden(t *testing.T, name string, args ...string) {
	t.Helper()
	if err := os.Chdir("testdata"); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir("..")

	var got, gotErr bytes.Buffer
	t.Logf("ruleprof %s", strings.Join(args, " "))
	if err := ruleprof(&got, &gotErr, args); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	compare(t, name, "stdout", got.Bytes())
	compare(t, name, "stderr", gotErr.Bytes())
}

func compare(t *testing.T, name, sub string, got []byte) {
	t.Helper()

	wantPath := name + "." + sub
	want, err := os.ReadFile(wantPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Treat a missing file as empty.
			want = nil
		} else {
			t.Fatal(err)
		}
	}

	if d := diff.Diff(string(want), string(got)); d != "" {
		t.Errorf("%s mismatch:\n%s", wantPath, d)

		// Write a "got" file for reference.
		gotPath := name + ".got-" + sub
		if err := os.WriteFile(gotPath, got, 0666); err != nil {
			t.Fatalf("error writing %s: %s", gotPath, err)
		}
	}
}
