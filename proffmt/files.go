// Copyright 2024 The ruleprof Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proffmt

import "os"

// A Files reads classified log lines from a sequence of input files.
type Files struct {
	// Paths is the list of file names to read in.
	Paths []string

	// AllowStdin indicates that the path "-" should be treated as
	// stdin and if the file list is empty, it should be treated
	// as consisting of stdin.
	//
	// This is generally the desired behavior when the file list
	// comes from command-line arguments.
	AllowStdin bool

	// inputs is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	inputs []input

	reader  Reader
	file    *os.File
	isStdin bool
	err     error
}

type input struct {
	path    string
	isStdin bool
}

// init does first-use initialization of f.
func (f *Files) init() {
	// Set f.inputs to a non-nil slice to indicate initialization
	// has happened.
	f.inputs = []input{}
	if f.AllowStdin && len(f.Paths) == 0 {
		f.inputs = append(f.inputs, input{"-", true})
	}
	for _, path := range f.Paths {
		f.inputs = append(f.inputs, input{path, f.AllowStdin && path == "-"})
	}
}

// Scan advances to the next line in the sequence of files and reports
// whether one was read. The caller should use the Result method to get
// the line. If Scan reaches the end of the file sequence, or if an
// error occurs, it returns false. In this case, the caller should use
// the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.inputs == nil {
		f.init()
	}

	for {
		if f.file != nil {
			if f.reader.Scan() {
				return true
			}
			if err := f.reader.Err(); err != nil {
				f.err = err
				break
			}
			// Close the file we just finished, but
			// leave stdin to the caller.
			if !f.isStdin {
				f.file.Close()
			}
			f.file = nil
		}

		if len(f.inputs) == 0 {
			break
		}
		inp := f.inputs[0]
		f.inputs = f.inputs[1:]
		if inp.isStdin {
			f.isStdin, f.file = true, os.Stdin
			f.reader.Reset(f.file, "<stdin>")
			continue
		}
		file, err := os.Open(inp.path)
		if err != nil {
			f.err = err
			break
		}
		f.isStdin, f.file = false, file
		f.reader.Reset(f.file, inp.path)
	}
	return false
}

// Result returns the line read by the last call to Scan.
func (f *Files) Result() Line {
	return f.reader.Result()
}

// Err returns the first error encountered by Files.
func (f *Files) Err() error {
	return f.err
}
