// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkfmt

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNoDir is returned when the report directory does not exist
	// or is not a directory.
	ErrNoDir = errors.New("benchmark directory not found")

	// ErrNoFiles is returned when the report directory contains no
	// .txt files.
	ErrNoFiles = errors.New("no .txt files found")
)

// A Files reads wrk reports from a directory.
//
// Every regular file directly in Dir whose name ends in ".txt" is one
// report. Reports are read in lexicographic order of file name, each
// fully into memory before the next is opened.
type Files struct {
	// Dir is the directory to read.
	Dir string

	// paths is the list of remaining reports, or nil if this Files
	// has not started yet.
	paths []string

	result *Result
	err    error
}

// init lists the reports in f.Dir.
func (f *Files) init() {
	f.paths = []string{}

	info, err := os.Stat(f.Dir)
	if err != nil || !info.IsDir() {
		f.err = fmt.Errorf("%w: %s", ErrNoDir, f.Dir)
		return
	}
	ents, err := os.ReadDir(f.Dir)
	if err != nil {
		f.err = err
		return
	}
	for _, ent := range ents {
		name := ent.Name()
		if ent.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".txt") {
			continue
		}
		f.paths = append(f.paths, filepath.Join(f.Dir, name))
	}
	if len(f.paths) == 0 {
		f.err = fmt.Errorf("%w in %s", ErrNoFiles, f.Dir)
		return
	}
	// ReadDir already sorts by name; keep the order explicit.
	sort.Strings(f.paths)
}

// Scan advances to the next report and reports whether one was read.
// The caller should use the Result method to get it. If Scan runs out
// of reports, or if an error occurs, it returns false; the caller
// should then use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.paths == nil {
		f.init()
		if f.err != nil {
			return false
		}
	}
	if len(f.paths) == 0 {
		return false
	}

	path := f.paths[0]
	f.paths = f.paths[1:]
	data, err := os.ReadFile(path)
	if err != nil {
		f.err = err
		return false
	}
	// Undecodable bytes carry no measurements.
	raw := strings.ToValidUTF8(string(data), "")
	f.result = NewResult(path, Extract(raw))
	f.result.Raw = raw
	return true
}

// Result returns the report that was just read by Scan.
func (f *Files) Result() *Result {
	return f.result
}

// Err returns the error that stopped Scan, if any. If Scan stopped
// because it read every report, Err returns nil.
func (f *Files) Err() error {
	return f.err
}

// Load reads every report in dir.
func Load(dir string) ([]*Result, error) {
	f := &Files{Dir: dir}
	var out []*Result
	for f.Scan() {
		out = append(out, f.Result())
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
