// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkfmt

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

// reFileName matches report names of the form
// <endpoint>_t<threads>_c<conns>.txt, where "_" in the endpoint stands
// for "/".
var reFileName = regexp.MustCompile(`^(.*)_t(\d+)_c(\d+)\.txt$`)

// NewResult builds the Result for the report read from path.
//
// The endpoint is the path of the report's target URL if it has one,
// otherwise it is decoded from a file name such as
// "api_users_t4_c100.txt" ("/api/users"), and otherwise it is the bare
// file name. When the endpoint comes from the file name, thread and
// connection counts missing from the report are taken from it too.
func NewResult(path string, o Outcome) *Result {
	r := &Result{File: path}
	switch o := o.(type) {
	case *Measured:
		r.URL = o.URL
		r.Duration = o.Duration
		r.Threads = o.Threads
		r.Conns = o.Conns
		stats := o.Stats
		r.Stats = &stats
	case *ConnFailed:
		r.Error = ConnectionError
		r.Raw = o.Raw
	}

	base := filepath.Base(path)
	fromName := reFileName.FindStringSubmatch(base)
	switch {
	case urlPath(r.URL) != "":
		r.Endpoint = urlPath(r.URL)
	case fromName != nil:
		r.Endpoint = "/" + strings.TrimLeft(strings.ReplaceAll(fromName[1], "_", "/"), "/")
		if r.Threads == nil {
			r.Threads = atoi(fromName[2])
		}
		if r.Conns == nil {
			r.Conns = atoi(fromName[3])
		}
	default:
		r.Endpoint = base
	}
	return r
}

func urlPath(u string) string {
	if u == "" {
		return ""
	}
	pu, err := url.Parse(u)
	if err != nil {
		return ""
	}
	return pu.Path
}

// FlatName returns endpoint with path separators replaced by "_", for
// use in file names. "/api/users" becomes "_api_users".
func FlatName(endpoint string) string {
	return strings.ReplaceAll(endpoint, "/", "_")
}
