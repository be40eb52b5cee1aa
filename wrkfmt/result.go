// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wrkfmt reads the plain-text reports written by the wrk HTTP
// benchmarking tool.
//
// Each report file describes one run: one endpoint exercised with one
// thread/connection configuration. Extract pulls the measurements out
// of a single report and Files walks a directory of reports,
// producing one Result per file with its endpoint resolved.
//
// Parsing is tolerant. A line that is missing or malformed leaves the
// corresponding field absent, which is distinct from a zero value:
// optional numeric fields are pointers and nil means "not reported".
//
// This package is designed to be used with the higher-level packages
// wrkunit, wrkseries and wrkstat.
package wrkfmt

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/DreamTraveler233/wrkstat/wrkunit"
)

// ConnectionError is the Error value of a Result whose run could not
// connect to its target.
const ConnectionError = "connection_error"

// A Result is one wrk run, read from one report file.
type Result struct {
	// File is the path the report was read from.
	File string

	// Endpoint is the request path under test. It is derived from
	// URL if the report names its target, and otherwise from the
	// file name.
	Endpoint string

	// URL and Duration come from the "Running 30s test @ URL"
	// header. They are empty if the header is missing.
	URL      string
	Duration string

	// Threads and Conns are the run configuration, from the report
	// or, failing that, from the file name.
	Threads *int
	Conns   *int

	// Stats holds the measurements. It is nil if and only if Error
	// is set.
	Stats *Stats

	// Error is ConnectionError for runs that failed to connect, and
	// empty otherwise.
	Error string

	// Raw is the full text of the report.
	Raw string
}

// Stats are the measurements of a run that reached its target.
// Latencies are in seconds and Transfer is in bytes per second.
type Stats struct {
	TotalRequests *int64
	ReqSec        *float64
	Transfer      *float64

	LatAvg   *float64
	LatStdev *float64
	LatMax   *float64

	LatP50 *float64
	LatP75 *float64
	LatP90 *float64
	LatP99 *float64

	// Sockets lists the "Socket errors" counts in report order.
	Sockets []SocketErrors

	// Non2xx is the count of non-2xx/3xx responses.
	Non2xx *int64
}

// SocketErrors is one category of wrk's "Socket errors" line, such as
// "connect" or "timeout".
type SocketErrors struct {
	Kind  string
	Count int
}

// Socket returns the count of socket errors of the given kind.
func (s *Stats) Socket(kind string) (int, bool) {
	for _, se := range s.Sockets {
		if se.Kind == kind {
			return se.Count, true
		}
	}
	return 0, false
}

// Failed reports whether r is a connection failure.
func (r *Result) Failed() bool {
	return r.Error != ""
}

// Config returns the run configuration label, e.g. "t4-c100". Absent
// counts are shown as 0.
func (r *Result) Config() string {
	return "t" + strconv.Itoa(deref(r.Threads)) + "-c" + strconv.Itoa(deref(r.Conns))
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// A Field is one named value of a Result. Value is a string, int,
// int64 or float64.
type Field struct {
	Key   string
	Value interface{}
}

// String formats the field value. Numbers use the shortest
// representation that captures the exact value.
func (f Field) String() string {
	switch v := f.Value.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return wrkunit.NoOpScaler.Format(v)
	}
	return ""
}

// Fields returns every present field of r, in a stable order. Absent
// fields are omitted rather than reported as zero. Socket error
// counts appear as "socket_<kind>" and the report text as "raw".
func (r *Result) Fields() []Field {
	fs := []Field{{"file", r.File}, {"endpoint", r.Endpoint}}
	str := func(key, v string) {
		if v != "" {
			fs = append(fs, Field{key, v})
		}
	}
	num := func(key string, v *int) {
		if v != nil {
			fs = append(fs, Field{key, *v})
		}
	}
	num64 := func(key string, v *int64) {
		if v != nil {
			fs = append(fs, Field{key, *v})
		}
	}
	flt := func(key string, v *float64) {
		if v != nil {
			fs = append(fs, Field{key, *v})
		}
	}

	str("url", r.URL)
	num("threads", r.Threads)
	num("conns", r.Conns)
	str("duration", r.Duration)
	if s := r.Stats; s != nil {
		num64("total_requests", s.TotalRequests)
		flt("req_sec", s.ReqSec)
		flt("transfer", s.Transfer)
		flt("lat_avg", s.LatAvg)
		flt("lat_stdev", s.LatStdev)
		flt("lat_max", s.LatMax)
		flt("lat_p50", s.LatP50)
		flt("lat_p75", s.LatP75)
		flt("lat_p90", s.LatP90)
		flt("lat_p99", s.LatP99)
		for _, se := range s.Sockets {
			fs = append(fs, Field{"socket_" + se.Kind, se.Count})
		}
		num64("non2xx", s.Non2xx)
	}
	str("error", r.Error)
	fs = append(fs, Field{"raw", r.Raw})
	return fs
}

// MarshalJSON encodes r as a JSON object of its Fields, in order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
