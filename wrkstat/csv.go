// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wrkstat renders wrk results as CSV, JSON and HTML reports.
package wrkstat

import (
	"encoding/csv"
	"io"

	"github.com/DreamTraveler233/wrkstat/wrkfmt"
)

// Columns is the column set of the CSV report and the HTML detail
// table, in order. Consumers depend on it; do not reorder.
var Columns = []string{
	"file", "endpoint", "url", "threads", "conns", "duration",
	"total_requests", "req_sec", "transfer",
	"lat_avg", "lat_stdev", "lat_max",
	"lat_p50", "lat_p75", "lat_p90", "lat_p99",
	"socket_connect", "socket_read", "socket_write", "socket_timeout",
	"error",
}

// Row projects r onto Columns. Absent fields are empty strings.
func Row(r *wrkfmt.Result) []string {
	byKey := make(map[string]string)
	for _, f := range r.Fields() {
		byKey[f.Key] = f.String()
	}
	row := make([]string, len(Columns))
	for i, col := range Columns {
		row[i] = byKey[col]
	}
	return row
}

// WriteCSV writes a header row followed by one row per result.
func WriteCSV(w io.Writer, results []*wrkfmt.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write(Row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
