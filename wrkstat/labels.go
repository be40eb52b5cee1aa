// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkstat

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Labels are the captions used by the HTML report. A labels file lets
// a report be produced in another language:
//
//	title: wrk 压测报告
//	headings:
//	  summary: 端点汇总
//	columns:
//	  threads: 线程数
//	  conns: 并发连接数
//
// Keys that are not set keep their default caption.
type Labels struct {
	Title    string            `yaml:"title"`
	Headings map[string]string `yaml:"headings"`
	Columns  map[string]string `yaml:"columns"`
}

const defaultTitle = "wrk benchmark report"

var defaultHeadings = map[string]string{
	"source":  "Generated from",
	"summary": "Endpoint summary",
	"details": "Results",
	"charts":  "Charts",
}

var defaultColumns = map[string]string{
	"file":           "File",
	"endpoint":       "Endpoint",
	"url":            "URL",
	"threads":        "Threads",
	"conns":          "Connections",
	"duration":       "Duration",
	"total_requests": "Total requests",
	"req_sec":        "Requests/sec",
	"transfer":       "Transfer (B/s)",
	"lat_avg":        "Avg latency (s)",
	"lat_stdev":      "Latency stdev (s)",
	"lat_max":        "Max latency (s)",
	"lat_p50":        "P50 latency (s)",
	"lat_p75":        "P75 latency (s)",
	"lat_p90":        "P90 latency (s)",
	"lat_p99":        "P99 latency (s)",
	"socket_connect": "Socket connect errors",
	"socket_read":    "Socket read errors",
	"socket_write":   "Socket write errors",
	"socket_timeout": "Socket timeout errors",
	"error":          "Error",

	// Summary table.
	"best_req_sec":        "Max requests/sec",
	"best_req_sec_config": "Best throughput config",
	"mean_req_sec":        "Mean ± stdev requests/sec",
	"best_transfer":       "Transfer at best",
	"min_lat_p50":         "Min P50 latency (ms)",
	"min_lat_p50_config":  "Min P50 config",
}

// LoadLabels reads Labels from a YAML file. Unknown keys are an error.
func LoadLabels(path string) (*Labels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	l := new(Labels)
	if err := dec.Decode(l); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing labels %s: %w", path, err)
	}
	return l, nil
}

// ReportTitle returns the report title.
func (l *Labels) ReportTitle() string {
	if l != nil && l.Title != "" {
		return l.Title
	}
	return defaultTitle
}

// Heading returns the caption of a report section: "source",
// "summary", "details" or "charts".
func (l *Labels) Heading(key string) string {
	return lookup(l, key, func(l *Labels) map[string]string { return l.Headings }, defaultHeadings)
}

// Column returns the caption of a table column.
func (l *Labels) Column(key string) string {
	return lookup(l, key, func(l *Labels) map[string]string { return l.Columns }, defaultColumns)
}

func lookup(l *Labels, key string, m func(*Labels) map[string]string, defaults map[string]string) string {
	if l != nil {
		if v := m(l)[key]; v != "" {
			return v
		}
	}
	if v, ok := defaults[key]; ok {
		return v
	}
	return key
}
