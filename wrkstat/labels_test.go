// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkstat

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLabels(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.yaml")
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLabels(t *testing.T) {
	l, err := LoadLabels(writeLabels(t, `
title: wrk 压测报告
headings:
  summary: 端点汇总
columns:
  threads: 线程数
  conns: 并发连接数
`))
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range []struct{ got, want string }{
		{l.ReportTitle(), "wrk 压测报告"},
		{l.Heading("summary"), "端点汇总"},
		{l.Heading("charts"), "Charts"},
		{l.Column("threads"), "线程数"},
		{l.Column("conns"), "并发连接数"},
		{l.Column("req_sec"), "Requests/sec"},
		{l.Column("socket_other"), "socket_other"},
	} {
		if tc.got != tc.want {
			t.Errorf("got %q, want %q", tc.got, tc.want)
		}
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, &Report{Results: testResults(), Labels: l}); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<h2>端点汇总</h2>", "<th>线程数</th>"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("labeled report missing %q", want)
		}
	}
}

func TestLoadLabelsEmpty(t *testing.T) {
	l, err := LoadLabels(writeLabels(t, ""))
	if err != nil {
		t.Fatal(err)
	}
	if got := l.ReportTitle(); got != defaultTitle {
		t.Errorf("title = %q, want default", got)
	}
}

func TestLoadLabelsErrors(t *testing.T) {
	if _, err := LoadLabels(writeLabels(t, "titel: typo\n")); err == nil {
		t.Errorf("unknown key: want error")
	}
	if _, err := LoadLabels(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing file: want error")
	}
}

func TestNilLabels(t *testing.T) {
	var l *Labels
	if l.ReportTitle() != defaultTitle || l.Column("conns") != "Connections" || l.Heading("details") != "Results" {
		t.Errorf("nil Labels does not fall back to defaults")
	}
}
