// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkfmt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/DreamTraveler233/wrkstat/wrkunit"
)

// An Outcome is what Extract found in one report: either a *Measured
// or a *ConnFailed.
type Outcome interface {
	isOutcome()
}

// Measured is the Outcome of a run that reached its target. Any field
// may be absent if its line was missing or malformed.
type Measured struct {
	Duration string
	URL      string
	Threads  *int
	Conns    *int
	Stats    Stats
}

// ConnFailed is the Outcome of a run that could not connect. No
// measurements are extracted from such a report.
type ConnFailed struct {
	Raw string
}

func (*Measured) isOutcome()   {}
func (*ConnFailed) isOutcome() {}

var (
	reRunning      = regexp.MustCompile(`Running\s+([\d.]+[smh]) test @\s+(.+)`)
	reThreadsConns = regexp.MustCompile(`(\d+) threads? and (\d+) connections?`)
	reLatency      = regexp.MustCompile(`Latency\s+([\d.a-zA-Z/]+)\s+([\d.a-zA-Z/]+)\s+([\d.a-zA-Z/]+)`)
	reReqSec       = regexp.MustCompile(`Requests/sec:\s*([\d.]+)`)
	reTransfer     = regexp.MustCompile(`Transfer/sec:\s*([\d.]+)\s*([KMG]B|B)?`)
	reTotal        = regexp.MustCompile(`([0-9,]+) requests in`)
	rePercentile   = regexp.MustCompile(`(?m)^\s*(\d+(?:\.\d+)?)%\s+([\d.]+(?:ms|us|s|m|h)?)`)
	reSocket       = regexp.MustCompile(`Socket errors:\s*(.*)`)
	reNon2xx       = regexp.MustCompile(`Non-2xx or 3xx responses:\s*([0-9,]+)`)
)

// distributionMarker introduces the percentile block.
const distributionMarker = "Latency Distribution"

// Extract extracts the measurements from the text of one wrk report.
//
// If the text reports that the target was unreachable, Extract
// returns a *ConnFailed and looks no further. Otherwise each field is
// matched independently; a field whose line is missing or does not
// parse is left absent.
func Extract(raw string) Outcome {
	lower := strings.ToLower(raw)
	if strings.Contains(lower, "unable to connect") || strings.Contains(lower, "connection refused") {
		return &ConnFailed{Raw: raw}
	}

	m := new(Measured)
	if g := reRunning.FindStringSubmatch(raw); g != nil {
		m.Duration = g[1]
		m.URL = strings.TrimSpace(g[2])
	}
	if g := reThreadsConns.FindStringSubmatch(raw); g != nil {
		m.Threads = atoi(g[1])
		m.Conns = atoi(g[2])
	}

	s := &m.Stats
	if g := reLatency.FindStringSubmatch(raw); g != nil {
		s.LatAvg = latency(g[1])
		s.LatStdev = latency(g[2])
		s.LatMax = latency(g[3])
	}
	if g := reReqSec.FindStringSubmatch(raw); g != nil {
		s.ReqSec = parseFloat(g[1])
	}
	if g := reTransfer.FindStringSubmatch(raw); g != nil {
		if v := parseFloat(g[1]); v != nil {
			b := wrkunit.Bytes(*v, g[2])
			s.Transfer = &b
		}
	}
	if g := reTotal.FindStringSubmatch(raw); g != nil {
		s.TotalRequests = count(g[1])
	}
	if g := reNon2xx.FindStringSubmatch(raw); g != nil {
		s.Non2xx = count(g[1])
	}
	extractDistribution(raw, s)
	if g := reSocket.FindStringSubmatch(raw); g != nil {
		s.Sockets = parseSockets(g[1])
	}
	return m
}

// extractDistribution fills the percentile latencies from the block
// following distributionMarker. Entries that do not parse are skipped.
func extractDistribution(raw string, s *Stats) {
	i := strings.Index(raw, distributionMarker)
	if i < 0 {
		return
	}
	for _, g := range rePercentile.FindAllStringSubmatch(raw[i:], -1) {
		pct, err := strconv.ParseFloat(g[1], 64)
		if err != nil {
			continue
		}
		v := latency(g[2])
		if v == nil {
			continue
		}
		switch pct {
		case 50:
			s.LatP50 = v
		case 75:
			s.LatP75 = v
		case 90:
			s.LatP90 = v
		case 99:
			s.LatP99 = v
		}
	}
}

// parseSockets parses "connect 0, read 12, write 0, timeout 3". Pairs
// may also be written key=value. A pair whose count is not an integer
// is dropped.
func parseSockets(line string) []SocketErrors {
	var out []SocketErrors
	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		var key, val string
		if i := strings.IndexByte(part, '='); i >= 0 {
			key, val = part[:i], part[i+1:]
		} else if i := strings.IndexAny(part, " \t"); i >= 0 {
			key, val = part[:i], part[i+1:]
		} else {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			continue
		}
		key = strings.TrimSpace(key)
		if i := indexSocket(out, key); i >= 0 {
			out[i].Count = n
			continue
		}
		out = append(out, SocketErrors{Kind: key, Count: n})
	}
	return out
}

func indexSocket(errs []SocketErrors, kind string) int {
	for i, e := range errs {
		if e.Kind == kind {
			return i
		}
	}
	return -1
}

func atoi(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func count(s string) *int64 {
	n, err := wrkunit.Count(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloat(s string) *float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func latency(s string) *float64 {
	v, err := wrkunit.Latency(s)
	if err != nil {
		return nil
	}
	return &v
}
