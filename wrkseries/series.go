// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wrkseries groups wrk results by endpoint into series ordered
// by run configuration, summarizes each series, and charts them.
package wrkseries

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/DreamTraveler233/wrkstat/wrkfmt"
)

// A Series is every measured run of one endpoint.
type Series struct {
	Endpoint string

	// Results are the runs of Endpoint that report a request rate,
	// sorted by thread count and then connection count.
	Results []*wrkfmt.Result

	// BestReqSec is the run with the highest request rate. Ties go
	// to the earlier run in Results.
	BestReqSec *Extreme

	// MinP50 is the run with the lowest median latency, or nil if
	// no run reports one.
	MinP50 *Extreme

	// Throughput describes the request rate across all runs.
	Throughput Throughput
}

// An Extreme is the value of a summary statistic and the run that
// achieved it.
type Extreme struct {
	Value  float64
	Result *wrkfmt.Result
}

// Throughput is the spread of requests/sec across the runs of a
// series.
type Throughput struct {
	Mean   float64
	StdDev float64 // 0 for a single run
}

// Labels returns the configuration label of each run, e.g. "t4-c100".
func (s *Series) Labels() []string {
	labels := make([]string, len(s.Results))
	for i, r := range s.Results {
		labels[i] = r.Config()
	}
	return labels
}

// Group partitions results into one Series per endpoint. Only results
// with a request rate take part; connection failures and reports with
// no measurements are left out. Series are returned in order of each
// endpoint's first appearance in results.
func Group(results []*wrkfmt.Result) []*Series {
	var out []*Series
	byEndpoint := make(map[string]*Series)
	for _, r := range results {
		if r.Stats == nil || r.Stats.ReqSec == nil {
			continue
		}
		s := byEndpoint[r.Endpoint]
		if s == nil {
			s = &Series{Endpoint: r.Endpoint}
			byEndpoint[r.Endpoint] = s
			out = append(out, s)
		}
		s.Results = append(s.Results, r)
	}
	for _, s := range out {
		s.summarize()
	}
	return out
}

func (s *Series) summarize() {
	sort.SliceStable(s.Results, func(i, j int) bool {
		a, b := s.Results[i], s.Results[j]
		if ta, tb := count(a.Threads), count(b.Threads); ta != tb {
			return ta < tb
		}
		return count(a.Conns) < count(b.Conns)
	})

	rates := make([]float64, 0, len(s.Results))
	for _, r := range s.Results {
		rate := *r.Stats.ReqSec
		rates = append(rates, rate)
		if s.BestReqSec == nil || rate > s.BestReqSec.Value {
			s.BestReqSec = &Extreme{rate, r}
		}
		if p50 := r.Stats.LatP50; p50 != nil && (s.MinP50 == nil || *p50 < s.MinP50.Value) {
			s.MinP50 = &Extreme{*p50, r}
		}
	}

	sample := stats.Sample{Xs: rates}
	s.Throughput.Mean = sample.Mean()
	if len(rates) > 1 {
		s.Throughput.StdDev = sample.StdDev()
	}
	if math.IsNaN(s.Throughput.StdDev) {
		s.Throughput.StdDev = 0
	}
}

func count(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
