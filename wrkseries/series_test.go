// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkseries

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/DreamTraveler233/wrkstat/wrkfmt"
)

// run builds a report for endpoint with the given configuration.
// A negative p50 leaves the latency distribution out.
func run(endpoint string, threads, conns int, reqSec, p50 float64) *wrkfmt.Result {
	raw := fmt.Sprintf("Running 10s test @ http://localhost:8080%s\n  %d threads and %d connections\n", endpoint, threads, conns)
	if p50 >= 0 {
		raw += fmt.Sprintf("  Latency Distribution\n     50%%  %gms\n", p50*1000)
	}
	raw += fmt.Sprintf("Requests/sec: %g\n", reqSec)
	return wrkfmt.NewResult(fmt.Sprintf("%s_t%d_c%d.txt", endpoint, threads, conns), wrkfmt.Extract(raw))
}

func TestGroup(t *testing.T) {
	results := []*wrkfmt.Result{
		run("/api/users", 8, 100, 980.0, 0.030),
		run("/api/orders", 2, 10, 300, 0.004),
		run("/api/users", 4, 200, 1200.5, 0.020),
		run("/api/users", 4, 100, 1000, 0.010),
		wrkfmt.NewResult("api_users_t1_c1.txt", wrkfmt.Extract("connection refused")),
		wrkfmt.NewResult("empty.txt", wrkfmt.Extract("")),
	}
	series := Group(results)

	var endpoints []string
	for _, s := range series {
		endpoints = append(endpoints, s.Endpoint)
	}
	if diff := cmp.Diff([]string{"/api/users", "/api/orders"}, endpoints); diff != "" {
		t.Fatalf("endpoints mismatch (-want +got):\n%s", diff)
	}

	users := series[0]
	if diff := cmp.Diff([]string{"t4-c100", "t4-c200", "t8-c100"}, users.Labels()); diff != "" {
		t.Errorf("ordering mismatch (-want +got):\n%s", diff)
	}
	if users.BestReqSec.Value != 1200.5 || users.BestReqSec.Result.Config() != "t4-c200" {
		t.Errorf("best req/s = %v at %s, want 1200.5 at t4-c200",
			users.BestReqSec.Value, users.BestReqSec.Result.Config())
	}
	if users.MinP50 == nil || users.MinP50.Result.Config() != "t4-c100" {
		t.Errorf("min p50 = %+v, want run t4-c100", users.MinP50)
	}
	if m := users.Throughput.Mean; math.Abs(m-(980+1200.5+1000)/3) > 1e-9 {
		t.Errorf("mean = %v", m)
	}
	if sd := users.Throughput.StdDev; !(sd > 0) {
		t.Errorf("stddev = %v, want > 0", sd)
	}

	orders := series[1]
	if len(orders.Results) != 1 || orders.Throughput.StdDev != 0 || orders.Throughput.Mean != 300 {
		t.Errorf("orders series = %+v", orders)
	}
}

func TestGroupBestThroughput(t *testing.T) {
	series := Group([]*wrkfmt.Result{
		run("/x", 2, 50, 1200.5, 0.01),
		run("/x", 4, 50, 980.0, 0.01),
	})
	if len(series) != 1 {
		t.Fatalf("got %d series, want 1", len(series))
	}
	if got := series[0].BestReqSec.Result.Config(); got != "t2-c50" {
		t.Errorf("best config = %s, want t2-c50", got)
	}
}

func TestGroupTies(t *testing.T) {
	series := Group([]*wrkfmt.Result{
		run("/x", 8, 10, 500, 0.002),
		run("/x", 1, 10, 500, 0.002),
	})
	s := series[0]
	// Ties resolve to the first run in configuration order.
	if got := s.BestReqSec.Result.Config(); got != "t1-c10" {
		t.Errorf("best tie = %s, want t1-c10", got)
	}
	if got := s.MinP50.Result.Config(); got != "t1-c10" {
		t.Errorf("min p50 tie = %s, want t1-c10", got)
	}
}

func TestGroupNoP50(t *testing.T) {
	series := Group([]*wrkfmt.Result{
		run("/nolat", 1, 1, 10, -1),
		run("/nolat", 2, 2, 20, -1),
	})
	if series[0].MinP50 != nil {
		t.Errorf("MinP50 = %+v, want nil when no run reports P50", series[0].MinP50)
	}

	// Runs without P50 never win the minimum.
	series = Group([]*wrkfmt.Result{
		run("/mixed", 1, 1, 10, -1),
		run("/mixed", 2, 2, 20, 0.5),
	})
	if m := series[0].MinP50; m == nil || m.Value != 0.5 {
		t.Errorf("MinP50 = %+v, want 0.5", m)
	}
}

func TestGroupEmpty(t *testing.T) {
	if got := Group(nil); len(got) != 0 {
		t.Errorf("Group(nil) = %v", got)
	}
}
