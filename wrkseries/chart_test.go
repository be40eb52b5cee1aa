// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkseries

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/DreamTraveler233/wrkstat/wrkfmt"
)

func TestChartNames(t *testing.T) {
	req, lat := ChartNames("/api/users")
	if req != "reqsec__api_users.png" || lat != "latp50__api_users.png" {
		t.Errorf("ChartNames = %s, %s", req, lat)
	}
}

func TestChartAll(t *testing.T) {
	series := Group([]*wrkfmt.Result{
		run("/api/users", 4, 100, 1000, 0.010),
		run("/api/users", 8, 100, 1200, -1),
		run("/api/orders", 2, 10, 300, -1),
	})
	// An empty series cannot be charted; the others must still be.
	series = append([]*Series{{Endpoint: "/broken"}}, series...)

	dir := filepath.Join(t.TempDir(), "plots")
	var warnings []error
	paths, err := ChartAll(series, dir, func(err error) { warnings = append(warnings, err) })
	if err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1: %v", len(warnings), warnings)
	}

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
			t.Errorf("%s is not a PNG", p)
		}
	}
	want := []string{
		"reqsec__api_users.png", "latp50__api_users.png",
		"reqsec__api_orders.png", "latp50__api_orders.png",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("charts mismatch (-want +got):\n%s", diff)
	}
}
