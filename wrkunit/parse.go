// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wrkunit normalizes the unit-suffixed values printed by wrk
// and formats numbers in those units for display.
//
// Latencies are normalized to seconds and transfer rates to bytes.
package wrkunit

import (
	"fmt"
	"strconv"
	"strings"
)

// latencySuffixes converts a wrk latency suffix to seconds as
// value*mul/div. Order matters: "ms" must be tried before "m" and "s".
var latencySuffixes = []struct {
	suffix   string
	mul, div float64
}{
	{"ms", 1, 1e3},
	{"us", 1, 1e6},
	{"s", 1, 1},
	{"m", 60, 1},
	{"h", 3600, 1},
}

// Latency parses a wrk latency value such as "115.45ms", "818.96us" or
// "1.2s" and returns it in seconds. A value without a suffix is in
// milliseconds.
func Latency(s string) (float64, error) {
	s = strings.TrimSpace(s)
	num, mul, div := s, 1.0, 1e3
	for _, ls := range latencySuffixes {
		if strings.HasSuffix(s, ls.suffix) {
			num, mul, div = s[:len(s)-len(ls.suffix)], ls.mul, ls.div
			break
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("bad latency %q: %w", s, err)
	}
	return v * mul / div, nil
}

var byteFactors = map[string]float64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
}

// Bytes scales val, expressed in unit ("B", "KB", "MB", "GB"), to bytes
// using binary multipliers. An empty or unrecognized unit leaves val
// unchanged.
func Bytes(val float64, unit string) float64 {
	if f, ok := byteFactors[strings.ToUpper(unit)]; ok {
		return val * f
	}
	return val
}

// Count parses an integer count that may contain "," digit
// separators, such as "12,345".
func Count(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad count %q: %w", s, err)
	}
	return n, nil
}
