// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkunit

import "testing"

func TestScale(t *testing.T) {
	var cls Class
	test := func(num float64, want string) {
		t.Helper()
		if got := Scale(num, cls); got != want {
			t.Errorf("for %v (class %d), got %s, want %s", num, cls, got, want)
		}
	}

	cls = Decimal
	test(0, "0.000")
	test(1, "1.000")
	test(-1, "-1.000")
	test(12, "12.00")
	test(123456789, "123.5M")
	test(1000, "1.000k")
	test(0.0005, "500.0µ")
	test(0.25, "250.0m")

	cls = Binary
	test(0, "0.000")
	test(512, "512.0")
	test(1024, "1.000Ki")
	test(1.5*1024*1024, "1.500Mi")
	// Values just under the next prefix keep the smaller one.
	test(1020*1024, "1020.0Ki")
}

func TestScalerFor(t *testing.T) {
	for _, tc := range []struct {
		val  float64
		cls  Class
		want Scaler
	}{
		{0, Decimal, Scaler{3, 1, ""}},
		{250000, Decimal, Scaler{1, 1000, "k"}},
		{1.5e9, Decimal, Scaler{3, 1e9, "G"}},
		{2 << 30, Binary, Scaler{3, 1 << 30, "Gi"}},
		{0.5, Binary, Scaler{4, 1, ""}},
	} {
		if got := ScalerFor(tc.val, tc.cls); got != tc.want {
			t.Errorf("ScalerFor(%v, %d) = %+v, want %+v", tc.val, tc.cls, got, tc.want)
		}
	}
}

func TestNoOpScaler(t *testing.T) {
	for v, want := range map[float64]string{
		1200.5:  "1200.5",
		0.11545: "0.11545",
		1572864: "1572864",
		4:       "4",
	} {
		if got := NoOpScaler.Format(v); got != want {
			t.Errorf("NoOpScaler.Format(%v) = %s, want %s", v, got, want)
		}
	}
}
