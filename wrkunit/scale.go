// Copyright 2026 The wrkstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrkunit

import (
	"fmt"
	"math"
	"strconv"
)

// A Class selects the family of unit prefixes a value is shown with.
type Class int

const (
	Decimal Class = iota // k, M, G: request rates
	Binary               // Ki, Mi, Gi: transfer sizes and rates
)

// A Scaler divides a value by Factor and prints it with Prec digits
// after the decimal point, followed by Prefix.
type Scaler struct {
	Prec   int
	Factor float64
	Prefix string
}

// Format formats val according to s.
func (s Scaler) Format(val float64) string {
	buf := strconv.AppendFloat(nil, val/s.Factor, 'f', s.Prec, 64)
	return string(append(buf, s.Prefix...))
}

// NoOpScaler prints the shortest exact form of a value with no prefix.
// CSV and JSON numbers use it.
var NoOpScaler = Scaler{-1, 1, ""}

var prefixes = [...]struct {
	base     float64
	up, down []string
}{
	Decimal: {1000, []string{"k", "M", "G"}, []string{"m", "µ"}},
	Binary:  {1024, []string{"Ki", "Mi", "Gi"}, nil},
}

// A scaled value at or above these rounds to 100.0, 10.00 and 1.000.
const (
	t100 = 99.995
	t10  = 9.9995
	t1   = .99995
)

// Scale formats val with at least three significant digits and the
// largest prefix of cls that keeps it at or above 1.
// Scale(123456789, Decimal) is "123.5M".
func Scale(val float64, cls Class) string {
	return ScalerFor(val, cls).Format(val)
}

// ScalerFor returns the Scaler Scale uses for val.
func ScalerFor(val float64, cls Class) Scaler {
	if cls < 0 || int(cls) >= len(prefixes) {
		panic(fmt.Sprintf("bad Class %d", cls))
	}
	p := prefixes[cls]
	v := math.Abs(val)
	s := Scaler{Prec: 3, Factor: 1}
	if v == 0 {
		return s
	}

	for _, pre := range p.up {
		if v/(s.Factor*p.base) < t1 {
			break
		}
		s.Factor *= p.base
		s.Prefix = pre
	}
	if s.Factor == 1 {
		for _, pre := range p.down {
			if v/s.Factor >= t1 {
				break
			}
			s.Factor /= p.base
			s.Prefix = pre
		}
	}

	switch x := v / s.Factor; {
	case x >= t100:
		s.Prec = 1
	case x >= t10:
		s.Prec = 2
	default:
		// Below the smallest prefix: add digits instead.
		for ; x < t1 && s.Prec < 10; x *= 10 {
			s.Prec++
		}
	}
	return s
}
