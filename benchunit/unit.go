// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit normalizes benchmark time units and formats
// timings, rates, and sizes for display.
package benchunit

// nsPerUnit maps a time unit, as written by the benchmark harness, to
// the number of nanoseconds in one of that unit.
var nsPerUnit = map[string]float64{
	"ns": 1,
	"us": 1e3,
	"µs": 1e3, // U+00B5 MICRO SIGN
	"μs": 1e3, // U+03BC GREEK SMALL LETTER MU
	"ms": 1e6,
	"s":  1e9,
}

// ToNanoseconds converts value in the given time unit to nanoseconds.
//
// An unrecognized unit (including "") is treated as already being in
// nanoseconds and value is returned unchanged.
func ToNanoseconds(value float64, unit string) float64 {
	if f, ok := nsPerUnit[unit]; ok {
		return value * f
	}
	return value
}

// IsTimeUnit reports whether unit is a time unit ToNanoseconds knows
// how to scale.
func IsTimeUnit(unit string) bool {
	_, ok := nsPerUnit[unit]
	return ok
}
