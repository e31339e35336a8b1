// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"strconv"
)

// A Scaler represents a scaling factor for a number and the suffix
// that denotes it.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Suffix (e.g., 1 μs => 1000 ns)
	Suffix string  // Appended after the scaled number (" ms", "K", ...)
}

// Format formats val/s.Factor with s.Prec digits after the decimal
// point and appends s.Suffix.
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Suffix...)
	return string(buf)
}

// DurationScaler returns the Scaler for a duration of ns nanoseconds,
// printed with prec digits after the decimal point. Each bracket is
// inclusive at its lower bound: 1000 ns is "1 μs", 999 ns is "999 ns".
func DurationScaler(ns float64, prec int) Scaler {
	switch {
	case ns >= 1e6:
		return Scaler{prec, 1e6, " ms"}
	case ns >= 1e3:
		return Scaler{prec, 1e3, " μs"}
	}
	return Scaler{prec, 1, " ns"}
}

// RateScaler returns the Scaler for a per-second rate.
func RateScaler(perSec float64) Scaler {
	switch {
	case perSec >= 1e6:
		return Scaler{2, 1e6, "M"}
	case perSec >= 1e3:
		return Scaler{2, 1e3, "K"}
	}
	return Scaler{0, 1, ""}
}

// FormatDuration formats ns as milliseconds, microseconds, or
// nanoseconds with two decimals, e.g. "96.73 ns" or "1.25 μs".
func FormatDuration(ns float64) string {
	return DurationScaler(ns, 2).Format(ns)
}

// FormatDurationShort is like FormatDuration but with one decimal.
// It is used for chart annotations.
func FormatDurationShort(ns float64) string {
	return DurationScaler(ns, 1).Format(ns)
}

// FormatRate formats a per-second rate, e.g. "10.34M", "512.00K" or "87".
func FormatRate(perSec float64) string {
	return RateScaler(perSec).Format(perSec)
}

// FormatByteSize formats a payload size. Sizes of at least 1024 bytes
// are shown in KB with two decimals; smaller sizes as "<n> bytes".
func FormatByteSize(bytes int) string {
	if bytes >= 1024 {
		return Scaler{2, 1024, " KB"}.Format(float64(bytes))
	}
	return strconv.Itoa(bytes) + " bytes"
}
