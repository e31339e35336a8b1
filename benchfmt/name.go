// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import "strings"

// A RunID is the structured form of a benchmark binary name.
type RunID struct {
	Parser  string
	Variant string
}

// respMarker is the run-name segment that marks a response-parsing
// benchmark binary. It is not part of the variant.
const respMarker = "resp"

// DefaultVariant is the variant of a run whose name carries none.
const DefaultVariant = "default"

// DecomposeRunID recovers the parser and variant from a benchmark
// binary name of the form bench_<parser>[_resp]_<variant>:
//
//	bench_hwire_sse42      -> {hwire, sse42}
//	bench_hwire_resp_sse42 -> {hwire, sse42}
//	bench_httparse_simd    -> {httparse, simd}
//	bench_pico_avx2_fast   -> {pico, avx2_fast}
//
// Parser names that themselves contain underscores cannot be
// recovered; the first segment after "bench" is always the parser.
func DecomposeRunID(id string) RunID {
	parts := strings.Split(id, "_")
	if len(parts) < 3 {
		if len(parts) == 2 {
			return RunID{parts[1], DefaultVariant}
		}
		return RunID{id, DefaultVariant}
	}
	if parts[2] == respMarker {
		if len(parts) > 3 {
			return RunID{parts[1], parts[3]}
		}
		return RunID{parts[1], DefaultVariant}
	}
	return RunID{parts[1], strings.Join(parts[2:], "_")}
}

var variantNames = map[string]string{
	"nosimd": "No-SIMD",
	"scalar": "Scalar",
	"sse2":   "SSE2",
	"sse42":  "SSE4.2",
	"avx2":   "AVX2",
	"neon":   "NEON",
	"simd":   "SIMD",
}

// VariantDisplayName returns the display form of a variant token.
// Unknown tokens are upper-cased.
func VariantDisplayName(variant string) string {
	if name, ok := variantNames[variant]; ok {
		return name
	}
	return strings.ToUpper(variant)
}
