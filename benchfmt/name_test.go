// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import "testing"

func TestDecomposeRunID(t *testing.T) {
	check := func(id, parser, variant string) {
		t.Helper()
		got := DecomposeRunID(id)
		if want := (RunID{parser, variant}); got != want {
			t.Errorf("DecomposeRunID(%q) = %+v, want %+v", id, got, want)
		}
	}
	check("bench_hwire_sse42", "hwire", "sse42")
	check("bench_hwire_resp_sse42", "hwire", "sse42")
	check("bench_httparse_simd", "httparse", "simd")
	check("bench_pico_avx2_fast", "pico", "avx2_fast")
	check("bench_hwire_resp", "hwire", DefaultVariant)
	check("bench_hwire", "hwire", DefaultVariant)
	check("hwire", "hwire", DefaultVariant)
}

func TestVariantDisplayName(t *testing.T) {
	for in, want := range map[string]string{
		"nosimd":  "No-SIMD",
		"scalar":  "Scalar",
		"sse2":    "SSE2",
		"sse42":   "SSE4.2",
		"avx2":    "AVX2",
		"neon":    "NEON",
		"simd":    "SIMD",
		"avx512":  "AVX512",
		"default": "DEFAULT",
	} {
		if got := VariantDisplayName(in); got != want {
			t.Errorf("VariantDisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}
