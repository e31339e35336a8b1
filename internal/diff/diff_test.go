// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diff

import (
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	if d := Diff("a\nb\n", "a\nb\n"); d != "" {
		t.Errorf("Diff of equal texts = %q", d)
	}
	d := Diff("a\nb\nc\n", "a\nx\nc\n")
	if d == "" {
		t.Fatalf("Diff of different texts is empty")
	}
	if !strings.Contains(d, "b") || !strings.Contains(d, "x") {
		t.Errorf("Diff does not mention changed lines:\n%s", d)
	}
}

func TestFirstDifference(t *testing.T) {
	check := func(want, got, out string) {
		t.Helper()
		if d := firstDifference(want, got); d != out {
			t.Errorf("firstDifference(%q, %q) = %q, want %q", want, got, d, out)
		}
	}
	check("a\nb\n", "a\nc\n", "line 2:\nwant: \"b\\n\"\ngot:  \"c\\n\"\n")
	check("a\n", "a\nb\n", "line 2:\nwant: \"\"\ngot:  \"b\\n\"\n")
	check("a", "a\n", "line 1:\nwant: \"a\"\ngot:  \"a\\n\"\n")
}
