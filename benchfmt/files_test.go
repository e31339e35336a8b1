// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchfmt

import (
	"errors"
	"os"
	"strings"
	"syscall"
	"testing"
)

func TestFiles(t *testing.T) {
	// Switch to testdata/files directory.
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(oldDir)
	if err := os.Chdir("testdata/files"); err != nil {
		t.Fatal(err)
	}

	check := func(f *Files, want ...string) {
		t.Helper()
		for f.Scan() {
			switch res := f.Result(); res := res.(type) {
			default:
				t.Fatalf("unexpected result type %T", res)
			case *SyntaxError:
				t.Fatalf("unexpected Result error %s", res)
				return
			case *Result:
				if len(want) == 0 {
					t.Errorf("got result, want end of stream")
					return
				}
				file, _ := res.Pos()
				got := file + " " + res.Parser + " " + res.Scenario
				if got != want[0] {
					t.Errorf("got %q, want %q", got, want[0])
				}
				want = want[1:]
			}
		}

		err := f.Err()
		wantErr := ""
		if len(want) == 1 && strings.HasPrefix(want[0], "err ") {
			wantErr = want[0][len("err "):]
			want = want[1:]
		}
		if err == nil && wantErr != "" {
			t.Errorf("got success, want error %s", wantErr)
		} else if err != nil && wantErr == "" {
			t.Errorf("got error %s", err)
		} else if err != nil && err.Error() != wantErr {
			t.Errorf("got error %s, want error %s", err, wantErr)
		}

		if len(want) != 0 {
			t.Errorf("got end of stream, want %v", want)
		}
	}

	// Basic tests. The format of each file follows its extension.
	check(
		&Files{Paths: []string{"a.txt", "b.jsonl"}},
		"a.txt hwire hdr_8", "a.txt hwire val_short", "b.jsonl pico 8 Headers, 433 B",
	)
	check(
		&Files{Paths: []string{"a.txt", "c.txt", "b.jsonl"}},
		"a.txt hwire hdr_8", "a.txt hwire val_short", "err open c.txt: "+syscall.ENOENT.Error(),
	)

	// AllowMissing.
	var warnings []error
	check(
		&Files{
			Paths:        []string{"c.txt", "a.txt", "d.jsonl", "b.jsonl"},
			AllowMissing: true,
			Warn:         func(err error) { warnings = append(warnings, err) },
		},
		"a.txt hwire hdr_8", "a.txt hwire val_short", "b.jsonl pico 8 Headers, 433 B",
	)
	if len(warnings) != 2 || !errors.Is(warnings[0], os.ErrNotExist) || !errors.Is(warnings[1], os.ErrNotExist) {
		t.Errorf("got warnings %v, want two not-exist errors", warnings)
	}

	// An explicit format overrides the extension. Read as the console
	// format, b.jsonl has no results.
	check(
		&Files{Paths: []string{"b.jsonl"}, Format: FormatText},
	)

	// AllowStdin.
	check(
		&Files{Paths: []string{"-"}},
		"err open -: "+syscall.ENOENT.Error(),
	)
	fakeStdin("bench_hwire_sse42 is a Catch2\nhdr_8 1 1 1 ms\n 1 ns 1 ns 1 ns\n", func() {
		check(
			&Files{AllowStdin: true},
			"- hwire hdr_8",
		)
	})
	fakeStdin(`{"runName":"bench_pico_avx2","testCases":[{"name":"Baseline","benchmarks":[{"name":"64 B","meanNs":1}]}]}`+"\n", func() {
		check(
			&Files{
				Paths:      []string{"-"},
				Format:     FormatRun,
				AllowStdin: true,
			},
			"- pico 64 B",
		)
	})
}

func TestFilesOrphans(t *testing.T) {
	f := &Files{Paths: []string{"testdata/files/orphan.txt", "testdata/files/a.txt"}}
	n := 0
	for f.Scan() {
		if _, ok := f.Result().(*Result); ok {
			n++
		}
	}
	if err := f.Err(); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("got %d results, want 3", n)
	}
	if f.Orphans() != 1 {
		t.Errorf("Orphans() = %d, want 1", f.Orphans())
	}
}

func TestFormatOf(t *testing.T) {
	check := func(path string, f, want Format) {
		t.Helper()
		if got := FormatOf(path, f); got != want {
			t.Errorf("FormatOf(%q, %v) = %v, want %v", path, f, got, want)
		}
	}
	check("out.txt", FormatAuto, FormatText)
	check("out", FormatAuto, FormatText)
	check("-", FormatAuto, FormatText)
	check("runs.jsonl", FormatAuto, FormatRun)
	check("RUNS.JSON", FormatAuto, FormatRun)
	check("runs.jsonl", FormatText, FormatText)
	check("out.txt", FormatRun, FormatRun)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":      FormatAuto,
		"auto":  FormatAuto,
		"text":  FormatText,
		"jsonl": FormatRun,
		"json":  FormatRun,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Errorf("ParseFormat(xml) succeeded, want error")
	}
}

func fakeStdin(content string, cb func()) {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	go func() {
		defer w.Close()
		w.WriteString(content)
	}()
	defer r.Close()
	defer func(orig *os.File) { os.Stdin = orig }(os.Stdin)
	os.Stdin = r
	cb()
}
