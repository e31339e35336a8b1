// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff describes the differences between two texts, for use
// in golden-file tests.
package diff

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Diff returns a human-readable description of the differences between want and got.
// If the "diff" command is available, it returns the output of unified diff on want and got.
// Otherwise it reports the first line that differs.
// The result is empty if and only if the texts are equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	if _, err := exec.LookPath("diff"); err != nil {
		return firstDifference(want, got)
	}

	dir, err := os.MkdirTemp("", "parserbench_diff")
	if err != nil {
		return err.Error()
	}
	defer os.RemoveAll(dir)
	wantPath, gotPath := filepath.Join(dir, "want"), filepath.Join(dir, "got")
	if err := os.WriteFile(wantPath, []byte(want), 0666); err != nil {
		return err.Error()
	}
	if err := os.WriteFile(gotPath, []byte(got), 0666); err != nil {
		return err.Error()
	}

	data, err := exec.Command("diff", "-u", wantPath, gotPath).CombinedOutput()
	if len(data) > 0 {
		// diff exits with a non-zero status when the files don't match.
		// Ignore that failure as long as we get output.
		err = nil
	}
	if err != nil {
		data = append(data, err.Error()...)
	}
	if len(data) == 0 {
		return firstDifference(want, got)
	}
	return string(data)
}

func firstDifference(want, got string) string {
	wl, gl := strings.SplitAfter(want, "\n"), strings.SplitAfter(got, "\n")
	for i := 0; ; i++ {
		var w, g string
		if i < len(wl) {
			w = wl[i]
		}
		if i < len(gl) {
			g = gl[i]
		}
		if w != g {
			return fmt.Sprintf("line %d:\nwant: %q\ngot:  %q\n", i+1, w, g)
		}
	}
}
