// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux && !darwin

package sysinfo

import (
	"context"
	"runtime"
)

func probe(ctx context.Context) host {
	return host{
		platform: runtime.GOOS,
		arch:     runtime.GOARCH,
		compiler: compilerVersion(ctx, "gcc", "clang"),
	}
}
