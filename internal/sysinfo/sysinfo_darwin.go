// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sysinfo

import (
	"context"
	"runtime"

	"golang.org/x/sys/unix"
)

func probe(ctx context.Context) host {
	h := host{platform: "Darwin", arch: runtime.GOARCH}
	var u unix.Utsname
	if unix.Uname(&u) == nil {
		h.platform = unix.ByteSliceToString(u.Sysname[:])
		h.arch = unix.ByteSliceToString(u.Machine[:])
	}
	if v := command(ctx, "sw_vers", "-productVersion"); v != "" {
		h.osVersion = v
		if b := command(ctx, "sw_vers", "-buildVersion"); b != "" {
			h.osVersion += " (" + b + ")"
		}
	}
	if s, err := unix.Sysctl("machdep.cpu.brand_string"); err == nil {
		h.cpu = s
	}
	if n, err := unix.SysctlUint64("hw.memsize"); err == nil {
		h.memBytes = n
	}
	h.compiler = compilerVersion(ctx, "clang", "gcc")
	return h
}
