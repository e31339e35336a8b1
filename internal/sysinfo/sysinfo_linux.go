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
	h := host{platform: "Linux", arch: runtime.GOARCH}
	var u unix.Utsname
	if unix.Uname(&u) == nil {
		h.platform = unix.ByteSliceToString(u.Sysname[:])
		h.arch = unix.ByteSliceToString(u.Machine[:])
	}
	h.osVersion = parseOSRelease(readFile("/etc/os-release"))
	h.cpu = parseCPUModel(readFile("/proc/cpuinfo"))
	var si unix.Sysinfo_t
	if unix.Sysinfo(&si) == nil {
		h.memBytes = uint64(si.Totalram) * uint64(si.Unit)
	}
	h.compiler = compilerVersion(ctx, "gcc", "clang")
	return h
}
