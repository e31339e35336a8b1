// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sysinfo describes the host a benchmark ran on.
//
// All information is best effort. Anything that cannot be determined,
// whether because a file is missing, a command fails, or a command
// does not finish in time, is reported as Unknown.
package sysinfo

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"regexp"
	"runtime"
	"strings"
	"time"
)

// Unknown is the value of any item that could not be determined.
const Unknown = "Unknown"

// probeTimeout bounds each external command.
const probeTimeout = 2 * time.Second

// A Pair is one item of host information.
type Pair struct {
	Key, Value string
}

// Info is an ordered list of host information items.
type Info []Pair

// host is the raw information gathered by probe.
type host struct {
	platform  string
	osVersion string
	arch      string
	cpu       string
	memBytes  uint64
	compiler  string
}

// Collect describes the current host: operating system, architecture,
// CPU, memory, and C compiler. It never fails.
func Collect(ctx context.Context) Info {
	h := probe(ctx)
	osName := strings.TrimSpace(orUnknown(h.platform) + " " + h.osVersion)
	mem := Unknown
	if h.memBytes > 0 {
		mem = fmt.Sprintf("%.0f GB", math.Round(float64(h.memBytes)/(1<<30)))
	}
	return Info{
		{"OS", osName},
		{"Architecture", orUnknown(h.arch)},
		{"CPU", fmt.Sprintf("%s (%d cores)", orUnknown(h.cpu), runtime.NumCPU())},
		{"Memory", mem},
		{"Compiler", orUnknown(h.compiler)},
	}
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}

// command runs name with args and returns the first line of its
// standard output, or "" if the command fails or times out.
var command = func(ctx context.Context, name string, args ...string) string {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line)
}

// compilerVersion returns the version line of the first of the given
// compilers that runs.
func compilerVersion(ctx context.Context, compilers ...string) string {
	for _, c := range compilers {
		if v := command(ctx, c, "--version"); v != "" {
			return v
		}
	}
	return ""
}

func readFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

var (
	prettyNameRe = regexp.MustCompile(`(?m)^PRETTY_NAME="?([^"\n]+)"?$`)
	idRe         = regexp.MustCompile(`(?m)^ID="?([^"\n]+)"?$`)
	versionIDRe  = regexp.MustCompile(`(?m)^VERSION_ID="?([^"\n]+)"?$`)
	modelNameRe  = regexp.MustCompile(`(?m)^model name\s*:\s*(.+)$`)
)

// parseOSRelease returns the distribution name from the contents of
// an os-release file, or "" if it names none.
func parseOSRelease(data string) string {
	if m := prettyNameRe.FindStringSubmatch(data); m != nil {
		return strings.TrimSpace(m[1])
	}
	id := "Linux"
	if m := idRe.FindStringSubmatch(data); m != nil {
		id = m[1]
	} else if data == "" {
		return ""
	}
	if m := versionIDRe.FindStringSubmatch(data); m != nil {
		return id + " " + m[1]
	}
	return id
}

// parseCPUModel returns the first model name in the contents of
// /proc/cpuinfo, or "".
func parseCPUModel(data string) string {
	if m := modelNameRe.FindStringSubmatch(data); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
