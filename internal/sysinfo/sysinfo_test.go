// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sysinfo

import (
	"context"
	"strings"
	"testing"
)

func lookup(info Info, key string) (string, bool) {
	for _, p := range info {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

func TestCollect(t *testing.T) {
	info := Collect(context.Background())
	var keys []string
	for _, p := range info {
		keys = append(keys, p.Key)
		if p.Value == "" {
			t.Errorf("%s is empty", p.Key)
		}
	}
	if got, want := strings.Join(keys, ","), "OS,Architecture,CPU,Memory,Compiler"; got != want {
		t.Errorf("keys %s, want %s", got, want)
	}
	if cpu, _ := lookup(info, "CPU"); !strings.HasSuffix(cpu, " cores)") {
		t.Errorf("CPU = %q, want core count", cpu)
	}
	if _, ok := lookup(info, "GPU"); ok {
		t.Errorf("found a GPU item")
	}
}

func TestCollectNoCommands(t *testing.T) {
	defer func(orig func(context.Context, string, ...string) string) { command = orig }(command)
	var ran []string
	command = func(ctx context.Context, name string, args ...string) string {
		ran = append(ran, name)
		return ""
	}

	info := Collect(context.Background())
	if v, _ := lookup(info, "Compiler"); v != Unknown {
		t.Errorf("Compiler = %q, want %q", v, Unknown)
	}
	if len(ran) == 0 {
		t.Errorf("no compiler was probed")
	}
}

func TestCommand(t *testing.T) {
	if got := command(context.Background(), "parserbench-no-such-command"); got != "" {
		t.Errorf("missing command returned %q", got)
	}

	// An expired context fails the command.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if got := command(ctx, "go", "version"); got != "" {
		t.Errorf("canceled command returned %q", got)
	}
}

func TestCompilerVersion(t *testing.T) {
	defer func(orig func(context.Context, string, ...string) string) { command = orig }(command)
	command = func(ctx context.Context, name string, args ...string) string {
		if name == "clang" {
			return "Apple clang version 15.0.0 (clang-1500.1.0.2.5)"
		}
		return ""
	}
	if got := compilerVersion(context.Background(), "gcc", "clang"); !strings.HasPrefix(got, "Apple clang") {
		t.Errorf("compilerVersion fell back to %q", got)
	}
	if got := compilerVersion(context.Background(), "gcc"); got != "" {
		t.Errorf("compilerVersion(gcc) = %q, want empty", got)
	}
}

func TestParseOSRelease(t *testing.T) {
	check := func(data, want string) {
		t.Helper()
		if got := parseOSRelease(data); got != want {
			t.Errorf("parseOSRelease(%q) = %q, want %q", data, got, want)
		}
	}
	check(`NAME="Ubuntu"
VERSION_ID="22.04"
PRETTY_NAME="Ubuntu 22.04.4 LTS"
ID=ubuntu
`, "Ubuntu 22.04.4 LTS")
	check("ID=alpine\nVERSION_ID=3.19.1\n", "alpine 3.19.1")
	check("VERSION_ID=\"9\"\n", "Linux 9")
	check("NAME=Custom\n", "Linux")
	check("", "")
}

func TestParseCPUModel(t *testing.T) {
	const cpuinfo = `processor	: 0
vendor_id	: GenuineIntel
model name	: Intel(R) Core(TM) i7-9750H CPU @ 2.60GHz

processor	: 1
model name	: Intel(R) Core(TM) i7-9750H CPU @ 2.60GHz
`
	if got, want := parseCPUModel(cpuinfo), "Intel(R) Core(TM) i7-9750H CPU @ 2.60GHz"; got != want {
		t.Errorf("parseCPUModel = %q, want %q", got, want)
	}
	if got := parseCPUModel("processor : 0\n"); got != "" {
		t.Errorf("parseCPUModel without model = %q", got)
	}
}
