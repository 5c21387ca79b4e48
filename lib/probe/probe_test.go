// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeRunner is an in-memory Runner. paths lists binaries "on PATH";
// outputs maps a full command line to its banner; a command line in
// failures errors instead.
type fakeRunner struct {
	paths    map[string]bool
	outputs  map[string]string
	failures map[string]bool
}

func (f fakeRunner) LookPath(name string) (string, error) {
	if f.paths[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f fakeRunner) CombinedOutput(_ context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	if f.failures[key] {
		return "", errors.New("exit status 1")
	}
	if output, ok := f.outputs[key]; ok {
		return output, nil
	}
	return "", errors.New("exit status 127")
}

func TestProbeTool(t *testing.T) {
	gitSpec := toolSpec{name: "git", binary: "git", versionArgs: []string{"--version"}}
	composeSpec := toolSpec{name: "docker-compose", binary: "docker",
		versionArgs: []string{"compose", "version"}, viaSubcommand: true}

	t.Run("absent binary", func(t *testing.T) {
		tool := probeTool(context.Background(), fakeRunner{}, gitSpec)
		if tool.Present {
			t.Error("Present = true for missing binary")
		}
	})

	t.Run("present with version", func(t *testing.T) {
		runner := fakeRunner{
			paths:   map[string]bool{"git": true},
			outputs: map[string]string{"git --version": "git version 2.43.0\n"},
		}
		tool := probeTool(context.Background(), runner, gitSpec)
		if !tool.Present || !tool.VersionKnown {
			t.Fatalf("tool = %+v, want present with known version", tool)
		}
		if tool.Major != 2 || tool.Version != "2.43.0" {
			t.Errorf("version = %s (major %d), want 2.43.0 (major 2)", tool.Version, tool.Major)
		}
	})

	t.Run("present with unparseable banner", func(t *testing.T) {
		runner := fakeRunner{
			paths:   map[string]bool{"git": true},
			outputs: map[string]string{"git --version": "no idea\n"},
		}
		tool := probeTool(context.Background(), runner, gitSpec)
		if !tool.Present {
			t.Fatal("Present = false")
		}
		if tool.VersionKnown {
			t.Error("VersionKnown = true for unparseable banner")
		}
	})

	t.Run("version command fails on direct binary", func(t *testing.T) {
		runner := fakeRunner{
			paths:    map[string]bool{"git": true},
			failures: map[string]bool{"git --version": true},
		}
		tool := probeTool(context.Background(), runner, gitSpec)
		if !tool.Present || tool.VersionKnown {
			t.Errorf("tool = %+v, want present with unknown version", tool)
		}
	})

	t.Run("subcommand capability absent when subcommand fails", func(t *testing.T) {
		// docker exists but the compose plugin is not installed.
		runner := fakeRunner{
			paths:    map[string]bool{"docker": true},
			failures: map[string]bool{"docker compose version": true},
		}
		tool := probeTool(context.Background(), runner, composeSpec)
		if tool.Present {
			t.Error("Present = true for missing compose plugin")
		}
	})

	t.Run("subcommand capability present", func(t *testing.T) {
		runner := fakeRunner{
			paths:   map[string]bool{"docker": true},
			outputs: map[string]string{"docker compose version": "Docker Compose version v2.24.5\n"},
		}
		tool := probeTool(context.Background(), runner, composeSpec)
		if !tool.Present || tool.Major != 2 {
			t.Errorf("tool = %+v, want present major 2", tool)
		}
	})
}

func TestProbeWithBuildsFullSnapshot(t *testing.T) {
	procRoot := writeProcRoot(t, procTCPHeader+procTCPLine(5432, "0A"), "")
	meminfo := "MemTotal:       16316420 kB\nMemFree:         1234 kB\n"
	if err := os.WriteFile(filepath.Join(procRoot, "meminfo"), []byte(meminfo), 0o644); err != nil {
		t.Fatal(err)
	}

	runner := fakeRunner{
		paths: map[string]bool{"git": true},
		outputs: map[string]string{
			"git --version": "git version 2.43.0\n",
		},
	}

	snapshot := probeWith(context.Background(), runner, procRoot, t.TempDir())

	// Every probed tool gets a slot whether present or not.
	if len(snapshot.Tools) != len(toolSpecs) {
		t.Errorf("len(Tools) = %d, want %d", len(snapshot.Tools), len(toolSpecs))
	}
	if !snapshot.Tools["git"].Present {
		t.Error("git not reported present")
	}
	if snapshot.Tools["java"].Present {
		t.Error("java reported present with empty PATH")
	}

	if len(snapshot.Ports) != len(stackPorts) {
		t.Errorf("len(Ports) = %d, want %d", len(snapshot.Ports), len(stackPorts))
	}
	if got := stateOf(snapshot.Ports, 5432); got != PortListening {
		t.Errorf("port 5432 = %q, want listening", got)
	}

	if want := uint64(16316420) * 1024; snapshot.Resources.MemTotalBytes != want {
		t.Errorf("MemTotalBytes = %d, want %d", snapshot.Resources.MemTotalBytes, want)
	}
	if snapshot.Resources.CPUCount < 1 {
		t.Errorf("CPUCount = %d, want >= 1", snapshot.Resources.CPUCount)
	}
	if snapshot.Taken.IsZero() {
		t.Error("Taken not stamped")
	}
}

func TestMemTotalBytes(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	if got := memTotalBytes(write("good", "MemTotal:       8000000 kB\n")); got != 8000000*1024 {
		t.Errorf("memTotalBytes = %d, want %d", got, 8000000*1024)
	}
	if got := memTotalBytes(write("malformed", "MemTotal: lots\n")); got != 0 {
		t.Errorf("memTotalBytes(malformed) = %d, want 0", got)
	}
	if got := memTotalBytes(write("missing line", "MemFree: 1 kB\n")); got != 0 {
		t.Errorf("memTotalBytes(no MemTotal) = %d, want 0", got)
	}
	if got := memTotalBytes(filepath.Join(dir, "absent")); got != 0 {
		t.Errorf("memTotalBytes(absent file) = %d, want 0", got)
	}
}

func TestToolNamesOrder(t *testing.T) {
	names := ToolNames()
	if len(names) != len(toolSpecs) {
		t.Fatalf("len = %d, want %d", len(names), len(toolSpecs))
	}
	if names[0] != "git" || names[len(names)-1] != "openapi-generator" {
		t.Errorf("unexpected order: %v", names)
	}
}
