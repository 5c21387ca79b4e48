// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"os/exec"
	"sync"
	"time"
)

// Tool is the detection result for a single capability binary.
type Tool struct {
	// Name is the capability name (e.g. "java", "docker-compose").
	Name string `json:"name"`

	// Present is true when the executable was found.
	Present bool `json:"present"`

	// Version is the extracted version token (e.g. "21.0.2"). Empty
	// when the tool is absent or the banner could not be parsed.
	Version string `json:"version,omitempty"`

	// Major is the major version component. Only meaningful when
	// VersionKnown is true.
	Major int `json:"major,omitempty"`

	// VersionKnown is false when the tool is present but its version
	// banner could not be parsed. Callers must treat an unknown
	// version as satisfying presence only, never a minimum version.
	VersionKnown bool `json:"version_known"`
}

// Snapshot is a read-only capture of machine state. A new Probe call
// produces a new snapshot; snapshots are never mutated in place.
type Snapshot struct {
	Tools     map[string]Tool `json:"tools"`
	Ports     []Port          `json:"ports"`
	Resources Resources       `json:"resources"`
	Taken     time.Time       `json:"taken"`
}

// Runner executes external probe commands. The production
// implementation shells out; tests substitute a fake.
type Runner interface {
	// LookPath reports the absolute path of an executable, or an
	// error when it is not on PATH.
	LookPath(name string) (string, error)

	// CombinedOutput runs a command and returns its combined
	// stdout+stderr. Version banners frequently go to stderr
	// (java -version), so the streams are never separated.
	CombinedOutput(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (ExecRunner) CombinedOutput(ctx context.Context, name string, args ...string) (string, error) {
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return string(output), err
}

// toolSpec describes how to detect one capability.
type toolSpec struct {
	name        string
	binary      string
	versionArgs []string

	// viaSubcommand marks capabilities that live behind a subcommand
	// of another binary (docker compose). For those, presence requires
	// the version command to succeed, not just the binary to exist.
	viaSubcommand bool
}

// toolSpecs is the fixed list of probed capabilities. The order here
// is the report order; it never changes at runtime.
var toolSpecs = []toolSpec{
	{name: "git", binary: "git", versionArgs: []string{"--version"}},
	{name: "java", binary: "java", versionArgs: []string{"-version"}},
	{name: "docker", binary: "docker", versionArgs: []string{"--version"}},
	{name: "docker-compose", binary: "docker", versionArgs: []string{"compose", "version"}, viaSubcommand: true},
	{name: "gradle", binary: "gradle", versionArgs: []string{"--version"}},
	{name: "node", binary: "node", versionArgs: []string{"--version"}},
	{name: "npm", binary: "npm", versionArgs: []string{"--version"}},
	{name: "openapi-generator", binary: "openapi-generator-cli", versionArgs: []string{"version"}},
}

// Probe captures a fresh snapshot of the host: tool versions,
// listening state of the stack's ports, and machine resources. root is
// the project root used for the free-disk figure.
func Probe(ctx context.Context, root string) Snapshot {
	return probeWith(ctx, ExecRunner{}, "/proc", root)
}

// probeWith is the testable implementation of Probe. It accepts a
// runner and a /proc root so tests can substitute fakes.
func probeWith(ctx context.Context, runner Runner, procRoot, root string) Snapshot {
	snapshot := Snapshot{
		Tools: make(map[string]Tool, len(toolSpecs)),
		Taken: time.Now(),
	}

	// Tool probes are independent; run them concurrently and collect
	// into index-addressed slots so the result never depends on
	// completion order. Failures are recorded in the slot, never
	// propagated.
	tools := make([]Tool, len(toolSpecs))
	var group sync.WaitGroup
	for i, spec := range toolSpecs {
		i, spec := i, spec
		group.Add(1)
		go func() {
			defer group.Done()
			tools[i] = probeTool(ctx, runner, spec)
		}()
	}
	group.Wait()

	for _, tool := range tools {
		snapshot.Tools[tool.Name] = tool
	}

	snapshot.Ports = probePorts(ctx, runner, procRoot)
	snapshot.Resources = probeResources(procRoot, root)

	return snapshot
}

// probeTool detects a single capability and extracts its version.
func probeTool(ctx context.Context, runner Runner, spec toolSpec) Tool {
	tool := Tool{Name: spec.name}

	if _, err := runner.LookPath(spec.binary); err != nil {
		return tool
	}

	banner, err := runner.CombinedOutput(ctx, spec.binary, spec.versionArgs...)
	if err != nil {
		if spec.viaSubcommand {
			// The host binary exists but the subcommand does not
			// (e.g. docker without the compose plugin).
			return tool
		}
		// The binary exists; treat a failing version command the same
		// as an unparseable banner.
		tool.Present = true
		return tool
	}

	tool.Present = true
	major, token, ok := extractVersion(banner)
	if ok {
		tool.Version = token
		tool.Major = major
		tool.VersionKnown = true
	}
	return tool
}

// ToolNames returns the probed capability names in report order.
func ToolNames() []string {
	names := make([]string, len(toolSpecs))
	for i, spec := range toolSpecs {
		names[i] = spec.name
	}
	return names
}
