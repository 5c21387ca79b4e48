// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"testing"

	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli/checkup"
	"github.com/groundwork-dev/groundwork/lib/probe"
	"github.com/groundwork-dev/groundwork/lib/require"
)

// healthySnapshot satisfies every requirement, leaves every port free,
// and sits above all resource floors.
func healthySnapshot() probe.Snapshot {
	snapshot := probe.Snapshot{Tools: make(map[string]probe.Tool)}
	for _, requirement := range require.Defaults {
		major := requirement.MinMajor
		if major == 0 {
			major = 1
		}
		snapshot.Tools[requirement.Capability] = probe.Tool{
			Name:         requirement.Capability,
			Present:      true,
			Version:      "99.0",
			Major:        major,
			VersionKnown: true,
		}
	}
	snapshot.Ports = []probe.Port{
		{Port: 5432, Label: "postgres", State: probe.PortFree},
		{Port: 8080, Label: "gateway", State: probe.PortFree},
	}
	snapshot.Resources = probe.Resources{
		MemTotalBytes: 16 << 30,
		CPUCount:      8,
		DiskFreeBytes: 100 << 30,
	}
	return snapshot
}

func resultFor(results []checkup.Result, name string) checkup.Result {
	for _, result := range results {
		if result.Name == name {
			return result
		}
	}
	return checkup.Result{}
}

func TestReportHealthyHost(t *testing.T) {
	results := Report(healthySnapshot())
	summary := checkup.Summarize(results)
	if !summary.OK || summary.Warned != 0 {
		t.Errorf("summary = %+v, want all pass", summary)
	}
	// Requirements, two ports, three resource checks.
	want := len(require.Defaults) + 2 + 3
	if len(results) != want {
		t.Errorf("len(results) = %d, want %d", len(results), want)
	}
}

func TestReportCategoryOrder(t *testing.T) {
	results := Report(healthySnapshot())

	// Tools come first in category order: the four core tools, then
	// gradle, then the dev tools.
	wantPrefix := []string{"git", "java", "docker", "docker-compose", "gradle", "node", "npm", "openapi-generator"}
	for i, name := range wantPrefix {
		if results[i].Name != name {
			t.Fatalf("results[%d] = %q, want %q", i, results[i].Name, name)
		}
	}
	// Ports follow the tools; resources close the report.
	if results[len(wantPrefix)].Name != "port 5432 (postgres)" {
		t.Errorf("first port check = %q", results[len(wantPrefix)].Name)
	}
	if results[len(results)-1].Name != "disk space" {
		t.Errorf("last check = %q, want disk space", results[len(results)-1].Name)
	}
}

func TestReportMissingTool(t *testing.T) {
	snapshot := healthySnapshot()
	delete(snapshot.Tools, "java")

	results := Report(snapshot)
	result := resultFor(results, "java")
	if result.Status != checkup.StatusFail {
		t.Errorf("java = %+v, want fail", result)
	}
	if result.Hint == "" {
		t.Error("missing tool carries no remediation hint")
	}
	if checkup.Summarize(results).OK {
		t.Error("summary OK with a missing hard requirement")
	}
}

func TestReportBelowMinimum(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.Tools["node"] = probe.Tool{
		Name: "node", Present: true, Version: "18.19.0", Major: 18, VersionKnown: true}

	result := resultFor(Report(snapshot), "node")
	if result.Status != checkup.StatusFail {
		t.Errorf("node = %+v, want fail below minimum", result)
	}
}

func TestReportUnknownVersionWarns(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.Tools["gradle"] = probe.Tool{Name: "gradle", Present: true}

	results := Report(snapshot)
	result := resultFor(results, "gradle")
	if result.Status != checkup.StatusWarn {
		t.Errorf("gradle = %+v, want warn for unknown version", result)
	}
	// A warning alone must not fail the run.
	if !checkup.Summarize(results).OK {
		t.Error("summary not OK for a warn-only report")
	}
}

func TestReportBoundPortFails(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.Ports[0].State = probe.PortListening

	result := resultFor(Report(snapshot), "port 5432 (postgres)")
	if result.Status != checkup.StatusFail {
		t.Errorf("bound port = %+v, want fail", result)
	}
}

func TestReportUnknownPortStateWarns(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.Ports[0].State = probe.PortUnknown

	result := resultFor(Report(snapshot), "port 5432 (postgres)")
	if result.Status != checkup.StatusWarn {
		t.Errorf("unknown port state = %+v, want warn", result)
	}
}

func TestReportResourceShortfallsWarn(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.Resources = probe.Resources{
		MemTotalBytes: 4 << 30,
		CPUCount:      2,
		DiskFreeBytes: 1 << 30,
	}

	results := Report(snapshot)
	for _, name := range []string{"memory", "cpus", "disk space"} {
		if result := resultFor(results, name); result.Status != checkup.StatusWarn {
			t.Errorf("%s = %+v, want warn", name, result)
		}
	}
	if !checkup.Summarize(results).OK {
		t.Error("resource shortfalls alone failed the run")
	}
}

func TestReportUndetectedResourcesWarn(t *testing.T) {
	snapshot := healthySnapshot()
	snapshot.Resources = probe.Resources{}

	results := Report(snapshot)
	for _, name := range []string{"memory", "cpus", "disk space"} {
		if result := resultFor(results, name); result.Status != checkup.StatusWarn {
			t.Errorf("%s = %+v, want warn for undetected figure", name, result)
		}
	}
}
