// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package verify

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli/checkup"
	"github.com/groundwork-dev/groundwork/lib/probe"
	"github.com/groundwork-dev/groundwork/lib/require"
)

// Recommended resource floors. Shortfalls warn rather than fail: the
// stack degrades on a thin machine, it does not refuse to run.
const (
	minMemoryBytes   = 8 << 30
	minCPUs          = 4
	minDiskFreeBytes = 10 << 30
)

// Run probes the host and reports the full checklist. root anchors the
// free-disk figure.
func Run(ctx context.Context, root string) []checkup.Result {
	return Report(probe.Probe(ctx, root))
}

// Report renders a snapshot as checklist results in fixed order:
// requirement categories first, then ports, then resources. Pure, so
// callers that already hold a snapshot (or tests) skip the probe.
func Report(snapshot probe.Snapshot) []checkup.Result {
	var results []checkup.Result
	for _, category := range []require.Category{
		require.CategoryCore, require.CategoryBuild, require.CategoryDev,
	} {
		for _, requirement := range require.ByCategory(require.Defaults, category) {
			results = append(results, toolResult(snapshot, requirement))
		}
	}
	for _, port := range snapshot.Ports {
		results = append(results, portResult(port))
	}
	return append(results, resourceResults(snapshot.Resources)...)
}

func toolResult(snapshot probe.Snapshot, requirement require.Requirement) checkup.Result {
	name := requirement.Capability
	tool := snapshot.Tools[name]

	switch require.Evaluate(snapshot, requirement) {
	case require.Satisfied:
		if tool.VersionKnown {
			return checkup.Pass(name, "version "+tool.Version)
		}
		return checkup.Pass(name, "present")
	case require.BelowMinimum:
		return checkup.FailHint(name,
			fmt.Sprintf("version %s is below the required major %d",
				tool.Version, requirement.MinMajor),
			requirement.Hint)
	case require.Ambiguous:
		return checkup.WarnHint(name,
			fmt.Sprintf("present, but the version banner could not be parsed;"+
				" minimum major %d is unverified", requirement.MinMajor),
			requirement.Hint)
	default:
		return checkup.FailHint(name, "not found on PATH", requirement.Hint)
	}
}

func portResult(port probe.Port) checkup.Result {
	name := fmt.Sprintf("port %d (%s)", port.Port, port.Label)
	switch port.State {
	case probe.PortFree:
		return checkup.Pass(name, "free")
	case probe.PortListening:
		return checkup.FailHint(name, "already has a listener",
			"stop the conflicting service or free the port before starting the stack")
	default:
		return checkup.Warn(name, "listening state could not be determined")
	}
}

// resourceResults checks RAM, CPU count, and free disk against the
// recommended floors. A zero figure means the probe could not
// determine it; that warns with a manual-check nudge instead of
// pretending the machine is fine.
func resourceResults(resources probe.Resources) []checkup.Result {
	var results []checkup.Result

	switch {
	case resources.MemTotalBytes == 0:
		results = append(results, checkup.Warn("memory",
			"total RAM could not be determined; "+
				humanize.IBytes(minMemoryBytes)+" is recommended"))
	case resources.MemTotalBytes < minMemoryBytes:
		results = append(results, checkup.Warn("memory",
			fmt.Sprintf("%s total RAM is below the recommended %s",
				humanize.IBytes(resources.MemTotalBytes), humanize.IBytes(minMemoryBytes))))
	default:
		results = append(results, checkup.Pass("memory",
			humanize.IBytes(resources.MemTotalBytes)+" total"))
	}

	switch {
	case resources.CPUCount == 0:
		results = append(results, checkup.Warn("cpus",
			fmt.Sprintf("CPU count could not be determined; %d are recommended", minCPUs)))
	case resources.CPUCount < minCPUs:
		results = append(results, checkup.Warn("cpus",
			fmt.Sprintf("%d CPUs is below the recommended %d", resources.CPUCount, minCPUs)))
	default:
		results = append(results, checkup.Pass("cpus",
			fmt.Sprintf("%d available", resources.CPUCount)))
	}

	switch {
	case resources.DiskFreeBytes == 0:
		results = append(results, checkup.Warn("disk space",
			"free disk space could not be determined; "+
				humanize.IBytes(minDiskFreeBytes)+" is recommended"))
	case resources.DiskFreeBytes < minDiskFreeBytes:
		results = append(results, checkup.Warn("disk space",
			fmt.Sprintf("%s free is below the recommended %s",
				humanize.IBytes(resources.DiskFreeBytes), humanize.IBytes(minDiskFreeBytes))))
	default:
		results = append(results, checkup.Pass("disk space",
			humanize.IBytes(resources.DiskFreeBytes)+" free"))
	}

	return results
}
