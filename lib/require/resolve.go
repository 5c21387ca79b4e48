// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package require

import "github.com/groundwork-dev/groundwork/lib/probe"

// Evaluation classifies one requirement against one snapshot entry.
type Evaluation int

const (
	// Satisfied: present, and meets the minimum version if one is set.
	Satisfied Evaluation = iota

	// Absent: the capability's executable was not found.
	Absent

	// BelowMinimum: present with a parsed version below the minimum.
	BelowMinimum

	// Ambiguous: present, a minimum version is required, but the
	// version banner could not be parsed. Never treated as satisfied.
	Ambiguous
)

// Evaluate classifies a requirement against a snapshot. A capability
// missing from the snapshot entirely evaluates as Absent.
func Evaluate(snapshot probe.Snapshot, requirement Requirement) Evaluation {
	tool, ok := snapshot.Tools[requirement.Capability]
	if !ok || !tool.Present {
		return Absent
	}
	if requirement.PresenceOnly() {
		return Satisfied
	}
	if !tool.VersionKnown {
		return Ambiguous
	}
	if tool.Major < requirement.MinMajor {
		return BelowMinimum
	}
	return Satisfied
}

// Resolve returns the requirements unmet by the snapshot: absent,
// below minimum, or present with an unparseable version when a
// minimum is demanded. Pure function — evaluation order cannot affect
// the result, the output preserves requirement order, and duplicates
// in the input are collapsed.
func Resolve(snapshot probe.Snapshot, requirements []Requirement) []Requirement {
	seen := make(map[string]bool, len(requirements))
	var unmet []Requirement

	for _, requirement := range requirements {
		if seen[requirement.Capability] {
			continue
		}
		seen[requirement.Capability] = true

		if Evaluate(snapshot, requirement) != Satisfied {
			unmet = append(unmet, requirement)
		}
	}

	return unmet
}
