// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package require

import (
	"testing"

	"github.com/groundwork-dev/groundwork/lib/probe"
)

func snapshotWith(tools ...probe.Tool) probe.Snapshot {
	snapshot := probe.Snapshot{Tools: make(map[string]probe.Tool)}
	for _, tool := range tools {
		snapshot.Tools[tool.Name] = tool
	}
	return snapshot
}

func TestEvaluate(t *testing.T) {
	presence := Requirement{Capability: "git", Category: CategoryCore}
	versioned := Requirement{Capability: "java", MinMajor: 21, Category: CategoryCore}

	tests := []struct {
		name        string
		snapshot    probe.Snapshot
		requirement Requirement
		want        Evaluation
	}{
		{
			name:        "present satisfies presence-only",
			snapshot:    snapshotWith(probe.Tool{Name: "git", Present: true}),
			requirement: presence,
			want:        Satisfied,
		},
		{
			name:        "absent",
			snapshot:    snapshotWith(probe.Tool{Name: "git"}),
			requirement: presence,
			want:        Absent,
		},
		{
			name:        "missing from snapshot is absent",
			snapshot:    snapshotWith(),
			requirement: presence,
			want:        Absent,
		},
		{
			name: "meets minimum",
			snapshot: snapshotWith(probe.Tool{
				Name: "java", Present: true, Major: 21, VersionKnown: true}),
			requirement: versioned,
			want:        Satisfied,
		},
		{
			name: "below minimum",
			snapshot: snapshotWith(probe.Tool{
				Name: "java", Present: true, Major: 17, VersionKnown: true}),
			requirement: versioned,
			want:        BelowMinimum,
		},
		{
			name: "unknown version never satisfies a minimum",
			snapshot: snapshotWith(probe.Tool{
				Name: "java", Present: true, VersionKnown: false}),
			requirement: versioned,
			want:        Ambiguous,
		},
		{
			name: "unknown version satisfies presence-only",
			snapshot: snapshotWith(probe.Tool{
				Name: "git", Present: true, VersionKnown: false}),
			requirement: presence,
			want:        Satisfied,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Evaluate(test.snapshot, test.requirement); got != test.want {
				t.Errorf("Evaluate = %v, want %v", got, test.want)
			}
		})
	}
}

func TestResolvePreservesOrderAndDedups(t *testing.T) {
	snapshot := snapshotWith(
		probe.Tool{Name: "git", Present: true},
		probe.Tool{Name: "java", Present: true, Major: 17, VersionKnown: true},
	)

	requirements := []Requirement{
		{Capability: "node", MinMajor: 20, Category: CategoryDev},
		{Capability: "java", MinMajor: 21, Category: CategoryCore},
		{Capability: "git", Category: CategoryCore},
		{Capability: "node", MinMajor: 20, Category: CategoryDev}, // duplicate
	}

	unmet := Resolve(snapshot, requirements)
	if len(unmet) != 2 {
		t.Fatalf("len(unmet) = %d, want 2: %+v", len(unmet), unmet)
	}
	if unmet[0].Capability != "node" || unmet[1].Capability != "java" {
		t.Errorf("unmet order = [%s %s], want [node java]",
			unmet[0].Capability, unmet[1].Capability)
	}
}

func TestResolveAllSatisfied(t *testing.T) {
	snapshot := snapshotWith(probe.Tool{
		Name: "git", Present: true, Major: 2, VersionKnown: true})
	if unmet := Resolve(snapshot, []Requirement{{Capability: "git"}}); len(unmet) != 0 {
		t.Errorf("unmet = %+v, want empty", unmet)
	}
}

func TestDefaultsShape(t *testing.T) {
	if len(Defaults) != 8 {
		t.Fatalf("len(Defaults) = %d, want 8", len(Defaults))
	}
	core := ByCategory(Defaults, CategoryCore)
	if len(core) != 4 {
		t.Errorf("core tools = %d, want 4", len(core))
	}
	for _, requirement := range Defaults {
		if requirement.Hint == "" {
			t.Errorf("%s has no remediation hint", requirement.Capability)
		}
	}
}
