// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package installer

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/groundwork-dev/groundwork/lib/probe"
	"github.com/groundwork-dev/groundwork/lib/require"
)

// Status is the outcome classification for one capability.
type Status string

const (
	// StatusInstalled means the install commands ran and a re-probe
	// confirmed the requirement is now satisfied.
	StatusInstalled Status = "installed"

	// StatusFailed means an install command failed, or the commands
	// succeeded but the re-probe still finds the requirement unmet.
	StatusFailed Status = "failed"

	// StatusSkipped means no action exists for this capability on the
	// host's OS family. Nothing was attempted.
	StatusSkipped Status = "skipped"
)

// Outcome is the per-capability result of a dispatch run.
type Outcome struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Runner executes install commands. The production implementation
// shells out; tests substitute a fake.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner is the production Runner backed by os/exec. Command
// output is folded into the returned error on failure.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	output, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "),
			err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Install attempts to install each unmet requirement on the given OS
// family and returns a per-capability outcome map.
//
// Attempts are independent: a failure is recorded and the remaining
// capabilities are still attempted. Nothing is retried. After all
// attempts, reprobe is invoked once and each attempted capability is
// confirmed against the fresh snapshot — a command sequence that
// exited 0 but left the requirement unmet reports failed, not
// installed.
//
// On an unsupported family every capability maps to skipped; the
// caller decides whether that is fatal.
func Install(ctx context.Context, unmet []require.Requirement, family Family, runner Runner,
	reprobe func(context.Context) probe.Snapshot, logger *slog.Logger) map[string]Outcome {

	outcomes := make(map[string]Outcome, len(unmet))
	attempted := make([]require.Requirement, 0, len(unmet))

	for _, requirement := range unmet {
		commands, skipReason := lookupActions(requirement.Capability, family)
		if skipReason != "" {
			outcomes[requirement.Capability] = Outcome{Status: StatusSkipped, Reason: skipReason}
			continue
		}

		if err := runCommands(ctx, runner, commands); err != nil {
			logger.Warn("install action failed",
				"capability", requirement.Capability, "error", err)
			outcomes[requirement.Capability] = Outcome{Status: StatusFailed, Reason: err.Error()}
			continue
		}

		attempted = append(attempted, requirement)
	}

	if len(attempted) == 0 {
		return outcomes
	}

	// Confirm per capability against a fresh probe rather than
	// trusting installer exit codes.
	snapshot := reprobe(ctx)
	for _, requirement := range attempted {
		if require.Evaluate(snapshot, requirement) == require.Satisfied {
			outcomes[requirement.Capability] = Outcome{Status: StatusInstalled}
			continue
		}
		outcomes[requirement.Capability] = Outcome{
			Status: StatusFailed,
			Reason: "installer succeeded but re-probe still finds the requirement unmet" +
				" (a new login session may be required)",
		}
	}

	return outcomes
}

// runCommands executes a capability's command sequence in order,
// stopping at the first failure. Sequential on purpose: package
// managers hold global locks and do not tolerate concurrent runs.
func runCommands(ctx context.Context, runner Runner, commands [][]string) error {
	for _, command := range commands {
		if err := runner.Run(ctx, command[0], command[1:]...); err != nil {
			return err
		}
	}
	return nil
}
