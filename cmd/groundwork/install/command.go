// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package install implements "groundwork install": probe, resolve
// the unmet requirements, and dispatch install actions for them.
package install

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli"
	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli/checkup"
	"github.com/groundwork-dev/groundwork/lib/installer"
	"github.com/groundwork-dev/groundwork/lib/probe"
	"github.com/groundwork-dev/groundwork/lib/require"
)

type commandParams struct {
	cli.JSONOutput
	DryRun bool   `json:"dry_run" flag:"dry-run" desc:"print the install actions without executing them"`
	Root   string `json:"root" flag:"root" default:"." desc:"project root for the re-probe"`
}

// Command returns the "groundwork install" command.
func Command() *cli.Command {
	var params commandParams

	return &cli.Command{
		Name:    "install",
		Summary: "Install the stack requirements the host is missing",
		Description: `Probe the host, resolve which requirements are unmet, and run the
install action for each on this OS family. Already-satisfied
requirements are never touched. Failures are reported per capability
and never abort the remaining attempts; success is confirmed by a
re-probe, not by the package manager's exit code.

Capabilities with no install action on this OS family (e.g. Docker on
macOS) are reported with a manual-install hint.`,
		Usage: "groundwork install [flags]",
		Examples: []cli.Example{
			{
				Description: "Install whatever is missing",
				Command:     "groundwork install",
			},
			{
				Description: "Preview the actions without running them",
				Command:     "groundwork install --dry-run",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runInstall(ctx, params, logger)
		},
	}
}

func runInstall(ctx context.Context, params commandParams, logger *slog.Logger) error {
	snapshot := probe.Probe(ctx, params.Root)
	unmet := require.Resolve(snapshot, require.Defaults)
	family := installer.DetectFamily()

	if len(unmet) == 0 {
		if done, err := params.EmitJSON(checkup.BuildJSON([]checkup.Result{})); done {
			return err
		}
		fmt.Println("All requirements already satisfied; nothing to install.")
		return nil
	}

	if params.DryRun {
		return printPlan(params, unmet, family)
	}

	outcomes := installer.Install(ctx, unmet, family, installer.ExecRunner{},
		func(ctx context.Context) probe.Snapshot {
			return probe.Probe(ctx, params.Root)
		}, logger)

	// Render outcomes in requirement order, never map order.
	var results []checkup.Result
	for _, requirement := range unmet {
		outcome := outcomes[requirement.Capability]
		if outcome.Status == installer.StatusInstalled {
			results = append(results, checkup.Fixed(requirement.Capability, "installed"))
			continue
		}
		// Both failed and skipped leave the requirement unmet; the
		// reason distinguishes them and the hint carries the manual fix.
		results = append(results, checkup.FailHint(requirement.Capability,
			outcome.Reason, requirement.Hint))
	}

	if done, err := params.EmitJSON(checkup.BuildJSON(results)); done {
		if err != nil {
			return err
		}
		if !checkup.Summarize(results).OK {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	if summary := checkup.PrintChecklist(os.Stdout, results); !summary.OK {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

// printPlan renders the dry-run plan: one block per capability with
// the argv lines that a real run would execute.
func printPlan(params commandParams, unmet []require.Requirement, family installer.Family) error {
	capabilities := make([]string, len(unmet))
	for i, requirement := range unmet {
		capabilities[i] = requirement.Capability
	}
	planned := installer.Plan(capabilities, family)

	if done, err := params.EmitJSON(planned); done {
		return err
	}

	fmt.Printf("OS family: %s\n\n", family)
	for _, action := range planned {
		if action.SkipReason != "" {
			fmt.Printf("%s: %s\n", action.Capability, action.SkipReason)
			continue
		}
		fmt.Printf("%s:\n", action.Capability)
		for _, command := range action.Commands {
			fmt.Printf("  %s\n", strings.Join(command, " "))
		}
	}
	return nil
}
