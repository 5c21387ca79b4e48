// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package verify implements "groundwork verify", the full judged
// checklist over a fresh probe of the host.
package verify

import (
	"context"
	"log/slog"
	"os"

	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli"
	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli/checkup"
	"github.com/groundwork-dev/groundwork/lib/verify"
)

type commandParams struct {
	cli.JSONOutput
	Root string `json:"root" flag:"root" default:"." desc:"project root for the free-disk figure"`
}

// Command returns the "groundwork verify" command.
func Command() *cli.Command {
	var params commandParams

	return &cli.Command{
		Name:    "verify",
		Summary: "Probe the host and judge every requirement, port, and resource",
		Description: `Take a fresh snapshot and evaluate it against the stack's
requirements: tools by category, port availability, and machine
resources. Prints a deterministic checklist with remediation hints and
exits non-zero when any hard requirement fails. Warnings (unparseable
versions, thin resources) never fail the run.`,
		Usage: "groundwork verify [flags]",
		Examples: []cli.Example{
			{
				Description: "Verify the host",
				Command:     "groundwork verify",
			},
			{
				Description: "Machine-readable report",
				Command:     "groundwork verify --json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runVerify(ctx, params)
		},
	}
}

func runVerify(ctx context.Context, params commandParams) error {
	results := verify.Run(ctx, params.Root)

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
