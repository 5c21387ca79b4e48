// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package scaffold implements "groundwork scaffold", the idempotent
// convergence of the project's directories, configs, and secrets.
package scaffold

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli"
	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli/checkup"
	"github.com/groundwork-dev/groundwork/lib/scaffold"
)

type commandParams struct {
	cli.JSONOutput
	Root     string `json:"root" flag:"root" default:"." desc:"project root to converge"`
	Manifest string `json:"manifest,omitempty" flag:"manifest" desc:"YAML manifest with extra desired entries"`
}

// Command returns the "groundwork scaffold" command.
func Command() *cli.Command {
	var params commandParams

	return &cli.Command{
		Name:    "scaffold",
		Summary: "Converge project directories, configs, and secrets",
		Description: `Bring the project root to the desired on-disk state: the directory
skeleton, static service configs, generated credentials, and the files
derived from them (.env, admin.htpasswd).

Safe to run any number of times. Existing files are never overwritten
or regenerated; a secret that still carries a placeholder value is
reported as a warning for manual attention.`,
		Usage: "groundwork scaffold [flags]",
		Examples: []cli.Example{
			{
				Description: "Converge the current directory",
				Command:     "groundwork scaffold",
			},
			{
				Description: "Converge with project-specific additions",
				Command:     "groundwork scaffold --manifest extra.yaml",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runScaffold(params, logger)
		},
	}
}

func runScaffold(params commandParams, logger *slog.Logger) error {
	entries := scaffold.DefaultManifest()
	if params.Manifest != "" {
		extra, err := scaffold.LoadManifest(params.Manifest)
		if err != nil {
			return cli.Validation("load manifest: %v", err)
		}
		entries = append(entries, extra...)
	}

	result, err := scaffold.Converge(entries, params.Root)
	if err != nil {
		return fmt.Errorf("converge %s: %w", params.Root, err)
	}

	logger.Info("scaffold converged",
		"created", len(result.Created),
		"satisfied", len(result.Satisfied),
		"warnings", len(result.Warnings))

	if done, err := params.EmitJSON(result); done {
		return err
	}

	var results []checkup.Result
	for _, path := range result.Created {
		results = append(results, checkup.Fixed(path, "created"))
	}
	for _, path := range result.Satisfied {
		results = append(results, checkup.Pass(path, "already present"))
	}
	for _, warning := range result.Warnings {
		results = append(results, checkup.Warn("placeholder", warning))
	}
	checkup.PrintChecklist(os.Stdout, results)
	return nil
}
