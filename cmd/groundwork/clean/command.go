// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package clean implements "groundwork clean", the destructive
// removal of generated data volumes and secrets.
package clean

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli"
)

// confirmPhrase must be passed verbatim via --confirm. A phrase rather
// than a yes/no flag so the command cannot be triggered by a stray
// shell history replay.
const confirmPhrase = "delete groundwork data"

// cleanTargets are the directories removed, relative to the root. Only
// generated state: configs and templates survive a clean.
var cleanTargets = []string{"data", "secrets"}

type commandParams struct {
	Root    string `json:"root" flag:"root" default:"." desc:"project root to clean"`
	Confirm string `json:"-" flag:"confirm" desc:"confirmation phrase (required): 'delete groundwork data'"`
}

// Command returns the "groundwork clean" command.
func Command() *cli.Command {
	var params commandParams

	return &cli.Command{
		Name:    "clean",
		Summary: "Delete generated data volumes and secrets (destructive)",
		Description: `Remove the generated state under the project root: the data/ volume
directory and the secrets/ directory, including every generated
credential. Configs and templates are left in place; the next
'groundwork scaffold' regenerates fresh secrets.

Refuses to run without the literal confirmation phrase.`,
		Usage: "groundwork clean --confirm 'delete groundwork data' [flags]",
		Examples: []cli.Example{
			{
				Description: "Delete generated data and secrets",
				Command:     "groundwork clean --confirm 'delete groundwork data'",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runClean(params, logger)
		},
	}
}

func runClean(params commandParams, logger *slog.Logger) error {
	if params.Confirm != confirmPhrase {
		return cli.Validation("refusing to delete: pass --confirm %q", confirmPhrase)
	}

	for _, target := range cleanTargets {
		path := filepath.Join(params.Root, target)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Printf("%s/ not present\n", target)
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
		logger.Info("removed", "path", path)
		fmt.Printf("removed %s/\n", target)
	}
	return nil
}
