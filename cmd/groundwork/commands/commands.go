// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete groundwork CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	cleancmd "github.com/groundwork-dev/groundwork/cmd/groundwork/clean"
	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli"
	installcmd "github.com/groundwork-dev/groundwork/cmd/groundwork/install"
	probecmd "github.com/groundwork-dev/groundwork/cmd/groundwork/probe"
	scaffoldcmd "github.com/groundwork-dev/groundwork/cmd/groundwork/scaffold"
	verifycmd "github.com/groundwork-dev/groundwork/cmd/groundwork/verify"
	"github.com/groundwork-dev/groundwork/lib/version"
)

// Root builds and returns the complete groundwork CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "groundwork",
		Description: `Groundwork: local development stack bootstrap.

Probe the host for required tools, ports, and resources; install what
is missing; converge the project scaffold and secrets; and verify the
result as a pass/warn/fail checklist.`,
		Subcommands: []*cli.Command{
			probecmd.Command(),
			installcmd.Command(),
			scaffoldcmd.Command(),
			verifycmd.Command(),
			cleancmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("groundwork %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "See what the host is missing",
				Command:     "groundwork verify",
			},
			{
				Description: "Install the missing requirements",
				Command:     "groundwork install",
			},
			{
				Description: "Create the project scaffold and secrets",
				Command:     "groundwork scaffold",
			},
		},
	}
}
