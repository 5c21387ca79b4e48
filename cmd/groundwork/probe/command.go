// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package probe implements "groundwork probe", the read-only
// inventory of the host: tool versions, stack port states, and
// machine resources.
package probe

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/groundwork-dev/groundwork/cmd/groundwork/cli"
	"github.com/groundwork-dev/groundwork/lib/probe"
	"github.com/groundwork-dev/groundwork/lib/require"
)

type commandParams struct {
	cli.JSONOutput
	Root string `json:"root" flag:"root" default:"." desc:"project root for the free-disk figure"`
}

// Command returns the "groundwork probe" command.
func Command() *cli.Command {
	var params commandParams

	return &cli.Command{
		Name:    "probe",
		Summary: "Inventory installed tools, stack ports, and machine resources",
		Description: `Take a read-only snapshot of the host: which stack tools are installed
and at what version, whether the stack's ports are free, and how much
RAM, CPU, and disk the machine has. Changes nothing.

Exits non-zero when a hard requirement is unmet; run
'groundwork install' to repair, or 'groundwork verify' for the full
judged checklist.`,
		Usage: "groundwork probe [flags]",
		Examples: []cli.Example{
			{
				Description: "Inventory the host",
				Command:     "groundwork probe",
			},
			{
				Description: "Machine-readable snapshot",
				Command:     "groundwork probe --json",
			},
		},
		Params: func() any { return &params },
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			return runProbe(ctx, params)
		},
	}
}

func runProbe(ctx context.Context, params commandParams) error {
	snapshot := probe.Probe(ctx, params.Root)
	unmet := require.Resolve(snapshot, require.Defaults)

	// Ambiguous versions are warnings, not unmet hard requirements.
	hardUnmet := 0
	for _, requirement := range unmet {
		if require.Evaluate(snapshot, requirement) != require.Ambiguous {
			hardUnmet++
		}
	}

	if done, err := params.EmitJSON(snapshot); done {
		if err != nil {
			return err
		}
		if hardUnmet > 0 {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	printSnapshot(snapshot)

	if hardUnmet > 0 {
		fmt.Printf("\n%d hard requirement(s) unmet; run 'groundwork install'.\n", hardUnmet)
		return &cli.ExitError{Code: 1}
	}
	fmt.Println("\nAll hard requirements present.")
	return nil
}

// printSnapshot renders the snapshot as observation sections. Order is
// fixed by the probe's tool and port tables, so output diffs cleanly
// across runs.
func printSnapshot(snapshot probe.Snapshot) {
	tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)

	fmt.Fprintln(tw, "Tools:")
	for _, name := range probe.ToolNames() {
		tool := snapshot.Tools[name]
		switch {
		case !tool.Present:
			fmt.Fprintf(tw, "  %s\tnot found\n", name)
		case tool.VersionKnown:
			fmt.Fprintf(tw, "  %s\t%s\n", name, tool.Version)
		default:
			fmt.Fprintf(tw, "  %s\tpresent (version unknown)\n", name)
		}
	}

	fmt.Fprintln(tw, "\nPorts:")
	for _, port := range snapshot.Ports {
		fmt.Fprintf(tw, "  %d (%s)\t%s\n", port.Port, port.Label, port.State)
	}

	fmt.Fprintln(tw, "\nResources:")
	fmt.Fprintf(tw, "  memory\t%s\n", orUnknown(snapshot.Resources.MemTotalBytes))
	if snapshot.Resources.CPUCount > 0 {
		fmt.Fprintf(tw, "  cpus\t%d\n", snapshot.Resources.CPUCount)
	} else {
		fmt.Fprintf(tw, "  cpus\tunknown\n")
	}
	fmt.Fprintf(tw, "  disk free\t%s\n", orUnknown(snapshot.Resources.DiskFreeBytes))

	tw.Flush()
}

func orUnknown(bytes uint64) string {
	if bytes == 0 {
		return "unknown"
	}
	return humanize.IBytes(bytes)
}
