// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the groundwork CLI:
// a dispatchable command tree with structured help, struct-tag flag
// binding over pflag, JSON output mode, categorized command errors,
// and a terminal-aware slog logger.
//
// Commands declare their parameters as a struct with flag/desc/default
// tags and hand a constructor to [Command.Params]; the framework binds
// the flags, parses them, and invokes Run with the remaining
// positional arguments.
package cli
