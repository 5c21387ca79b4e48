// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package checkup provides shared infrastructure for groundwork's
// diagnostic commands (probe, install, verify).
//
// Each command runs a series of checks and reports results in a
// consistent format. The package provides:
//
//   - [Result] type with status, message, and optional remediation hint
//   - Constructors: [Pass], [Fail], [FailHint], [Warn], [Skip], [Fixed]
//   - [Summarize] for the aggregate pass/warn/fail rule
//   - [PrintChecklist] for human-readable output
//   - [BuildJSON] for machine-readable output
//
// Domain-specific checks (what to probe, how to evaluate) live in
// lib/verify and the command packages. This package provides only the
// reporting infrastructure. Output ordering is whatever order the
// caller appends results in — callers are responsible for keeping that
// order fixed across runs so reports stay diffable.
package checkup
