// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package installer maps unmet capability requirements to OS-specific
// installation actions and dispatches them.
//
// Actions live in a single capability-keyed table resolved against the
// host's OS family once at startup — there is no per-stage OS
// branching. A capability with no action for the host family is
// skipped with a reason, never attempted. Attempts are independent:
// one failure does not prevent the others, and nothing is retried.
//
// Success is confirmed by re-probing the capability afterwards, not by
// the installer's exit code. Package managers may exit 0 while leaving
// a capability effectively unusable (e.g. the daemon group change
// requires a new login session).
package installer
