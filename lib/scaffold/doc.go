// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package scaffold converges a project's on-disk structure and secret
// material to a desired state without disturbing anything that already
// exists.
//
// The desired state is an ordered sequence of entries: directories,
// then template files, then generated secrets, then derived files
// whose content embeds secrets generated earlier in the same run.
// [Converge] computes the diff against the filesystem and applies only
// the missing pieces. Existing files are never diffed, rewritten, or
// regenerated — a secret file that still carries the placeholder
// marker produces a warning recommending manual regeneration, nothing
// more, because silent regeneration would invalidate credentials
// already distributed.
//
// Running Converge twice with no external change produces identical
// on-disk state and a second result with zero creations.
package scaffold
