// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package probe reads current machine state — installed tool versions,
// listening ports, RAM/CPU/disk — and produces a read-only [Snapshot].
//
// A snapshot is never mutated after it is taken; every call to [Probe]
// builds a fresh one. Tool detection and version extraction are best
// effort: a missing executable yields present=false, an unparseable
// version banner yields present=true with an unknown version. Neither
// is an error at this layer — classification happens in lib/require
// and lib/verify.
//
// External command execution goes through the [Runner] interface so
// tests can probe against a fake, and /proc parsing accepts a root
// path so tests can point at synthetic files.
package probe
