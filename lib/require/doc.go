// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package require defines the static capability requirements of the
// development stack and the pure resolver that maps a probe snapshot
// to the set of unmet requirements.
package require
