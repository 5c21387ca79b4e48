// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

// Package verify renders a probe snapshot as an ordered checklist:
// tool requirements by category, then stack ports, then machine
// resources. Tool and port shortfalls fail the report; resource
// shortfalls and undetermined figures only warn, since a thin machine
// can still run a partial stack.
package verify
