// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package installer

import (
	"os"
	"runtime"
	"strings"
)

// Family identifies the host's OS family for action-table lookup. It
// is derived from the host, never user-supplied.
type Family string

const (
	FamilyDebian  Family = "debian"
	FamilyFedora  Family = "fedora"
	FamilyArch    Family = "arch"
	FamilyDarwin  Family = "darwin"
	FamilyUnknown Family = "unknown"
)

// DetectFamily resolves the host's OS family from GOOS and, on Linux,
// the ID/ID_LIKE fields of /etc/os-release.
func DetectFamily() Family {
	return detectFamily(runtime.GOOS, "/etc/os-release")
}

// detectFamily is the testable implementation of DetectFamily.
func detectFamily(goos, osReleasePath string) Family {
	switch goos {
	case "darwin":
		return FamilyDarwin
	case "linux":
		// fall through to os-release inspection
	default:
		return FamilyUnknown
	}

	data, err := os.ReadFile(osReleasePath)
	if err != nil {
		return FamilyUnknown
	}

	identifiers := parseOSReleaseIdentifiers(string(data))
	switch {
	case identifiers["debian"] || identifiers["ubuntu"]:
		return FamilyDebian
	case identifiers["fedora"] || identifiers["rhel"] || identifiers["centos"]:
		return FamilyFedora
	case identifiers["arch"]:
		return FamilyArch
	}
	return FamilyUnknown
}

// parseOSReleaseIdentifiers collects the ID and ID_LIKE values from
// os-release content as a set. Values may be quoted and ID_LIKE is
// space-separated ("ID_LIKE=\"rhel centos fedora\"").
func parseOSReleaseIdentifiers(data string) map[string]bool {
	identifiers := make(map[string]bool)
	for _, line := range strings.SplitAfter(data, "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if !found || (key != "ID" && key != "ID_LIKE") {
			continue
		}
		value = strings.Trim(value, `"'`)
		for _, identifier := range strings.Fields(value) {
			identifiers[strings.ToLower(identifier)] = true
		}
	}
	return identifiers
}
