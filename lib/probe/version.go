// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"regexp"
	"strconv"
)

// versionToken matches the first dotted integer sequence in a version
// banner: `openjdk version "21.0.2"` -> 21.0.2, `git version 2.43.0`
// -> 2.43.0, `v20.11.1` -> 20.11.1, `Gradle 8.5` -> 8.5.
var versionToken = regexp.MustCompile(`(\d+)((?:\.\d+)*)`)

// extractVersion pulls the version token out of a tool's banner and
// returns its major component. ok is false when no token is found —
// the caller reports the tool as present with an unknown version,
// which downstream classification treats as a warning, never as
// satisfying a minimum-version requirement.
//
// Legacy Java banners report `1.8.0_392`; for a leading 1 with more
// components, the second component is the effective major.
func extractVersion(banner string) (major int, token string, ok bool) {
	match := versionToken.FindStringSubmatch(banner)
	if match == nil {
		return 0, "", false
	}

	token = match[1] + match[2]
	major, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, "", false
	}

	if major == 1 && match[2] != "" {
		rest := versionToken.FindStringSubmatch(match[2][1:])
		if rest != nil {
			if effective, err := strconv.Atoi(rest[1]); err == nil {
				major = effective
			}
		}
	}

	return major, token, true
}
