// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package installer

// actions maps capability name and OS family to the argv sequences
// that install the capability. Absence of a family entry is a hard
// "cannot install here" for that capability — the dispatcher reports
// it skipped with a manual-install hint and never guesses.
//
// Docker on macOS is deliberately absent: Docker Desktop is a GUI
// install with a license prompt, not something to drive from here.
var actions = map[string]map[Family][][]string{
	"git": {
		FamilyDebian: {{"apt-get", "install", "-y", "git"}},
		FamilyFedora: {{"dnf", "install", "-y", "git"}},
		FamilyArch:   {{"pacman", "-S", "--noconfirm", "git"}},
		FamilyDarwin: {{"brew", "install", "git"}},
	},
	"java": {
		FamilyDebian: {{"apt-get", "install", "-y", "openjdk-21-jdk"}},
		FamilyFedora: {{"dnf", "install", "-y", "java-21-openjdk-devel"}},
		FamilyArch:   {{"pacman", "-S", "--noconfirm", "jdk21-openjdk"}},
		FamilyDarwin: {{"brew", "install", "openjdk@21"}},
	},
	"docker": {
		FamilyDebian: {
			{"apt-get", "install", "-y", "docker.io"},
			{"systemctl", "enable", "--now", "docker"},
		},
		FamilyFedora: {
			{"dnf", "install", "-y", "moby-engine"},
			{"systemctl", "enable", "--now", "docker"},
		},
		FamilyArch: {
			{"pacman", "-S", "--noconfirm", "docker"},
			{"systemctl", "enable", "--now", "docker"},
		},
	},
	"docker-compose": {
		FamilyDebian: {{"apt-get", "install", "-y", "docker-compose-v2"}},
		FamilyFedora: {{"dnf", "install", "-y", "docker-compose"}},
		FamilyArch:   {{"pacman", "-S", "--noconfirm", "docker-compose"}},
	},
	"gradle": {
		FamilyDebian: {{"apt-get", "install", "-y", "gradle"}},
		FamilyFedora: {{"dnf", "install", "-y", "gradle"}},
		FamilyArch:   {{"pacman", "-S", "--noconfirm", "gradle"}},
		FamilyDarwin: {{"brew", "install", "gradle"}},
	},
	"node": {
		FamilyDebian: {{"apt-get", "install", "-y", "nodejs"}},
		FamilyFedora: {{"dnf", "install", "-y", "nodejs"}},
		FamilyArch:   {{"pacman", "-S", "--noconfirm", "nodejs"}},
		FamilyDarwin: {{"brew", "install", "node"}},
	},
	"npm": {
		FamilyDebian: {{"apt-get", "install", "-y", "npm"}},
		FamilyFedora: {{"dnf", "install", "-y", "npm"}},
		FamilyArch:   {{"pacman", "-S", "--noconfirm", "npm"}},
		FamilyDarwin: {{"brew", "install", "node"}},
	},
	"openapi-generator": {
		FamilyDebian: {{"npm", "install", "-g", "@openapitools/openapi-generator-cli"}},
		FamilyFedora: {{"npm", "install", "-g", "@openapitools/openapi-generator-cli"}},
		FamilyArch:   {{"npm", "install", "-g", "@openapitools/openapi-generator-cli"}},
		FamilyDarwin: {{"npm", "install", "-g", "@openapitools/openapi-generator-cli"}},
	},
}

// PlannedAction is one capability's install plan, used for dry runs.
type PlannedAction struct {
	Capability string     `json:"capability"`
	Commands   [][]string `json:"commands,omitempty"`

	// SkipReason is set when the capability cannot be installed on
	// this family; Commands is empty in that case.
	SkipReason string `json:"skip_reason,omitempty"`
}

// Plan returns the actions that Install would attempt for the unmet
// capabilities on the given family, without executing anything.
func Plan(unmet []string, family Family) []PlannedAction {
	planned := make([]PlannedAction, 0, len(unmet))
	for _, capability := range unmet {
		commands, reason := lookupActions(capability, family)
		planned = append(planned, PlannedAction{
			Capability: capability,
			Commands:   commands,
			SkipReason: reason,
		})
	}
	return planned
}

// lookupActions resolves the action table for one capability. Returns
// either the command sequences or a skip reason.
func lookupActions(capability string, family Family) ([][]string, string) {
	byFamily, ok := actions[capability]
	if !ok {
		return nil, "no install action defined for " + capability
	}
	commands, ok := byFamily[family]
	if !ok {
		return nil, "no install action for OS family " + string(family) + "; install manually"
	}
	return commands, ""
}
