// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package require

// Category groups requirements for reporting. Report output always
// follows the order core tools, build tools, dev tools.
type Category string

const (
	CategoryCore  Category = "core tools"
	CategoryBuild Category = "build tools"
	CategoryDev   Category = "dev tools"
)

// Requirement is a named capability with a minimum-version predicate
// and a human-readable remediation hint. Requirements are statically
// enumerated, never derived at runtime.
type Requirement struct {
	// Capability is the probe tool name.
	Capability string `json:"capability"`

	// MinMajor is the minimum required major version. Zero means the
	// requirement is presence-only.
	MinMajor int `json:"min_major,omitempty"`

	// Category selects the report section.
	Category Category `json:"category"`

	// Hint is the remediation printed when the requirement is unmet
	// and no install action could satisfy it.
	Hint string `json:"hint"`
}

// PresenceOnly reports whether the requirement has no minimum version.
func (r Requirement) PresenceOnly() bool {
	return r.MinMajor == 0
}

// Defaults is the stack's requirement set, in report order.
var Defaults = []Requirement{
	{Capability: "git", Category: CategoryCore,
		Hint: "install git from your distribution's package manager"},
	{Capability: "java", MinMajor: 21, Category: CategoryCore,
		Hint: "install a Java 21 JDK (e.g. openjdk-21-jdk)"},
	{Capability: "docker", Category: CategoryCore,
		Hint: "install Docker Engine (https://docs.docker.com/engine/install/)"},
	{Capability: "docker-compose", Category: CategoryCore,
		Hint: "install the Docker Compose plugin (docker-compose-v2)"},
	{Capability: "gradle", MinMajor: 8, Category: CategoryBuild,
		Hint: "install Gradle 8 or newer"},
	{Capability: "node", MinMajor: 20, Category: CategoryDev,
		Hint: "install Node.js 20 or newer"},
	{Capability: "npm", Category: CategoryDev,
		Hint: "install npm (usually bundled with Node.js)"},
	{Capability: "openapi-generator", Category: CategoryDev,
		Hint: "npm install -g @openapitools/openapi-generator-cli"},
}

// ByCategory returns the requirements from the given set that belong
// to category, preserving order.
func ByCategory(requirements []Requirement, category Category) []Requirement {
	var matched []Requirement
	for _, requirement := range requirements {
		if requirement.Category == category {
			matched = append(matched, requirement)
		}
	}
	return matched
}
