// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package scaffold

// Kind discriminates desired-state entries.
type Kind string

const (
	// KindDirectory is a directory created recursively when absent.
	KindDirectory Kind = "directory"

	// KindTemplate is a file with fixed literal content, created only
	// when absent. Existing content is never diffed or overwritten.
	KindTemplate Kind = "template"

	// KindSecret is a file whose content comes from a generator
	// invoked at most once per file lifetime. An existing file is
	// preserved even if malformed.
	KindSecret Kind = "secret"

	// KindDerived is a file assembled from values produced or loaded
	// earlier in the same run (e.g. a .env embedding generated
	// passwords). Created only when absent.
	KindDerived Kind = "derived"
)

// Entry is one element of the desired state. Which fields are set
// depends on Kind.
type Entry struct {
	Kind Kind

	// Path is relative to the convergence root.
	Path string

	// Content is the literal bytes for a template entry.
	Content []byte

	// Generate produces a secret value for a secret entry. It is
	// invoked only when the file does not exist.
	Generate func() (string, error)

	// ValueKey names the slot in the run's value table where a secret
	// entry's value (generated or loaded from the existing file) is
	// stored for later derived entries.
	ValueKey string

	// Derive assembles a derived entry's content from the run's value
	// table.
	Derive func(values map[string]string) ([]byte, error)
}

// Dir returns a directory entry.
func Dir(path string) Entry {
	return Entry{Kind: KindDirectory, Path: path}
}

// Template returns a template-file entry with fixed content.
func Template(path string, content string) Entry {
	return Entry{Kind: KindTemplate, Path: path, Content: []byte(content)}
}

// Secret returns a secret-file entry. valueKey names the run-table
// slot the value is published under for derived entries.
func Secret(path, valueKey string, generate func() (string, error)) Entry {
	return Entry{Kind: KindSecret, Path: path, ValueKey: valueKey, Generate: generate}
}

// Derived returns a derived-file entry.
func Derived(path string, derive func(values map[string]string) ([]byte, error)) Entry {
	return Entry{Kind: KindDerived, Path: path, Derive: derive}
}
