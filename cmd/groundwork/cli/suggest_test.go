// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"verify", "verify", 0},
		{"vrify", "verify", 1},
		{"scafold", "scaffold", 1},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "probe"},
		{Name: "install"},
		{Name: "scaffold"},
		{Name: "verify"},
	}

	if got := suggestCommand("verfy", commands); got != "verify" {
		t.Errorf("suggestCommand(verfy) = %q, want verify", got)
	}
	if got := suggestCommand("scafold", commands); got != "scaffold" {
		t.Errorf("suggestCommand(scafold) = %q, want scaffold", got)
	}
	if got := suggestCommand("zzzzzzzzzz", commands); got != "" {
		t.Errorf("suggestCommand(zzzzzzzzzz) = %q, want no suggestion", got)
	}
}

func TestSuggestFlag(t *testing.T) {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagSet.Bool("dry-run", false, "")
	flagSet.String("manifest", "", "")

	if got := suggestFlag([]string{"--dry-rn"}, flagSet); got != "--dry-run" {
		t.Errorf("suggestFlag(--dry-rn) = %q, want --dry-run", got)
	}
	if got := suggestFlag([]string{"--manifset=extra.yaml"}, flagSet); got != "--manifest" {
		t.Errorf("suggestFlag(--manifset=) = %q, want --manifest", got)
	}
	// A defined flag needs no suggestion.
	if got := suggestFlag([]string{"--manifest"}, flagSet); got != "" {
		t.Errorf("suggestFlag(--manifest) = %q, want none", got)
	}
}
