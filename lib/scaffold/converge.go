// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Result reports what one convergence run did. Paths are relative to
// the root, in entry order.
type Result struct {
	// Created lists entries that were absent and have been created.
	Created []string `json:"created"`

	// Satisfied lists entries that already existed and were left
	// untouched.
	Satisfied []string `json:"satisfied"`

	// Warnings are non-fatal findings, such as a secret file still
	// carrying the placeholder marker.
	Warnings []string `json:"warnings,omitempty"`
}

// Converge applies the desired entries under root in order. Existing
// paths are never modified. Directories come into existence with mode
// 0755, templates and derived files with 0644 or 0600, secrets always
// with 0600.
//
// Secret values, whether generated this run or loaded from files that
// already existed, are collected into a value table keyed by each
// entry's ValueKey so that later derived entries can embed them. This
// is what lets a deleted .env be rebuilt from surviving secret files.
//
// The first hard error (unwritable root, failing entropy source,
// derivation failure) aborts the run; entries already applied stay on
// disk.
func Converge(desired []Entry, root string) (Result, error) {
	var result Result
	values := make(map[string]string)

	for _, entry := range desired {
		target := filepath.Join(root, entry.Path)
		var err error
		switch entry.Kind {
		case KindDirectory:
			err = convergeDirectory(&result, entry, target)
		case KindTemplate:
			err = convergeFile(&result, entry, target, entry.Content, 0o644)
		case KindSecret:
			err = convergeSecret(&result, entry, target, values)
		case KindDerived:
			err = convergeDerived(&result, entry, target, values)
		default:
			err = fmt.Errorf("unknown entry kind %q", entry.Kind)
		}
		if err != nil {
			return result, fmt.Errorf("%s: %w", entry.Path, err)
		}
	}

	return result, nil
}

func convergeDirectory(result *Result, entry Entry, target string) error {
	info, err := os.Stat(target)
	switch {
	case err == nil && info.IsDir():
		result.Satisfied = append(result.Satisfied, entry.Path)
		return nil
	case err == nil:
		return fmt.Errorf("exists but is not a directory")
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return err
	}
	result.Created = append(result.Created, entry.Path)
	return nil
}

// convergeFile writes content to target unless it already exists.
// Shared by template and derived entries.
func convergeFile(result *Result, entry Entry, target string, content []byte, mode fs.FileMode) error {
	if _, err := os.Stat(target); err == nil {
		result.Satisfied = append(result.Satisfied, entry.Path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(target, content, mode); err != nil {
		return err
	}
	result.Created = append(result.Created, entry.Path)
	return nil
}

func convergeSecret(result *Result, entry Entry, target string, values map[string]string) error {
	existing, err := os.ReadFile(target)
	switch {
	case err == nil:
		// Preserve whatever is there, but publish it to the value
		// table so derived files stay consistent with it.
		value := strings.TrimSpace(string(existing))
		if entry.ValueKey != "" {
			values[entry.ValueKey] = value
		}
		if strings.Contains(value, PlaceholderMarker) {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"%s still contains the %s placeholder; regenerate it manually",
				entry.Path, PlaceholderMarker))
		}
		result.Satisfied = append(result.Satisfied, entry.Path)
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	value, err := entry.Generate()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(target, []byte(value+"\n"), 0o600); err != nil {
		return err
	}
	if entry.ValueKey != "" {
		values[entry.ValueKey] = value
	}
	result.Created = append(result.Created, entry.Path)
	return nil
}

func convergeDerived(result *Result, entry Entry, target string, values map[string]string) error {
	if _, err := os.Stat(target); err == nil {
		result.Satisfied = append(result.Satisfied, entry.Path)
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	content, err := entry.Derive(values)
	if err != nil {
		return err
	}
	// Derived files embed credentials, so they get secret permissions.
	return convergeFile(result, entry, target, content, 0o600)
}
