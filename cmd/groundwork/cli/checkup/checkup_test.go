// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package checkup

import (
	"strings"
	"testing"
)

func TestConstructors(t *testing.T) {
	result := Pass("git", "version 2.43.0")
	if result.Status != StatusPass || result.Name != "git" {
		t.Errorf("Pass() = %+v", result)
	}

	result = FailHint("java", "not found on PATH", "install a JDK")
	if result.Status != StatusFail {
		t.Errorf("FailHint() status = %q, want %q", result.Status, StatusFail)
	}
	if result.Hint != "install a JDK" {
		t.Errorf("FailHint() hint = %q", result.Hint)
	}

	result = Fixed("docker", "installed")
	if result.Status != StatusFixed {
		t.Errorf("Fixed() status = %q, want %q", result.Status, StatusFixed)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		results  []Result
		wantOK   bool
		failed   int
		warned   int
		repaired int
	}{
		{
			name:    "all pass",
			results: []Result{Pass("a", ""), Pass("b", "")},
			wantOK:  true,
		},
		{
			name:    "warnings alone stay OK",
			results: []Result{Pass("a", ""), Warn("b", "thin")},
			wantOK:  true,
			warned:  1,
		},
		{
			name:    "one fail flips the aggregate",
			results: []Result{Pass("a", ""), Warn("b", ""), Fail("c", "missing")},
			wantOK:  false,
			failed:  1,
			warned:  1,
		},
		{
			name:     "fixed counts separately",
			results:  []Result{Fixed("a", "installed"), Skip("b", "")},
			wantOK:   true,
			repaired: 1,
		},
		{
			name:   "empty is OK",
			wantOK: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			summary := Summarize(test.results)
			if summary.OK != test.wantOK {
				t.Errorf("OK = %v, want %v", summary.OK, test.wantOK)
			}
			if summary.Failed != test.failed {
				t.Errorf("Failed = %d, want %d", summary.Failed, test.failed)
			}
			if summary.Warned != test.warned {
				t.Errorf("Warned = %d, want %d", summary.Warned, test.warned)
			}
			if summary.Fixed != test.repaired {
				t.Errorf("Fixed = %d, want %d", summary.Fixed, test.repaired)
			}
		})
	}
}

func TestPrintChecklist(t *testing.T) {
	results := []Result{
		Pass("git", "version 2.43.0"),
		FailHint("java", "not found on PATH", "install a JDK"),
		Warn("memory", "7.5 GiB is below the recommended 8 GiB"),
	}

	var out strings.Builder
	summary := PrintChecklist(&out, results)

	if summary.OK {
		t.Error("summary.OK = true with a failing result")
	}

	text := out.String()
	for _, want := range []string{
		"[PASS ]",
		"[FAIL ]",
		"[WARN ]",
		"hint: install a JDK",
		"1 check(s) failed, 1 warning(s).",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestPrintChecklistAllPass(t *testing.T) {
	var out strings.Builder
	summary := PrintChecklist(&out, []Result{Pass("git", "ok")})
	if !summary.OK {
		t.Error("summary.OK = false for all-pass results")
	}
	if !strings.Contains(out.String(), "All checks passed.") {
		t.Errorf("output missing pass summary:\n%s", out.String())
	}
}

func TestBuildJSON(t *testing.T) {
	output := BuildJSON([]Result{Pass("a", ""), Fail("b", "bad")})
	if output.OK {
		t.Error("OK = true with a failing result")
	}
	if output.Failed != 1 {
		t.Errorf("Failed = %d, want 1", output.Failed)
	}
	if len(output.Checks) != 2 {
		t.Errorf("len(Checks) = %d, want 2", len(output.Checks))
	}
}
