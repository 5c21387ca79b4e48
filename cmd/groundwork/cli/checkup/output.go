// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package checkup

import (
	"fmt"
	"io"
	"strings"
)

// PrintChecklist prints check results as a human-readable checklist in
// the order given. Hints for warnings and failures are printed on a
// continuation line so the checklist columns stay aligned and the
// output stays diffable across runs.
//
// Returns the summary so callers can derive their exit code.
func PrintChecklist(w io.Writer, results []Result) Summary {
	for _, result := range results {
		prefix := strings.ToUpper(string(result.Status))
		fmt.Fprintf(w, "[%-5s]  %-40s  %s\n", prefix, result.Name, result.Message)
		if result.Hint != "" {
			fmt.Fprintf(w, "         %-40s  hint: %s\n", "", result.Hint)
		}
	}

	summary := Summarize(results)

	fmt.Fprintln(w)
	switch {
	case summary.Failed > 0:
		fmt.Fprintf(w, "%d check(s) failed", summary.Failed)
		if summary.Warned > 0 {
			fmt.Fprintf(w, ", %d warning(s)", summary.Warned)
		}
		fmt.Fprintln(w, ".")
	case summary.Warned > 0:
		fmt.Fprintf(w, "All checks passed with %d warning(s).\n", summary.Warned)
	case summary.Fixed > 0:
		fmt.Fprintf(w, "All checks passed, %d item(s) repaired this run.\n", summary.Fixed)
	default:
		fmt.Fprintln(w, "All checks passed.")
	}

	return summary
}
