// Copyright 2026 The Groundwork Authors
// SPDX-License-Identifier: Apache-2.0

package checkup

// Status is the outcome of a single check.
type Status string

const (
	// StatusPass means the checked item satisfies its requirement.
	StatusPass Status = "pass"

	// StatusWarn means the item is usable but needs attention: an
	// unparseable version banner, a resource below the recommended
	// floor, a placeholder secret. Warnings never fail the run.
	StatusWarn Status = "warn"

	// StatusFail means a hard requirement is unmet.
	StatusFail Status = "fail"

	// StatusSkip means a prerequisite check failed, so this check
	// could not be evaluated.
	StatusSkip Status = "skip"

	// StatusFixed means the item was failing and was repaired during
	// this run (e.g. a capability installed by the dispatcher, or a
	// scaffold entry created by convergence).
	StatusFixed Status = "fixed"
)

// Result holds the outcome of a single check. Warn and fail results
// may carry a Hint with the concrete remediation.
type Result struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
	Hint    string `json:"hint,omitempty"`
}

// Pass creates a passing check result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Warn creates a warning check result. Warnings do not cause a
// non-zero exit.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// WarnHint creates a warning check result with a remediation hint.
func WarnHint(name, message, hint string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message, Hint: hint}
}

// Fail creates a failing check result with no remediation hint.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// FailHint creates a failing check result with a remediation hint.
func FailHint(name, message, hint string) Result {
	return Result{Name: name, Status: StatusFail, Message: message, Hint: hint}
}

// Skip creates a skipped check result. Checks are skipped when a
// prerequisite check failed.
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// Fixed creates a result for an item repaired during this run.
func Fixed(name, message string) Result {
	return Result{Name: name, Status: StatusFixed, Message: message}
}

// Summary is the aggregate of a result list.
type Summary struct {
	// OK is true when no result failed. Warn-only runs are OK
	// (pass with caveats).
	OK bool

	// Failed, Warned, and Fixed count the respective statuses.
	Failed int
	Warned int
	Fixed  int
}

// Summarize folds results with the aggregate rule: any fail means the
// run failed; warnings alone leave it passing.
func Summarize(results []Result) Summary {
	var summary Summary
	for _, result := range results {
		switch result.Status {
		case StatusFail:
			summary.Failed++
		case StatusWarn:
			summary.Warned++
		case StatusFixed:
			summary.Fixed++
		}
	}
	summary.OK = summary.Failed == 0
	return summary
}

// JSONOutput is the JSON output structure for diagnostic commands.
type JSONOutput struct {
	Checks []Result `json:"checks"`
	OK     bool     `json:"ok"`
	Failed int      `json:"failed,omitempty"`
	Warned int      `json:"warned,omitempty"`
	Fixed  int      `json:"fixed,omitempty"`
}

// BuildJSON builds the JSON output struct from results.
func BuildJSON(results []Result) JSONOutput {
	summary := Summarize(results)
	return JSONOutput{
		Checks: results,
		OK:     summary.OK,
		Failed: summary.Failed,
		Warned: summary.Warned,
		Fixed:  summary.Fixed,
	}
}
