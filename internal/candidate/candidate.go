// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package candidate defines the currency passed between the validation
// engine and its callers: candidate strings in, verdicts out.
package candidate

// ValidateFunc is a single validation check. It reports whether the
// candidate string is a structurally valid instance of the check's
// identifier class. Implementations must be pure and total: any input,
// including empty or non-numeric text, yields a plain boolean verdict
// and never a panic or an error.
type ValidateFunc func(candidate string) bool

// Verdict records the outcome of running one check against one candidate.
type Verdict struct {
	Candidate string `json:"candidate"`
	Check     string `json:"check"`
	Valid     bool   `json:"valid"`
}
