// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package core wires the individual validation checks into an engine the
// CLI and embedding callers drive.
package core

import (
	"sort"
	"strings"

	"candidate-check/internal/candidate"
	"candidate-check/internal/validators/creditcard"
	"candidate-check/internal/validators/ssn"
)

// ParseChecksToRun converts a slice of check names into an enabled-checks map.
// An empty slice or ["all"] enables every check.
func ParseChecksToRun(checks []string) map[string]bool {
	result := map[string]bool{
		"CREDIT_CARD": false,
		"SSN":         false,
	}

	if len(checks) == 0 || (len(checks) == 1 && checks[0] == "all") {
		for key := range result {
			result[key] = true
		}
		return result
	}

	for _, check := range checks {
		if checkStr := strings.TrimSpace(check); checkStr != "" {
			if _, exists := result[checkStr]; exists {
				result[checkStr] = true
			}
		}
	}

	return result
}

// BuildCheckSet constructs the validation functions for the enabled checks.
func BuildCheckSet(enabledChecks map[string]bool) map[string]candidate.ValidateFunc {
	result := make(map[string]candidate.ValidateFunc)

	if enabledChecks["CREDIT_CARD"] {
		result["CREDIT_CARD"] = creditcard.Luhn
	}
	if enabledChecks["SSN"] {
		result["SSN"] = ssn.Format
	}

	return result
}

// ValidateAll runs every enabled check against every candidate. Checks run
// in sorted name order so output is stable across invocations. The checks
// themselves are pure functions, so callers may shard candidates across
// goroutines and call this concurrently without synchronization.
func ValidateAll(candidates []string, checks map[string]candidate.ValidateFunc) []candidate.Verdict {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	verdicts := make([]candidate.Verdict, 0, len(candidates)*len(names))
	for _, cand := range candidates {
		for _, name := range names {
			verdicts = append(verdicts, candidate.Verdict{
				Candidate: cand,
				Check:     name,
				Valid:     checks[name](cand),
			})
		}
	}

	return verdicts
}

// Available reports that the validation engine is present and operational.
// Embedding callers use this as a cheap capability probe before routing
// candidates to the engine.
func Available() bool {
	return true
}
