// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"candidate-check/internal/candidate"
	"candidate-check/internal/formatters"
)

// Formatter implements human-readable text output, one verdict per line
type Formatter struct{}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable output with one verdict per line"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(verdicts []candidate.Verdict, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	valid := color.New(color.FgGreen).SprintFunc()
	invalid := color.New(color.FgRed).SprintFunc()

	var sb strings.Builder
	validCount := 0
	for _, v := range verdicts {
		status := invalid("INVALID")
		if v.Valid {
			status = valid("VALID  ")
			validCount++
		}
		fmt.Fprintf(&sb, "%s  %-12s  %s\n", status, v.Check, formatters.DisplayCandidate(v, options))
	}

	if !options.Quiet {
		fmt.Fprintf(&sb, "\n%d verdicts: %d valid, %d invalid\n",
			len(verdicts), validCount, len(verdicts)-validCount)
	}

	return sb.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
