// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"candidate-check/internal/candidate"
	"candidate-check/internal/formatters"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

type verdictEntry struct {
	Candidate string `json:"candidate"`
	Check     string `json:"check"`
	Valid     bool   `json:"valid"`
}

type summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
}

type response struct {
	Verdicts []verdictEntry `json:"verdicts"`
	Summary  summary        `json:"summary"`
}

func (f *Formatter) Format(verdicts []candidate.Verdict, options formatters.Options) (string, error) {
	resp := response{
		Verdicts: make([]verdictEntry, 0, len(verdicts)),
	}

	for _, v := range verdicts {
		resp.Verdicts = append(resp.Verdicts, verdictEntry{
			Candidate: formatters.DisplayCandidate(v, options),
			Check:     v.Check,
			Valid:     v.Valid,
		})
		if v.Valid {
			resp.Summary.Valid++
		} else {
			resp.Summary.Invalid++
		}
	}
	resp.Summary.Total = len(verdicts)

	jsonData, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error formatting JSON: %w", err)
	}

	return string(jsonData), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
