// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candidate-check/internal/candidate"
	"candidate-check/internal/formatters"
)

func TestFormat_HidesCandidateByDefault(t *testing.T) {
	verdicts := []candidate.Verdict{
		{Candidate: "4111111111111111", Check: "CREDIT_CARD", Valid: true},
	}

	output, err := NewFormatter().Format(verdicts, formatters.Options{NoColor: true})
	require.NoError(t, err)

	assert.Contains(t, output, "VALID")
	assert.Contains(t, output, "CREDIT_CARD")
	assert.Contains(t, output, formatters.HiddenCandidate)
	assert.NotContains(t, output, "4111111111111111")
}

func TestFormat_ShowMatch(t *testing.T) {
	verdicts := []candidate.Verdict{
		{Candidate: "123-45-6789", Check: "SSN", Valid: false},
	}

	output, err := NewFormatter().Format(verdicts, formatters.Options{NoColor: true, ShowMatch: true})
	require.NoError(t, err)

	assert.Contains(t, output, "INVALID")
	assert.Contains(t, output, "123-45-6789")
	assert.NotContains(t, output, formatters.HiddenCandidate)
}

func TestFormat_Summary(t *testing.T) {
	verdicts := []candidate.Verdict{
		{Candidate: "a", Check: "SSN", Valid: true},
		{Candidate: "b", Check: "SSN", Valid: false},
		{Candidate: "c", Check: "SSN", Valid: false},
	}

	output, err := NewFormatter().Format(verdicts, formatters.Options{NoColor: true})
	require.NoError(t, err)
	assert.Contains(t, output, "3 verdicts: 1 valid, 2 invalid")

	quiet, err := NewFormatter().Format(verdicts, formatters.Options{NoColor: true, Quiet: true})
	require.NoError(t, err)
	assert.NotContains(t, quiet, "verdicts:")
	assert.Equal(t, 3, strings.Count(quiet, "\n"))
}

func TestFormat_Registered(t *testing.T) {
	f, ok := formatters.Get("text")
	require.True(t, ok, "text formatter should self-register")
	assert.Equal(t, ".txt", f.FileExtension())
}
