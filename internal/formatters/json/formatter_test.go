// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	encjson "encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"candidate-check/internal/candidate"
	"candidate-check/internal/formatters"
)

func TestFormat_RoundTrip(t *testing.T) {
	verdicts := []candidate.Verdict{
		{Candidate: "4111111111111111", Check: "CREDIT_CARD", Valid: true},
		{Candidate: "abcd", Check: "SSN", Valid: false},
	}

	output, err := NewFormatter().Format(verdicts, formatters.Options{ShowMatch: true})
	require.NoError(t, err)

	var resp response
	require.NoError(t, encjson.Unmarshal([]byte(output), &resp))

	require.Len(t, resp.Verdicts, 2)
	assert.Equal(t, "4111111111111111", resp.Verdicts[0].Candidate)
	assert.True(t, resp.Verdicts[0].Valid)
	assert.Equal(t, "SSN", resp.Verdicts[1].Check)
	assert.False(t, resp.Verdicts[1].Valid)
	assert.Equal(t, 2, resp.Summary.Total)
	assert.Equal(t, 1, resp.Summary.Valid)
	assert.Equal(t, 1, resp.Summary.Invalid)
}

func TestFormat_HidesCandidateByDefault(t *testing.T) {
	verdicts := []candidate.Verdict{
		{Candidate: "123-45-6789", Check: "SSN", Valid: true},
	}

	output, err := NewFormatter().Format(verdicts, formatters.Options{})
	require.NoError(t, err)

	assert.Contains(t, output, formatters.HiddenCandidate)
	assert.NotContains(t, output, "123-45-6789")
}

func TestFormat_EmptyVerdicts(t *testing.T) {
	output, err := NewFormatter().Format(nil, formatters.Options{})
	require.NoError(t, err)

	var resp response
	require.NoError(t, encjson.Unmarshal([]byte(output), &resp))
	assert.Empty(t, resp.Verdicts)
	assert.Equal(t, 0, resp.Summary.Total)
}

func TestFormat_Registered(t *testing.T) {
	f, ok := formatters.Get("json")
	require.True(t, ok, "json formatter should self-register")
	assert.Equal(t, ".json", f.FileExtension())
}
