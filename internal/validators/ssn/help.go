// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import "candidate-check/internal/help"

// CheckInfo returns standardized information about the SSN check
func CheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "SSN",
		ShortDescription: "Validates the structure of 9-digit Social Security Number candidates",
		DetailedDescription: `The SSN check confirms that a candidate string is a structurally valid
Social Security Number. It extracts the digits from the candidate, ignoring
formatting characters, then verifies the area/group/serial segmentation
rules: exactly 9 digits, a non-reserved area code, and nonzero group and
serial fields.

This is a format check only. A passing candidate matches the SSN numbering
structure; the check does not and cannot verify that the number was ever
issued to a person.`,

		Rules: []string{
			"Digit count must be exactly 9",
			"Area (first 3 digits) must not be 000, 666, or 900-999",
			"Group (middle 2 digits) must not be 00",
			"Serial (last 4 digits) must not be 0000",
			"Non-digit characters are stripped before validation, never rejected",
		},

		Examples: []string{
			`candidate-check --checks SSN "123-45-6789"`,
			`candidate-check --checks SSN --format json "123456789"`,
		},
	}
}
