// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package creditcard

import "candidate-check/internal/help"

// CheckInfo returns standardized information about the credit card check
func CheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "CREDIT_CARD",
		ShortDescription: "Validates payment-card number candidates by length and Luhn checksum",
		DetailedDescription: `The CREDIT_CARD check confirms that a candidate string is a plausible
payment-card number. It extracts the digits from the candidate, ignoring
formatting characters such as spaces and dashes, then applies a length gate
and the Luhn checksum algorithm used by payment-card numbering schemes.

The check answers a single yes/no question. It does not identify the card
vendor, does not verify that the account exists, and does not examine the
text surrounding the candidate.`,

		Rules: []string{
			"Digit count must be between 13 and 19 (inclusive)",
			"The digit sequence must pass the Luhn checksum",
			"Non-digit characters are stripped before validation, never rejected",
		},

		Examples: []string{
			`candidate-check --checks CREDIT_CARD "4111-1111-1111-1111"`,
			`cat candidates.txt | candidate-check --checks CREDIT_CARD --format json`,
		},
	}
}
