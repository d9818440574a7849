// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package creditcard validates payment-card number candidates.
package creditcard

import "candidate-check/internal/validators/digits"

// Payment-card numbers carry 13 to 19 digits.
const (
	minLength = 13
	maxLength = 19
)

// Luhn reports whether number contains a digit sequence of valid
// payment-card length carrying a correct Luhn checksum. Non-digit
// characters are ignored, so dash- and space-formatted numbers validate
// identically to unformatted ones. The function is total: any input,
// including empty or non-numeric text, yields false rather than an error.
func Luhn(number string) bool {
	ds := digits.Only(number)
	if len(ds) < minLength || len(ds) > maxLength {
		return false
	}

	sum := 0
	isDouble := false
	for i := len(ds) - 1; i >= 0; i-- {
		digit := int(ds[i] - '0')
		if isDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		isDouble = !isDouble
	}

	return sum%10 == 0
}
