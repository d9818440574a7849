// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ssn validates Social Security Number candidates.
package ssn

import (
	"strconv"

	"candidate-check/internal/validators/digits"
)

// Format reports whether number's digit content forms a structurally valid
// 9-digit Social Security Number. This is a format check only: it says
// nothing about whether the number was ever issued. Non-digit characters
// are ignored, so "123-45-6789" and "123456789" validate identically. The
// function is total: any input yields false rather than an error.
func Format(number string) bool {
	ds := digits.Only(number)
	if len(ds) != 9 {
		return false
	}

	area, err := strconv.Atoi(ds[0:3])
	if err != nil {
		return false
	}
	group, err := strconv.Atoi(ds[3:5])
	if err != nil {
		return false
	}
	serial, err := strconv.Atoi(ds[5:9])
	if err != nil {
		return false
	}

	// Areas 000 and 666 are never assigned; 900-999 is reserved.
	if area == 0 || area == 666 || area >= 900 {
		return false
	}

	// Group and serial are never all zeros.
	return group > 0 && serial > 0
}
