// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package digits provides the digit-extraction step shared by all validators.
package digits

// Only returns the ASCII decimal digits of s, in order, with every other
// character removed. Formatting punctuation such as spaces and dashes is
// silently dropped rather than rejected, so "4111-1111-1111-1111" and
// "4111111111111111" yield the same digit string. Safe for arbitrary byte
// content: multi-byte characters never collide with '0'-'9'.
func Only(s string) string {
	// Fast path: most candidates arrive unformatted.
	clean := true
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b = append(b, s[i])
		}
	}
	return string(b)
}
