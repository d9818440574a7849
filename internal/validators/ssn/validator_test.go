// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ssn

import (
	"fmt"
	"testing"
)

func TestFormat_ValidNumbers(t *testing.T) {
	cases := []struct {
		name   string
		number string
	}{
		{"dashed", "123-45-6789"},
		{"unformatted", "123456789"},
		{"spaced", "123 45 6789"},
		{"minimum fields", "001-01-0001"},
		{"maximum area", "899-99-9999"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !Format(tc.number) {
				t.Errorf("Format(%q) = false, want true", tc.number)
			}
		})
	}
}

func TestFormat_InvalidNumbers(t *testing.T) {
	cases := []struct {
		name   string
		number string
	}{
		{"area 000", "000-45-6789"},
		{"area 666", "666-45-6789"},
		{"area 900", "900-45-6789"},
		{"area 999", "999-99-9999"},
		{"group 00", "123-00-6789"},
		{"serial 0000", "123-45-0000"},
		{"8 digits", "12345678"},
		{"10 digits", "1234567890"},
		{"empty string", ""},
		{"no digits", "abcd"},
		{"punctuation only", "---  --"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if Format(tc.number) {
				t.Errorf("Format(%q) = true, want false", tc.number)
			}
		})
	}
}

func TestFormat_AreaBoundaries(t *testing.T) {
	cases := []struct {
		area int
		want bool
	}{
		{0, false},
		{1, true},
		{665, true},
		{666, false},
		{667, true},
		{899, true},
		{900, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("area_%03d", tc.area), func(t *testing.T) {
			number := fmt.Sprintf("%03d-45-6789", tc.area)
			if got := Format(number); got != tc.want {
				t.Errorf("Format(%q) = %t, want %t", number, got, tc.want)
			}
		})
	}
}

func TestFormat_AreaSweep(t *testing.T) {
	// Every area from 001 to 899 except 666 is structurally valid
	for area := 1; area < 900; area++ {
		want := area != 666
		number := fmt.Sprintf("%03d456789", area)
		if got := Format(number); got != want {
			t.Errorf("Format(%q) = %t, want %t", number, got, want)
		}
	}

	// The entire 900-999 range is reserved
	for area := 900; area <= 999; area++ {
		number := fmt.Sprintf("%03d456789", area)
		if Format(number) {
			t.Errorf("Format(%q) = true, want false (reserved area)", number)
		}
	}
}

func TestFormat_PunctuationInvariance(t *testing.T) {
	formatted := []string{
		"123-45-6789",
		"123 45 6789",
		"123.45.6789",
		"1-2-3-4-5-6-7-8-9",
	}
	for _, number := range formatted {
		if !Format(number) {
			t.Errorf("Format(%q) = false, want true (separators must not change the verdict)", number)
		}
	}
}

func TestFormat_Idempotent(t *testing.T) {
	inputs := []string{"123-45-6789", "000-00-0000", "", "🙂", "999999999"}
	for _, input := range inputs {
		first := Format(input)
		second := Format(input)
		if first != second {
			t.Errorf("Format(%q) not idempotent: %t then %t", input, first, second)
		}
	}
}
