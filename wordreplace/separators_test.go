// Copyright (c) 2024 The go-wordreplace authors. All rights reserved.
// https://github.com/textfix/go-wordreplace
// See the included LICENSE file for license details.

package wordreplace

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSeparators(t *testing.T) {
	type TestCase struct {
		Name string

		Separators []string

		Expected []string
	}

	for i, tc := range []TestCase{
		{"Empty", []string{}, []string{}},
		{"OnlyEmptyStrings", []string{"", ""}, []string{}},
		{"DropsEmptyStrings", []string{"", " ", ""}, []string{" "}},
		{"RemovesDuplicates", []string{" ", "\t", " "}, []string{" ", "\t"}},
		{"LongestFirst", []string{"\r", "\r\n", "\n"}, []string{"\r\n", "\r", "\n"}},
		{"StableForEqualLengths", []string{"b", "a", "c"}, []string{"b", "a", "c"}},
	} {
		actual := normalizeSeparators(tc.Separators)
		assert.Equal(t, tc.Expected, actual, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
	}
}

func TestNewSeparatorMatchersConfigurationError(t *testing.T) {
	for i, separators := range [][]string{
		nil,
		{},
		{""},
		{"", ""},
	} {
		matchers, err := NewSeparatorMatchers(separators)
		assert.Nil(t, matchers, fmt.Sprintf("Test case #%d, %#v", i, separators))
		assert.IsType(t, &ConfigurationError{}, err, fmt.Sprintf("Test case #%d, %#v", i, separators))
	}
}

func TestStartsWithSeparator(t *testing.T) {
	type TestCase struct {
		Text string

		Expected bool
	}

	matchers, err := NewSeparatorMatchers([]string{" ", "\t"})
	assert.NoError(t, err)

	for i, tc := range []TestCase{
		{" abc", true},
		{"\tabc", true},
		{"abc ", false},
		{"", false},
	} {
		actual := matchers.StartsWithSeparator(tc.Text)
		assert.Equal(t, tc.Expected, actual, fmt.Sprintf("Test case #%d, %q", i, tc.Text))
	}
}

func TestEndsWithSeparator(t *testing.T) {
	type TestCase struct {
		Text string

		Expected bool
	}

	matchers, err := NewSeparatorMatchers([]string{" ", "\t"})
	assert.NoError(t, err)

	for i, tc := range []TestCase{
		{"abc ", true},
		{"abc\t", true},
		{" abc", false},
		{"", false},
	} {
		actual := matchers.EndsWithSeparator(tc.Text)
		assert.Equal(t, tc.Expected, actual, fmt.Sprintf("Test case #%d, %q", i, tc.Text))
	}
}

func TestFindLastSeparator(t *testing.T) {
	type TestCase struct {
		Name string

		Separators []string
		Text       string

		ExpectedSeparator string
		ExpectedIndex     int
	}

	for i, tc := range []TestCase{
		{"SingleSeparatorFound", []string{" "}, "a b c", " ", 3},
		{"SingleSeparatorMissing", []string{" "}, "abc", "", -1},
		{"RightmostWins", []string{" ", "\t"}, "a\tb c", " ", 3},
		{"MissingManySeparators", []string{" ", "\t"}, "abc", "", -1},
		{"LongerWinsAtSameIndex", []string{"\r", "\r\n"}, "a\r\nb", "\r\n", 1},
		{"LongerWinsAtEnd", []string{"\r", "\r\n"}, "x\rz\r\n", "\r\n", 3},
	} {
		matchers, err := NewSeparatorMatchers(tc.Separators)
		assert.NoError(t, err, fmt.Sprintf("Test case #%d, %s", i, tc.Name))

		sep, idx := matchers.FindLastSeparator(tc.Text)
		assert.Equal(t, tc.ExpectedSeparator, sep, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
		assert.Equal(t, tc.ExpectedIndex, idx, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
	}
}

func TestFindFirstSeparator(t *testing.T) {
	type TestCase struct {
		Name string

		Separators []string
		Text       string

		ExpectedSeparator string
		ExpectedIndex     int
	}

	for i, tc := range []TestCase{
		{"SingleSeparatorFound", []string{" "}, "a b c", " ", 1},
		{"SingleSeparatorMissing", []string{" "}, "abc", "", -1},
		{"LeftmostWins", []string{" ", "\t"}, "a\tb c", "\t", 1},
		{"MissingManySeparators", []string{" ", "\t"}, "abc", "", -1},
		{"LongerWinsAtSameIndex", []string{"\r", "\r\n"}, "\r\nx\r", "\r\n", 0},
	} {
		matchers, err := NewSeparatorMatchers(tc.Separators)
		assert.NoError(t, err, fmt.Sprintf("Test case #%d, %s", i, tc.Name))

		sep, idx := matchers.FindFirstSeparator(tc.Text)
		assert.Equal(t, tc.ExpectedSeparator, sep, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
		assert.Equal(t, tc.ExpectedIndex, idx, fmt.Sprintf("Test case #%d, %s", i, tc.Name))
	}
}

func TestWhitespaceSeparatorsNormalize(t *testing.T) {
	matchers, err := NewSeparatorMatchers(WhitespaceSeparators)
	assert.NoError(t, err)

	// The two-character line terminator must survive normalization ahead of
	// its one-character prefix.
	sep, idx := matchers.FindLastSeparator("a\r\nb")
	assert.Equal(t, "\r\n", sep)
	assert.Equal(t, 1, idx)
}
