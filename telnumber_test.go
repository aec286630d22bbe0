// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telnumber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telnumber"
)

func TestParseFormatRoundTrip(t *testing.T) {
	n, err := telnumber.Parse("(650) 253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, "+16502530000", telnumber.Format(n, telnumber.E164))
	assert.Equal(t, "(650) 253-0000", telnumber.Format(n, telnumber.National))
}

func TestIsValidNumberAndType(t *testing.T) {
	n, err := telnumber.Parse("+1 650-253-0000", "ZZ")
	require.NoError(t, err)
	assert.True(t, telnumber.IsPossibleNumber(n))
	assert.Equal(t, "US", telnumber.GetRegionCodeForNumber(n))
}

func TestParseWithOptionsKeepsRawInput(t *testing.T) {
	opts := telnumber.DefaultParsingOptions()
	opts.DefaultRegion = "US"
	opts.KeepRawInput = true

	n, err := telnumber.ParseWithOptions("650-253-0000", opts)
	require.NoError(t, err)
	assert.Equal(t, "650-253-0000", n.RawInput)
}

func TestParseInvalidCountryCode(t *testing.T) {
	_, err := telnumber.Parse("+999 12345", "ZZ")
	assert.ErrorIs(t, err, telnumber.ErrInvalidCountryCode)
}

func TestAsYouTypeFormatterUSSequence(t *testing.T) {
	f := telnumber.NewAsYouTypeFormatter("US")
	want := []string{
		"6", "65", "650", "650 2", "650 25", "650 253",
		"650 253 0", "650 253 00", "650 253 000", "650 253 0000",
	}
	for i, d := range "6502530000" {
		assert.Equal(t, want[i], f.InputDigit(d))
	}
}

func TestPhoneNumberMatcherSkipsInvalidCandidate(t *testing.T) {
	m := telnumber.NewPhoneNumberMatcher(
		"Call +1 425-882-8080 or 0800-123-456 today", "US", telnumber.Valid, 20)

	require.True(t, m.HasNext())
	match := m.Next()
	require.NotNil(t, match)
	assert.Equal(t, 5, match.Start)
	assert.Equal(t, "+1 425-882-8080", match.RawString)
	assert.False(t, m.HasNext())
}

func TestPhoneNumberMatcherSkipsTimestamp(t *testing.T) {
	m := telnumber.NewPhoneNumberMatcher(
		"Meeting 2012-01-02 08:00:15 in room 42", "US", telnumber.Valid, 50)
	assert.False(t, m.HasNext())
}
