// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telnumber/internal/phonenumber"
)

func TestParseUSNumberWithPlusSign(t *testing.T) {
	n, err := Parse("+1 650-253-0000", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, uint64(6502530000), n.NationalNumber)
	assert.Equal(t, phonenumber.CountryCodeSourceFromNumberWithPlusSign, n.CountryCodeSource)
}

func TestParseGBNumberWithPlusSign(t *testing.T) {
	n, err := Parse("+442087712924", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, 44, n.CountryCode)
	assert.Equal(t, uint64(2087712924), n.NationalNumber)
}

func TestParseRFC3966WithPhoneContext(t *testing.T) {
	n, err := Parse("tel:+1-650-253-0000;phone-context=+1", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, uint64(6502530000), n.NationalNumber)
}

func TestParseUnassignedCountryCode(t *testing.T) {
	_, err := Parse("+999 12345", "ZZ")
	assert.ErrorIs(t, err, phonenumber.ErrInvalidCountryCode)
}

func TestParseExtractsExtension(t *testing.T) {
	n, err := Parse("+1 650-253-0000 ext 123", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, uint64(6502530000), n.NationalNumber)
	assert.Equal(t, "123", n.Extension)
}

func TestParseAndKeepRawInputRetainsRaw(t *testing.T) {
	n, err := ParseAndKeepRawInput("+1 650-253-0000", "ZZ")
	require.NoError(t, err)
	assert.Equal(t, "+1 650-253-0000", n.RawInput)
}

func TestParseWithoutKeepingRawInputClearsRaw(t *testing.T) {
	n, err := Parse("+1 650-253-0000", "ZZ")
	require.NoError(t, err)
	assert.Empty(t, n.RawInput)
}

func TestParseEmptyInputIsNotANumber(t *testing.T) {
	_, err := Parse("", "US")
	assert.ErrorIs(t, err, phonenumber.ErrNotANumber)
}

func TestParseTooLongInputIsNotANumber(t *testing.T) {
	long := make([]byte, 260)
	for i := range long {
		long[i] = '1'
	}
	_, err := Parse(string(long), "US")
	assert.ErrorIs(t, err, phonenumber.ErrNotANumber)
}

func TestParseDefaultsToRegionCallingCode(t *testing.T) {
	n, err := Parse("650-253-0000", "US")
	require.NoError(t, err)
	assert.Equal(t, 1, n.CountryCode)
	assert.Equal(t, phonenumber.CountryCodeSourceFromDefaultCountry, n.CountryCodeSource)
}

func TestParseGBNationalPrefixDoesNotLeaveAnItalianLeadingZero(t *testing.T) {
	n, err := Parse("020 8771 2924", "GB")
	require.NoError(t, err)
	assert.Equal(t, 44, n.CountryCode)
	assert.Equal(t, uint64(2087712924), n.NationalNumber)
	assert.False(t, n.ItalianLeadingZero)
	assert.Equal(t, 0, n.NumberOfLeadingZeros)
}
