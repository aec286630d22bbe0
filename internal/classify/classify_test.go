// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"telnumber/internal/phonenumber"
)

func usNumber(nsn uint64) *phonenumber.Number {
	return &phonenumber.Number{CountryCode: 1, NationalNumber: nsn}
}

func TestIsPossibleNumberAcceptsTenDigitUS(t *testing.T) {
	assert.True(t, IsPossibleNumber(usNumber(6502530000)))
}

func TestIsPossibleNumberRejectsShortUS(t *testing.T) {
	assert.False(t, IsPossibleNumber(usNumber(123)))
}

func TestIsValidNumberUS(t *testing.T) {
	assert.True(t, IsValidNumber(usNumber(6502530000)))
}

func TestIsValidNumberRejectsBadLeadingDigit(t *testing.T) {
	// NANPA general_desc requires [2-9] leading digit.
	assert.False(t, IsValidNumber(usNumber(1502530000)))
}

func TestIsValidNumberForRegionRestrictsToRegion(t *testing.T) {
	n := usNumber(6502530000)
	assert.True(t, IsValidNumberForRegion(n, "US"))
	assert.False(t, IsValidNumberForRegion(n, "GB"))
}

func TestValidImpliesPossible(t *testing.T) {
	n := usNumber(6502530000)
	if IsValidNumber(n) {
		assert.True(t, IsPossibleNumber(n))
	}
}

func TestGetNumberTypeTollFree(t *testing.T) {
	assert.Equal(t, phonenumber.TollFree, GetNumberType(usNumber(8002345678)))
}

func TestGetNumberTypeFixedOrMobileForNANPA(t *testing.T) {
	// NANPA's fixed-line and mobile descriptors are identical in this
	// bundle, so an ordinary number classifies as fixed-or-mobile.
	assert.Equal(t, phonenumber.FixedLineOrMobile, GetNumberType(usNumber(6502530000)))
}

func TestGetRegionCodeForNumberUS(t *testing.T) {
	assert.Equal(t, "US", GetRegionCodeForNumber(usNumber(6502530000)))
}

func TestGetRegionCodeForNumberNonGeographical(t *testing.T) {
	n := &phonenumber.Number{CountryCode: 800, NationalNumber: 12345678}
	assert.Equal(t, "001", GetRegionCodeForNumber(n))
}

func TestGetRegionCodeForNumberUnassignedCode(t *testing.T) {
	n := &phonenumber.Number{CountryCode: 999, NationalNumber: 12345}
	assert.Equal(t, phonenumber.RegionUnknown, GetRegionCodeForNumber(n))
}
