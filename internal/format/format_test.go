// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"telnumber/internal/phonenumber"
)

func usNumber() *phonenumber.Number {
	return &phonenumber.Number{CountryCode: 1, NationalNumber: 6502530000}
}

func TestFormatE164(t *testing.T) {
	assert.Equal(t, "+16502530000", Format(usNumber(), phonenumber.E164))
}

func TestFormatNational(t *testing.T) {
	assert.Equal(t, "(650) 253-0000", Format(usNumber(), phonenumber.National))
}

func TestFormatInternational(t *testing.T) {
	assert.Equal(t, "+1 650-253-0000", Format(usNumber(), phonenumber.International))
}

func TestFormatRFC3966(t *testing.T) {
	assert.Equal(t, "tel:+1-650-253-0000", Format(usNumber(), phonenumber.RFC3966))
}

func TestFormatRFC3966WithExtension(t *testing.T) {
	n := usNumber()
	n.Extension = "123"
	assert.Equal(t, "tel:+1-650-253-0000;ext=123", Format(n, phonenumber.RFC3966))
}

func TestFormatNationalGB(t *testing.T) {
	n := &phonenumber.Number{CountryCode: 44, NationalNumber: 2087712924}
	assert.Equal(t, "020 8771 2924", Format(n, phonenumber.National))
}

func TestE164StabilityPattern(t *testing.T) {
	s := Format(usNumber(), phonenumber.E164)
	assert.Regexp(t, `^\+\d{1,3}\d{1,17}$`, s)
}

func TestFormatOutOfCountryCallingFromSameRegionIsIntl(t *testing.T) {
	n := usNumber()
	assert.Equal(t, Format(n, phonenumber.International), FormatOutOfCountryCallingFrom(n, "US"))
}

func TestFormatOutOfCountryCallingFromDifferentRegion(t *testing.T) {
	n := usNumber()
	out := FormatOutOfCountryCallingFrom(n, "GB")
	assert.Contains(t, out, "1 650-253-0000")
}
