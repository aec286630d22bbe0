// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phonenumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberEqualIgnoresRawInputAndSource(t *testing.T) {
	a := &Number{CountryCode: 1, NationalNumber: 6502530000, RawInput: "650-253-0000", CountryCodeSource: CountryCodeSourceFromDefaultCountry}
	b := &Number{CountryCode: 1, NationalNumber: 6502530000, RawInput: "", CountryCodeSource: CountryCodeSourceFromNumberWithPlusSign}

	assert.True(t, a.Equal(b))
}

func TestNumberEqualDetectsDifference(t *testing.T) {
	a := &Number{CountryCode: 1, NationalNumber: 6502530000}
	b := &Number{CountryCode: 1, NationalNumber: 6502530001}

	assert.False(t, a.Equal(b))
}

func TestNumberCloneIsIndependent(t *testing.T) {
	a := &Number{CountryCode: 44, NationalNumber: 2087712924}
	b := a.Clone()
	b.NationalNumber = 1

	assert.Equal(t, uint64(2087712924), a.NationalNumber)
}

func TestErrorKindIsComparableAcrossInstances(t *testing.T) {
	var err error = ErrTooShortNSN
	assert.ErrorIs(t, err, ErrTooShortNSN)
	assert.NotErrorIs(t, err, ErrTooLong)
}

func TestDefaultParsingOptions(t *testing.T) {
	opts := DefaultParsingOptions()
	assert.Equal(t, RegionUnknown, opts.DefaultRegion)
	assert.False(t, opts.KeepRawInput)
}
