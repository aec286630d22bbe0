// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package phonenumber holds the domain vocabulary shared by every other
// internal package: the structured Number, its enums, and the error kinds
// the parser surfaces. No package below this one in the import graph.
package phonenumber

// CountryCodeSource records where a Number's country calling code came
// from, per spec §3.
type CountryCodeSource int

const (
	CountryCodeSourceUnspecified CountryCodeSource = iota
	CountryCodeSourceFromNumberWithPlusSign
	CountryCodeSourceFromNumberWithIDD
	CountryCodeSourceFromNumberWithoutPlusSign
	CountryCodeSourceFromDefaultCountry
)

func (s CountryCodeSource) String() string {
	switch s {
	case CountryCodeSourceFromNumberWithPlusSign:
		return "FROM_NUMBER_WITH_PLUS_SIGN"
	case CountryCodeSourceFromNumberWithIDD:
		return "FROM_NUMBER_WITH_IDD"
	case CountryCodeSourceFromNumberWithoutPlusSign:
		return "FROM_NUMBER_WITHOUT_PLUS_SIGN"
	case CountryCodeSourceFromDefaultCountry:
		return "FROM_DEFAULT_COUNTRY"
	default:
		return "UNSPECIFIED"
	}
}

// Number is the canonical structured phone number described in spec §3.
// It is immutable once returned by the parser, except through explicit
// field edits the caller makes itself (e.g. clearing RawInput).
type Number struct {
	CountryCode       int
	NationalNumber    uint64
	ItalianLeadingZero bool
	NumberOfLeadingZeros int
	Extension         string
	RawInput          string
	CountryCodeSource CountryCodeSource
	PreferredDomesticCarrierCode string
}

// Clone returns a deep copy; Number has no reference fields that need deep
// copying beyond Go's default value semantics, but Clone exists so callers
// never accidentally alias a Number they intend to mutate independently.
func (n *Number) Clone() *Number {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

// Equal compares two numbers ignoring RawInput and CountryCodeSource, per
// the Parse-Format round trip property in spec §8.
func (n *Number) Equal(o *Number) bool {
	if n == nil || o == nil {
		return n == o
	}
	return n.CountryCode == o.CountryCode &&
		n.NationalNumber == o.NationalNumber &&
		n.ItalianLeadingZero == o.ItalianLeadingZero &&
		n.NumberOfLeadingZeros == o.NumberOfLeadingZeros &&
		n.Extension == o.Extension &&
		n.PreferredDomesticCarrierCode == o.PreferredDomesticCarrierCode
}
