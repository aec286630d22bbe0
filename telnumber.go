// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telnumber

import (
	"telnumber/internal/classify"
	"telnumber/internal/format"
	"telnumber/internal/parser"
	"telnumber/internal/phonenumber"
)

// Number is a parsed, structured telephone number (spec §3's data model).
type Number = phonenumber.Number

// ErrorKind is the error type every parse failure returns.
type ErrorKind = phonenumber.ErrorKind

// NumberFormatStyle selects Format's output style.
type NumberFormatStyle = phonenumber.NumberFormatStyle

// PhoneNumberType is GetNumberType's classification result.
type PhoneNumberType = phonenumber.PhoneNumberType

// ParsingOptions bundles the parser's two knobs for callers that want them
// grouped rather than passed positionally.
type ParsingOptions = phonenumber.ParsingOptions

// DefaultParsingOptions returns default_region "ZZ", keep_raw_input false.
func DefaultParsingOptions() ParsingOptions { return phonenumber.DefaultParsingOptions() }

// Number format styles.
const (
	E164          = phonenumber.E164
	International = phonenumber.International
	National      = phonenumber.National
	RFC3966       = phonenumber.RFC3966
)

// Phone number types, in GetNumberType's precedence order.
const (
	FixedLine         = phonenumber.FixedLine
	Mobile            = phonenumber.Mobile
	FixedLineOrMobile = phonenumber.FixedLineOrMobile
	TollFree          = phonenumber.TollFree
	PremiumRate       = phonenumber.PremiumRate
	SharedCost        = phonenumber.SharedCost
	VoIP              = phonenumber.VoIP
	PersonalNumber    = phonenumber.PersonalNumber
	Pager             = phonenumber.Pager
	UAN               = phonenumber.UAN
	Voicemail         = phonenumber.Voicemail
	UnknownType       = phonenumber.UnknownType
)

// RegionUnknown is the "ZZ" sentinel region code.
const RegionUnknown = phonenumber.RegionUnknown

// RegionNonGeographical is the "001" sentinel region code.
const RegionNonGeographical = phonenumber.RegionNonGeographical

// Sentinel error kinds a Parse call can return (spec §6/§7).
var (
	ErrInvalidCountryCode = phonenumber.ErrInvalidCountryCode
	ErrNotANumber         = phonenumber.ErrNotANumber
	ErrTooShortAfterIDD   = phonenumber.ErrTooShortAfterIDD
	ErrTooShortNSN        = phonenumber.ErrTooShortNSN
	ErrTooLong            = phonenumber.ErrTooLong
)

// Parse turns raw into a structured Number, resolving an ambiguous or
// missing country code against defaultRegion. RawInput is left empty.
func Parse(raw, defaultRegion string) (*Number, error) {
	return parser.Parse(raw, defaultRegion)
}

// ParseAndKeepRawInput is Parse but additionally populates the returned
// Number's RawInput field with raw, verbatim.
func ParseAndKeepRawInput(raw, defaultRegion string) (*Number, error) {
	return parser.ParseAndKeepRawInput(raw, defaultRegion)
}

// ParseWithOptions is Parse/ParseAndKeepRawInput selected by opts.KeepRawInput.
func ParseWithOptions(raw string, opts ParsingOptions) (*Number, error) {
	if opts.KeepRawInput {
		return parser.ParseAndKeepRawInput(raw, opts.DefaultRegion)
	}
	return parser.Parse(raw, opts.DefaultRegion)
}

// Format renders n in the given style.
func Format(n *Number, style NumberFormatStyle) string {
	return format.Format(n, style)
}

// FormatOutOfCountryCallingFrom renders n as it would be dialed from
// callingFromRegion.
func FormatOutOfCountryCallingFrom(n *Number, callingFromRegion string) string {
	return format.FormatOutOfCountryCallingFrom(n, callingFromRegion)
}

// IsPossibleNumber reports whether n's length is plausible for its region.
func IsPossibleNumber(n *Number) bool { return classify.IsPossibleNumber(n) }

// IsValidNumber reports whether n is possible and matches its region's
// full national-number pattern.
func IsValidNumber(n *Number) bool { return classify.IsValidNumber(n) }

// IsValidNumberForRegion restricts IsValidNumber to a single named region.
func IsValidNumberForRegion(n *Number, region string) bool {
	return classify.IsValidNumberForRegion(n, region)
}

// GetNumberType classifies n (fixed line, mobile, toll-free, ...).
func GetNumberType(n *Number) PhoneNumberType { return classify.GetNumberType(n) }

// GetRegionCodeForNumber returns the region n geographically belongs to.
func GetRegionCodeForNumber(n *Number) string { return classify.GetRegionCodeForNumber(n) }
