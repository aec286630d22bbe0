// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package metadata is the process-wide, read-only index described in
// spec §4.3 (C2): region id -> PhoneMetadata, and country calling code ->
// ordered list of region ids with the main region first.
package metadata

// Descriptor is a (pattern, possible-lengths) pair describing one class of
// numbers within a region (spec §3, "Phone Metadata (per region)").
type Descriptor struct {
	NationalNumberPattern  string
	PossibleLengths        []int
	PossibleLengthLocalOnly []int
	ExampleNumber          string
}

// Format is a (pattern, template, leading-digits) triple used to render an
// NSN (spec §3, §4.7).
type Format struct {
	Pattern                            string
	FormatTemplate                     string
	LeadingDigitsPattern                []string
	NationalPrefixFormattingRule        string
	NationalPrefixOptionalWhenFormatting bool
	DomesticCarrierCodeFormattingRule    string
}

// PhoneMetadata is the per-region record described in spec §6's bundle
// schema, field for field.
type PhoneMetadata struct {
	ID                          string
	CountryCode                 int
	InternationalPrefix         string
	PreferredInternationalPrefix string
	NationalPrefix              string
	PreferredExtnPrefix         string
	NationalPrefixForParsing    string
	NationalPrefixTransformRule string

	GeneralDesc        Descriptor
	FixedLine          Descriptor
	Mobile             Descriptor
	TollFree           Descriptor
	PremiumRate        Descriptor
	SharedCost         Descriptor
	PersonalNumber     Descriptor
	Voip               Descriptor
	Pager              Descriptor
	Uan                Descriptor
	Emergency          Descriptor
	Voicemail          Descriptor
	ShortCode          Descriptor
	StandardRate       Descriptor
	CarrierSpecific    Descriptor
	SmsServices        Descriptor
	NoInternationalDialling Descriptor

	NumberFormat    []Format
	IntlNumberFormat []Format

	MainCountryForCode       bool
	LeadingDigits            string
	MobileNumberPortableRegion bool
}

// HasIntlNumberFormat reports whether this region supplies a distinct
// international-format table, per spec §4.7 ("INTL output when provided").
func (m *PhoneMetadata) HasIntlNumberFormat() bool {
	return len(m.IntlNumberFormat) > 0
}
