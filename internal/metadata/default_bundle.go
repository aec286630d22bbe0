// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metadata

// defaultBundleRecords is the compiled-in stand-in for the externally
// produced metadata blob described in spec §6. Spec §1 scopes the XML ->
// binary compiler out of this library's responsibility ("the build-time
// pipeline that compiles human-authored XML rule tables ... is out of
// scope"); this file supplies a small, hand-curated bundle covering
// enough regions to exercise every component (NANPA leading-1 handling,
// a national-prefix-bearing European region, an Italian-leading-zero
// region, a mobile-token region, and the non-geographical "001" entity)
// without requiring that external tool to run.
func defaultBundleRecords() []*PhoneMetadata {
	return []*PhoneMetadata{
		usMetadata(),
		gbMetadata(),
		deMetadata(),
		frMetadata(),
		itMetadata(),
		auMetadata(),
		arMetadata(),
		ruMetadata(),
		nonGeographicalMetadata(),
	}
}

func usMetadata() *PhoneMetadata {
	return &PhoneMetadata{
		ID:                       "US",
		CountryCode:              1,
		InternationalPrefix:      "011",
		NationalPrefix:           "1",
		NationalPrefixForParsing: "1",
		MainCountryForCode:       true,
		GeneralDesc: Descriptor{
			NationalNumberPattern: `[2-9]\d{9}`,
			PossibleLengths:       []int{10},
		},
		FixedLine: Descriptor{
			NationalNumberPattern: `[2-9]\d{9}`,
			PossibleLengths:       []int{10},
			ExampleNumber:         "2015550123",
		},
		Mobile: Descriptor{
			NationalNumberPattern: `[2-9]\d{9}`,
			PossibleLengths:       []int{10},
			ExampleNumber:         "2015550123",
		},
		TollFree: Descriptor{
			NationalNumberPattern: `8(?:00|33|44|55|66|77|88)[2-9]\d{6}`,
			PossibleLengths:       []int{10},
			ExampleNumber:         "8002345678",
		},
		PremiumRate: Descriptor{
			NationalNumberPattern: `900[2-9]\d{6}`,
			PossibleLengths:       []int{10},
			ExampleNumber:         "9002345678",
		},
		NumberFormat: []Format{
			{
				Pattern:                      `(\d{3})(\d{3})(\d{4})`,
				FormatTemplate:               `($1) $2-$3`,
				LeadingDigitsPattern:         []string{`[2-9]`},
				NationalPrefixFormattingRule: `1 $1`,
				// US shows the national prefix only when dialled as a
				// long-distance trunk call, not in the preferred display
				// form -- "(650) 253-0000", never "1 (650) 253-0000".
				NationalPrefixOptionalWhenFormatting: true,
			},
		},
	}
}

func gbMetadata() *PhoneMetadata {
	return &PhoneMetadata{
		ID:                       "GB",
		CountryCode:              44,
		InternationalPrefix:      "00",
		NationalPrefix:           "0",
		NationalPrefixForParsing: "0",
		MainCountryForCode:       true,
		GeneralDesc: Descriptor{
			NationalNumberPattern: `[1-9]\d{8,9}`,
			PossibleLengths:       []int{9, 10},
		},
		FixedLine: Descriptor{
			NationalNumberPattern: `(?:1\d|2[03])\d{8}`,
			PossibleLengths:       []int{10},
			ExampleNumber:         "2087712924",
		},
		Mobile: Descriptor{
			NationalNumberPattern: `7\d{9}`,
			PossibleLengths:       []int{10},
			ExampleNumber:         "7400123456",
		},
		NumberFormat: []Format{
			{
				Pattern:                      `(\d{2})(\d{4})(\d{4})`,
				FormatTemplate:               `$1 $2 $3`,
				LeadingDigitsPattern:         []string{`2`},
				NationalPrefixFormattingRule: `0$1`,
			},
			{
				Pattern:                      `(\d{4})(\d{6})`,
				FormatTemplate:               `$1 $2`,
				LeadingDigitsPattern:         []string{`[1378]`},
				NationalPrefixFormattingRule: `0$1`,
			},
			{
				Pattern:                      `(\d{3})(\d{3})(\d{3})`,
				FormatTemplate:               `$1 $2 $3`,
				LeadingDigitsPattern:         []string{`[9]`},
				NationalPrefixFormattingRule: `0$1`,
			},
		},
	}
}

func deMetadata() *PhoneMetadata {
	return &PhoneMetadata{
		ID:                       "DE",
		CountryCode:              49,
		InternationalPrefix:      "00",
		NationalPrefix:           "0",
		NationalPrefixForParsing: "0",
		MainCountryForCode:       true,
		GeneralDesc: Descriptor{
			NationalNumberPattern: `[1-9]\d{5,10}`,
			PossibleLengths:       []int{6, 7, 8, 9, 10, 11},
		},
		FixedLine: Descriptor{
			NationalNumberPattern: `[2-9]\d{5,10}`,
			PossibleLengths:       []int{6, 7, 8, 9, 10, 11},
			ExampleNumber:         "30123456",
		},
		Mobile: Descriptor{
			NationalNumberPattern: `1[5-7]\d{8,9}`,
			PossibleLengths:       []int{10, 11},
			ExampleNumber:         "15123456789",
		},
		NumberFormat: []Format{
			{
				Pattern:                      `(\d{2})(\d{6,8})`,
				FormatTemplate:               `$1 $2`,
				LeadingDigitsPattern:         []string{`3`},
				NationalPrefixFormattingRule: `0$1`,
			},
			{
				Pattern:                      `(\d{4})(\d{6,7})`,
				FormatTemplate:               `$1 $2`,
				LeadingDigitsPattern:         []string{`1`},
				NationalPrefixFormattingRule: `0$1`,
			},
		},
	}
}

func frMetadata() *PhoneMetadata {
	return &PhoneMetadata{
		ID:                       "FR",
		CountryCode:              33,
		InternationalPrefix:      "00",
		NationalPrefix:           "0",
		NationalPrefixForParsing: "0",
		MainCountryForCode:       true,
		GeneralDesc: Descriptor{
			NationalNumberPattern: `[1-9]\d{8}`,
			PossibleLengths:       []int{9},
		},
		FixedLine: Descriptor{
			NationalNumberPattern: `[1-5]\d{8}`,
			PossibleLengths:       []int{9},
			ExampleNumber:         "123456789",
		},
		Mobile: Descriptor{
			NationalNumberPattern: `[67]\d{8}`,
			PossibleLengths:       []int{9},
			ExampleNumber:         "612345678",
		},
		NumberFormat: []Format{
			{
				Pattern:                      `(\d)(\d{2})(\d{2})(\d{2})(\d{2})`,
				FormatTemplate:               `$1 $2 $3 $4 $5`,
				LeadingDigitsPattern:         []string{`[1-9]`},
				NationalPrefixFormattingRule: `0$1`,
			},
		},
	}
}

func itMetadata() *PhoneMetadata {
	return &PhoneMetadata{
		ID:                  "IT",
		CountryCode:         39,
		InternationalPrefix: "00",
		// Italy has no national prefix; the Italian leading-zero flag
		// (spec §3) is how a parsed number retains the fixed-line "0"
		// instead of stripping it as a national prefix.
		MainCountryForCode: true,
		GeneralDesc: Descriptor{
			NationalNumberPattern: `[0-9]\d{5,10}`,
			PossibleLengths:       []int{6, 7, 8, 9, 10, 11},
		},
		FixedLine: Descriptor{
			NationalNumberPattern: `0\d{5,10}`,
			PossibleLengths:       []int{8, 9, 10, 11},
			ExampleNumber:         "0212345678",
		},
		Mobile: Descriptor{
			NationalNumberPattern: `3\d{8,9}`,
			PossibleLengths:       []int{9, 10},
			ExampleNumber:         "3123456789",
		},
		NumberFormat: []Format{
			{
				Pattern:              `(\d{2})(\d{4})(\d{4})`,
				FormatTemplate:       `$1 $2 $3`,
				LeadingDigitsPattern: []string{`0[26]`},
			},
			{
				Pattern:              `(\d{3})(\d{3,4})(\d{4})`,
				FormatTemplate:       `$1 $2 $3`,
				LeadingDigitsPattern: []string{`3`},
			},
		},
	}
}

func auMetadata() *PhoneMetadata {
	return &PhoneMetadata{
		ID:                       "AU",
		CountryCode:              61,
		InternationalPrefix:      "0011",
		NationalPrefix:           "0",
		NationalPrefixForParsing: "0",
		MainCountryForCode:       true,
		GeneralDesc: Descriptor{
			NationalNumberPattern: `[1-9]\d{8}`,
			PossibleLengths:       []int{9},
		},
		FixedLine: Descriptor{
			NationalNumberPattern: `[2378]\d{8}`,
			PossibleLengths:       []int{9},
			ExampleNumber:         "212345678",
		},
		Mobile: Descriptor{
			NationalNumberPattern: `4\d{8}`,
			PossibleLengths:       []int{9},
			ExampleNumber:         "412345678",
		},
		NumberFormat: []Format{
			{
				Pattern:                      `(\d)(\d{4})(\d{4})`,
				FormatTemplate:               `$1 $2 $3`,
				LeadingDigitsPattern:         []string{`[2-478]`},
				NationalPrefixFormattingRule: `0$1`,
			},
		},
	}
}

// arMetadata models Argentina, a mobile-token region (spec §4.6): mobile
// numbers insert a "9" between the country code and the national number
// when formatted for international dialling.
func arMetadata() *PhoneMetadata {
	return &PhoneMetadata{
		ID:                          "AR",
		CountryCode:                 54,
		InternationalPrefix:         "00",
		NationalPrefix:              "0",
		NationalPrefixForParsing:    `0?(?:(11|15)?)`,
		NationalPrefixTransformRule: `9$1`,
		MainCountryForCode:          true,
		MobileNumberPortableRegion:  true,
		GeneralDesc: Descriptor{
			NationalNumberPattern: `9?\d{10}`,
			PossibleLengths:       []int{10, 11},
		},
		FixedLine: Descriptor{
			NationalNumberPattern: `\d{10}`,
			PossibleLengths:       []int{10},
			ExampleNumber:         "1123456789",
		},
		Mobile: Descriptor{
			NationalNumberPattern: `9\d{10}`,
			PossibleLengths:       []int{11},
			ExampleNumber:         "91123456789",
		},
		NumberFormat: []Format{
			{
				Pattern:              `(\d{2})(\d{4})(\d{4})`,
				FormatTemplate:       `$1 $2-$3`,
				LeadingDigitsPattern: []string{`1`},
			},
		},
	}
}

func ruMetadata() *PhoneMetadata {
	return &PhoneMetadata{
		ID:                       "RU",
		CountryCode:              7,
		InternationalPrefix:      "810",
		NationalPrefix:           "8",
		NationalPrefixForParsing: "8",
		MainCountryForCode:       true,
		GeneralDesc: Descriptor{
			NationalNumberPattern: `[3489]\d{9}`,
			PossibleLengths:       []int{10},
		},
		FixedLine: Descriptor{
			NationalNumberPattern: `[348]\d{9}`,
			PossibleLengths:       []int{10},
			ExampleNumber:         "4951234567",
		},
		Mobile: Descriptor{
			NationalNumberPattern: `9\d{9}`,
			PossibleLengths:       []int{10},
			ExampleNumber:         "9123456789",
		},
		NumberFormat: []Format{
			{
				Pattern:                      `(\d{3})(\d{3})(\d{2})(\d{2})`,
				FormatTemplate:               `$1 $2-$3-$4`,
				LeadingDigitsPattern:         []string{`[3489]`},
				NationalPrefixFormattingRule: `8 $1`,
			},
		},
	}
}

// nonGeographicalMetadata represents spec §4.3's "distinguished region
// id 001" for non-geographical entities, modeled on UIFN/International
// Freephone numbering (+800).
func nonGeographicalMetadata() *PhoneMetadata {
	return &PhoneMetadata{
		ID:                  "001",
		CountryCode:         800,
		InternationalPrefix: "00",
		MainCountryForCode:  true,
		GeneralDesc: Descriptor{
			NationalNumberPattern: `\d{8}`,
			PossibleLengths:       []int{8},
		},
		TollFree: Descriptor{
			NationalNumberPattern: `\d{8}`,
			PossibleLengths:       []int{8},
			ExampleNumber:         "12345678",
		},
		NumberFormat: []Format{
			{
				Pattern:              `(\d{4})(\d{4})`,
				FormatTemplate:       `$1 $2`,
				LeadingDigitsPattern: []string{`\d`},
			},
		},
	}
}
