// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package parser implements spec §4.5 (C5): turning raw text into a
// structured phonenumber.Number, handling IDD prefixes, national
// prefixes, RFC3966 phone-context, extensions, and messy punctuation.
package parser

import (
	"strconv"
	"strings"
	"unicode"

	"telnumber/internal/metadata"
	"telnumber/internal/normalize"
	"telnumber/internal/phonenumber"
	"telnumber/internal/regexengine"
	"telnumber/internal/rules"
)

const maxInputLength = 250

// Parse implements spec §4.5's ten-step algorithm without retaining raw
// input.
func Parse(raw, defaultRegion string) (*phonenumber.Number, error) {
	return parse(raw, defaultRegion, false)
}

// ParseAndKeepRawInput is Parse but populates RawInput on success.
func ParseAndKeepRawInput(raw, defaultRegion string) (*phonenumber.Number, error) {
	return parse(raw, defaultRegion, true)
}

func parse(raw, defaultRegion string, keepRaw bool) (*phonenumber.Number, error) {
	// Step 1: length bounds.
	if len(raw) == 0 || len(raw) > maxInputLength {
		return nil, phonenumber.ErrNotANumber
	}

	p := rules.Default()
	store := metadata.Default()

	// Step 2: RFC3966 phone-context extraction.
	body, contextCC, hasContextCC := extractPhoneContext(raw, p)

	// Step 3: possible-number substring extraction.
	body = extractPossibleNumber(body, p)
	if body == "" {
		return nil, phonenumber.ErrNotANumber
	}

	// Step 4: viable-number check.
	if ok, _ := p.Viable.Match(body, true); !ok {
		return nil, phonenumber.ErrNotANumber
	}

	// Step 5: extension stripping.
	body, extension := stripExtension(body, p)

	// Step 6: country code determination.
	defaultMeta, hasDefaultRegion := store.ForRegion(defaultRegion)

	var (
		cc     int
		source phonenumber.CountryCodeSource
		err    error
	)
	switch {
	case hasContextCC:
		cc, source = contextCC, phonenumber.CountryCodeSourceFromNumberWithPlusSign
		leading := strings.TrimLeft(body, " \t")
		if hasPlusPrefix(leading) {
			body = stripLeadingDigits(stripPlusPrefix(leading), digitCount(cc))
		}
	default:
		body, cc, source, err = extractCountryCode(body, defaultMeta, hasDefaultRegion, store)
		if err != nil {
			return nil, err
		}
	}
	if cc == 0 {
		return nil, phonenumber.ErrInvalidCountryCode
	}

	regionMeta := regionForCountryCode(store, cc, defaultMeta)

	// Step 7: build national number.
	digits := normalize.DigitsOnly(body)

	// Step 8: strip national prefix and carrier code, then check for an
	// Italian-style leading zero on what remains -- a national prefix
	// (itself a leading digit in several regions, e.g. GB/DE/FR/AU's "0")
	// must be removed before that check, or every number parsed without
	// a leading '+' in such a region would be misread as having a leading
	// zero it never really has (spec §3/§4.5's CC-then-NDD-then-zero order).
	var carrierCode string
	if regionMeta != nil {
		digits, carrierCode = stripNationalPrefix(digits, regionMeta)
	}
	leadingZero, numZeros := italianLeadingZeros(digits)

	// Step 9: NSN length bounds.
	if len(digits) < rules.MinLengthForNSN {
		return nil, phonenumber.ErrTooShortNSN
	}
	if len(digits) > rules.MaxLengthForNSN {
		return nil, phonenumber.ErrTooLong
	}

	nsn, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return nil, phonenumber.ErrNotANumber
	}

	n := &phonenumber.Number{
		CountryCode:                  cc,
		NationalNumber:               nsn,
		ItalianLeadingZero:           leadingZero,
		NumberOfLeadingZeros:         numZeros,
		Extension:                    extension,
		CountryCodeSource:            source,
		PreferredDomesticCarrierCode: carrierCode,
	}
	if keepRaw {
		n.RawInput = raw
	}
	return n, nil
}

// extractPhoneContext pulls an RFC3966 phone-context parameter out of raw
// if present, returning the body with the parameter (and any "tel:"
// scheme prefix) stripped, plus an explicit country code when the context
// begins with a plus sign (spec §4.5 step 2).
func extractPhoneContext(raw string, p *rules.Patterns) (body string, cc int, hasCC bool) {
	body = raw
	if ok, _ := p.RFC3966Global.Match(raw, false); ok {
		body = strings.TrimPrefix(body, "tel:")
	}

	ok, context := p.RFC3966PhoneContext.Match(body, false)
	if ok {
		body = p.RFC3966PhoneContext.Replace(body, false, "")
		body = strings.TrimSuffix(body, ";ext=") // defensive; extension handled later
		if strings.HasPrefix(context, "+") {
			digits := normalize.DigitsOnly(context)
			if c, ok := parseLeadingCountryCode(digits); ok {
				return body, c, true
			}
		}
		// Domain-name contexts are validated but contribute no CC (spec
		// §4.5 step 2); no error is raised on mismatch since a malformed
		// descriptive context must not block an otherwise-parseable
		// number.
	}
	return body, 0, false
}

// extractPossibleNumber implements spec §4.5 step 3: find the first valid
// start character, then truncate at a second-number-start marker and trim
// trailing unwanted characters.
func extractPossibleNumber(s string, p *rules.Patterns) string {
	start := -1
	for i, r := range s {
		if isPlusRune(r) || unicode.IsDigit(r) {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}
	s = s[start:]

	if loc := findIndex(p.SecondNumberStart, s); loc >= 0 {
		s = s[:loc]
	}

	for {
		trimmed := p.UnwantedEndChar.Replace(s, false, "")
		if trimmed == s {
			break
		}
		s = trimmed
	}
	return s
}

func isPlusRune(r rune) bool {
	for _, c := range rules.PlusChars {
		if c == r {
			return true
		}
	}
	return false
}

// findIndex returns the byte offset of pat's first match in s, or -1.
// It tries every rune boundary since Consume only reports matches that
// are anchored at the position it's given.
func findIndex(pat regexengine.Pattern, s string) int {
	for i := range s {
		in, err := regexengine.NewInput(s[i:])
		if err != nil {
			return -1
		}
		if pat.Consume(in, true) {
			return i
		}
	}
	return -1
}

// stripExtension tries each extension pattern (most to least explicit) in
// order, looking for the earliest position whose remainder fully matches
// the pattern (every extension pattern is anchored at the end of input
// with "$"), and removes that suffix (spec §4.5 step 5).
func stripExtension(s string, p *rules.Patterns) (body, extension string) {
	for _, pat := range p.ExtnPatterns {
		positions := make([]int, 0, len(s)+1)
		for i := range s {
			positions = append(positions, i)
		}
		positions = append(positions, len(s))

		for _, idx := range positions {
			in, err := regexengine.NewInput(s[idx:])
			if err != nil {
				continue
			}
			var group string
			if pat.Consume(in, true, &group) && in.AtEnd() && group != "" {
				return strings.TrimRight(s[:idx], " \t-./"), group
			}
		}
	}
	return s, ""
}

// parseLeadingCountryCode reads 1-3 leading digits from digits as a
// candidate country calling code.
func parseLeadingCountryCode(digits string) (int, bool) {
	if digits == "" {
		return 0, false
	}
	n := len(digits)
	if n > rules.MaxLengthCountryCode {
		n = rules.MaxLengthCountryCode
	}
	v, err := strconv.Atoi(digits[:n])
	if err != nil {
		return 0, false
	}
	return v, true
}

func digitCount(n int) int {
	if n == 0 {
		return 1
	}
	c := 0
	for n > 0 {
		c++
		n /= 10
	}
	return c
}

func stripLeadingDigits(s string, n int) string {
	count := 0
	for i, r := range s {
		if count == n {
			return s[i:]
		}
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return ""
}

// extractCountryCode implements spec §4.5 step 6.
func extractCountryCode(body string, defaultMeta *metadata.PhoneMetadata, hasDefault bool, store *metadata.Store) (string, int, phonenumber.CountryCodeSource, error) {
	trimmed := strings.TrimLeft(body, " \t")

	if hasPlusPrefix(trimmed) {
		rest := stripPlusPrefix(trimmed)
		digits := normalize.DigitsOnly(rest)
		cc, ok := longestAssignedCountryCode(digits, store)
		if !ok {
			return "", 0, phonenumber.CountryCodeSourceUnspecified, phonenumber.ErrInvalidCountryCode
		}
		return stripLeadingDigits(rest, digitCount(cc)), cc, phonenumber.CountryCodeSourceFromNumberWithPlusSign, nil
	}

	if hasDefault && defaultMeta.InternationalPrefix != "" {
		if rest, ok := stripIDDPrefix(trimmed, defaultMeta.InternationalPrefix); ok {
			digits := normalize.DigitsOnly(rest)
			if digits == "" {
				return "", 0, phonenumber.CountryCodeSourceUnspecified, phonenumber.ErrTooShortAfterIDD
			}
			cc, ok := longestAssignedCountryCode(digits, store)
			if !ok {
				return "", 0, phonenumber.CountryCodeSourceUnspecified, phonenumber.ErrInvalidCountryCode
			}
			return stripLeadingDigits(rest, digitCount(cc)), cc, phonenumber.CountryCodeSourceFromNumberWithIDD, nil
		}
	}

	if hasDefault {
		return trimmed, defaultMeta.CountryCode, phonenumber.CountryCodeSourceFromDefaultCountry, nil
	}

	return "", 0, phonenumber.CountryCodeSourceUnspecified, phonenumber.ErrInvalidCountryCode
}

func hasPlusPrefix(s string) bool {
	for _, c := range rules.PlusChars {
		if strings.HasPrefix(s, string(c)) {
			return true
		}
	}
	return false
}

func stripPlusPrefix(s string) string {
	for _, c := range rules.PlusChars {
		if strings.HasPrefix(s, string(c)) {
			return s[len(string(c)):]
		}
	}
	return s
}

// stripIDDPrefix reports whether s begins with the IDD digit sequence
// idd (a literal digit string in this implementation's default bundle;
// spec allows a full regex here), returning the remainder.
func stripIDDPrefix(s, idd string) (string, bool) {
	digits := normalize.DigitsOnly(s)
	if !strings.HasPrefix(digits, idd) {
		return "", false
	}
	return stripLeadingDigits(s, len(idd)), true
}

// longestAssignedCountryCode tries 3, then 2, then 1 leading digits of
// digits against the store's known calling codes, per ITU rules (spec
// §4.5 step 6 bounds country codes to 1-3 digits).
func longestAssignedCountryCode(digits string, store *metadata.Store) (int, bool) {
	for length := rules.MaxLengthCountryCode; length >= 1; length-- {
		if len(digits) < length {
			continue
		}
		v, err := strconv.Atoi(digits[:length])
		if err != nil {
			continue
		}
		if len(store.RegionsForCode(v)) > 0 {
			return v, true
		}
	}
	// No assigned code matched; fall back to a bare 1-3 digit read so the
	// parser still reports INVALID_COUNTRY_CODE with the attempted value
	// rather than silently treating everything as unassigned.
	if v, ok := parseLeadingCountryCode(digits); ok {
		return v, len(store.RegionsForCode(v)) > 0
	}
	return 0, false
}

// regionForCountryCode returns the main region's metadata for cc, or
// defaultMeta if cc matches the default region's own calling code and no
// other region is registered.
func regionForCountryCode(store *metadata.Store, cc int, defaultMeta *metadata.PhoneMetadata) *metadata.PhoneMetadata {
	regions := store.RegionsForCode(cc)
	if len(regions) == 0 {
		return defaultMeta
	}
	m, _ := store.ForRegion(regions[0])
	return m
}

// italianLeadingZeros counts leading ASCII '0's in digits, called on the
// national number after national-prefix stripping (spec §4.5 step 8 /
// §3's italian_leading_zero + number_of_leading_zeros).
func italianLeadingZeros(digits string) (bool, int) {
	if digits == "" || digits[0] != '0' {
		return false, 0
	}
	n := 0
	for n < len(digits) && digits[n] == '0' {
		n++
	}
	return true, n
}
