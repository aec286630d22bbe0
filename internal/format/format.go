// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package format implements spec §4.7 (C7): rendering a structured
// Number into E164, International, National, or RFC3966 form.
package format

import (
	"strconv"
	"strings"
	"sync"

	"telnumber/internal/metadata"
	"telnumber/internal/phonenumber"
	"telnumber/internal/regexcache"
	"telnumber/internal/regexengine"
	"telnumber/internal/rules"
)

var (
	cacheOnce sync.Once
	cache     *regexcache.Cache
)

func patternCache() *regexcache.Cache {
	cacheOnce.Do(func() {
		cache = regexcache.New(regexcache.DefaultCapacity, nil)
	})
	return cache
}

// mobileTokenRegions lists country calling codes whose international
// representation inserts a mobile token between the country code and the
// national number (spec §4.6's "mobile-token regions"). Argentina (54) is
// the canonical example named in the spec.
var mobileTokenRegions = map[int]string{
	54: "9",
}

// Format renders n per style (spec §4.7).
func Format(n *phonenumber.Number, style phonenumber.NumberFormatStyle) string {
	nsn := nationalSignificantDigits(n)

	switch style {
	case phonenumber.E164:
		return "+" + strconv.Itoa(n.CountryCode) + nsn
	case phonenumber.RFC3966:
		return formatRFC3966(n, nsn)
	case phonenumber.International:
		return "+" + strconv.Itoa(n.CountryCode) + " " + formattedNationalSignificantNumber(n, nsn, true)
	default: // National
		return formattedNationalSignificantNumber(n, nsn, false)
	}
}

// FormatOutOfCountryCallingFrom renders n as it would be dialed from
// callingFromRegion: the national format of the destination prefixed by
// callingFromRegion's international dialling prefix and the destination's
// country code, or E164 when the regions are the same.
func FormatOutOfCountryCallingFrom(n *phonenumber.Number, callingFromRegion string) string {
	store := metadata.Default()
	destRegion := regionForNumber(n, store)

	from, ok := store.ForRegion(callingFromRegion)
	if !ok || destRegion == callingFromRegion {
		return Format(n, phonenumber.International)
	}

	nsn := nationalSignificantDigits(n)
	national := formattedNationalSignificantNumber(n, nsn, true)

	prefix := from.PreferredInternationalPrefix
	if prefix == "" {
		prefix = "+"
	} else {
		prefix = prefix + " "
	}
	return prefix + strconv.Itoa(n.CountryCode) + " " + national
}

func regionForNumber(n *phonenumber.Number, store *metadata.Store) string {
	regions := store.RegionsForCode(n.CountryCode)
	if len(regions) == 0 {
		return phonenumber.RegionUnknown
	}
	return regions[0]
}

// nationalSignificantDigits reconstitutes the NSN digit string including
// any Italian leading zeros (spec §3).
func nationalSignificantDigits(n *phonenumber.Number) string {
	s := uintToString(n.NationalNumber)
	if n.ItalianLeadingZero && n.NumberOfLeadingZeros > 0 {
		zeros := strings.Repeat("0", n.NumberOfLeadingZeros)
		return zeros + s
	}
	return s
}

func uintToString(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// formattedNationalSignificantNumber applies spec §4.7's format-selection
// loop: the first format whose leading-digits pattern matches the NSN's
// prefix and whose full pattern matches the NSN is used, falling back to
// the bare NSN if nothing matches.
func formattedNationalSignificantNumber(n *phonenumber.Number, nsn string, intl bool) string {
	store := metadata.Default()
	region := regionForNumber(n, store)
	m, ok := store.ForRegion(region)
	if !ok {
		return applyMobileToken(n, nsn)
	}

	table := m.NumberFormat
	if intl && m.HasIntlNumberFormat() {
		table = m.IntlNumberFormat
	}

	for _, f := range table {
		if !leadingDigitsMatch(f, nsn) {
			continue
		}
		if !fullMatch(f.Pattern, nsn) {
			continue
		}
		out := applyFormat(f, nsn, m, intl)
		if !intl {
			return out
		}
		return applyMobileTokenToFormatted(n, out)
	}

	return applyMobileToken(n, nsn)
}

func applyMobileToken(n *phonenumber.Number, nsn string) string {
	if token, ok := mobileTokenRegions[n.CountryCode]; ok && !strings.HasPrefix(nsn, token) {
		return token + nsn
	}
	return nsn
}

func applyMobileTokenToFormatted(n *phonenumber.Number, formatted string) string {
	if token, ok := mobileTokenRegions[n.CountryCode]; ok && !strings.HasPrefix(formatted, token) {
		return token + formatted
	}
	return formatted
}

func leadingDigitsMatch(f metadata.Format, nsn string) bool {
	if len(f.LeadingDigitsPattern) == 0 {
		return true
	}
	pat := f.LeadingDigitsPattern[len(f.LeadingDigitsPattern)-1]
	p := patternCache().Get("^(?:"+pat+")", regexengine.Linear)
	ok, _ := p.Match(nsn, false)
	return ok
}

func fullMatch(pattern, s string) bool {
	if pattern == "" {
		return false
	}
	p := patternCache().Get(pattern, regexengine.ICU)
	ok, _ := p.Match(s, true)
	return ok
}

// applyFormat expands f's template against nsn, then, for National
// style, prepends the national prefix per the national-prefix-formatting
// rule and expands $NP/$FG/$CC placeholders (spec §4.7).
func applyFormat(f metadata.Format, nsn string, m *metadata.PhoneMetadata, intl bool) string {
	p := patternCache().Get(f.Pattern, regexengine.ICU)
	template := f.FormatTemplate

	switch {
	case intl:
		// International display never shows the national prefix, and
		// drops parenthesized grouping in favor of plain dash separators
		// (spec §4.7's INTL style).
		template = toIntlTemplate(template)
	case f.NationalPrefixFormattingRule != "" && m.NationalPrefix != "" && !f.NationalPrefixOptionalWhenFormatting:
		rule := expandNPRule(f.NationalPrefixFormattingRule, m.NationalPrefix)
		template = strings.Replace(template, "$1", rule, 1)
	}

	return p.Replace(nsn, false, template)
}

// toIntlTemplate strips parenthesis characters from a national format
// template and converts the remaining run of spaces left behind into a
// single dash, so "($1) $2-$3" becomes "$1-$2-$3".
func toIntlTemplate(template string) string {
	stripped := strings.NewReplacer("(", "", ")", "").Replace(template)
	fields := strings.Fields(stripped)
	return strings.Join(fields, "-")
}

// expandNPRule expands $NP (national prefix) and $FG (first format
// group, represented here by the template's own "$1" placeholder, left
// for the subsequent group substitution pass) within a
// national-prefix-formatting-rule string (spec §4.7).
func expandNPRule(rule, nationalPrefix string) string {
	rule = strings.ReplaceAll(rule, "$NP", nationalPrefix)
	rule = strings.ReplaceAll(rule, "$FG", "$1")
	return rule
}

// formatRFC3966 renders n as a tel: URI (spec §4.7): "+CC-...;ext=X"
// with the national number's standard grouping using '-' separators.
func formatRFC3966(n *phonenumber.Number, nsn string) string {
	national := formattedNationalSignificantNumber(n, nsn, false)
	dashed := toDashSeparated(national)

	var sb strings.Builder
	sb.WriteString("tel:+")
	sb.WriteString(strconv.Itoa(n.CountryCode))
	sb.WriteString("-")
	sb.WriteString(dashed)
	if n.Extension != "" {
		sb.WriteString(rules.RFC3966ExtnPrefix)
		sb.WriteString(n.Extension)
	}
	return sb.String()
}

// toDashSeparated replaces the formatting separators a national-format
// string may contain (spaces, dots) with '-', per RFC3966 grammar.
func toDashSeparated(s string) string {
	var sb strings.Builder
	lastWasDash := false
	for _, r := range s {
		switch r {
		case ' ', '.', '-':
			if !lastWasDash && sb.Len() > 0 {
				sb.WriteByte('-')
				lastWasDash = true
			}
		case '(', ')':
			// drop
		default:
			sb.WriteRune(r)
			lastWasDash = false
		}
	}
	return strings.Trim(sb.String(), "-")
}
