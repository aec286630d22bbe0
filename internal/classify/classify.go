// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classify implements spec §4.6 (C6): possible/valid/type
// decisions and region lookup, driven by per-region descriptor patterns
// from the metadata store.
package classify

import (
	"sort"
	"sync"

	"telnumber/internal/metadata"
	"telnumber/internal/phonenumber"
	"telnumber/internal/regexcache"
	"telnumber/internal/regexengine"
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

func fullMatch(pattern string, s string) bool {
	if pattern == "" {
		return false
	}
	pat := patternCache().Get(pattern, regexengine.ICU)
	ok, _ := pat.Match(s, true)
	return ok
}

func nsnDigits(n *phonenumber.Number) string {
	// NationalNumber drops leading zeros as an integer; reconstitute them
	// so regex/length checks see the digit string a human would type.
	s := uintToString(n.NationalNumber)
	if n.ItalianLeadingZero {
		zeros := make([]byte, n.NumberOfLeadingZeros)
		for i := range zeros {
			zeros[i] = '0'
		}
		return string(zeros) + s
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

func regionsFor(n *phonenumber.Number, store *metadata.Store) []string {
	return store.RegionsForCode(n.CountryCode)
}

// IsPossibleNumber reports whether n's national significant number length
// is a member of the matched region's general_desc.possible_lengths. For
// regions sharing a country code, it's true if possible in any of them
// (spec §4.6).
func IsPossibleNumber(n *phonenumber.Number) bool {
	store := metadata.Default()
	regions := regionsFor(n, store)
	digits := nsnDigits(n)
	length := len(digits)

	for _, r := range regions {
		m, ok := store.ForRegion(r)
		if !ok {
			continue
		}
		if containsLength(m.GeneralDesc.PossibleLengths, length) {
			return true
		}
	}
	return false
}

func containsLength(lengths []int, n int) bool {
	i := sort.SearchInts(lengths, n)
	return i < len(lengths) && lengths[i] == n
}

// IsValidNumber reports whether n is possible AND its national number
// pattern fully matches under the main region for its country code, OR
// under any region sharing that code (spec §4.6).
func IsValidNumber(n *phonenumber.Number) bool {
	if !IsPossibleNumber(n) {
		return false
	}
	store := metadata.Default()
	digits := nsnDigits(n)
	for _, r := range regionsFor(n, store) {
		m, ok := store.ForRegion(r)
		if !ok {
			continue
		}
		if fullMatch(m.GeneralDesc.NationalNumberPattern, digits) {
			return true
		}
	}
	return false
}

// IsValidNumberForRegion restricts validity to a single named region.
func IsValidNumberForRegion(n *phonenumber.Number, region string) bool {
	store := metadata.Default()
	m, ok := store.ForRegion(region)
	if !ok {
		return false
	}
	digits := nsnDigits(n)
	if !containsLength(m.GeneralDesc.PossibleLengths, len(digits)) {
		return false
	}
	return fullMatch(m.GeneralDesc.NationalNumberPattern, digits)
}

// GetNumberType tests descriptors in the fixed precedence order spec
// §4.6 names: premium, toll-free, shared-cost, voip, personal, pager,
// uan, voicemail, fixed line, mobile, fixed-or-mobile (when both fixed
// line and mobile match), else UnknownType.
func GetNumberType(n *phonenumber.Number) phonenumber.PhoneNumberType {
	store := metadata.Default()
	digits := nsnDigits(n)

	var best phonenumber.PhoneNumberType = phonenumber.UnknownType
	for _, r := range regionsFor(n, store) {
		m, ok := store.ForRegion(r)
		if !ok {
			continue
		}
		if !fullMatch(m.GeneralDesc.NationalNumberPattern, digits) {
			continue
		}
		if t := classifyWithinRegion(m, digits); t != phonenumber.UnknownType {
			return t
		}
		best = phonenumber.UnknownType
	}
	return best
}

func classifyWithinRegion(m *metadata.PhoneMetadata, digits string) phonenumber.PhoneNumberType {
	switch {
	case fullMatch(m.PremiumRate.NationalNumberPattern, digits):
		return phonenumber.PremiumRate
	case fullMatch(m.TollFree.NationalNumberPattern, digits):
		return phonenumber.TollFree
	case fullMatch(m.SharedCost.NationalNumberPattern, digits):
		return phonenumber.SharedCost
	case fullMatch(m.Voip.NationalNumberPattern, digits):
		return phonenumber.VoIP
	case fullMatch(m.PersonalNumber.NationalNumberPattern, digits):
		return phonenumber.PersonalNumber
	case fullMatch(m.Pager.NationalNumberPattern, digits):
		return phonenumber.Pager
	case fullMatch(m.Uan.NationalNumberPattern, digits):
		return phonenumber.UAN
	case fullMatch(m.Voicemail.NationalNumberPattern, digits):
		return phonenumber.Voicemail
	}

	fixed := fullMatch(m.FixedLine.NationalNumberPattern, digits)
	mobile := fullMatch(m.Mobile.NationalNumberPattern, digits)
	switch {
	case fixed && mobile:
		return phonenumber.FixedLineOrMobile
	case fixed:
		return phonenumber.FixedLine
	case mobile:
		return phonenumber.Mobile
	default:
		return phonenumber.UnknownType
	}
}

// GetRegionCodeForNumber returns the region among n's country code whose
// general_desc matches the number, falling back to the main region; a
// non-geographical country code returns "001" (spec §4.6).
func GetRegionCodeForNumber(n *phonenumber.Number) string {
	store := metadata.Default()
	regions := regionsFor(n, store)
	if len(regions) == 0 {
		return phonenumber.RegionUnknown
	}
	if len(regions) == 1 {
		return regions[0]
	}

	digits := nsnDigits(n)
	for _, r := range regions {
		if metadata.IsNonGeographical(r) {
			continue
		}
		m, ok := store.ForRegion(r)
		if !ok {
			continue
		}
		if fullMatch(m.GeneralDesc.NationalNumberPattern, digits) {
			return r
		}
	}
	return regions[0]
}
