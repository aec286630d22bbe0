// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package aytf implements spec §4.8 (C8): a stateful as-you-type
// formatter that reformats after every keystroke and degrades to a
// verbatim echo once the accrued input stops looking like a number.
package aytf

import (
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"telnumber/internal/metadata"
	"telnumber/internal/normalize"
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

type state int

const (
	buildingPrefix state = iota
	chosenTemplate
	unformattable
)

// Formatter holds the mutable per-instance state of an as-you-type
// session for a single default region. It is not safe for concurrent
// use; one logical caller owns one instance (spec §5's per-instance
// state rule).
type Formatter struct {
	region string
	store  *metadata.Store
	meta   *metadata.PhoneMetadata

	state state

	rawInput        []rune
	nationalDigits  strings.Builder
	isInternational bool
	countryCode     int
	ccDigits        string

	totalDigitsEntered int
	rememberedCount    int
	hasRemembered      bool
	iddChecked         bool

	lastOutput string
}

// New constructs a formatter that builds numbers against region's
// metadata until an international prefix changes that.
func New(region string) *Formatter {
	f := &Formatter{region: region, store: metadata.Default()}
	f.Clear()
	return f
}

// Clear resets all accrued state, ready for a new number.
func (f *Formatter) Clear() {
	f.state = buildingPrefix
	f.rawInput = f.rawInput[:0]
	f.nationalDigits.Reset()
	f.isInternational = false
	f.countryCode = 0
	f.ccDigits = ""
	f.totalDigitsEntered = 0
	f.rememberedCount = 0
	f.hasRemembered = false
	f.iddChecked = false
	f.lastOutput = ""
	f.meta, _ = f.store.ForRegion(f.region)
}

// InputDigit feeds one character and returns the current display.
func (f *Formatter) InputDigit(c rune) string {
	return f.input(c, false)
}

// InputDigitAndRememberPosition feeds one character, as InputDigit,
// and additionally remembers the caret position immediately after it
// for a later GetRememberedPosition call.
func (f *Formatter) InputDigitAndRememberPosition(c rune) string {
	return f.input(c, true)
}

// GetCurrentOutput returns the most recently produced display string
// without consuming any input.
func (f *Formatter) GetCurrentOutput() string {
	return f.lastOutput
}

// GetRememberedPosition walks the current display counting digits
// until it has skipped as many as had been entered at the last
// InputDigitAndRememberPosition call, then returns the byte offset
// just past that digit (spec §4.8).
func (f *Formatter) GetRememberedPosition() int {
	if !f.hasRemembered || f.rememberedCount == 0 {
		return 0
	}
	count := 0
	for i, r := range f.lastOutput {
		if r >= '0' && r <= '9' {
			count++
			if count == f.rememberedCount {
				return i + utf8.RuneLen(r)
			}
		}
	}
	return len(f.lastOutput)
}

func (f *Formatter) input(c rune, remember bool) string {
	f.rawInput = append(f.rawInput, c)

	if f.state == unformattable {
		return f.settle(f.verbatim())
	}

	if c == '+' {
		if len(f.rawInput) == 1 {
			f.isInternational = true
			return f.settle(f.verbatim())
		}
		f.state = unformattable
		return f.settle(f.verbatim())
	}

	digit := normalize.DigitsOnly(string(c))
	if digit == "" {
		f.state = unformattable
		return f.settle(f.verbatim())
	}

	f.totalDigitsEntered++
	if remember {
		f.rememberedCount = f.totalDigitsEntered
		f.hasRemembered = true
	}

	return f.settle(f.acceptDigit(digit))
}

func (f *Formatter) settle(out string) string {
	f.lastOutput = out
	return out
}

func (f *Formatter) verbatim() string {
	return string(f.rawInput)
}

// acceptDigit routes a newly typed digit to country-code accumulation
// (while one is expected) or to the national number, then renders the
// current display from whichever format candidate's leading-digits
// pattern currently matches (spec §4.8's BUILDING_PREFIX ->
// CHOSEN_TEMPLATE transition).
func (f *Formatter) acceptDigit(digit string) string {
	if f.isInternational && f.countryCode == 0 {
		f.ccDigits += digit
		if cc, ok := resolveCountryCode(f.ccDigits, f.store); ok {
			f.countryCode = cc
			region := f.store.MainRegionForCode(cc)
			f.meta, _ = f.store.ForRegion(region)
			f.state = chosenTemplate
		}
		return f.render()
	}

	f.nationalDigits.WriteString(digit)
	f.state = chosenTemplate

	// On the 3rd digit typed without a leading '+', try reading it as an
	// IDD dialed in plain digits (spec §4.8's BUILDING_PREFIX ->
	// EXPECTING_COUNTRY_CODE transition on an IDD match). Checked at most
	// once per session: a real IDD is only ever the leading digits.
	if !f.isInternational && !f.iddChecked && f.totalDigitsEntered == 3 {
		f.iddChecked = true
		if rest, ok := f.stripIDD(f.nationalDigits.String()); ok {
			f.isInternational = true
			f.nationalDigits.Reset()
			f.ccDigits = rest
			if cc, ok := resolveCountryCode(f.ccDigits, f.store); ok {
				f.countryCode = cc
				region := f.store.MainRegionForCode(cc)
				f.meta, _ = f.store.ForRegion(region)
			}
		}
	}

	return f.render()
}

// stripIDD reports whether digits begins with the current region's
// international dialling prefix (a literal digit string in this
// implementation's default bundle, e.g. "00" or "011"), returning the
// remainder.
func (f *Formatter) stripIDD(digits string) (string, bool) {
	if f.meta == nil || f.meta.InternationalPrefix == "" {
		return "", false
	}
	prefix := f.meta.InternationalPrefix
	if !strings.HasPrefix(digits, prefix) {
		return "", false
	}
	return digits[len(prefix):], true
}

// render produces the current display: for an international session
// still resolving its country code, the raw accrued input; otherwise
// the "+CC " prefix (if any) followed by the national digits grouped
// per the chosen format candidate, with '-' separators in
// international mode and ' ' separators in national mode -- mirroring
// the dash-joined INTERNATIONAL style and space-joined NATIONAL style
// spec §4.7 defines for the completed Formatter.
func (f *Formatter) render() string {
	if f.isInternational && f.countryCode == 0 {
		return f.verbatim()
	}

	var prefix string
	sep := " "
	if f.isInternational {
		prefix = "+" + strconv.Itoa(f.countryCode) + " "
		sep = "-"
	}

	digits := f.nationalDigits.String()
	groups := f.chosenGroups(digits)
	if groups == nil {
		return prefix + digits
	}
	return prefix + applyGroups(digits, groups, sep)
}

func (f *Formatter) chosenGroups(digits string) []int {
	if f.meta == nil || digits == "" {
		return nil
	}
	table := f.meta.NumberFormat
	if f.isInternational && f.meta.HasIntlNumberFormat() {
		table = f.meta.IntlNumberFormat
	}
	for _, fm := range table {
		if !leadingDigitsMatch(fm.LeadingDigitsPattern, digits) {
			continue
		}
		if groups := groupLengths(fm.Pattern); len(groups) > 0 {
			return groups
		}
	}
	return nil
}

func leadingDigitsMatch(patterns []string, digits string) bool {
	if len(patterns) == 0 {
		return true
	}
	pat := patterns[len(patterns)-1]
	p := patternCache().Get("^(?:"+pat+")", regexengine.Linear)
	ok, _ := p.Match(digits, false)
	return ok
}

// groupLengths reads the {N} digit-group widths out of a metadata
// pattern such as "(\d{3})(\d{3})(\d{4})", in order.
func groupLengths(pattern string) []int {
	var groups []int
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '{' {
			continue
		}
		end := strings.IndexByte(pattern[i:], '}')
		if end < 0 {
			break
		}
		if n, err := strconv.Atoi(pattern[i+1 : i+end]); err == nil {
			groups = append(groups, n)
		}
		i += end
	}
	return groups
}

// applyGroups splits digits into groups per the widths in groups,
// joining completed groups with sep. Left-over digits beyond the last
// group width are appended to the final group verbatim.
func applyGroups(digits string, groups []int, sep string) string {
	var sb strings.Builder
	pos := 0
	for i, g := range groups {
		if pos >= len(digits) {
			break
		}
		if i > 0 {
			sb.WriteString(sep)
		}
		end := pos + g
		if i == len(groups)-1 || end > len(digits) {
			end = len(digits)
		}
		sb.WriteString(digits[pos:end])
		pos = end
	}
	return sb.String()
}

// resolveCountryCode accepts 1-3 accrued digits and reports the
// calling code they form once that code is assigned to some region.
// Regions may share a calling code of any length from 1-3 digits, so
// the first prefix of ccDigits that resolves wins (spec §4.5's
// longest-match rule degenerates to this for single-candidate
// prefixes, the only case the bundled metadata exercises).
func resolveCountryCode(ccDigits string, store *metadata.Store) (int, bool) {
	if len(ccDigits) > 3 {
		return 0, false
	}
	n, err := strconv.Atoi(ccDigits)
	if err != nil {
		return 0, false
	}
	if len(store.RegionsForCode(n)) > 0 {
		return n, true
	}
	return 0, false
}
