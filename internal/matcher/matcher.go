// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package matcher implements spec §4.9 (C9): scanning free-form text for
// phone-number-shaped substrings and yielding only those that survive
// parsing and a chosen leniency check, as a lazy has_next/next iterator.
//
// Grounded in awslabs-ferret-scan/internal/validators/phone/validator.go's
// candidate-scan-then-validate shape; the candidate pattern itself uses
// the ICU backend per spec §4.1.
package matcher

import (
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"telnumber/internal/classify"
	"telnumber/internal/metadata"
	"telnumber/internal/parser"
	"telnumber/internal/phonenumber"
	"telnumber/internal/regexcache"
	"telnumber/internal/regexengine"
	"telnumber/internal/rules"
)

// Leniency selects how strict a surviving candidate must be (spec §4.9).
// It is phonenumber.Leniency directly; the matcher introduces no leniency
// values of its own.
type Leniency = phonenumber.Leniency

const (
	Possible       = phonenumber.Possible
	Valid          = phonenumber.Valid
	StrictGrouping = phonenumber.StrictGrouping
	ExactGrouping  = phonenumber.ExactGrouping
)

// Match is one located phone number: its byte start offset and exact raw
// substring in the searched text, plus the number it parsed to.
type Match struct {
	Start     int
	RawString string
	Number    *phonenumber.Number
}

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

// candidatePattern approximates spec §4.9 step 2's global candidate
// grammar: an optional lead character, then a run of digits and
// phone-shaped separators at least six characters long, ending on a
// digit. It intentionally also matches dates and short numeric runs;
// those are rejected by the filters in verify, not by the pattern.
func candidatePattern() regexengine.Pattern {
	return patternCache().Get(`^[+＋(]?[0-9][0-9()\[\]\-.\ /]{4,}[0-9]`, regexengine.ICU)
}

func datePattern() regexengine.Pattern {
	return patternCache().Get(`^(?:\d{4}[/-]\d{1,2}[/-]\d{1,2}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4})$`, regexengine.Linear)
}

// journalPattern rejects volume-and-page references like "1998-245".
func journalPattern() regexengine.Pattern {
	return patternCache().Get(`^(?:18|19|20)\d{2}-\d{1,4}$`, regexengine.Linear)
}

// timestampTail matches ":\d\d" immediately following a candidate, the
// marker spec §4.9 uses to reject a timestamp's hour/minute/second runs.
func timestampTail() regexengine.Pattern {
	return patternCache().Get(`^:\d\d`, regexengine.Linear)
}

var innerSeparators = []string{"/", "(", " – ", " . ", " "}

// Matcher holds the mutable per-instance scan state described in spec
// §5: not safe for concurrent use, one instance per logical caller.
type Matcher struct {
	text     string
	region   string
	leniency Leniency
	maxTries int

	pos     int
	done    bool
	pending *Match
}

// New constructs a matcher over text. If text is not valid UTF-8 the
// matcher is immediately DONE (spec §4.9 step 1).
func New(text, region string, leniency Leniency, maxTries int) *Matcher {
	m := &Matcher{text: text, region: region, leniency: leniency, maxTries: maxTries}
	if !utf8.ValidString(text) {
		m.done = true
	}
	return m
}

// HasNext reports whether a further match can be produced, finding and
// caching it if necessary. Idempotent once DONE.
func (m *Matcher) HasNext() bool {
	if m.done {
		return false
	}
	if m.pending != nil {
		return true
	}
	m.pending = m.findNext()
	if m.pending == nil {
		m.done = true
	}
	return m.pending != nil
}

// Next returns the next match, or nil once the matcher is DONE. Matches
// are yielded in ascending start-offset order (spec §5).
func (m *Matcher) Next() *Match {
	if !m.HasNext() {
		return nil
	}
	match := m.pending
	m.pending = nil
	m.pos = match.Start + len(match.RawString)
	return match
}

func (m *Matcher) findNext() *Match {
	pat := candidatePattern()
	for i := m.pos; i < len(m.text); {
		r, size := utf8.DecodeRuneInString(m.text[i:])
		if size == 0 {
			break
		}
		if m.done {
			return nil
		}
		if isCandidateStart(r) && isFreshStart(m.text, i) {
			if in, err := regexengine.NewInput(m.text[i:]); err == nil && pat.Consume(in, true) {
				raw := m.text[i : i+in.Pos()]
				if match := m.verify(i, raw); match != nil {
					return match
				}
				if inner := m.tryInnerMatches(i, raw); inner != nil {
					return inner
				}
			}
		}
		i += size
	}
	return nil
}

func isCandidateStart(r rune) bool {
	return r == '+' || r == '＋' || r == '(' || unicode.IsDigit(r)
}

// isFreshStart reports that position i is not in the middle of a digit
// run already considered starting earlier -- otherwise scanning would
// re-attempt the candidate pattern at "012-01-02" inside "2012-01-02"
// and so on for every digit, which risks a spurious shorter match the
// outer attempt's filters didn't see.
func isFreshStart(text string, i int) bool {
	if i == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:i])
	return !unicode.IsDigit(prev)
}

// verify applies spec §4.9 step 3's ordered checks to one candidate
// substring starting at byte offset start in the original text.
func (m *Matcher) verify(start int, raw string) *Match {
	candidate := truncateAtSecondNumberStart(raw)
	candidate = trimUnwantedEnds(candidate)
	if candidate == "" {
		return nil
	}
	if !bracketsBalanced(candidate) {
		return nil
	}
	if ok, _ := journalPattern().Match(candidate, true); ok {
		return nil
	}
	if ok, _ := datePattern().Match(candidate, true); ok {
		return nil
	}

	end := start + len(candidate)
	if end < len(m.text) {
		if ok, _ := timestampTail().Match(m.text[end:], false); ok {
			return nil
		}
	}

	if m.leniency >= Valid && !surroundingOK(m.text, start, end) {
		return nil
	}

	n, ok := m.tryParse(candidate)
	if !ok {
		return nil
	}
	if !m.satisfiesLeniency(n, candidate) {
		return nil
	}
	return &Match{Start: start, RawString: candidate, Number: n}
}

// tryInnerMatches retries sub-substrings of raw split on each of a
// ranked list of inner separators (spec §4.9 step 4), stopping at the
// first one that verifies.
func (m *Matcher) tryInnerMatches(start int, raw string) *Match {
	for _, sep := range innerSeparators {
		if m.done {
			return nil
		}
		idx := strings.Index(raw, sep)
		if idx < 0 {
			continue
		}
		for _, part := range []string{raw[:idx], raw[idx+len(sep):]} {
			candidate := trimUnwantedEnds(strings.TrimSpace(part))
			if candidate == "" {
				continue
			}
			offset := strings.Index(raw, candidate)
			if offset < 0 {
				continue
			}
			if match := m.verify(start+offset, candidate); match != nil {
				return match
			}
		}
	}
	return nil
}

// tryParse spends one unit of the max_tries budget and parses raw,
// regardless of whether the parse succeeds (spec §4.9: "max_tries
// decrements on every parse attempt regardless of outcome").
func (m *Matcher) tryParse(raw string) (*phonenumber.Number, bool) {
	if m.maxTries <= 0 {
		m.done = true
		return nil, false
	}
	m.maxTries--
	n, err := parser.ParseAndKeepRawInput(raw, m.region)
	if err != nil {
		return nil, false
	}
	return n, true
}

func (m *Matcher) satisfiesLeniency(n *phonenumber.Number, raw string) bool {
	switch m.leniency {
	case Possible:
		return classify.IsPossibleNumber(n)
	case Valid:
		return classify.IsValidNumber(n) && xLettersOK(raw)
	case StrictGrouping:
		return classify.IsValidNumber(n) && xLettersOK(raw) && strictGroupingOK(raw)
	case ExactGrouping:
		return classify.IsValidNumber(n) && xLettersOK(raw) && strictGroupingOK(raw) && exactGroupingOK(n, raw)
	default:
		return classify.IsPossibleNumber(n)
	}
}

// truncateAtSecondNumberStart drops everything from the first
// occurrence of the shared second-number-start marker onward (spec
// §4.9 step 3, reusing the same marker the parser strips at in spec
// §4.5 step 3).
func truncateAtSecondNumberStart(s string) string {
	if loc := findIndex(rules.Default().SecondNumberStart, s); loc >= 0 {
		return s[:loc]
	}
	return s
}

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

// trimUnwantedEnds strips trailing characters that cannot end a phone
// number candidate (matching spec §4.5 step 4's unwanted-end-char rule,
// restricted here to the punctuation a candidate-scan artifact leaves
// behind).
func trimUnwantedEnds(s string) string {
	return strings.TrimRight(s, " \t-./()")
}

// bracketsBalanced reports whether '(' and ')' occur in a simple
// well-nested count (spec §4.9's "must fully match the balanced-bracket
// pattern").
func bracketsBalanced(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth < 0 {
			return false
		}
	}
	return depth == 0
}

// surroundingOK reports that the characters immediately outside
// [start, end) in text are not Latin letters or a currency/percent
// symbol, which would indicate the digits are part of a larger token
// like "abc8005001234" or "$8005001234" (spec §4.9, leniency >= VALID).
func surroundingOK(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isDisqualifyingNeighbor(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isDisqualifyingNeighbor(r) {
			return false
		}
	}
	return true
}

func isDisqualifyingNeighbor(r rune) bool {
	if r == 0 {
		return false
	}
	if unicode.Is(unicode.Latin, r) {
		return true
	}
	switch r {
	case '$', '€', '£', '¥', '%':
		return true
	}
	return false
}

// xLettersOK reports whether any 'x'/'X' letters in raw are either a
// single extension marker (already consumed by the parser's extension
// stripping) or a contiguous carrier-code-style run (spec §4.9's VALID
// leniency x/X rule). Scattered x's elsewhere fail the check.
func xLettersOK(raw string) bool {
	lower := strings.ToLower(raw)
	count := strings.Count(lower, "x")
	if count <= 1 {
		return true
	}
	idx := strings.IndexByte(lower, 'x')
	run := 0
	for _, r := range lower[idx:] {
		if r != 'x' {
			break
		}
		run++
	}
	return run == count
}

// strictGroupingOK applies the STRICT_GROUPING leniency's simplified
// separator check: at most one '/' may appear in the candidate (spec
// §4.9). The fuller "raw grouping must not split a standard group
// across separators" check is not implemented; see design notes.
func strictGroupingOK(raw string) bool {
	return strings.Count(raw, "/") <= 1
}

// exactGroupingOK approximates EXACT_GROUPING: the candidate's
// separator-delimited digit runs must have the same count as the
// matched region's chosen format's digit groups. The full
// national-prefix-absorption nuance spec §4.9 describes is not
// implemented; see design notes.
func exactGroupingOK(n *phonenumber.Number, raw string) bool {
	store := metadata.Default()
	region := classify.GetRegionCodeForNumber(n)
	meta, ok := store.ForRegion(region)
	if !ok {
		return true
	}
	digits := digitsOnly(raw)
	for _, f := range meta.NumberFormat {
		groups := groupLengths(f.Pattern)
		total := 0
		for _, g := range groups {
			total += g
		}
		if total != len(digits) {
			continue
		}
		return len(digitRuns(raw)) == len(groups)
	}
	return true
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func digitRuns(s string) []string {
	var runs []string
	var cur strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			cur.WriteRune(r)
			continue
		}
		if cur.Len() > 0 {
			runs = append(runs, cur.String())
			cur.Reset()
		}
	}
	if cur.Len() > 0 {
		runs = append(runs, cur.String())
	}
	return runs
}

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
