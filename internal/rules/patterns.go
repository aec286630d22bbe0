// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rules holds the process-wide precompiled pattern bundle
// described in spec §3 ("Rules & Patterns") and §4.5/§4.9's references to
// viable-number, extension, and RFC3966 grammar patterns. Built once via
// a once-latch (spec §5) and shared by the parser, formatter, AYTF, and
// matcher.
package rules

import (
	"sync"

	"telnumber/internal/regexcache"
	"telnumber/internal/regexengine"
)

// Wire-exact constants (spec §6).
const (
	// DigitPlaceholder is the AYTF template placeholder character.
	DigitPlaceholder = ' ' // PUNCTUATION SPACE
	// PlusChars is the set of characters recognized as a leading plus.
	PlusChars = "+＋"
	// RFC3966ExtnPrefix precedes an extension in a tel: URI.
	RFC3966ExtnPrefix = ";ext="
	// RFC3966PhoneContextPrefix precedes a phone-context parameter.
	RFC3966PhoneContextPrefix = ";phone-context="
	// VisualSeparatorClass is the RFC3966 visual separator character class.
	VisualSeparatorClass = `[-.()]?`

	// NSN length bounds (spec §6).
	MinLengthForNSN = 2
	MaxLengthForNSN = 17
	MaxLengthCountryCode = 3

	// Extension digit-count ceilings by how explicit the extension label was.
	MaxLengthExtnAfterExplicitLabel = 20
	MaxLengthExtnAfterLikelyLabel   = 15
	MaxLengthExtnAfterAmbiguousChar = 9
	MaxLengthExtnWhenNotSure        = 6
)

// Patterns is the compiled pattern bundle. All fields are populated once
// and are safe for concurrent read thereafter (spec §5).
type Patterns struct {
	// Viable matches a "possible number" candidate substring (spec §4.5
	// step 4): digits and separators of plausible shape.
	Viable regexengine.Pattern

	// ValidStartChar matches the first character a possible-number
	// extraction may begin on: a plus sign or a digit.
	ValidStartChar regexengine.Pattern

	// SecondNumberStart matches a marker introducing a second phone
	// number in the same string (spec §4.5 step 3), e.g. a slash.
	SecondNumberStart regexengine.Pattern

	// UnwantedEndChar matches trailing characters that must be trimmed
	// from a possible-number candidate.
	UnwantedEndChar regexengine.Pattern

	// CapturingDigit captures one Unicode decimal digit; used by the ICU
	// backend for digit-by-digit scanning.
	CapturingDigit regexengine.Pattern

	// ExtnPatterns are tried in order (most to least explicit) when
	// stripping an extension from a possible number (spec §4.5 step 5).
	ExtnPatterns []regexengine.Pattern

	// RFC3966Global matches a whole tel: URI.
	RFC3966Global regexengine.Pattern
	// RFC3966PhoneContext captures a phone-context parameter's value.
	RFC3966PhoneContext regexengine.Pattern
	// RFC3966PhoneDigit matches one RFC3966 phonedigit (a digit or a
	// visual separator).
	RFC3966PhoneDigit regexengine.Pattern
	// RFC3966DomainName matches the domain-name form of phone-context.
	RFC3966DomainName regexengine.Pattern
}

var (
	once     sync.Once
	patterns *Patterns
)

// Default builds (once) and returns the process-wide Patterns bundle.
func Default() *Patterns {
	once.Do(func() {
		patterns = build()
	})
	return patterns
}

func build() *Patterns {
	cache := regexcache.New(regexcache.DefaultCapacity, nil)

	must := func(src string, backend regexengine.Backend) regexengine.Pattern {
		return cache.Get(src, backend)
	}

	return &Patterns{
		Viable: must(`^[`+PlusChars+`]?(?:[0-9()\[\]\-.\ /]*[0-9]){`+itoa(MinLengthForNSN)+`,}[0-9()\[\]\-.\ /extEXT#]*$`, regexengine.ICU),

		ValidStartChar: must(`[`+PlusChars+`\p{Nd}]`, regexengine.ICU),

		SecondNumberStart: must(`[\\/] *x`, regexengine.Linear),

		UnwantedEndChar: must(`[^\p{Nd}\p{L}#]+$`, regexengine.ICU),

		CapturingDigit: must(`(\p{Nd})`, regexengine.ICU),

		ExtnPatterns: []regexengine.Pattern{
			must(`(?:;ext=|[  \t,-]*(?:e?xt(?:ensi(?:ó?|ó))?n?|ｅ?ｘｔｎ?)[:\.．]?[  \t,-]*([0-9]{1,`+itoa(MaxLengthExtnAfterExplicitLabel)+`})#?$`, regexengine.ICU),
			must(`[  \t,-]*(?:x|#)[  \t,-]*([0-9]{1,`+itoa(MaxLengthExtnAfterLikelyLabel)+`})#?$`, regexengine.Linear),
			must(`[-\.\(\)  \t,]*(?:,{2}|;)[-\.\(\)  \t,]*([0-9]{1,`+itoa(MaxLengthExtnAfterAmbiguousChar)+`})#?$`, regexengine.Linear),
			must(`[- ]+([0-9]{1,`+itoa(MaxLengthExtnWhenNotSure)+`})#?$`, regexengine.Linear),
		},

		RFC3966Global: must(`^tel:`, regexengine.Linear),
		RFC3966PhoneContext: must(
			`;phone-context=([^;]+)`, regexengine.Linear),
		RFC3966PhoneDigit:  must(`[0-9]|`+VisualSeparatorClass, regexengine.Linear),
		RFC3966DomainName:  must(`^[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`, regexengine.Linear),
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
