// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package normalize implements spec §4.4 (C3): folding Unicode decimal
// digits to ASCII, folding alphabetic characters to digits via the E.161
// keypad mapping, and reducing input to the diallable character set.
package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// alphaToDigit is the E.161 keypad mapping (spec §4.4): A,B,C -> 2;
// D,E,F -> 3; ...; W,X,Y,Z -> 9. Case-insensitive, ASCII only.
var alphaToDigit = map[rune]byte{
	'A': '2', 'B': '2', 'C': '2',
	'D': '3', 'E': '3', 'F': '3',
	'G': '4', 'H': '4', 'I': '4',
	'J': '5', 'K': '5', 'L': '5',
	'M': '6', 'N': '6', 'O': '6',
	'P': '7', 'Q': '7', 'R': '7', 'S': '7',
	'T': '8', 'U': '8', 'V': '8',
	'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
}

// DigitsOnly drops every non-digit character and folds any Unicode
// decimal digit to its ASCII equivalent via the U+Nd digit value (spec
// §4.4's normalize_digits_only). Invalid UTF-8 yields "".
func DigitsOnly(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	var sb strings.Builder
	for _, r := range s {
		if v, ok := digitValue(r); ok {
			sb.WriteByte(byte('0' + v))
		}
	}
	return sb.String()
}

// Normalize folds Unicode decimal digits to ASCII and alphabetic
// characters to digits via the E.161 mapping, dropping everything else
// (spec §4.4's normalize). Invalid UTF-8 yields "".
func Normalize(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	var sb strings.Builder
	for _, r := range s {
		if v, ok := digitValue(r); ok {
			sb.WriteByte(byte('0' + v))
			continue
		}
		if d, ok := alphaToDigit[toASCIIUpper(r)]; ok {
			sb.WriteByte(d)
		}
	}
	return sb.String()
}

// DiallableCharsOnly retains '+', '*', '#', and digits (folding non-ASCII
// digits to ASCII), dropping everything else (spec §4.4's
// normalize_diallable_chars_only). Invalid UTF-8 yields "".
func DiallableCharsOnly(s string) string {
	if !utf8.ValidString(s) {
		return ""
	}
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '+', '*', '#':
			sb.WriteRune(r)
			continue
		}
		if v, ok := digitValue(r); ok {
			sb.WriteByte(byte('0' + v))
		}
	}
	return sb.String()
}

// toASCIIUpper upper-cases r if it is an ASCII letter, leaving every
// other rune (including non-ASCII letters, which E.161 folding does not
// cover) unchanged.
func toASCIIUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}

// digitValue reports r's value 0-9 if r is a Unicode decimal digit
// (category Nd), folding full-width/half-width forms via
// golang.org/x/text/width first since those are a distinct code point
// per digit rather than a separate decimal-digit block.
//
// Unicode encodes every decimal-digit script as a contiguous run of 10
// code points in ascending digit order; digitValue locates the run
// containing r in the unicode.Nd range table and computes the offset,
// rather than hard-coding every script's zero code point.
func digitValue(r rune) (byte, bool) {
	folded := width.Fold.String(string(r)) // fullwidth/halfwidth -> narrow
	if fr, size := utf8.DecodeRuneInString(folded); size == len(folded) {
		r = fr
	}
	if r >= '0' && r <= '9' {
		return byte(r - '0'), true
	}
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	for _, rng := range unicode.Nd.R16 {
		if uint16(r) < rng.Lo || uint16(r) > rng.Hi {
			continue
		}
		offset := (uint16(r) - rng.Lo) / rng.Stride
		return byte(offset % 10), true
	}
	for _, rng := range unicode.Nd.R32 {
		if uint32(r) < rng.Lo || uint32(r) > rng.Hi {
			continue
		}
		offset := (uint32(r) - rng.Lo) / rng.Stride
		return byte(offset % 10), true
	}
	return 0, false
}
