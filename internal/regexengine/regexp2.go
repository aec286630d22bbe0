// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package regexengine

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// regexp2Pattern is the ICU backend: a backtracking engine that supports
// full Unicode property classes (\p{L}, \p{Nd}) as well as backreferences
// and lookaround, none of which RE2 (the Linear backend) can express. Spec
// §4.1 requires the matcher's candidate pattern to use this backend.
//
// regexp2 indexes matches by rune position, not byte offset; this file
// converts between the two at every boundary since the rest of this
// package (and every caller) works in byte offsets, the natural unit for Go
// strings.
type regexp2Pattern struct {
	src string
	re  *regexp2.Regexp
}

func compileICU(src string) (Pattern, error) {
	re, err := regexp2.Compile(src, regexp2.None)
	if err != nil {
		return nil, err
	}
	return &regexp2Pattern{src: src, re: re}, nil
}

func (p *regexp2Pattern) Source() string   { return p.src }
func (p *regexp2Pattern) Backend() Backend { return ICU }

func (p *regexp2Pattern) Consume(in *Input, anchorAtStart bool, out ...*string) bool {
	rest := in.Remaining()
	m, err := p.re.FindStringMatch(rest)
	if err != nil || m == nil {
		return false
	}

	offsets := runeByteOffsets(rest)
	startByte := offsets[clampRuneIndex(m.Index, len(offsets))]
	if anchorAtStart && startByte != 0 {
		return false
	}
	endByte := offsets[clampRuneIndex(m.Index+m.Length, len(offsets))]

	for i, dst := range out {
		if dst == nil {
			continue
		}
		*dst = groupText(m, i+1)
	}

	in.Advance(endByte)
	return true
}

func (p *regexp2Pattern) Match(s string, fullMatch bool) (bool, string) {
	m, err := p.re.FindStringMatch(s)
	if err != nil || m == nil {
		return false, ""
	}
	if fullMatch && m.String() != s {
		return false, ""
	}
	return true, groupText(m, 1)
}

func (p *regexp2Pattern) Replace(s string, global bool, replacement string) string {
	var sb strings.Builder
	lastByte := 0
	offsets := runeByteOffsets(s)

	m, err := p.re.FindStringMatch(s)
	for err == nil && m != nil {
		startByte := offsets[clampRuneIndex(m.Index, len(offsets))]
		endByte := offsets[clampRuneIndex(m.Index+m.Length, len(offsets))]

		sb.WriteString(s[lastByte:startByte])
		sb.WriteString(expandRegexp2Template(m, replacement))
		lastByte = endByte

		if !global {
			break
		}
		m, err = p.re.FindNextMatch(m)
	}

	sb.WriteString(s[lastByte:])
	return sb.String()
}

// groupText returns capture group n's text, or "" if it did not
// participate in the match.
func groupText(m *regexp2.Match, n int) string {
	g := m.GroupByNumber(n)
	if g == nil || len(g.Captures) == 0 {
		return ""
	}
	return g.String()
}

// expandRegexp2Template substitutes $1..$9 and unescapes \$ in replacement
// against m's capture groups, matching the semantics spec §4.1 describes
// for Replace.
func expandRegexp2Template(m *regexp2.Match, replacement string) string {
	var sb strings.Builder
	for i := 0; i < len(replacement); i++ {
		c := replacement[i]
		switch {
		case c == '\\' && i+1 < len(replacement) && replacement[i+1] == '$':
			sb.WriteByte('$')
			i++
		case c == '$' && i+1 < len(replacement) && replacement[i+1] >= '1' && replacement[i+1] <= '9':
			n, _ := strconv.Atoi(string(replacement[i+1]))
			sb.WriteString(groupText(m, n))
			i++
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// runeByteOffsets returns, for a string s with k runes, a slice of length
// k+1 where entry i is the byte offset of the i-th rune (entry k is
// len(s)), letting callers convert regexp2's rune-indexed match positions
// into byte offsets in O(1) after one O(n) pass.
func runeByteOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return offsets
}

func clampRuneIndex(idx, n int) int {
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
