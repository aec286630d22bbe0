// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package regexengine

import (
	"regexp"
	"strings"
)

// re2Pattern is the Linear backend: stdlib regexp, guaranteed linear time,
// supports \p{L}/\p{Nd} Unicode classes but no backreferences or lookaround.
// Grounded in awslabs-ferret-scan/internal/validators/phone/validator.go's
// direct use of regexp.Regexp for every pattern in its table.
type re2Pattern struct {
	src string
	re  *regexp.Regexp
}

func compileLinear(src string) (Pattern, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, err
	}
	return &re2Pattern{src: src, re: re}, nil
}

func (p *re2Pattern) Source() string   { return p.src }
func (p *re2Pattern) Backend() Backend { return Linear }

func (p *re2Pattern) Consume(in *Input, anchorAtStart bool, out ...*string) bool {
	rest := in.Remaining()
	loc := p.re.FindStringSubmatchIndex(rest)
	if loc == nil {
		return false
	}
	if anchorAtStart && loc[0] != 0 {
		return false
	}

	fillGroups(rest, loc, out)
	in.Advance(loc[1])
	return true
}

func (p *re2Pattern) Match(s string, fullMatch bool) (bool, string) {
	if fullMatch {
		loc := p.re.FindStringSubmatchIndex(s)
		if loc == nil || loc[0] != 0 || loc[1] != len(s) {
			return false, ""
		}
		return true, firstGroup(s, loc)
	}

	loc := p.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return false, ""
	}
	return true, firstGroup(s, loc)
}

func (p *re2Pattern) Replace(s string, global bool, replacement string) string {
	repl := translateGroupRefs(replacement)
	if global {
		return p.re.ReplaceAllString(s, repl)
	}

	loc := p.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}
	var sb strings.Builder
	sb.WriteString(s[:loc[0]])
	sb.Write(p.re.ExpandString(nil, repl, s, loc))
	sb.WriteString(s[loc[1]:])
	return sb.String()
}

// fillGroups assigns capture groups 1..len(out) from loc (byte-offset
// pairs into s) into out, leaving "" for groups that did not participate.
func fillGroups(s string, loc []int, out []*string) {
	for i, dst := range out {
		group := i + 1
		lo, hi := groupIndex(loc, group)
		if dst == nil {
			continue
		}
		if lo < 0 {
			*dst = ""
			continue
		}
		*dst = s[lo:hi]
	}
}

func groupIndex(loc []int, group int) (int, int) {
	idx := group * 2
	if idx+1 >= len(loc) {
		return -1, -1
	}
	return loc[idx], loc[idx+1]
}

func firstGroup(s string, loc []int) string {
	lo, hi := groupIndex(loc, 1)
	if lo < 0 {
		return ""
	}
	return s[lo:hi]
}

// translateGroupRefs rewrites "\$" escapes into a literal that Go's
// regexp.Expand-family functions (which use $1 group syntax natively) will
// not treat as a group reference, per spec §4.1 ("Replacement \$ escapes a
// literal $").
func translateGroupRefs(replacement string) string {
	if !strings.Contains(replacement, `\$`) {
		return replacement
	}
	return strings.ReplaceAll(replacement, `\$`, "$$")
}
