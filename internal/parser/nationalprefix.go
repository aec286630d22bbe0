// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parser

import (
	"sync"

	"telnumber/internal/metadata"
	"telnumber/internal/regexcache"
	"telnumber/internal/regexengine"
)

var (
	prefixCacheOnce sync.Once
	prefixCache     *regexcache.Cache
)

func prefixPatternCache() *regexcache.Cache {
	prefixCacheOnce.Do(func() {
		prefixCache = regexcache.New(regexcache.DefaultCapacity, nil)
	})
	return prefixCache
}

// stripNationalPrefix implements spec §4.5 step 8: strip the national
// prefix and carrier code from digits using m's national-prefix-for-parsing
// regex and transform rule. Returns digits unchanged if no prefix pattern
// is configured or none matches at the start.
func stripNationalPrefix(digits string, m *metadata.PhoneMetadata) (newDigits, carrierCode string) {
	src := m.NationalPrefixForParsing
	if src == "" {
		src = m.NationalPrefix
	}
	if src == "" {
		return digits, ""
	}

	pat := prefixPatternCache().Get(src, regexengine.ICU)

	in, err := regexengine.NewInput(digits)
	if err != nil {
		return digits, ""
	}
	var g1, g2 string
	if !pat.Consume(in, true, &g1, &g2) || in.Pos() == 0 {
		// A zero-length match (an all-optional prefix pattern matching
		// nothing) is not a real prefix occurrence.
		return digits, ""
	}

	if m.NationalPrefixTransformRule != "" {
		transformed := pat.Replace(digits, false, m.NationalPrefixTransformRule)
		return transformed, g2
	}

	return in.Remaining(), g2
}
