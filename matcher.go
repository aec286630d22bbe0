// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package telnumber

import (
	"telnumber/internal/matcher"
	"telnumber/internal/phonenumber"
)

// Leniency selects how strict a PhoneNumberMatcher candidate must be
// before it is yielded.
type Leniency = phonenumber.Leniency

// Leniency levels, from loosest to strictest.
const (
	Possible       = phonenumber.Possible
	Valid          = phonenumber.Valid
	StrictGrouping = phonenumber.StrictGrouping
	ExactGrouping  = phonenumber.ExactGrouping
)

// PhoneNumberMatch is one located phone number: its byte start offset and
// exact raw substring in the searched text, plus the number it parsed to.
type PhoneNumberMatch = matcher.Match

// PhoneNumberMatcher scans free-form text for phone-number-shaped
// substrings, yielding only those that survive parsing and the chosen
// leniency check, in ascending start-offset order. Not safe for
// concurrent use; one instance per logical caller (spec §5).
type PhoneNumberMatcher = matcher.Matcher

// NewPhoneNumberMatcher constructs a matcher over text. If text is not
// valid UTF-8 the matcher is immediately exhausted. maxTries bounds the
// total number of parse attempts across the whole scan.
func NewPhoneNumberMatcher(text, region string, leniency Leniency, maxTries int) *PhoneNumberMatcher {
	return matcher.New(text, region, leniency, maxTries)
}
