// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestViableAcceptsPlausibleNumber(t *testing.T) {
	p := Default()
	ok, _ := p.Viable.Match("+1 650-253-0000", true)
	assert.True(t, ok)
}

func TestViableRejectsTooFewDigits(t *testing.T) {
	p := Default()
	ok, _ := p.Viable.Match("1", true)
	assert.False(t, ok)
}

func TestExtnPatternsMatchExplicitLabel(t *testing.T) {
	p := Default()
	require.NotEmpty(t, p.ExtnPatterns)
	ok, group := p.ExtnPatterns[0].Match("6502530000 ext 123", false)
	assert.True(t, ok)
	assert.Equal(t, "123", group)
}

func TestRFC3966GlobalDetectsScheme(t *testing.T) {
	p := Default()
	ok, _ := p.RFC3966Global.Match("tel:+1-650-253-0000", false)
	assert.True(t, ok)
}

func TestRFC3966PhoneContextCapturesValue(t *testing.T) {
	p := Default()
	ok, group := p.RFC3966PhoneContext.Match(";phone-context=+1", false)
	assert.True(t, ok)
	assert.Equal(t, "+1", group)
}

func TestPlusCharsContainsFullwidth(t *testing.T) {
	assert.Contains(t, PlusChars, "+")
	assert.Contains(t, PlusChars, "＋")
}
