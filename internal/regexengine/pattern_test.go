// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package regexengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearConsumeAnchored(t *testing.T) {
	p, err := Compile(`\d{3}`, Linear)
	require.NoError(t, err)

	in, err := NewInput("abc123def")
	require.NoError(t, err)
	in.Advance(3)

	ok := p.Consume(in, true)
	assert.True(t, ok)
	assert.Equal(t, 6, in.Pos())
}

func TestLinearConsumeUnanchoredSkipsAhead(t *testing.T) {
	p, err := Compile(`\d+`, Linear)
	require.NoError(t, err)

	in, err := NewInput("abc123")
	require.NoError(t, err)

	ok := p.Consume(in, false)
	assert.True(t, ok)
	assert.Equal(t, 6, in.Pos())
}

func TestLinearConsumeAnchoredFailsWhenNotAtPosition(t *testing.T) {
	p, err := Compile(`\d+`, Linear)
	require.NoError(t, err)

	in, err := NewInput("abc123")
	require.NoError(t, err)

	ok := p.Consume(in, true)
	assert.False(t, ok)
	assert.Equal(t, 0, in.Pos())
}

func TestLinearConsumeCapturesGroups(t *testing.T) {
	p, err := Compile(`(\d+)-(\d+)`, Linear)
	require.NoError(t, err)

	in, err := NewInput("650-1234")
	require.NoError(t, err)

	var g1, g2 string
	ok := p.Consume(in, true, &g1, &g2)
	require.True(t, ok)
	assert.Equal(t, "650", g1)
	assert.Equal(t, "1234", g2)
}

func TestLinearMatchFullVsPartial(t *testing.T) {
	p, err := Compile(`\d{3}`, Linear)
	require.NoError(t, err)

	ok, _ := p.Match("123", true)
	assert.True(t, ok)

	ok, _ = p.Match("123x", true)
	assert.False(t, ok)

	ok, _ = p.Match("123x", false)
	assert.True(t, ok)
}

func TestLinearReplaceGlobalAndGroupRefs(t *testing.T) {
	p, err := Compile(`(\d)(\d)`, Linear)
	require.NoError(t, err)

	out := p.Replace("12 34", true, "$2$1")
	assert.Equal(t, "21 43", out)
}

func TestLinearReplaceEscapedDollar(t *testing.T) {
	p, err := Compile(`\d+`, Linear)
	require.NoError(t, err)

	out := p.Replace("42", false, `\$`)
	assert.Equal(t, "$", out)
}

func TestICUConsumeAndGroups(t *testing.T) {
	p, err := Compile(`(\p{Nd}+)-(\p{Nd}+)`, ICU)
	require.NoError(t, err)

	in, err := NewInput("650-1234")
	require.NoError(t, err)

	var g1, g2 string
	ok := p.Consume(in, true, &g1, &g2)
	require.True(t, ok)
	assert.Equal(t, "650", g1)
	assert.Equal(t, "1234", g2)
	assert.Equal(t, 8, in.Pos())
}

func TestICUReplace(t *testing.T) {
	p, err := Compile(`(\p{Nd})(\p{Nd})`, ICU)
	require.NoError(t, err)

	out := p.Replace("12 34", true, "$2$1")
	assert.Equal(t, "21 43", out)
}

func TestNeverMatches(t *testing.T) {
	p := NeverMatches("broken(")
	ok, _ := p.Match("anything", false)
	assert.False(t, ok)
	assert.Equal(t, "unchanged", p.Replace("unchanged", true, "x"))
}

func TestNewInputRejectsInvalidUTF8(t *testing.T) {
	_, err := NewInput(string([]byte{0xff, 0xfe}))
	require.Error(t, err)
	assert.True(t, IsInvalidUTF8(err))
}
