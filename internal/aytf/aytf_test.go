// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package aytf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputDigitUSSequence(t *testing.T) {
	f := New("US")
	want := []string{
		"6", "65", "650", "650 2", "650 25", "650 253",
		"650 253 0", "650 253 00", "650 253 000", "650 253 0000",
	}
	for i, d := range "6502530000" {
		assert.Equal(t, want[i], f.InputDigit(d))
	}
}

func TestInputDigitInternationalUSSequence(t *testing.T) {
	f := New("US")
	var out string
	for _, d := range "+16502530000" {
		out = f.InputDigit(d)
	}
	assert.Equal(t, "+1 650-253-0000", out)
}

func TestClearResetsState(t *testing.T) {
	f := New("US")
	f.InputDigit('6')
	f.InputDigit('5')
	f.Clear()
	assert.Equal(t, "9", f.InputDigit('9'))
}

func TestUnformattableOnNonDigit(t *testing.T) {
	f := New("US")
	f.InputDigit('6')
	f.InputDigit('5')
	out := f.InputDigit('a')
	assert.Equal(t, "65a", out)
	assert.Equal(t, "65a0", f.InputDigit('0'))
}

func TestGetCurrentOutputMatchesLastInputDigit(t *testing.T) {
	f := New("US")
	out := f.InputDigit('6')
	assert.Equal(t, out, f.GetCurrentOutput())
}

func TestRememberedPositionTracksDigit(t *testing.T) {
	f := New("US")
	f.InputDigit('6')
	f.InputDigit('5')
	out := f.InputDigitAndRememberPosition('0')
	pos := f.GetRememberedPosition()
	assert.Equal(t, len(out), pos)
}

func TestInputDigitRecognizesIDDTypedAsPlainDigits(t *testing.T) {
	f := New("GB")
	var out string
	for _, d := range "00442087712924" {
		out = f.InputDigit(d)
	}
	assert.Equal(t, "+44 20-8771-2924", out)
}

func TestDigitPreservationAcrossFormatting(t *testing.T) {
	f := New("US")
	var out string
	for _, d := range "6502530000" {
		out = f.InputDigit(d)
	}
	digitsOnly := make([]rune, 0, len(out))
	for _, r := range out {
		if r >= '0' && r <= '9' {
			digitsOnly = append(digitsOnly, r)
		}
	}
	assert.Equal(t, "6502530000", string(digitsOnly))
}
