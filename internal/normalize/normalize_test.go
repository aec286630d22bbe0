// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigitsOnlyDropsPunctuation(t *testing.T) {
	assert.Equal(t, "16502530000", DigitsOnly("+1 (650) 253-0000"))
}

func TestDigitsOnlyFoldsFullwidthDigits(t *testing.T) {
	assert.Equal(t, "0123456789", DigitsOnly("０１２３４５６７８９"))
}

func TestDigitsOnlyRejectsInvalidUTF8(t *testing.T) {
	assert.Equal(t, "", DigitsOnly(string([]byte{0xff, 0xfe})))
}

func TestNormalizeKeypadMapping(t *testing.T) {
	// 1-800-FLOWERS -> 1-800-3569377
	assert.Equal(t, "18003569377", Normalize("1800FLOWERS"))
}

func TestNormalizeIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, Normalize("flowers"), Normalize("FLOWERS"))
}

func TestDiallableCharsOnlyKeepsPlusStarHash(t *testing.T) {
	assert.Equal(t, "+1650*253#0000", DiallableCharsOnly("+1 650*253#0000 ext."))
}

func TestDigitsOnlyIdempotent(t *testing.T) {
	s := "+1 (650) 253-0000"
	once := DigitsOnly(s)
	twice := DigitsOnly(once)
	assert.Equal(t, once, twice)
}
