// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package regexcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telnumber/internal/regexengine"
)

func TestGetCompilesAndCaches(t *testing.T) {
	c := New(4, nil)

	p1 := c.Get(`\d+`, regexengine.Linear)
	p2 := c.Get(`\d+`, regexengine.Linear)

	require.NotNil(t, p1)
	assert.Same(t, p1, p2)
	assert.Equal(t, 1, c.Len())
}

func TestGetDistinguishesBackend(t *testing.T) {
	c := New(4, nil)

	p1 := c.Get(`\d+`, regexengine.Linear)
	p2 := c.Get(`\d+`, regexengine.ICU)

	assert.NotSame(t, p1, p2)
	assert.Equal(t, 2, c.Len())
}

func TestGetDegradesOnCompileError(t *testing.T) {
	c := New(4, nil)

	p := c.Get(`(unclosed`, regexengine.Linear)
	ok, _ := p.Match("anything", false)
	assert.False(t, ok)
}

func TestCapacityDefaultsWhenNonPositive(t *testing.T) {
	c := New(0, nil)
	for i := 0; i < DefaultCapacity+10; i++ {
		c.Get(string(rune('a'+i%26))+`\d`, regexengine.Linear)
	}
	assert.LessOrEqual(t, c.Len(), DefaultCapacity)
}
