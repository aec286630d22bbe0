// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherFindsValidCandidateAndSkipsInvalidOne(t *testing.T) {
	m := New("Call +1 425-882-8080 or 0800-123-456 today", "US", Valid, 20)

	require.True(t, m.HasNext())
	match := m.Next()
	require.NotNil(t, match)
	assert.Equal(t, 5, match.Start)
	assert.Equal(t, "+1 425-882-8080", match.RawString)

	assert.False(t, m.HasNext())
}

func TestMatcherSkipsTimestampAndDate(t *testing.T) {
	m := New("Meeting 2012-01-02 08:00:15 in room 42", "US", Valid, 50)
	assert.False(t, m.HasNext())
}

func TestMatcherDoneOnInvalidUTF8(t *testing.T) {
	m := New("call \xff\xfe now", "US", Possible, 10)
	assert.False(t, m.HasNext())
}

func TestMatcherIdempotentAfterDone(t *testing.T) {
	m := New("no numbers here", "US", Possible, 10)
	assert.False(t, m.HasNext())
	assert.False(t, m.HasNext())
	assert.Nil(t, m.Next())
}

func TestMatcherOrderingIsAscending(t *testing.T) {
	m := New("+1 650-253-0000 then +1 425-882-8080", "US", Valid, 20)
	var starts []int
	for m.HasNext() {
		starts = append(starts, m.Next().Start)
	}
	require.Len(t, starts, 2)
	assert.Less(t, starts[0], starts[1])
}

func TestMatcherDeterministic(t *testing.T) {
	text := "reach +1 650-253-0000 soon"
	first := New(text, "US", Valid, 10)
	second := New(text, "US", Valid, 10)

	var firstStarts, secondStarts []int
	for first.HasNext() {
		firstStarts = append(firstStarts, first.Next().Start)
	}
	for second.HasNext() {
		secondStarts = append(secondStarts, second.Next().Start)
	}
	assert.Equal(t, firstStarts, secondStarts)
}

func TestMatcherMaxTriesExhausted(t *testing.T) {
	m := New("+1 650-253-0000", "US", Valid, 0)
	assert.False(t, m.HasNext())
}
