// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func genRandBytes(size int) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = byte(rand.Intn(256))
	}
	return b
}

func genRandBytesSmallAlphabet(size int) []byte {
	b := make([]byte, size)
	for i := range b {
		b[i] = byte(rand.Intn(4))
	}
	return b
}

// makeSA is a naive O(n^2 log n) oracle: sort every suffix index,
// including the terminator, by lexicographic order.
func makeSA(s []byte) []uint32 {
	sa := make([]uint32, len(s)+1)
	for i := range sa {
		sa[i] = uint32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(s[sa[i]:], s[sa[j]:]) < 0
	})
	return sa
}

func TestBuild(t *testing.T) {
	tests := map[string]struct {
		input []byte
	}{
		"empty string":        {input: []byte{}},
		"single character":    {input: []byte{100}},
		"same characters":     {input: []byte("aaaaaaaaaaaaaaaaaaaaa")},
		"1 LMS":                {input: []byte("aabab")},
		"2 LMS":                {input: []byte("aababab")},
		"banana":               {input: []byte("banana")},
		"mississippi":          {input: []byte("mississippi")},
		"mmississiippii":       {input: []byte("mmississiippii")},
		"splendid splendor":    {input: []byte("splendid splendor")},
		"repeated pattern":     {input: []byte{1, 2, 1, 2, 1, 2, 1, 2}},
		"reverse sorted":       {input: []byte{5, 4, 3, 2, 1}},
		"abracadabra":          {input: []byte("abracadabra")},
		"ACGTGCCTAGCCTACCGTGCC": {input: []byte("ACGTGCCTAGCCTACCGTGCC")},
		"min/max edges":        {input: []byte{0, 255}},
		"alternating pattern":  {input: []byte{3, 1, 3, 1, 3, 1}},
		"zero bytes":           {input: []byte{0, 0, 0, 1, 1, 1}},
		"long random 256":      {input: genRandBytes(1000)},
		"long random small alphabet": {input: genRandBytesSmallAlphabet(1000)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			sa := make([]uint32, len(tc.input)+1)
			build(tc.input, sa)
			assert.Equal(t, makeSA(tc.input), sa)
		})
	}
}

func TestNewMatchesOracle(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := genRandBytesSmallAlphabet(rand.Intn(300))
		a := New(s)
		assert.Equal(t, makeSA(s), a.sa)
	}
}

func TestLenIsEmpty(t *testing.T) {
	a := New([]byte("banana"))
	assert.Equal(t, 6, a.Len())
	assert.False(t, a.IsEmpty())

	e := New(nil)
	assert.Equal(t, 0, e.Len())
	assert.True(t, e.IsEmpty())
}

func TestReset(t *testing.T) {
	a := New([]byte("banana"))
	a.Reset([]byte("abracadabra"))
	assert.Equal(t, makeSA([]byte("abracadabra")), a.sa)
	assert.Nil(t, a.buckets)
	// The backing slice is reused when it has enough capacity.
	grown := a.sa
	a.Reset([]byte("banana"))
	assert.Equal(t, makeSA([]byte("banana")), a.sa)
	assert.Equal(t, cap(grown), cap(a.sa))
}

func TestIntoPartsFromParts(t *testing.T) {
	s := []byte("mississippi")
	a := New(s)
	s2, sa := a.IntoParts()
	assert.Equal(t, s, s2)

	recomposed, ok := FromParts(s, sa)
	require.True(t, ok)
	assert.Equal(t, sa, recomposed.sa)
}

func TestFromPartsRejectsBadSA(t *testing.T) {
	s := []byte("banana")
	bad := make([]uint32, len(s)+1)
	for i := range bad {
		bad[i] = uint32(i) // identity, not suffix order
	}
	_, ok := FromParts(s, bad)
	assert.False(t, ok)
}

func TestFromPartsUnchecked(t *testing.T) {
	s := []byte("banana")
	sa := makeSA(s)
	a := FromPartsUnchecked(s, sa)
	assert.True(t, a.Contains([]byte("nan")))
}
