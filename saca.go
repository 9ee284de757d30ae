// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

import "bytes"

// SuffixArray holds a byte string and its suffix array, and answers
// substring queries against it.
type SuffixArray struct {
	s       []byte
	sa      []uint32
	buckets *bucketIndex
}

// New constructs a suffix array for s. len(s) must not exceed MaxLength.
func New(s []byte) *SuffixArray {
	if len(s) > MaxLength {
		panic(ErrTooLong)
	}
	sa := make([]uint32, len(s)+1)
	build(s, sa)
	return &SuffixArray{s: s, sa: sa}
}

// Len returns the length of the indexed string.
func (a *SuffixArray) Len() int { return len(a.s) }

// IsEmpty reports whether the indexed string is empty.
func (a *SuffixArray) IsEmpty() bool { return len(a.s) == 0 }

// Reset rebuilds the suffix array in place for a new string, reusing the
// backing SA slice's capacity when it is large enough. Any bucket
// acceleration table previously installed with EnableBuckets is
// invalidated and must be rebuilt.
func (a *SuffixArray) Reset(s []byte) {
	if len(s) > MaxLength {
		panic(ErrTooLong)
	}
	if cap(a.sa) >= len(s)+1 {
		a.sa = a.sa[:len(s)+1]
	} else {
		a.sa = make([]uint32, len(s)+1)
	}
	a.s = s
	a.buckets = nil
	build(s, a.sa)
}

// IntoParts returns the indexed string and its suffix array. The slices
// are shared with a, not copied, and a itself is left unchanged.
func (a *SuffixArray) IntoParts() ([]byte, []uint32) {
	return a.s, a.sa
}

// FromParts composes a string and a previously computed suffix array,
// checking that sa actually sorts the suffixes of s. It reports false,
// with a nil *SuffixArray, if the check fails.
func FromParts(s []byte, sa []uint32) (*SuffixArray, bool) {
	a := &SuffixArray{s: s, sa: sa}
	if !a.checkIntegrity() {
		return nil, false
	}
	return a, true
}

// FromPartsUnchecked is FromParts without the integrity check, for
// callers that already know sa is a valid suffix array of s.
func FromPartsUnchecked(s []byte, sa []uint32) *SuffixArray {
	return &SuffixArray{s: s, sa: sa}
}

// checkIntegrity reports whether a.sa is a valid, strictly increasing
// (in suffix order) suffix array of a.s.
func (a *SuffixArray) checkIntegrity() bool {
	if len(a.s)+1 != len(a.sa) {
		return false
	}
	seen := make([]bool, len(a.sa))
	for _, i := range a.sa {
		if int(i) >= len(a.sa) || seen[i] {
			return false
		}
		seen[i] = true
	}
	for i := 1; i < len(a.sa); i++ {
		x := a.s[a.sa[i-1]:]
		y := a.s[a.sa[i]:]
		if bytes.Compare(x, y) >= 0 {
			return false
		}
	}
	return true
}
