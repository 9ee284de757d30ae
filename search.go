// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

import (
	"bytes"
	"slices"
	"sort"
)

// truncate bounds a suffix to at most max bytes before comparing it
// against a pattern of that length, so a short suffix near the end of
// the text never reads out of bounds.
func truncate(s []byte, max int) []byte {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// commonPrefixLen returns the length of the longest common prefix of x
// and y.
func commonPrefixLen(x, y []byte) int {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	i := 0
	for i < n && x[i] == y[i] {
		i++
	}
	return i
}

// bucketIndex narrows a search to the SA range sharing a given one- or
// two-byte prefix before the O(log n) binary search takes over, trading
// 257*257 words of memory for fewer suffix comparisons on long texts.
// It must be rebuilt (via EnableBuckets) whenever the underlying SA
// changes.
type bucketIndex struct {
	bounds1 [257]uint32    // bounds1[c] = first SA index whose suffix's byte 0 is >= c
	bounds2 [256][257]uint32 // bounds2[c0][c1] = first SA index within bucket c0 whose suffix's byte 1 is >= c1
}

// newBucketIndex builds both levels in one left-to-right scan of sa,
// which is already sorted: every bucket boundary is a position where the
// relevant byte increases, so a single pass fills in skipped buckets with
// the current offset exactly like bucket.go's counting-sort bounds.
func newBucketIndex(s []byte, sa []uint32) *bucketIndex {
	bi := &bucketIndex{}
	c0 := 0
	c1 := 0
	for i, j := range sa {
		var b0, b1 int
		suf := s[j:]
		if len(suf) > 0 {
			b0 = int(suf[0]) + 1
		}
		if len(suf) > 1 {
			b1 = int(suf[1]) + 1
		}
		for c0 < b0 {
			if c0 > 0 {
				for ; c1 < 256; c1++ {
					bi.bounds2[c0-1][c1] = uint32(i)
				}
			}
			bi.bounds1[c0] = uint32(i)
			bi.bounds2[c0][256] = uint32(i)
			c0++
			c1 = 0
		}
		for c1 < b1 {
			bi.bounds2[b0-1][c1] = uint32(i)
			c1++
		}
	}
	for c0 < 257 {
		if c0 > 0 {
			for ; c1 < 256; c1++ {
				bi.bounds2[c0-1][c1] = uint32(len(sa))
			}
		}
		bi.bounds1[c0] = uint32(len(sa))
		c0++
		c1 = 0
	}
	for c := 0; c < 256; c++ {
		bi.bounds2[c][256] = bi.bounds1[c+1]
	}
	return bi
}

// rangeFor returns the narrowest SA range the bucket index guarantees
// contains every suffix starting with pattern, given pattern's first one
// or two bytes. Called only when len(pattern) > 0.
func (bi *bucketIndex) rangeFor(pattern []byte) (lo, hi int) {
	c0 := int(pattern[0])
	lo, hi = int(bi.bounds1[c0]), int(bi.bounds1[c0+1])
	if len(pattern) > 1 {
		c1 := int(pattern[1])
		lo2, hi2 := int(bi.bounds2[c0][c1]), int(bi.bounds2[c0][c1+1])
		if lo2 > lo {
			lo = lo2
		}
		if hi2 < hi {
			hi = hi2
		}
	}
	return lo, hi
}

// boundsFor returns the SA range a search should scan, narrowed by the
// bucket index when one is installed and the pattern is non-empty.
func (a *SuffixArray) boundsFor(pattern []byte) (lo, hi int) {
	if a.buckets != nil && len(pattern) > 0 {
		return a.buckets.rangeFor(pattern)
	}
	return 0, len(a.sa)
}

// Contains reports whether pattern occurs anywhere in the indexed text.
func (a *SuffixArray) Contains(pattern []byte) bool {
	if len(pattern) == 0 {
		return true
	}
	lo, hi := a.boundsFor(pattern)
	i := lo + sort.Search(hi-lo, func(k int) bool {
		suf := a.s[a.sa[lo+k]:]
		return bytes.Compare(truncate(suf, len(pattern)), pattern) >= 0
	})
	if i >= hi {
		return false
	}
	suf := a.s[a.sa[i]:]
	return bytes.Equal(truncate(suf, len(pattern)), pattern)
}

// ContainsAny reports whether any of patterns occurs in the indexed
// text.
func (a *SuffixArray) ContainsAny(patterns [][]byte) bool {
	for _, p := range patterns {
		if a.Contains(p) {
			return true
		}
	}
	return false
}

// LocateAll returns every occurrence of pattern as a slice of SA indices
// in suffix order, not text position order; use
// LocateAllSortedByPosition for the latter. The empty pattern matches
// every suffix, including the terminator.
func (a *SuffixArray) LocateAll(pattern []byte) []uint32 {
	lo, hi := a.boundsFor(pattern)
	if len(pattern) == 0 {
		return a.sa[lo:hi]
	}

	i := lo + sort.Search(hi-lo, func(k int) bool {
		return bytes.Compare(pattern, a.s[a.sa[lo+k]:]) <= 0
	})
	j := i + sort.Search(hi-i, func(k int) bool {
		return !bytes.HasPrefix(a.s[a.sa[i+k]:], pattern)
	})
	return a.sa[i:j]
}

// LocateAllSortedByPosition is LocateAll, with the result re-sorted by
// text position instead of suffix order.
func (a *SuffixArray) LocateAllSortedByPosition(pattern []byte) []uint32 {
	res := a.LocateAll(pattern)
	cp := make([]uint32, len(res))
	copy(cp, res)
	slices.Sort(cp)
	return cp
}

// SearchLCP returns the text range [lo, hi) of one suffix that shares
// the longest common prefix with pattern. If pattern occurs exactly,
// the range covers that entire suffix; otherwise it covers only the
// shared prefix of whichever of pattern's two binary-search neighbors
// matches longer. If the text is empty, lo == hi == len(s).
func (a *SuffixArray) SearchLCP(pattern []byte) (lo, hi int) {
	n := len(a.sa)
	i := sort.Search(n, func(k int) bool {
		return bytes.Compare(a.s[a.sa[k]:], pattern) >= 0
	})
	if i < n && bytes.Equal(a.s[a.sa[i]:], pattern) {
		j := int(a.sa[i])
		return j, len(a.s)
	}

	switch {
	case i > 0 && i < n:
		j, k := int(a.sa[i-1]), int(a.sa[i])
		la := commonPrefixLen(pattern, a.s[j:])
		lb := commonPrefixLen(pattern, a.s[k:])
		if la > lb {
			return j, j + la
		}
		return k, k + lb
	case i == n && i > 0:
		j := int(a.sa[i-1])
		la := commonPrefixLen(pattern, a.s[j:])
		return j, j + la
	default:
		return len(a.s), len(a.s)
	}
}

// EnableBuckets builds the two-level bucket acceleration table over the
// current SA, speeding up Contains/LocateAll/ContainsAny on long texts
// at the cost of 257*257 extra words of memory. It is a one-time opt-in:
// Reset invalidates and must be followed by another call to re-enable.
func (a *SuffixArray) EnableBuckets() {
	a.buckets = newBucketIndex(a.s, a.sa)
}
