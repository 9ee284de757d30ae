// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

import "cmp"

// noName marks a workspace slot that renameSubstrs left untouched: every
// slot that is not pos/2 for a ranked LMS position. The virtual terminator
// is never ranked either, since it always sorts first in the sub-problem,
// implicitly.
const noName uint32 = 0xffffffff

// suffixesFromSubstrs turns a set of LMS substrings, already sorted and
// collected into tail in substring order, into the corresponding sorted
// LMS *suffixes*, written into head[:len(tail)].
//
// head and tail together must span len(s)+1 slots (len(head)+len(tail)
// == len(s)+1); head is scratch space reused both for the renamed summary
// string and, after recursion, for its suffix array. sortInts recursively
// sorts the summary string when LMS substrings are not already pairwise
// distinct; it is always the level-≥1 engine (buildInts), since the
// sub-problem is always an integer string regardless of the level this
// call originates from.
func suffixesFromSubstrs[T cmp.Ordered](s []T, head, tail []uint32, sortInts func(s []uint32, k int, sa []uint32)) {
	k := renameSubstrs(s, head, tail)

	if k+1 == uint32(len(tail)) {
		// LMS substrings are already pairwise distinct: substring order is
		// suffix order.
		copy(head[:len(tail)], tail)
		return
	}

	// Compact the named sub-problem leftward, skipping every untouched
	// slot.
	t := 0
	for i := 0; i < len(head); i++ {
		if head[i] != noName {
			head[t] = head[i]
			t++
		}
	}

	sortInts(head[:t], int(k), tail)

	copy(head[:len(tail)], tail)
	h := len(tail)
	forEachLMS(s, true, func(i int, _ T) {
		h--
		tail[h] = uint32(i)
	})
	for p := 0; p < len(tail); p++ {
		i := head[p]
		head[p] = tail[i]
	}
}

// renameSubstrs assigns each LMS substring, listed in tail in sorted
// (substring) order, a rank in head[pos/2] where pos is its start index.
// Equal consecutive substrings share a rank; every inequality bumps the
// rank. Ranks start at 0; returns the number of distinct ranks assigned
// (one more than the highest rank).
func renameSubstrs[T cmp.Ordered](s []T, head, tail []uint32) uint32 {
	for i := range head {
		head[i] = noName
	}

	var k uint32
	j := tail[0]
	for _, i := range tail[1:] {
		if !lmsSubstrEq(s, int(i), int(j)) {
			k++
		}
		head[i/2] = k - 1
		j = i
	}
	return k
}

// lmsSubstrEq decides whether the LMS substrings starting at i and j are
// identical, as a sequence of (value, S/L-type) pairs. i and j must both
// be LMS positions (or the virtual terminator, len(s)).
func lmsSubstrEq[T cmp.Ordered](s []T, i, j int) bool {
	if i > j {
		i, j = j, i
	}
	if i == j {
		return true
	}
	if j == len(s) || s[i] != s[j] {
		return false
	}

	// Compare the leading S-type run (and the L-type peak immediately
	// preceding the next LMS boundary) character by character.
	last := s[i]
	i++
	j++
	for j < len(s) && s[i] >= last {
		if s[i] != s[j] {
			return false
		}
		last = s[i]
		i++
		j++
	}

	// Compare the remaining run of equal characters leading into the
	// valley (the next LMS boundary) in bulk.
	for j < len(s) {
		p0, n0, t0 := peek(s, i)
		p1, n1, t1 := peek(s, j)
		if p0 != p1 || t0 != t1 {
			return false
		}
		if t0 {
			// Both sides reached the next LMS boundary in step: equal.
			return true
		}
		if n0 != n1 {
			return false
		}
		i += n0
		j += n1
	}
	return false
}

// peek returns the value, run length, and whether the run is rising
// (value, length, true) or falling/flat at the end of s (value, length,
// false) of the maximal run of equal characters starting at i.
func peek[T cmp.Ordered](s []T, i int) (T, int, bool) {
	p := s[i]
	n := 1
	i++
	for i < len(s) {
		if s[i] > p {
			return p, n, true
		} else if s[i] < p {
			return p, n, false
		}
		n++
		i++
	}
	return p, n, false
}
