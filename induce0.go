// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

// sortLMSSuffixes0 sorts the LMS suffixes of s (the level-0, byte-alphabet
// string) and leaves their original indices seeded, in ascending suffix
// order, at the tails of their buckets, ready for induceByLMS0; sa[0]
// holds the terminator's index, len(s), and every other slot holds
// emptyByte. It returns the number of LMS positions, terminator included.
//
// It seeds LMS substrings, induces their order, names them into a
// summary string, recurses to sort that string (or reads off the order
// directly when names are already unique), then restores sorted LMS
// suffixes to their bucket tails.
func sortLMSSuffixes0(s []byte, sa []uint32, bkt *bucket, sortInts func(s []uint32, k int, sa []uint32)) (n int) {
	for i := range sa {
		sa[i] = emptyByte
	}
	forEachLMS(s, false, func(i int, _ byte) { bkt.insertTail(s, sa, i) })
	sa[0] = uint32(len(s))

	// Sort LMS substrings by inducing once from the seeded LMS characters.
	induceByLMS0(s, sa, bkt)

	// Collect the sorted LMS substring start positions into the tail of
	// the workspace, scanning bucket tails right to left.
	h := len(sa)
	for c := 255; c >= 0; c-- {
		t := int(bkt.tailPtr(byte(c)))
		q := int(bkt.sPtr(byte(c)))
		for i := t - 1; i >= q; i-- {
			j := sa[i]
			if j > 0 && s[j-1] > s[j] {
				h--
				sa[h] = sa[i]
			}
		}
	}
	h--
	sa[h] = sa[0]

	head, tail := sa[:h], sa[h:]
	n = len(tail)
	suffixesFromSubstrs(s, head, tail, sortInts)
	for i := n; i < len(sa); i++ {
		sa[i] = emptyByte
	}

	// Re-seed sorted LMS suffixes at their bucket tails, in decreasing
	// sorted order, so each bucket's internal order comes out correct.
	bkt.resetLPtrs()
	bkt.resetSPtrs()
	for i := n - 1; i >= 1; i-- {
		j := sa[i]
		sa[i] = emptyByte
		bkt.insertTail(s, sa, int(j))
	}
	return n
}

// induceByLMS0 performs the two-pass induction: phase L places every
// L-type suffix from the seeded LMS/terminator entries, then phase S
// places every S-type suffix from the L-type entries just placed. A
// single call sorts LMS substrings (when sa holds only LMS seeds) or the
// full suffix array (when sa holds sorted LMS suffixes), depending on
// what was seeded beforehand.
func induceByLMS0(s []byte, sa []uint32, bkt *bucket) {
	for i := 0; i < len(sa); i++ {
		if sa[i] == emptyByte || sa[i] == 0 {
			continue
		}
		j := int(sa[i])
		if j == len(s) || s[j-1] >= s[j] {
			bkt.insertHead(s, sa, j-1)
		}
	}

	bkt.clearTails(sa)

	for i := len(sa) - 1; i >= 1; i-- {
		if sa[i] == emptyByte || sa[i] == 0 {
			continue
		}
		j := int(sa[i])
		if s[j-1] < s[j] || (s[j-1] == s[j] && bkt.lPtr(s[j]) < uint32(i)) {
			bkt.insertTail(s, sa, j-1)
		}
	}
}
