// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

// build constructs the suffix array of s into sa (len(sa) == len(s)+1,
// sa[0] reserved for the virtual terminator's suffix) using the level-0
// engine, recursing into buildInts for any summary sub-problem.
func build(s []byte, sa []uint32) {
	if len(s) == 0 {
		sa[0] = 0
		return
	}

	bkt := newBucket(s)
	sortLMSSuffixes0(s, sa, bkt, buildInts)
	induceByLMS0(s, sa, bkt)
}

// buildInts is build's level-≥1 counterpart, called recursively on the
// integer summary string produced by each level's LMS naming step: s is
// a workspace owned by the caller (no aliasing, mutated freely, including
// destructively by transformString), k is its alphabet size (every value
// in s is < k), and sa is scratch of length len(s)+1.
func buildInts(s []uint32, k int, sa []uint32) {
	if len(s) == 0 {
		sa[0] = 0
		return
	}

	transformString(s, k, sa)
	sortLMSSuffixesInt(s, sa, buildInts)
	induceByLMSInt(s, sa)
}
