// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

// emptyInt tags an unused workspace slot at recursion level ≥1. Values
// strictly above emptyInt encode a MULTI run: the two's-complement
// negative of the run length n (neg32(n)). Values strictly below
// emptyInt are real string positions, 0 through len(s) inclusive.
const emptyInt uint32 = 0x80000000

// neg32 is the uint32 two's-complement negation used both to build a
// MULTI tag from a run length and to recover a run length from a MULTI
// tag (it is its own inverse): neg32(neg32(n)) == n for any n that fits
// the tag encoding.
func neg32(n uint32) uint32 { return -n }

// transformString rewrites s in place from symbol values to pointers into
// the bucket each symbol occupies: S-type positions point at their
// bucket's tail, L-type positions at their bucket's head. sa[:k+1] is
// used as scratch for the bucket prefix sums and is left holding them
// afterward (callers overwrite sa fully before reading it again).
//
// This fuses the bucket table and the string into one structure, so no
// O(alphabet) table needs to be allocated at this recursion level.
func transformString(s []uint32, k int, sa []uint32) {
	var sum uint32 = 1
	for i := 0; i <= k; i++ {
		sa[i] = 0
	}
	for _, c := range s {
		sa[c]++
	}
	for i := 0; i <= k; i++ {
		n := sa[i]
		sa[i] = sum
		sum += n
	}

	t := false
	r := s[len(s)-1]
	s[len(s)-1] = sa[r]
	for idx := len(s) - 2; idx >= 0; idx-- {
		p := s[idx]
		switch {
		case p < r:
			t = true
		case p > r:
			t = false
		}
		r = p
		if t {
			s[idx] = sa[p+1] - 1
		} else {
			s[idx] = sa[p]
		}
	}
}

// getPtr safely reads the transformed pointer at i, treating i == len(s)
// (the virtual terminator) as bucket 0.
func getPtr(s []uint32, i int) uint32 {
	if i == len(s) {
		return 0
	}
	return s[i]
}

// sortLMSSuffixesInt sorts the LMS suffixes of s (the level-≥1 string,
// already transformed into bucket pointers) and leaves their original
// indices seeded, in ascending suffix order, at the tails of their
// buckets, ready for induceByLMSInt; sa[0] holds the terminator's index,
// len(s), and every other slot holds emptyInt.
func sortLMSSuffixesInt(s []uint32, sa []uint32, sortInts func(s []uint32, k int, sa []uint32)) {
	for i := range sa {
		sa[i] = emptyInt
	}
	forEachLMS(s, false, func(i int, _ uint32) { insertTail1(s, sa, nil, i) })
	sa[0] = uint32(len(s))
	finishTail(sa)

	induceByLMSInt(s, sa)

	// Collect the sorted LMS substring start positions into the tail of
	// the workspace. t tracks whether the bucket currently being scanned
	// is an S-type bucket (only S-type buckets can start an LMS
	// substring at their right edge).
	h := len(sa)
	q := uint32(len(s)) + 1
	t := false
	for p := len(sa) - 1; p >= 1; p-- {
		i := int(sa[p])
		if s[i] != q {
			t = i < len(s)-1 && s[i] < s[i+1]
			q = s[i]
		}
		if t && i > 0 && s[i-1] > s[i] {
			h--
			sa[h] = sa[p]
		}
	}
	h--
	sa[h] = sa[0]

	head, tail := sa[:h], sa[h:]
	n := len(tail)
	suffixesFromSubstrs(s, head, tail, sortInts)
	for i := n; i < len(sa); i++ {
		sa[i] = emptyInt
	}

	// Re-seed sorted LMS suffixes at their bucket positions in bulk,
	// grouping consecutive runs that share a bucket pointer and moving
	// each run in one block copy instead of one insertion at a time.
	if n > 1 {
		r := n
		q := int(s[sa[n-1]])
		for l := n - 1; l >= 1; l-- {
			i := int(sa[l-1])
			p := int(getPtr(s, i))
			if p == q {
				continue
			}

			m := r - l
			if m == 1 {
				tmp := sa[l]
				sa[l] = emptyInt
				sa[q] = tmp
			} else {
				dst := q + 1 - m
				copy(sa[dst:dst+m], sa[l:l+m])
				end := r
				if dst < end {
					end = dst
				}
				for x := l; x < end; x++ {
					sa[x] = emptyInt
				}
			}

			r = l
			q = p
		}
	}
}

// induceByLMSInt is the level-≥1 counterpart of induceByLMS0: phase L
// then phase S, using insertHead1/insertTail1's in-place tag scheme
// instead of a real bucket table.
func induceByLMSInt(s []uint32, sa []uint32) {
	p := 0
	for p < len(sa) {
		if sa[p] < emptyInt {
			i := int(sa[p])
			if i == len(s) || (i > 0 && s[i-1] >= s[i]) {
				insertHead1(s, sa, &p, i-1)
			}
		}
		p++
	}
	finishHead(sa)

	clearLMS(s, sa)

	p = len(sa) - 1
	for p > 0 {
		if sa[p] < emptyInt {
			i := int(sa[p])
			if i > 0 && getPtr(s, i-1) <= getPtr(s, i) {
				insertTail1(s, sa, &p, i-1)
			}
		}
		p--
	}
	finishTail(sa)
}

// clearLMS removes every LMS character from the bucket tails sa ends up
// holding after phase L, except the terminator sentinel at sa[0]'s
// bucket, which phase S always needs. Each bucket's LMS entries are
// first counted via the MULTI tag, then the whole counted run is
// overwritten with emptyInt in one pass.
func clearLMS(s []uint32, sa []uint32) {
	forEachLMS(s, false, func(_ int, c uint32) {
		p := int(c)
		if sa[p] > emptyInt {
			sa[p]--
		} else {
			sa[p] = neg32(1)
		}
	})

	for p := len(sa) - 1; p >= 1; p-- {
		if sa[p] > emptyInt {
			n := int(neg32(sa[p]))
			for x := p + 1 - n; x <= p; x++ {
				sa[x] = emptyInt
			}
		}
	}
}

// insertHead1 places i at the head of its bucket (L-type), using the
// EMPTY/MULTI tag protocol above. ptr, when non-nil, is the outer scan
// cursor in induceByLMSInt; it is shifted if a block move carries it
// along.
func insertHead1(s []uint32, sa []uint32, ptr *int, i int) {
	p := int(s[i])

	if sa[p] < emptyInt {
		lp := getPtr(s, int(sa[p]))
		if p > 0 && int(lp) != p {
			q := p
			for q >= 0 && sa[q] < emptyInt && getPtr(s, int(sa[q])) == lp {
				q--
			}
			if q >= 0 && sa[q] > emptyInt {
				n := int(neg32(sa[q]))
				saMove(sa, q+1, q, n, ptr)
				sa[p] = emptyInt
			}
		}
	}

	if sa[p] == emptyInt {
		if p+1 >= len(sa) || sa[p+1] != emptyInt {
			sa[p] = uint32(i)
		} else {
			sa[p] = neg32(1)
			sa[p+1] = uint32(i)
		}
	} else if sa[p] > emptyInt {
		n := int(neg32(sa[p]))
		if p+1+n >= len(sa) || sa[p+1+n] != emptyInt {
			saMove(sa, p+1, p, n, ptr)
			sa[p+n] = uint32(i)
		} else {
			sa[p+1+n] = uint32(i)
			sa[p]--
		}
	}
}

// insertTail1 places i at the tail of its bucket (S-type); the mirror of
// insertHead1, scanning and shifting rightward instead of leftward.
func insertTail1(s []uint32, sa []uint32, ptr *int, i int) {
	p := int(s[i])

	if sa[p] < emptyInt {
		rp := getPtr(s, int(sa[p]))
		if p > 0 && int(rp) != p {
			q := p
			for q < len(sa) && sa[q] < emptyInt && getPtr(s, int(sa[q])) == rp {
				q++
			}
			if q < len(sa) && sa[q] > emptyInt {
				n := int(neg32(sa[q]))
				saMove(sa, p, p+1, n, ptr)
				sa[p] = emptyInt
			}
		}
	}

	if sa[p] == emptyInt {
		if p <= 1 || sa[p-1] != emptyInt {
			sa[p] = uint32(i)
		} else {
			sa[p] = neg32(1)
			sa[p-1] = uint32(i)
		}
	} else if sa[p] > emptyInt {
		n := int(neg32(sa[p]))
		if p-1 <= n || sa[p-n-1] != emptyInt {
			saMove(sa, p-n, p-n+1, n, ptr)
			sa[p-n] = uint32(i)
		} else {
			sa[p-n-1] = uint32(i)
			sa[p]--
		}
	}
}

// finishHead flattens every remaining MULTI run in the bucket heads into
// a contiguous block of indices followed by a single emptyInt, once
// phase L completes.
func finishHead(sa []uint32) {
	for p := 1; p < len(sa); p++ {
		if sa[p] > emptyInt {
			n := int(neg32(sa[p]))
			copy(sa[p:p+n], sa[p+1:p+n+1])
			sa[p+n] = emptyInt
		}
	}
}

// finishTail is finishHead's mirror for bucket tails, once phase S
// completes.
func finishTail(sa []uint32) {
	for p := len(sa) - 1; p >= 1; p-- {
		if sa[p] > emptyInt {
			n := int(neg32(sa[p]))
			copy(sa[p-n+1:p+1], sa[p-n:p])
			sa[p-n] = emptyInt
		}
	}
}

// saMove relocates sa[src:src+n] to sa[dst:dst+n] and, if the scan cursor
// ptr pointed inside the moved range, carries it along by the same
// offset.
func saMove(sa []uint32, src, dst, n int, ptr *int) {
	copy(sa[dst:dst+n], sa[src:src+n])

	if ptr != nil {
		p := *ptr
		if p >= src && p < src+n {
			if dst >= src {
				p += dst - src
			} else {
				p -= src - dst
			}
			*ptr = p
		}
	}
}
