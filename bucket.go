// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

// emptyByte tags an unused slot in the level-0 workspace. Level 0 never
// needs to distinguish "empty" from "multiple pending", so a single
// sentinel suffices, unlike the level-≥1 engine in induce1.go.
const emptyByte uint32 = 0xffffffff

// bucket is the level-0 (byte alphabet) bucket table: a per-character
// prefix-sum of bounds, plus independent head (L-type) and tail (S-type)
// pointers. It costs 257+256+256 words (~3 KiB) and is rebuilt once per
// call to build.
type bucket struct {
	bounds [257]uint32 // bounds[c] is the first SA slot whose suffix starts with byte c
	ps     [256]uint32 // current L-insertion pointer per byte
	qs     [256]uint32 // current S-insertion pointer per byte
}

// newBucket computes bucket bounds for s in a single pass plus a prefix
// sum, then initializes both pointer sets from those bounds.
func newBucket(s []byte) *bucket {
	bkt := &bucket{}
	var sum uint32 = 1
	for _, c := range s {
		bkt.bounds[c]++
	}
	for i := range bkt.bounds {
		n := bkt.bounds[i]
		bkt.bounds[i] = sum
		sum += n
	}
	bkt.resetLPtrs()
	bkt.resetSPtrs()
	return bkt
}

// insertHead places i at the head of its character's bucket (L-type).
func (bkt *bucket) insertHead(s []byte, sa []uint32, i int) {
	c := s[i]
	sa[bkt.ps[c]] = uint32(i)
	bkt.ps[c]++
}

// insertTail places i at the tail of its character's bucket (S-type).
func (bkt *bucket) insertTail(s []byte, sa []uint32, i int) {
	c := s[i]
	bkt.qs[c]--
	sa[bkt.qs[c]] = uint32(i)
}

// clearTails overwrites every bucket's tail region (the LMS seeds placed
// there by sortLMSSuffixes0) with emptyByte, preserving the L-type
// entries already written to bucket heads, then resets the S-pointers.
func (bkt *bucket) clearTails(sa []uint32) {
	for c := 0; c < 256; c++ {
		t := bkt.tailPtr(byte(c))
		q := bkt.sPtr(byte(c))
		for i := q; i < t; i++ {
			sa[i] = emptyByte
		}
	}
	bkt.resetSPtrs()
}

func (bkt *bucket) tailPtr(c byte) uint32 { return bkt.bounds[int(c)+1] }
func (bkt *bucket) lPtr(c byte) uint32    { return bkt.ps[c] }
func (bkt *bucket) sPtr(c byte) uint32    { return bkt.qs[c] }

func (bkt *bucket) resetLPtrs() { copy(bkt.ps[:], bkt.bounds[:256]) }
func (bkt *bucket) resetSPtrs() { copy(bkt.qs[:], bkt.bounds[1:257]) }
