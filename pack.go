// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

import (
	"bytes"
	"encoding/binary"
	"io"
	stdbits "math/bits"

	"github.com/dsnet/golib/bits"
)

// magicCSA4 is "SA4x" (Compressed Suffix Array, fixed-width packing) read
// as a little-endian uint32.
const magicCSA4 uint32 = 0x78344153

// saBits returns the number of bits needed to hold any value an SA of the
// given entry count can contain (0..length-1).
func saBits(length int) int {
	if length <= 1 {
		return 0
	}
	return stdbits.Len32(uint32(length - 1))
}

func numPadBits(n int) int {
	return (8 - n%8) % 8
}

// packedBytes builds the wire format: an 8-byte header (magic, entry
// count) followed by a fixed-width bit-packed payload, one
// saBits(len(a.sa))-bit field per SA entry, zero-padded to a byte
// boundary. Each entry is written serially through a bit buffer rather
// than a SIMD block codec (see DESIGN.md for the tradeoff).
func (a *SuffixArray) packedBytes() ([]byte, error) {
	n := len(a.sa)
	width := saBits(n)

	var bb bits.Buffer
	for _, v := range a.sa {
		if _, err := bb.WriteBits(uint(v), width); err != nil {
			return nil, err
		}
	}
	if pad := numPadBits(n * width); pad > 0 {
		if _, err := bb.WriteBits(0, pad); err != nil {
			return nil, err
		}
	}

	out := make([]byte, 8, 8+len(bb.Bytes()))
	binary.LittleEndian.PutUint32(out[0:4], magicCSA4)
	binary.LittleEndian.PutUint32(out[4:8], uint32(n))
	return append(out, bb.Bytes()...), nil
}

// Dump writes the suffix array, packed, to w. The indexed string is not
// written; the caller must supply it again to Load.
func (a *SuffixArray) Dump(w io.Writer) error {
	b, err := a.packedBytes()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// DumpBytes is Dump into a freshly allocated byte slice.
func (a *SuffixArray) DumpBytes() ([]byte, error) {
	return a.packedBytes()
}

// unpackSA parses the wire format written by packedBytes, without
// checking that sa agrees with s.
func unpackSA(s []byte, data []byte) (*SuffixArray, error) {
	if len(data) < 8 {
		return nil, ErrTruncated
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != magicCSA4 {
		return nil, ErrBadMagic
	}
	n := int(binary.LittleEndian.Uint32(data[4:8]))
	width := saBits(n)

	payload := data[8:]
	if needed := (n*width + 7) / 8; len(payload) < needed {
		return nil, ErrTruncated
	}

	var br bits.Reader
	br.Reset(bytes.NewReader(payload))
	sa := make([]uint32, n)
	for i := range sa {
		v, _, err := br.ReadBits(width)
		if err != nil {
			if err == io.EOF {
				err = ErrTruncated
			}
			return nil, err
		}
		sa[i] = uint32(v)
	}
	return &SuffixArray{s: s, sa: sa}, nil
}

// Load reads a packed suffix array written by Dump, pairs it with s, and
// rejects it with ErrMismatch if it does not sort s.
func Load(s []byte, r io.Reader) (*SuffixArray, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return LoadBytes(s, data)
}

// LoadBytes is Load from an in-memory buffer instead of an io.Reader.
func LoadBytes(s []byte, b []byte) (*SuffixArray, error) {
	a, err := unpackSA(s, b)
	if err != nil {
		return nil, err
	}
	if !a.checkIntegrity() {
		return nil, ErrMismatch
	}
	return a, nil
}

// UncheckedLoad is Load without the integrity check: callers that trust
// the source of a dump (e.g. their own previous Dump of the same s) can
// skip the O(n) verification pass.
func UncheckedLoad(s []byte, r io.Reader) (*SuffixArray, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return UncheckedLoadBytes(s, data)
}

// UncheckedLoadBytes is UncheckedLoad from an in-memory buffer.
func UncheckedLoadBytes(s []byte, b []byte) (*SuffixArray, error) {
	return unpackSA(s, b)
}
