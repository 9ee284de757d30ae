// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

import (
	"testing"
)

// FuzzBuild checks the construction engine's defining property: build(s,
// sa) always produces the same result as sorting every suffix of s
// directly, for any byte string at all.
func FuzzBuild(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"aaaaaaaaaaaaaaaaaaaaa",
		"banana",
		"mississippi",
		"mmississiippii",
		"abracadabra",
		"splendid splendor",
		string([]byte{0, 0, 0, 1, 1, 1}),
		string([]byte{0, 255, 0, 255}),
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, s []byte) {
		sa := make([]uint32, len(s)+1)
		build(s, sa)

		want := makeSA(s)
		if len(sa) != len(want) {
			t.Fatalf("length mismatch: got %d, want %d", len(sa), len(want))
		}
		for i := range sa {
			if sa[i] != want[i] {
				t.Fatalf("sa[%d] = %d, want %d (s=%q)", i, sa[i], want[i], s)
			}
		}
	})
}

// FuzzSearch checks that LocateAll's result always consists exactly of
// the occurrences of pattern in the indexed text, regardless of pattern
// content.
func FuzzSearch(f *testing.F) {
	f.Add([]byte("mississippi"), []byte("ss"))
	f.Add([]byte("banana"), []byte("ana"))
	f.Add([]byte(""), []byte("a"))
	f.Add([]byte("aaaa"), []byte(""))

	f.Fuzz(func(t *testing.T, text, pattern []byte) {
		a := New(text)
		got := a.LocateAllSortedByPosition(pattern)

		var want []uint32
		for i := 0; i+len(pattern) <= len(text); i++ {
			if string(text[i:i+len(pattern)]) == string(pattern) {
				want = append(want, uint32(i))
			}
		}

		if len(got) != len(want) {
			t.Fatalf("LocateAll(%q) in %q: got %v, want %v", pattern, text, got, want)
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("LocateAll(%q) in %q: got %v, want %v", pattern, text, got, want)
			}
		}

		if a.Contains(pattern) != (len(want) > 0) {
			t.Fatalf("Contains(%q) in %q: got %v, want %v", pattern, text, a.Contains(pattern), len(want) > 0)
		}
	})
}
