// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package saca

import "errors"

// ErrTooLong is the value New and Reset panic with when a byte string
// exceeds MaxLength.
var ErrTooLong = errors.New("saca: string exceeds MaxLength")

// ErrBadMagic is returned by Load/LoadBytes when the packed envelope does
// not start with the "SA4x" magic.
var ErrBadMagic = errors.New("saca: bad packed suffix array magic")

// ErrTruncated is returned by Load/LoadBytes when the packed envelope ends
// before its declared length is satisfied.
var ErrTruncated = errors.New("saca: truncated packed suffix array")

// ErrMismatch is returned by Load/LoadBytes when the loaded suffix array
// does not sort the given byte string.
var ErrMismatch = errors.New("saca: suffix array does not match string")
