// SPDX-License-Identifier: MIT
//
// Package dtype parses and describes the scalar and fixed-length-array
// element types used throughout spatialgraph for vertex ids, coordinates,
// and attribute columns.
//
// A DType is the pair (base, size), where base is one of the fixed-width
// numeric kinds (f32, f64, i8..i64, u8..u64) and size, when present, is the
// length of a fixed array of that base type. The external syntax accepted by
// Parse is:
//
//	base ( '[' positive-integer ']' )?
//
// with base one of:
//
//	float | float32 | float64 | double |
//	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 |
//	int | uint
//
// "int"/"uint" without an explicit width default to 64-bit signed/unsigned.
// Nested arrays (e.g. "int32[3][4]") are rejected as malformed, as is any
// base not in the list above and any non-positive size.
//
// Parse results are cached by input string (see cache.go): the grammar is
// trivial but DType strings are typically parsed once per attribute
// declaration and then consulted on every bulk read/write, so memoizing
// avoids re-matching the same handful of strings over and over.
package dtype
