// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Parse / MustParse / Of — turn external DType strings into DType
// values, and Go type parameters into DType values.
//
// Parse never partially mutates anything on failure (pure function). Of[T]
// only recognises the ten fixed-width scalar kinds; no ArrayOf[T] exists
// since no caller needs to construct an array DType from a type parameter
// alone (see DESIGN.md).
package dtype

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// aliases maps every externally-visible base spelling (spec.md §6) to its
// BaseKind. "float"/"double" and the unsuffixed "int"/"uint" are the only
// aliases that do not equal their canonical String() spelling.
var aliases = map[string]BaseKind{
	"float":   F32,
	"float32": F32,
	"double":  F64,
	"float64": F64,
	"int8":    I8,
	"int16":   I16,
	"int32":   I32,
	"int64":   I64,
	"int":     I64,
	"uint8":   U8,
	"uint16":  U16,
	"uint32":  U32,
	"uint64":  U64,
	"uint":    U64,
}

// Parse parses an external DType string of the form
//
//	base ( '[' positive-integer ']' )?
//
// into a DType. It fails with ErrMalformed if base is not one of the
// recognised spellings, the array suffix is unbalanced or not a positive
// integer, or the array is nested (e.g. "int32[2][3]").
//
// Parse results are memoized (cache.go); repeated calls with the same
// string are O(1) after the first.
//
// Complexity: O(len(s)) on a cache miss, O(1) amortized.
func Parse(s string) (DType, error) {
	if cached, ok := parseCache.Get(s); ok {
		return cached, nil
	}

	d, err := parseUncached(s)
	if err != nil {
		return DType{}, err
	}

	parseCache.Add(s, d)

	return d, nil
}

// MustParse is Parse, but panics on a malformed string. Intended for
// package-level attribute-spec literals where a malformed DType is a
// programmer error, not a runtime condition to recover from.
func MustParse(s string) DType {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("dtype: MustParse(%q): %v", s, err))
	}

	return d
}

func parseUncached(s string) (DType, error) {
	base := s
	size := 0

	if open := strings.IndexByte(s, '['); open != -1 {
		if !strings.HasSuffix(s, "]") {
			return DType{}, fmt.Errorf("%w: %q: unbalanced '['", ErrMalformed, s)
		}
		base = s[:open]
		digits := s[open+1 : len(s)-1]
		if digits == "" {
			return DType{}, fmt.Errorf("%w: %q: empty array size", ErrMalformed, s)
		}
		if strings.ContainsAny(digits, "[]") {
			return DType{}, fmt.Errorf("%w: %q: nested arrays are not allowed", ErrMalformed, s)
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 {
			return DType{}, fmt.Errorf("%w: %q: array size must be a positive integer", ErrMalformed, s)
		}
		size = n
	}

	kind, ok := aliases[base]
	if !ok {
		return DType{}, fmt.Errorf("%w: %q: unrecognised base type %q", ErrMalformed, s, base)
	}

	return DType{base: kind, size: size}, nil
}

// Of returns the scalar DType matching the Go type parameter T, and false if
// T is not one of the ten recognised fixed-width numeric kinds.
func Of[T any]() (DType, bool) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	for kind, grt := range goTypes {
		if grt == rt {
			return DType{base: kind}, true
		}
	}

	return DType{}, false
}
