// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: BaseKind enum and the DType value type (immutable, comparable).

package dtype

import "reflect"

// BaseKind identifies one of the fixed-width numeric element kinds a DType
// can describe. The zero value is not a valid kind; use Parse to obtain one.
type BaseKind uint8

// Recognised base kinds, in the order spec.md §6 lists the external syntax.
const (
	invalidKind BaseKind = iota
	F32
	F64
	I8
	I16
	I32
	I64
	U8
	U16
	U32
	U64
)

// baseNames maps each BaseKind to its canonical external spelling, used by
// DType.String and error messages.
var baseNames = map[BaseKind]string{
	F32: "float32",
	F64: "float64",
	I8:  "int8",
	I16: "int16",
	I32: "int32",
	I64: "int64",
	U8:  "uint8",
	U16: "uint16",
	U32: "uint32",
	U64: "uint64",
}

// elementSizes gives the in-memory size in bytes of one element of the base
// kind, independent of any array length.
var elementSizes = map[BaseKind]int{
	F32: 4,
	F64: 8,
	I8:  1,
	I16: 2,
	I32: 4,
	I64: 8,
	U8:  1,
	U16: 2,
	U32: 4,
	U64: 8,
}

// goTypes maps each BaseKind to the reflect.Type of its Go representation;
// GoType and Of read it.
var goTypes = map[BaseKind]reflect.Type{
	F32: reflect.TypeOf(float32(0)),
	F64: reflect.TypeOf(float64(0)),
	I8:  reflect.TypeOf(int8(0)),
	I16: reflect.TypeOf(int16(0)),
	I32: reflect.TypeOf(int32(0)),
	I64: reflect.TypeOf(int64(0)),
	U8:  reflect.TypeOf(uint8(0)),
	U16: reflect.TypeOf(uint16(0)),
	U32: reflect.TypeOf(uint32(0)),
	U64: reflect.TypeOf(uint64(0)),
}

// DType describes a scalar element type or a fixed-length array of a scalar
// element type. The zero value is not meaningful; obtain a DType via Parse
// or MustParse.
//
// DType is a small value type: copy it freely, compare it with ==.
type DType struct {
	base BaseKind
	size int // 0 means scalar (not an array); Parse never stores 0 for an array.
}

// BaseKind returns the scalar base kind of d, regardless of whether d is an
// array.
func (d DType) BaseKind() BaseKind { return d.base }

// IsArray reports whether d describes a fixed-length array rather than a
// bare scalar.
func (d DType) IsArray() bool { return d.size > 0 }

// Size returns the array length, or 0 if d is a scalar.
func (d DType) Size() int { return d.size }

// Shape returns d's shape: nil for a scalar, []int{size} for an array.
// Matches the shape vocabulary of spec.md §3 ("DType... shape()").
func (d DType) Shape() []int {
	if !d.IsArray() {
		return nil
	}

	return []int{d.size}
}

// ElementSizeBytes returns the in-memory size, in bytes, of a single scalar
// element of d's base kind (not multiplied by Size for arrays).
func (d DType) ElementSizeBytes() int {
	return elementSizes[d.base]
}

// GoType returns the reflect.Type of the Go scalar type backing d's base
// kind.
func (d DType) GoType() reflect.Type {
	return goTypes[d.base]
}

// String reproduces the canonical external syntax for d, e.g. "float64" or
// "int32[3]".
func (d DType) String() string {
	name := baseNames[d.base]
	if !d.IsArray() {
		return name
	}

	return name + "[" + itoa(d.size) + "]"
}

// itoa formats n in base 10, for String's array-size suffix.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	if neg {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}

	return string(buf[i:])
}
