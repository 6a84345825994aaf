// SPDX-License-Identifier: MIT

package dtype_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialgraph/dtype"
)

func TestParse_Scalars(t *testing.T) {
	require := require.New(t)

	cases := map[string]dtype.BaseKind{
		"float":   dtype.F32,
		"float32": dtype.F32,
		"double":  dtype.F64,
		"float64": dtype.F64,
		"int8":    dtype.I8,
		"int16":   dtype.I16,
		"int32":   dtype.I32,
		"int64":   dtype.I64,
		"int":     dtype.I64,
		"uint8":   dtype.U8,
		"uint16":  dtype.U16,
		"uint32":  dtype.U32,
		"uint64":  dtype.U64,
		"uint":    dtype.U64,
	}

	for s, want := range cases {
		d, err := dtype.Parse(s)
		require.NoError(err, "Parse(%q)", s)
		require.Equal(want, d.BaseKind(), "Parse(%q).BaseKind()", s)
		require.False(d.IsArray(), "Parse(%q).IsArray()", s)
	}
}

func TestParse_Arrays(t *testing.T) {
	require := require.New(t)

	d, err := dtype.Parse("float32[3]")
	require.NoError(err)
	require.True(d.IsArray())
	require.Equal(3, d.Size())
	require.Equal([]int{3}, d.Shape())

	d2, err := dtype.Parse("uint64[1]")
	require.NoError(err)
	require.Equal(1, d2.Size())
}

func TestParse_Malformed(t *testing.T) {
	require := require.New(t)

	bad := []string{
		"",
		"float16",          // unrecognised base
		"int32[",           // unbalanced
		"int32]",           // unbalanced
		"int32[0]",         // non-positive size
		"int32[-1]",        // non-positive size
		"int32[abc]",       // not an integer
		"int32[2][3]",      // nested array
		"int32[]",          // empty size
		"notarealtype[3]",  // unrecognised base with array suffix
	}
	for _, s := range bad {
		_, err := dtype.Parse(s)
		require.Error(err, "Parse(%q)", s)
		require.True(errors.Is(err, dtype.ErrMalformed), "Parse(%q) should be ErrMalformed", s)
	}
}

func TestMustParse_PanicsOnMalformed(t *testing.T) {
	require.Panics(t, func() {
		dtype.MustParse("nope")
	})
}

func TestDType_String(t *testing.T) {
	require := require.New(t)

	require.Equal("float64", dtype.MustParse("double").String())
	require.Equal("int32[3]", dtype.MustParse("int32[3]").String())
}

func TestDType_ElementSizeBytes(t *testing.T) {
	require := require.New(t)

	require.Equal(4, dtype.MustParse("float32").ElementSizeBytes())
	require.Equal(8, dtype.MustParse("int64[5]").ElementSizeBytes())
	require.Equal(1, dtype.MustParse("uint8").ElementSizeBytes())
}

func TestOf(t *testing.T) {
	require := require.New(t)

	d, ok := dtype.Of[float64]()
	require.True(ok)
	require.Equal(dtype.F64, d.BaseKind())

	d, ok = dtype.Of[int32]()
	require.True(ok)
	require.Equal(dtype.I32, d.BaseKind())

	_, ok = dtype.Of[string]()
	require.False(ok)
}

func TestParse_CacheConsistency(t *testing.T) {
	require := require.New(t)

	// Parsing the same string twice must yield equal, independent results.
	a, err := dtype.Parse("int32[4]")
	require.NoError(err)
	b, err := dtype.Parse("int32[4]")
	require.NoError(err)
	require.Equal(a, b)
}
