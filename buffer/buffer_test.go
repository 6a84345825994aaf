// SPDX-License-Identifier: MIT

package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spatialgraph/buffer"
)

func TestCheckIDs(t *testing.T) {
	require := require.New(t)

	require.NoError(buffer.CheckIDs([]int{1, 2, 3}, 3))
	require.ErrorIs(buffer.CheckIDs([]int{1, 2}, 3), buffer.ErrLengthMismatch)
}

func TestCheckPositions(t *testing.T) {
	require := require.New(t)

	ok := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	require.NoError(buffer.CheckPositions(ok, 3, 2))

	wrongRows := [][]float64{{0, 0}, {1, 1}}
	require.ErrorIs(buffer.CheckPositions(wrongRows, 3, 2), buffer.ErrLengthMismatch)

	wrongWidth := [][]float64{{0, 0}, {1, 1, 1}, {2, 2}}
	require.ErrorIs(buffer.CheckPositions(wrongWidth, 3, 2), buffer.ErrLengthMismatch)
}

func TestCheckPairs(t *testing.T) {
	require := require.New(t)

	pairs := [][2]int{{1, 2}, {2, 3}}
	require.NoError(buffer.CheckPairs(pairs, 2))
	require.ErrorIs(buffer.CheckPairs(pairs, 3), buffer.ErrLengthMismatch)
}

func TestCheckAttr(t *testing.T) {
	require := require.New(t)

	attrs := []map[string]any{{"a": 1}, {"b": 2}}
	require.NoError(buffer.CheckAttr(attrs, 2))
	require.ErrorIs(buffer.CheckAttr(attrs, 1), buffer.ErrLengthMismatch)
}

func TestRows2AndFlatten2_RoundTrip(t *testing.T) {
	require := require.New(t)

	flat := []int{1, 2, 3, 4, 5, 6}
	rows, err := buffer.Rows2(flat, 3)
	require.NoError(err)
	require.Equal([][2]int{{1, 2}, {3, 4}, {5, 6}}, rows)

	require.Equal(flat, buffer.Flatten2(rows))
}

func TestRows2_RejectsOddLength(t *testing.T) {
	require := require.New(t)

	_, err := buffer.Rows2([]int{1, 2, 3}, 2)
	require.ErrorIs(err, buffer.ErrRowWidthMismatch)
}

func TestFlatten2_EmptyInput(t *testing.T) {
	require := require.New(t)

	require.Empty(buffer.Flatten2[int](nil))
}
