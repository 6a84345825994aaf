// SPDX-License-Identifier: MIT
//
// reshape.go — (n,2) <-> flat (2n,) conversions for edge-pair buffers, so
// callers crossing the host boundary with a single flat array (the shape
// spec.md §6 describes for foreign-language bindings) don't each hand-roll
// the reshape.

package buffer

// Rows2 reshapes a flat (2n,) buffer into n [2]T rows. len(flat) must
// equal 2*n; any other length reports ErrRowWidthMismatch.
func Rows2[T any](flat []T, n int) ([][2]T, error) {
	if len(flat) != 2*n {
		return nil, ErrRowWidthMismatch
	}

	rows := make([][2]T, n)
	for i := 0; i < n; i++ {
		rows[i] = [2]T{flat[2*i], flat[2*i+1]}
	}

	return rows, nil
}

// Flatten2 is the inverse of Rows2: it lays n [2]T rows out as a flat
// (2n,) buffer.
func Flatten2[T any](rows [][2]T) []T {
	flat := make([]T, 0, 2*len(rows))
	for _, row := range rows {
		flat = append(flat, row[0], row[1])
	}

	return flat
}
