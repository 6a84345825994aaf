// SPDX-License-Identifier: MIT

package buffer

import "errors"

// ErrLengthMismatch indicates two or more parallel slices that are meant to
// describe the same n rows disagree on length.
var ErrLengthMismatch = errors.New("buffer: parallel slice length mismatch")

// ErrRowWidthMismatch indicates a flat (n*k,) buffer's length is not n
// times the declared row width k.
var ErrRowWidthMismatch = errors.New("buffer: flat buffer length is not a multiple of row width")
