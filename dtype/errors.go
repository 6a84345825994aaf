// SPDX-License-Identifier: MIT

package dtype

import "errors"

// ErrMalformed indicates a DType string failed to parse: the base kind was
// not recognised, the array suffix was unbalanced, the size was not a
// positive integer, or the array was nested.
var ErrMalformed = errors.New("dtype: malformed dtype string")
