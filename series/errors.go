// SPDX-License-Identifier: MIT

package series

import "errors"

var (
	// ErrEmpty indicates a source that holds no samples.
	ErrEmpty = errors.New("series: no samples")

	// ErrParse indicates a token that is not a number in a text source.
	ErrParse = errors.New("series: cannot parse sample")

	// ErrBadBinary indicates a binary source whose size is not a multiple of 8 bytes.
	ErrBadBinary = errors.New("series: binary size is not a multiple of 8")
)
