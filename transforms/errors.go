// SPDX-License-Identifier: MIT

package transforms

import "errors"

var (
	// ErrNonSquare signals that a square rotation block was required.
	ErrNonSquare = errors.New("transforms: matrix is not square")

	// ErrDimensionMismatch signals that a translation length does not fit
	// the rotation block, or a homogeneous matrix is too small to split.
	ErrDimensionMismatch = errors.New("transforms: dimension mismatch")
)
