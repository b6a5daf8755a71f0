// SPDX-License-Identifier: MIT
// Package pose: sentinel error set.
// Every public constructor and operation returns one of these sentinels,
// usually wrapped with the operation name; callers match with errors.Is.
// User input never causes a panic.

package pose

import "errors"

// NOTE ON WRAPPING
// ----------------
// Messages are prefixed with "pose: ..." for grepping. Boundaries wrap with
// fmt.Errorf("Op: %w", ErrX) so errors.Is keeps working. ErrInvalidArgs is
// additionally wrapped with the list of valid call shapes for the constructor.

var (
	// ErrInvalidArgs is returned when a constructor's argument set matches none
	// of its documented call shapes.
	ErrInvalidArgs = errors.New("pose: invalid argument combination")

	// ErrInvalidUnit is returned for an angle unit other than "rad" or "deg".
	ErrInvalidUnit = errors.New("pose: unit must be \"rad\" or \"deg\"")

	// ErrInvalidMatrix is returned when a supplied matrix violates the group
	// constraint (orthogonality, unit determinant, homogeneous last row).
	ErrInvalidMatrix = errors.New("pose: matrix violates group constraint")

	// ErrBadShape is returned when a supplied matrix has the wrong dimensions.
	ErrBadShape = errors.New("pose: invalid matrix shape")

	// ErrNilMatrix is returned when a nil matrix is supplied.
	ErrNilMatrix = errors.New("pose: nil matrix")

	// ErrShapeMismatch is returned when two collections combined by Mul or
	// Interp have incompatible lengths.
	ErrShapeMismatch = errors.New("pose: collection length mismatch")

	// ErrLengthMismatch is returned when list arguments of one constructor
	// call have different lengths.
	ErrLengthMismatch = errors.New("pose: argument list length mismatch")

	// ErrOutOfRange is returned by element access with a bad index.
	ErrOutOfRange = errors.New("pose: index out of range")

	// ErrInterpParam is returned when the interpolation parameter is outside [0,1].
	ErrInterpParam = errors.New("pose: interpolation parameter outside [0,1]")

	// ErrNotSingle is returned by scalar accessors on multi-element values.
	ErrNotSingle = errors.New("pose: value holds more than one element")

	// ErrEmptyPose is returned when an empty (zero) pose value is used where a
	// constructed one is required.
	ErrEmptyPose = errors.New("pose: empty pose value")

	// ErrNaNInf is returned when an angle, coordinate or matrix entry is NaN or ±Inf.
	ErrNaNInf = errors.New("pose: NaN or Inf encountered")

	// ErrNotImplemented marks group operations that are not provided:
	// logarithm, eigen decomposition, the SE2→SE3 lift and SE3 interpolation.
	ErrNotImplemented = errors.New("pose: operation not implemented")
)
