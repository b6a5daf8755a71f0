// SPDX-License-Identifier: MIT
// Package: pose
//
// Purpose:
//   - Single source of truth for argument and matrix validation.
//   - Resolve each constructor's argument struct to exactly one call shape
//     before any matrix is built.
//
// Matrix checks run on the already-rounded input, so outcomes match what is
// later stored.

package pose

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigid/transforms"
)

// validatorErrorf wraps a sentinel with a validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateFinite rejects NaN and ±Inf values.
func validateFinite(tag string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(tag, ErrNaNInf)
		}
	}

	return nil
}

// validateShape ensures m is non-nil, exactly r×c and finite.
func validateShape(m mat.Matrix, r, c int) error {
	if m == nil {
		return validatorErrorf("validateShape", ErrNilMatrix)
	}
	mr, mc := m.Dims()
	if mr != r || mc != c {
		return fmt.Errorf("validateShape: got %dx%d, want %dx%d: %w", mr, mc, r, c, ErrBadShape)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := validateFinite("validateShape", m.At(i, j)); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateRotation checks that m is an n×n rotation: RᵀR = I and
// |det R − 1| ≤ eps. Determinant alone would accept shears such as
// [[1 1] [0 1]], so orthogonality is checked first.
func validateRotation(m mat.Matrix, n int, eps float64) error {
	if err := validateShape(m, n, n); err != nil {
		return err
	}

	var p mat.Dense
	p.Mul(m.T(), m)
	if !mat.EqualApprox(&p, transforms.Identity(n), eps) {
		return validatorErrorf("validateRotation: not orthogonal", ErrInvalidMatrix)
	}
	if math.Abs(mat.Det(m)-1) > eps {
		return validatorErrorf("validateRotation: det != 1", ErrInvalidMatrix)
	}

	return nil
}

// validateHomogeneous checks that m is an (n+1)×(n+1) rigid motion: last row
// exactly [0 … 0 1] and a valid n×n rotation block.
func validateHomogeneous(m mat.Matrix, n int, eps float64) error {
	if err := validateShape(m, n+1, n+1); err != nil {
		return err
	}
	for j := 0; j < n; j++ {
		if m.At(n, j) != 0 {
			return validatorErrorf("validateHomogeneous: last row", ErrInvalidMatrix)
		}
	}
	if m.At(n, n) != 1 {
		return validatorErrorf("validateHomogeneous: last row", ErrInvalidMatrix)
	}
	r, err := transforms.T2R(m)
	if err != nil {
		return validatorErrorf("validateHomogeneous", ErrBadShape)
	}

	return validateRotation(r, n, eps)
}

// IsValidSO2 reports whether m is a 2×2 rotation (orthogonal, det ≈ 1).
func IsValidSO2(m mat.Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	return validateRotation(m, 2, o.eps) == nil
}

// IsValidSE2 reports whether m is a 3×3 homogeneous planar rigid motion.
func IsValidSE2(m mat.Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	return validateHomogeneous(m, 2, o.eps) == nil
}

// IsValidSO3 reports whether m is a 3×3 rotation.
func IsValidSO3(m mat.Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	return validateRotation(m, 3, o.eps) == nil
}

// IsValidSE3 reports whether m is a 4×4 homogeneous spatial rigid motion.
func IsValidSE3(m mat.Matrix, opts ...Option) bool {
	o := gatherOptions(opts...)
	return validateHomogeneous(m, 3, o.eps) == nil
}

// ---------- Call-shape resolution ----------

// argMask records which fields of an Args struct were supplied.
type argMask uint16

const (
	argX argMask = 1 << iota
	argY
	argTheta
	argRot
	argMatrix
	argTransl
	argSO2
	argSE2
	argSO3
	argSE3
)

// callShape is one documented constructor signature.
type callShape uint8

const (
	shapeIdentity callShape = iota
	shapeTheta
	shapeMatrix
	shapeCopy
	shapeXY
	shapeXYTheta
	shapeXYRot
	shapeRot
	shapeFromSO2
	shapeFromSE2
	shapeFromSO3
	shapeFromSE3
	shapeTransl
	shapeRotTransl
)

// shapeTable maps exactly-supplied argument sets to call shapes. help lists
// the shapes in the order they are documented.
type shapeTable struct {
	kind   string
	shapes map[argMask]callShape
	help   []string
}

var so2Table = shapeTable{
	kind: "SO2",
	shapes: map[argMask]callShape{
		0:         shapeIdentity,
		argTheta:  shapeTheta,
		argMatrix: shapeMatrix,
		argSO2:    shapeCopy,
	},
	help: []string{
		"SO2()",
		"SO2(theta)",
		"SO2(theta list)",
		"SO2(theta, unit)",
		"SO2(theta list, unit)",
		"SO2(matrix 2x2)",
		"SO2(so2)",
	},
}

var se2Table = shapeTable{
	kind: "SE2",
	shapes: map[argMask]callShape{
		0:                      shapeIdentity,
		argX | argY:            shapeXY,
		argX | argY | argTheta: shapeXYTheta,
		argX | argY | argRot:   shapeXYRot,
		argRot:                 shapeRot,
		argSE2:                 shapeCopy,
		argSO2:                 shapeFromSO2,
		argTheta:               shapeTheta,
	},
	help: []string{
		"SE2()",
		"SE2(x, y)",
		"SE2(x, y, theta)",
		"SE2(x, y, rot)",
		"SE2(se2)",
		"SE2(so2)",
		"SE2(theta)",
		"SE2(rot)",
	},
}

var so3Table = shapeTable{
	kind: "SO3",
	shapes: map[argMask]callShape{
		0:         shapeIdentity,
		argMatrix: shapeMatrix,
		argSO3:    shapeCopy,
		argSE3:    shapeFromSE3,
	},
	help: []string{
		"SO3()",
		"SO3(matrix 3x3)",
		"SO3([matrix, matrix, ...])",
		"SO3(se3)",
		"SO3([se3, se3, ...])",
		"SO3(so3)",
		"SO3([so3, so3, ...])",
	},
}

var se3Table = shapeTable{
	kind: "SE3",
	shapes: map[argMask]callShape{
		0:                  shapeIdentity,
		argMatrix:          shapeMatrix,
		argTransl:          shapeTransl,
		argRot:             shapeRot,
		argRot | argTransl: shapeRotTransl,
		argSO3:             shapeFromSO3,
		argSE3:             shapeCopy,
	},
	help: []string{
		"SE3()",
		"SE3([matrix 4x4, ...])",
		"SE3(transl)",
		"SE3(rot)",
		"SE3(rot, transl)",
		"SE3(so3)",
		"SE3(se3)",
	},
}

// resolve returns the call shape for mask or ErrInvalidArgs naming every
// valid shape.
func (t shapeTable) resolve(mask argMask) (callShape, error) {
	if s, ok := t.shapes[mask]; ok {
		return s, nil
	}

	return 0, fmt.Errorf("%s: valid call shapes: %s: %w",
		t.kind, strings.Join(t.help, ", "), ErrInvalidArgs)
}

// invalidArgs reports a shape-level violation (e.g. an empty list) with the
// same message as an unmatched combination.
func (t shapeTable) invalidArgs(reason string) error {
	return fmt.Errorf("%s: %s; valid call shapes: %s: %w",
		t.kind, reason, strings.Join(t.help, ", "), ErrInvalidArgs)
}

// mark sets bit when present is true.
func (m *argMask) mark(present bool, bit argMask) {
	if present {
		*m |= bit
	}
}
