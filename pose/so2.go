// SPDX-License-Identifier: MIT

package pose

import (
	"fmt"
	"iter"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigid/transforms"
)

// SO2 is an ordered collection of planar rotations, each a rounded 2×2
// orthogonal matrix with determinant 1. The zero value is empty and is
// rejected by operations that need elements.
type SO2 struct {
	c    collection
	unit Unit
}

// SO2Args selects one SO2 call shape. Supply at most one of Theta, Matrix
// or From; supplying none yields the identity.
type SO2Args struct {
	Theta  []float64  // one element per angle, in Unit
	Unit   Unit       // "rad" (default) or "deg"
	Matrix mat.Matrix // validated 2×2 rotation, accepted verbatim after rounding
	From   *SO2       // copied element by element
}

// IdentitySO2 returns a single identity rotation.
func IdentitySO2() SO2 {
	b := newBuilder(2, 2, 1)
	b.append(transforms.Identity(2))

	return SO2{c: b.build(), unit: Rad}
}

// NewSO2 builds an SO2 from exactly one call shape of a.
//
// Errors: ErrInvalidArgs, ErrInvalidUnit, ErrNaNInf, ErrBadShape,
// ErrNilMatrix, ErrInvalidMatrix, ErrEmptyPose.
func NewSO2(a SO2Args, opts ...Option) (SO2, error) {
	o := gatherOptions(opts...)
	unit, err := a.Unit.normalize()
	if err != nil {
		return SO2{}, fmt.Errorf("NewSO2: %w", err)
	}

	var mask argMask
	mask.mark(a.Theta != nil, argTheta)
	mask.mark(a.Matrix != nil, argMatrix)
	mask.mark(a.From != nil, argSO2)
	shape, err := so2Table.resolve(mask)
	if err != nil {
		return SO2{}, fmt.Errorf("NewSO2: %w", err)
	}

	switch shape {
	case shapeTheta:
		if len(a.Theta) == 0 {
			return SO2{}, fmt.Errorf("NewSO2: %w", so2Table.invalidArgs("empty theta list"))
		}
		if err = validateFinite("NewSO2: theta", a.Theta...); err != nil {
			return SO2{}, err
		}
		b := newBuilder(2, 2, len(a.Theta))
		for _, th := range a.Theta {
			b.append(transforms.Rot2(unit.toRad(th)))
		}
		return SO2{c: b.build(), unit: unit}, nil

	case shapeMatrix:
		r := transforms.Round(a.Matrix, Decimals)
		if err = validateRotation(r, 2, o.eps); err != nil {
			return SO2{}, fmt.Errorf("NewSO2: %w", err)
		}
		b := newBuilder(2, 2, 1)
		b.append(r)
		return SO2{c: b.build(), unit: unit}, nil

	case shapeCopy:
		if a.From.Len() == 0 {
			return SO2{}, fmt.Errorf("NewSO2: %w", ErrEmptyPose)
		}
		return SO2{c: a.From.c.clone(), unit: unit}, nil

	default:
		id := IdentitySO2()
		id.unit = unit
		return id, nil
	}
}

// SO2FromAngle builds a single rotation by theta in unit.
func SO2FromAngle(theta float64, unit Unit) (SO2, error) {
	return NewSO2(SO2Args{Theta: []float64{theta}, Unit: unit})
}

// SO2FromAngles builds one rotation per angle in thetas.
func SO2FromAngles(thetas []float64, unit Unit) (SO2, error) {
	if thetas == nil {
		thetas = []float64{}
	}

	return NewSO2(SO2Args{Theta: thetas, Unit: unit})
}

// SO2FromMatrix accepts a 2×2 rotation after rounding and validation.
func SO2FromMatrix(m mat.Matrix, opts ...Option) (SO2, error) {
	if m == nil {
		return SO2{}, fmt.Errorf("SO2FromMatrix: %w", ErrNilMatrix)
	}

	return NewSO2(SO2Args{Matrix: m}, opts...)
}

// RandSO2 returns a rotation with angle drawn uniformly from [0°, 360°).
// The source is configurable with WithRand.
func RandSO2(opts ...Option) SO2 {
	o := gatherOptions(opts...)
	b := newBuilder(2, 2, 1)
	b.append(transforms.Rot2(transforms.DegToRad(o.uniform() * 360)))

	return SO2{c: b.build(), unit: Rad}
}

// Len returns the number of rotations.
func (p SO2) Len() int { return p.c.Len() }

// At returns a copy of rotation i, or ErrOutOfRange.
func (p SO2) At(i int) (*mat.Dense, error) {
	m, err := p.c.at(i)
	if err != nil {
		return nil, fmt.Errorf("SO2.%w", err)
	}

	return m, nil
}

// All iterates over copies of the rotations in order.
func (p SO2) All() iter.Seq2[int, mat.Matrix] { return p.c.all() }

// Matrices returns copies of all rotations.
func (p SO2) Matrices() []*mat.Dense { return p.c.copies() }

// Unit reports the unit the value was constructed with. Informational only:
// every accessor returns radians unless it takes a unit argument.
func (p SO2) Unit() Unit { return p.unit }

// Angles returns the angle in radians of every element, computed
// independently as atan2(m10, m00). The result always has Len() entries.
func (p SO2) Angles() []float64 {
	out := make([]float64, len(p.c.mats))
	for i, m := range p.c.mats {
		out[i] = math.Atan2(m.At(1, 0), m.At(0, 0))
	}

	return out
}

// Angle returns the angle in radians of a single-element SO2.
// Errors: ErrEmptyPose or ErrNotSingle when Len() != 1.
func (p SO2) Angle() (float64, error) {
	switch p.Len() {
	case 0:
		return 0, fmt.Errorf("SO2.Angle: %w", ErrEmptyPose)
	case 1:
		return p.Angles()[0], nil
	default:
		return 0, fmt.Errorf("SO2.Angle: len %d: %w", p.Len(), ErrNotSingle)
	}
}

// Det returns the determinant of every element.
func (p SO2) Det() []float64 { return p.c.dets() }

// Inv returns the inverse rotations. For orthogonal matrices the transpose is
// the inverse.
func (p SO2) Inv() SO2 {
	b := newBuilder(2, 2, p.Len())
	for _, m := range p.c.mats {
		b.append(m.T())
	}

	return SO2{c: b.build(), unit: p.unit}
}

// Mul composes p with o: element-wise products for equal lengths, or a
// length-1 operand broadcast against the other.
//
// Errors: ErrShapeMismatch, ErrEmptyPose.
func (p SO2) Mul(o SO2) (SO2, error) {
	c, err := p.c.compose(o.c)
	if err != nil {
		return SO2{}, fmt.Errorf("SO2.Mul: %w", err)
	}

	return SO2{c: c, unit: p.unit}, nil
}

// Equal reports element-wise equality after rounding.
func (p SO2) Equal(o SO2) bool { return p.c.equal(o.c) }

// EqualApprox reports element-wise equality within tol.
func (p SO2) EqualApprox(o SO2, tol float64) bool { return p.c.equalApprox(o.c, tol) }

// Interp linearly interpolates the angle of each element from p to o:
// θ = θp + s·(θo − θp). Angles come from atan2 and lie in (−π, π]; the
// difference is not wrapped, so interpolating from 170° to −170° sweeps
// through 0° rather than through 180°.
//
// The endpoints are rebuilt from the recovered angles, so p.Interp(o, 0)
// matches p and p.Interp(o, 1) matches o under EqualApprox with
// DefaultEpsilon, not always under Equal.
//
// Errors: ErrInterpParam when s is outside [0,1] or NaN; ErrEmptyPose;
// ErrShapeMismatch when lengths differ.
func (p SO2) Interp(o SO2, s float64) (SO2, error) {
	thetas, err := interpAngles(p, o, s)
	if err != nil {
		return SO2{}, fmt.Errorf("SO2.Interp: %w", err)
	}
	b := newBuilder(2, 2, len(thetas))
	for _, th := range thetas {
		b.append(transforms.Rot2(th))
	}

	return SO2{c: b.build(), unit: p.unit}, nil
}

// interpAngles validates an interpolation request and returns the
// interpolated angles in radians.
func interpAngles(p, o SO2, s float64) ([]float64, error) {
	if math.IsNaN(s) || s < 0 || s > 1 {
		return nil, fmt.Errorf("s=%g: %w", s, ErrInterpParam)
	}
	if p.Len() == 0 || o.Len() == 0 {
		return nil, ErrEmptyPose
	}
	if p.Len() != o.Len() {
		return nil, fmt.Errorf("lengths %d and %d: %w", p.Len(), o.Len(), ErrShapeMismatch)
	}
	a, b := p.Angles(), o.Angles()
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + s*(b[i]-a[i])
	}

	return out, nil
}

// SE2 lifts every rotation into a rigid motion with zero translation.
func (p SO2) SE2() SE2 {
	b := newSE2Builder(p.Len())
	for _, m := range p.c.mats {
		T, err := transforms.R2T(m)
		if err != nil {
			panic(fmt.Sprintf("pose: SO2.SE2: %v", err))
		}
		b.addHomogeneous(T)
	}

	return b.build(p.unit)
}

// TMatrix returns, per element, the 3×3 homogeneous matrix with zero
// translation.
func (p SO2) TMatrix() []*mat.Dense {
	return p.SE2().c.copies()
}

// New returns an independent copy.
func (p SO2) New() SO2 {
	return SO2{c: p.c.clone(), unit: p.unit}
}

// Log is the group logarithm. Not provided.
func (p SO2) Log() ([]*mat.Dense, error) {
	return nil, fmt.Errorf("SO2.Log: %w", ErrNotImplemented)
}

// Eig is the per-element eigen decomposition. Not provided.
func (p SO2) Eig() ([]*mat.Eigen, error) {
	return nil, fmt.Errorf("SO2.Eig: %w", ErrNotImplemented)
}

// String renders every element.
func (p SO2) String() string { return p.c.format("SO2") }
