// SPDX-License-Identifier: MIT

package pose

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigid/transforms"
)

// SO3 is an ordered collection of spatial rotations, each a rounded 3×3
// orthogonal matrix with determinant 1.
type SO3 struct {
	c collection
}

// SO3Args selects one SO3 call shape. At most one list may be supplied, so
// a single call never mixes element kinds; none yields the identity.
type SO3Args struct {
	Matrices []mat.Matrix // validated 3×3 rotations
	SO3      []SO3        // concatenated copies
	SE3      []SE3        // downcast: last row and column dropped
}

// IdentitySO3 returns a single identity rotation.
func IdentitySO3() SO3 {
	b := newBuilder(3, 3, 1)
	b.append(transforms.Identity(3))

	return SO3{c: b.build()}
}

// NewSO3 builds an SO3 from exactly one call shape of a.
//
// Errors: ErrInvalidArgs, ErrBadShape, ErrNilMatrix, ErrNaNInf,
// ErrInvalidMatrix, ErrEmptyPose.
func NewSO3(a SO3Args, opts ...Option) (SO3, error) {
	o := gatherOptions(opts...)

	var mask argMask
	mask.mark(a.Matrices != nil, argMatrix)
	mask.mark(a.SO3 != nil, argSO3)
	mask.mark(a.SE3 != nil, argSE3)
	shape, err := so3Table.resolve(mask)
	if err != nil {
		return SO3{}, fmt.Errorf("NewSO3: %w", err)
	}

	switch shape {
	case shapeMatrix:
		if len(a.Matrices) == 0 {
			return SO3{}, fmt.Errorf("NewSO3: %w", so3Table.invalidArgs("empty matrix list"))
		}
		b := newBuilder(3, 3, len(a.Matrices))
		for i, m := range a.Matrices {
			if m == nil {
				return SO3{}, fmt.Errorf("NewSO3: matrix[%d]: %w", i, ErrNilMatrix)
			}
			r := transforms.Round(m, Decimals)
			if err = validateRotation(r, 3, o.eps); err != nil {
				return SO3{}, fmt.Errorf("NewSO3: matrix[%d]: %w", i, err)
			}
			b.append(r)
		}
		return SO3{c: b.build()}, nil

	case shapeCopy:
		if len(a.SO3) == 0 {
			return SO3{}, fmt.Errorf("NewSO3: %w", so3Table.invalidArgs("empty so3 list"))
		}
		b := newBuilder(3, 3, len(a.SO3))
		for i, p := range a.SO3 {
			if p.Len() == 0 {
				return SO3{}, fmt.Errorf("NewSO3: so3[%d]: %w", i, ErrEmptyPose)
			}
			for _, m := range p.c.mats {
				b.append(m)
			}
		}
		return SO3{c: b.build()}, nil

	case shapeFromSE3:
		if len(a.SE3) == 0 {
			return SO3{}, fmt.Errorf("NewSO3: %w", so3Table.invalidArgs("empty se3 list"))
		}
		b := newBuilder(3, 3, len(a.SE3))
		for i, p := range a.SE3 {
			if p.Len() == 0 {
				return SO3{}, fmt.Errorf("NewSO3: se3[%d]: %w", i, ErrEmptyPose)
			}
			for _, m := range p.c.mats {
				b.append(m.Slice(0, 3, 0, 3))
			}
		}
		return SO3{c: b.build()}, nil

	default:
		return IdentitySO3(), nil
	}
}

// axisRotation builds a single-element SO3 with an elementary rotation.
func axisRotation(op string, rot func(float64) *mat.Dense, theta float64, unit Unit) (SO3, error) {
	u, err := unit.normalize()
	if err != nil {
		return SO3{}, fmt.Errorf("%s: %w", op, err)
	}
	if err = validateFinite(op, theta); err != nil {
		return SO3{}, err
	}
	b := newBuilder(3, 3, 1)
	b.append(rot(u.toRad(theta)))

	return SO3{c: b.build()}, nil
}

// Rx returns the rotation by theta about the x axis.
func Rx(theta float64, unit Unit) (SO3, error) {
	return axisRotation("Rx", transforms.RotX, theta, unit)
}

// Ry returns the rotation by theta about the y axis.
func Ry(theta float64, unit Unit) (SO3, error) {
	return axisRotation("Ry", transforms.RotY, theta, unit)
}

// Rz returns the rotation by theta about the z axis.
func Rz(theta float64, unit Unit) (SO3, error) {
	return axisRotation("Rz", transforms.RotZ, theta, unit)
}

// RandSO3 picks one of the x, y, z axes uniformly, then an angle uniformly
// in [0°, 360°) about it.
//
// Notes:
//   - This samples single-axis rotations only; it is NOT uniform over the
//     rotation group. Callers needing Haar-uniform rotations must sample
//     elsewhere.
func RandSO3(opts ...Option) SO3 {
	o := gatherOptions(opts...)
	axes := [...]func(float64) *mat.Dense{transforms.RotX, transforms.RotY, transforms.RotZ}
	rot := axes[o.intn(len(axes))]
	b := newBuilder(3, 3, 1)
	b.append(rot(transforms.DegToRad(o.uniform() * 360)))

	return SO3{c: b.build()}
}

// Len returns the number of rotations.
func (p SO3) Len() int { return p.c.Len() }

// At returns a copy of rotation i, or ErrOutOfRange.
func (p SO3) At(i int) (*mat.Dense, error) {
	m, err := p.c.at(i)
	if err != nil {
		return nil, fmt.Errorf("SO3.%w", err)
	}

	return m, nil
}

// All iterates over copies of the rotations in order.
func (p SO3) All() iter.Seq2[int, mat.Matrix] { return p.c.all() }

// Matrices returns copies of all rotations.
func (p SO3) Matrices() []*mat.Dense { return p.c.copies() }

// Det returns the determinant of every element.
func (p SO3) Det() []float64 { return p.c.dets() }

// Inv returns the transposed rotations.
func (p SO3) Inv() SO3 {
	b := newBuilder(3, 3, p.Len())
	for _, m := range p.c.mats {
		b.append(m.T())
	}

	return SO3{c: b.build()}
}

// Mul composes p with o using the collection broadcast rules.
func (p SO3) Mul(o SO3) (SO3, error) {
	c, err := p.c.compose(o.c)
	if err != nil {
		return SO3{}, fmt.Errorf("SO3.Mul: %w", err)
	}

	return SO3{c: c}, nil
}

// Equal reports element-wise equality after rounding.
func (p SO3) Equal(o SO3) bool { return p.c.equal(o.c) }

// EqualApprox reports element-wise equality within tol.
func (p SO3) EqualApprox(o SO3, tol float64) bool { return p.c.equalApprox(o.c, tol) }

// New returns an independent copy.
func (p SO3) New() SO3 { return SO3{c: p.c.clone()} }

// SE3 lifts every rotation into a rigid motion with zero translation.
func (p SO3) SE3() SE3 {
	b := newSE3Builder(p.Len())
	for _, m := range p.c.mats {
		T, err := transforms.R2T(m)
		if err != nil {
			panic(fmt.Sprintf("pose: SO3.SE3: %v", err))
		}
		b.addHomogeneous(T)
	}

	return b.build()
}

// TMatrix returns, per element, the 4×4 homogeneous matrix with zero
// translation.
func (p SO3) TMatrix() []*mat.Dense {
	return p.SE3().c.copies()
}

// Log is the group logarithm. Not provided.
func (p SO3) Log() ([]*mat.Dense, error) {
	return nil, fmt.Errorf("SO3.Log: %w", ErrNotImplemented)
}

// String renders every element.
func (p SO3) String() string { return p.c.format("SO3") }
