// SPDX-License-Identifier: MIT

package pose

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/rigid/transforms"
)

// SE3 is an ordered collection of spatial rigid motions, each the rounded
// 4×4 homogeneous matrix [[R, t], [0 0 0 1]]. Like SE2 it holds its rotation
// part as an SO3 value and its translations as a parallel slice.
type SE3 struct {
	c      collection // 4×4 homogeneous
	rot    SO3        // 3×3 blocks of c
	transl []r3.Vec   // last column of c
}

// SE3Args selects one SE3 call shape:
//
//	()              identity
//	(Matrices)      validated 4×4 homogeneous matrices
//	(Transl)        pure translations
//	(Rot)           rotations, zero translation
//	(Rot, Transl)   len(Rot) == len(Transl), or len(Rot) == 1 broadcast
//	(SO3)           lift with zero translation
//	(SE3)           copy
type SE3Args struct {
	Matrices []mat.Matrix
	Rot      []mat.Matrix // 3×3 rotations, validated
	Transl   []r3.Vec
	SO3      *SO3
	SE3      *SE3
}

// se3Builder stages the three parallel views of an SE3.
type se3Builder struct {
	mats   *builder
	rots   *builder
	transl []r3.Vec
}

func newSE3Builder(n int) *se3Builder {
	return &se3Builder{
		mats:   newBuilder(4, 4, n),
		rots:   newBuilder(3, 3, n),
		transl: make([]r3.Vec, 0, n),
	}
}

func (b *se3Builder) add(rot mat.Matrix, x, y, z float64) {
	T, err := transforms.RT2Tr(rot, []float64{x, y, z})
	if err != nil {
		panic(fmt.Sprintf("pose: se3Builder.add: %v", err))
	}
	b.addHomogeneous(T)
}

func (b *se3Builder) addHomogeneous(T mat.Matrix) {
	b.mats.append(T)
	stored := b.mats.c.mats[len(b.mats.c.mats)-1]
	R, err := transforms.T2R(stored)
	if err != nil {
		panic(fmt.Sprintf("pose: se3Builder.addHomogeneous: %v", err))
	}
	t, err := transforms.TranslOf(stored)
	if err != nil {
		panic(fmt.Sprintf("pose: se3Builder.addHomogeneous: %v", err))
	}
	b.rots.append(R)
	b.transl = append(b.transl, r3.Vec{X: t[0], Y: t[1], Z: t[2]})
}

func (b *se3Builder) build() SE3 {
	return SE3{c: b.mats.build(), rot: SO3{c: b.rots.build()}, transl: b.transl}
}

// IdentitySE3 returns a single identity motion.
func IdentitySE3() SE3 {
	b := newSE3Builder(1)
	b.add(transforms.Identity(3), 0, 0, 0)

	return b.build()
}

// NewSE3 builds an SE3 from exactly one call shape of a.
//
// Errors: ErrInvalidArgs, ErrLengthMismatch, ErrBadShape, ErrNilMatrix,
// ErrNaNInf, ErrInvalidMatrix, ErrEmptyPose.
func NewSE3(a SE3Args, opts ...Option) (SE3, error) {
	o := gatherOptions(opts...)

	var mask argMask
	mask.mark(a.Matrices != nil, argMatrix)
	mask.mark(a.Rot != nil, argRot)
	mask.mark(a.Transl != nil, argTransl)
	mask.mark(a.SO3 != nil, argSO3)
	mask.mark(a.SE3 != nil, argSE3)
	shape, err := se3Table.resolve(mask)
	if err != nil {
		return SE3{}, fmt.Errorf("NewSE3: %w", err)
	}
	if err = a.validateLists(shape); err != nil {
		return SE3{}, fmt.Errorf("NewSE3: %w", err)
	}

	switch shape {
	case shapeMatrix:
		b := newSE3Builder(len(a.Matrices))
		for i, m := range a.Matrices {
			if m == nil {
				return SE3{}, fmt.Errorf("NewSE3: matrix[%d]: %w", i, ErrNilMatrix)
			}
			r := transforms.Round(m, Decimals)
			if err = validateHomogeneous(r, 3, o.eps); err != nil {
				return SE3{}, fmt.Errorf("NewSE3: matrix[%d]: %w", i, err)
			}
			b.addHomogeneous(r)
		}
		return b.build(), nil

	case shapeTransl:
		b := newSE3Builder(len(a.Transl))
		for _, t := range a.Transl {
			b.add(transforms.Identity(3), t.X, t.Y, t.Z)
		}
		return b.build(), nil

	case shapeRot, shapeRotTransl:
		rots := make([]mat.Matrix, len(a.Rot))
		for i, m := range a.Rot {
			if m == nil {
				return SE3{}, fmt.Errorf("NewSE3: rot[%d]: %w", i, ErrNilMatrix)
			}
			rots[i] = transforms.Round(m, Decimals)
			if err = validateRotation(rots[i], 3, o.eps); err != nil {
				return SE3{}, fmt.Errorf("NewSE3: rot[%d]: %w", i, err)
			}
		}
		n := max(len(rots), len(a.Transl))
		b := newSE3Builder(n)
		for i := 0; i < n; i++ {
			r := rots[0]
			if len(rots) > 1 {
				r = rots[i]
			}
			var t r3.Vec
			if a.Transl != nil {
				t = a.Transl[i]
			}
			b.add(r, t.X, t.Y, t.Z)
		}
		return b.build(), nil

	case shapeFromSO3:
		if a.SO3.Len() == 0 {
			return SE3{}, fmt.Errorf("NewSE3: %w", ErrEmptyPose)
		}
		return a.SO3.SE3(), nil

	case shapeCopy:
		if a.SE3.Len() == 0 {
			return SE3{}, fmt.Errorf("NewSE3: %w", ErrEmptyPose)
		}
		return a.SE3.New(), nil

	default:
		return IdentitySE3(), nil
	}
}

// validateLists enforces non-empty lists, finite translations and matching
// rotation/translation lengths.
func (a SE3Args) validateLists(shape callShape) error {
	if a.Matrices != nil && len(a.Matrices) == 0 {
		return se3Table.invalidArgs("empty matrix list")
	}
	if a.Rot != nil && len(a.Rot) == 0 {
		return se3Table.invalidArgs("empty rot list")
	}
	if a.Transl != nil && len(a.Transl) == 0 {
		return se3Table.invalidArgs("empty transl list")
	}
	for _, t := range a.Transl {
		if err := validateFinite("transl", t.X, t.Y, t.Z); err != nil {
			return err
		}
	}
	if shape == shapeRotTransl && len(a.Rot) != 1 && len(a.Rot) != len(a.Transl) {
		return fmt.Errorf("rot len %d, transl len %d: %w", len(a.Rot), len(a.Transl), ErrLengthMismatch)
	}

	return nil
}

// SE3FromRotTransl builds a single motion from a 3×3 rotation and a translation.
func SE3FromRotTransl(rot mat.Matrix, t r3.Vec, opts ...Option) (SE3, error) {
	return NewSE3(SE3Args{Rot: []mat.Matrix{rot}, Transl: []r3.Vec{t}}, opts...)
}

// Len returns the number of motions.
func (p SE3) Len() int { return p.c.Len() }

// At returns a copy of the homogeneous matrix i, or ErrOutOfRange.
func (p SE3) At(i int) (*mat.Dense, error) {
	m, err := p.c.at(i)
	if err != nil {
		return nil, fmt.Errorf("SE3.%w", err)
	}

	return m, nil
}

// All iterates over copies of the homogeneous matrices in order.
func (p SE3) All() iter.Seq2[int, mat.Matrix] { return p.c.all() }

// Rotation returns the rotation part as an SO3 (the downcast).
func (p SE3) Rotation() SO3 { return p.rot }

// Transl returns the translation of every element.
func (p SE3) Transl() []r3.Vec {
	out := make([]r3.Vec, len(p.transl))
	copy(out, p.transl)

	return out
}

// Det returns the determinant of every homogeneous matrix.
func (p SE3) Det() []float64 { return p.c.dets() }

// TMatrix returns copies of the stored homogeneous matrices.
func (p SE3) TMatrix() []*mat.Dense { return p.c.copies() }

// Inv returns the rigid-motion inverse of every element: Rᵀ and −Rᵀt.
func (p SE3) Inv() SE3 {
	b := newSE3Builder(p.Len())
	for i, r := range p.rot.c.mats {
		rt := mat.DenseCopyOf(r.T())
		t := p.transl[i]
		var v mat.VecDense
		v.MulVec(rt, mat.NewVecDense(3, []float64{t.X, t.Y, t.Z}))
		v.ScaleVec(-1, &v)
		b.add(rt, v.AtVec(0), v.AtVec(1), v.AtVec(2))
	}

	return b.build()
}

// Mul composes p with o using the collection broadcast rules.
func (p SE3) Mul(o SE3) (SE3, error) {
	c, err := p.c.compose(o.c)
	if err != nil {
		return SE3{}, fmt.Errorf("SE3.Mul: %w", err)
	}
	b := newSE3Builder(c.Len())
	for _, m := range c.mats {
		b.addHomogeneous(m)
	}

	return b.build(), nil
}

// Equal reports element-wise equality after rounding.
func (p SE3) Equal(o SE3) bool { return p.c.equal(o.c) }

// EqualApprox reports element-wise equality within tol.
func (p SE3) EqualApprox(o SE3, tol float64) bool { return p.c.equalApprox(o.c, tol) }

// New returns an independent copy.
func (p SE3) New() SE3 {
	return SE3{c: p.c.clone(), rot: p.rot.New(), transl: p.Transl()}
}

// Log is the group logarithm. Not provided.
func (p SE3) Log() ([]*mat.Dense, error) {
	return nil, fmt.Errorf("SE3.Log: %w", ErrNotImplemented)
}

// Interp would interpolate spatial motions. Not provided: it needs a
// rotation parameterisation beyond the matrix form.
func (p SE3) Interp(SE3, float64) (SE3, error) {
	return SE3{}, fmt.Errorf("SE3.Interp: %w", ErrNotImplemented)
}

// String renders every element.
func (p SE3) String() string { return p.c.format("SE3") }
