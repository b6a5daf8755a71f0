// SPDX-License-Identifier: MIT

package pose

import (
	"fmt"
	"iter"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/rigid/transforms"
)

// SE2 is an ordered collection of planar rigid motions. Each element is the
// rounded 3×3 homogeneous matrix [[R, t], [0 0 1]].
//
// An SE2 holds its rotation part as an SO2 and its translations as a slice
// kept in lockstep with the matrices; rotation-only queries delegate to the
// SO2 value.
type SE2 struct {
	c      collection // 3×3 homogeneous
	rot    SO2        // 2×2 blocks of c
	transl []r2.Vec   // last column of c
	unit   Unit
}

// SE2Args selects one SE2 call shape:
//
//	()               identity
//	(X, Y)           translations, zero rotation
//	(X, Y, Theta)    Theta has len 1 (broadcast) or len(X)
//	(X, Y, Rot)      len(Rot) == len(X)
//	(Rot)            rotations, zero translation
//	(SE2)            copy
//	(SO2)            lift with zero translation
//	(Theta)          rotations by angle, zero translation
//
// Single values are one-element slices. X and Y must have equal lengths.
type SE2Args struct {
	X, Y  []float64
	Theta []float64
	Unit  Unit
	Rot   []mat.Matrix // 2×2 rotations, validated
	SO2   *SO2
	SE2   *SE2
}

// se2Builder stages the three parallel views of an SE2.
type se2Builder struct {
	mats   *builder
	rots   *builder
	transl []r2.Vec
}

func newSE2Builder(n int) *se2Builder {
	return &se2Builder{
		mats:   newBuilder(3, 3, n),
		rots:   newBuilder(2, 2, n),
		transl: make([]r2.Vec, 0, n),
	}
}

// add stages the motion with rotation rot and translation (x, y).
func (b *se2Builder) add(rot mat.Matrix, x, y float64) {
	T, err := transforms.RT2Tr(rot, []float64{x, y})
	if err != nil {
		panic(fmt.Sprintf("pose: se2Builder.add: %v", err))
	}
	b.addHomogeneous(T)
}

// addHomogeneous stages a validated 3×3 matrix. Rotation and translation are
// read back from the rounded copy so all three views agree.
func (b *se2Builder) addHomogeneous(T mat.Matrix) {
	b.mats.append(T)
	stored := b.mats.c.mats[len(b.mats.c.mats)-1]
	R, err := transforms.T2R(stored)
	if err != nil {
		panic(fmt.Sprintf("pose: se2Builder.addHomogeneous: %v", err))
	}
	t, err := transforms.TranslOf(stored)
	if err != nil {
		panic(fmt.Sprintf("pose: se2Builder.addHomogeneous: %v", err))
	}
	b.rots.append(R)
	b.transl = append(b.transl, r2.Vec{X: t[0], Y: t[1]})
}

func (b *se2Builder) build(unit Unit) SE2 {
	return SE2{
		c:      b.mats.build(),
		rot:    SO2{c: b.rots.build(), unit: unit},
		transl: b.transl,
		unit:   unit,
	}
}

// IdentitySE2 returns a single identity motion.
func IdentitySE2() SE2 {
	b := newSE2Builder(1)
	b.add(transforms.Identity(2), 0, 0)

	return b.build(Rad)
}

// NewSE2 builds an SE2 from exactly one call shape of a.
//
// Errors: ErrInvalidArgs, ErrInvalidUnit, ErrLengthMismatch, ErrNaNInf,
// ErrBadShape, ErrNilMatrix, ErrInvalidMatrix, ErrEmptyPose.
func NewSE2(a SE2Args, opts ...Option) (SE2, error) {
	o := gatherOptions(opts...)
	unit, err := a.Unit.normalize()
	if err != nil {
		return SE2{}, fmt.Errorf("NewSE2: %w", err)
	}

	var mask argMask
	mask.mark(a.X != nil, argX)
	mask.mark(a.Y != nil, argY)
	mask.mark(a.Theta != nil, argTheta)
	mask.mark(a.Rot != nil, argRot)
	mask.mark(a.SO2 != nil, argSO2)
	mask.mark(a.SE2 != nil, argSE2)
	shape, err := se2Table.resolve(mask)
	if err != nil {
		return SE2{}, fmt.Errorf("NewSE2: %w", err)
	}
	if err = a.validateLists(shape); err != nil {
		return SE2{}, fmt.Errorf("NewSE2: %w", err)
	}

	var rots []mat.Matrix
	if a.Rot != nil {
		rots = make([]mat.Matrix, len(a.Rot))
		for i, r := range a.Rot {
			if r == nil {
				return SE2{}, fmt.Errorf("NewSE2: rot[%d]: %w", i, ErrNilMatrix)
			}
			rots[i] = transforms.Round(r, Decimals)
			if err = validateRotation(rots[i], 2, o.eps); err != nil {
				return SE2{}, fmt.Errorf("NewSE2: rot[%d]: %w", i, err)
			}
		}
	}

	switch shape {
	case shapeXY, shapeXYTheta:
		b := newSE2Builder(len(a.X))
		for i := range a.X {
			th := 0.0
			if len(a.Theta) == 1 {
				th = a.Theta[0]
			} else if a.Theta != nil {
				th = a.Theta[i]
			}
			b.add(transforms.Rot2(unit.toRad(th)), a.X[i], a.Y[i])
		}
		return b.build(unit), nil

	case shapeXYRot:
		b := newSE2Builder(len(a.X))
		for i := range a.X {
			b.add(rots[i], a.X[i], a.Y[i])
		}
		return b.build(unit), nil

	case shapeRot:
		b := newSE2Builder(len(rots))
		for _, r := range rots {
			b.add(r, 0, 0)
		}
		return b.build(unit), nil

	case shapeTheta:
		b := newSE2Builder(len(a.Theta))
		for _, th := range a.Theta {
			b.add(transforms.Rot2(unit.toRad(th)), 0, 0)
		}
		return b.build(unit), nil

	case shapeCopy:
		if a.SE2.Len() == 0 {
			return SE2{}, fmt.Errorf("NewSE2: %w", ErrEmptyPose)
		}
		cp := a.SE2.New()
		cp.unit, cp.rot.unit = unit, unit
		return cp, nil

	case shapeFromSO2:
		if a.SO2.Len() == 0 {
			return SE2{}, fmt.Errorf("NewSE2: %w", ErrEmptyPose)
		}
		lifted := a.SO2.SE2()
		lifted.unit, lifted.rot.unit = unit, unit
		return lifted, nil

	default:
		id := IdentitySE2()
		id.unit, id.rot.unit = unit, unit
		return id, nil
	}
}

// validateLists enforces non-empty lists, finite values and matching
// lengths for the list-carrying shapes.
func (a SE2Args) validateLists(shape callShape) error {
	for _, l := range []struct {
		name string
		set  bool
		n    int
	}{
		{"x", a.X != nil, len(a.X)},
		{"y", a.Y != nil, len(a.Y)},
		{"theta", a.Theta != nil, len(a.Theta)},
		{"rot", a.Rot != nil, len(a.Rot)},
	} {
		if l.set && l.n == 0 {
			return se2Table.invalidArgs("empty " + l.name + " list")
		}
	}
	if err := validateFinite("x", a.X...); err != nil {
		return err
	}
	if err := validateFinite("y", a.Y...); err != nil {
		return err
	}
	if err := validateFinite("theta", a.Theta...); err != nil {
		return err
	}

	switch shape {
	case shapeXY, shapeXYTheta, shapeXYRot:
		if len(a.X) != len(a.Y) {
			return fmt.Errorf("x len %d, y len %d: %w", len(a.X), len(a.Y), ErrLengthMismatch)
		}
	}
	if shape == shapeXYTheta && len(a.Theta) != 1 && len(a.Theta) != len(a.X) {
		return fmt.Errorf("theta len %d, x len %d: %w", len(a.Theta), len(a.X), ErrLengthMismatch)
	}
	if shape == shapeXYRot && len(a.Rot) != len(a.X) {
		return fmt.Errorf("rot len %d, x len %d: %w", len(a.Rot), len(a.X), ErrLengthMismatch)
	}

	return nil
}

// SE2FromXYTheta builds a single motion translating by (x, y) and rotating
// by theta in unit.
func SE2FromXYTheta(x, y, theta float64, unit Unit) (SE2, error) {
	return NewSE2(SE2Args{X: []float64{x}, Y: []float64{y}, Theta: []float64{theta}, Unit: unit})
}

// SE2FromMatrix accepts a 3×3 homogeneous matrix after rounding and
// validation of its last row and rotation block.
func SE2FromMatrix(m mat.Matrix, opts ...Option) (SE2, error) {
	if m == nil {
		return SE2{}, fmt.Errorf("SE2FromMatrix: %w", ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	r := transforms.Round(m, Decimals)
	if err := validateHomogeneous(r, 2, o.eps); err != nil {
		return SE2{}, fmt.Errorf("SE2FromMatrix: %w", err)
	}
	b := newSE2Builder(1)
	b.addHomogeneous(r)

	return b.build(Rad), nil
}

// Len returns the number of motions.
func (p SE2) Len() int { return p.c.Len() }

// At returns a copy of the homogeneous matrix i, or ErrOutOfRange.
func (p SE2) At(i int) (*mat.Dense, error) {
	m, err := p.c.at(i)
	if err != nil {
		return nil, fmt.Errorf("SE2.%w", err)
	}

	return m, nil
}

// All iterates over copies of the homogeneous matrices in order.
func (p SE2) All() iter.Seq2[int, mat.Matrix] { return p.c.all() }

// Unit reports the unit the value was constructed with.
func (p SE2) Unit() Unit { return p.unit }

// Rotation returns the rotation part as an SO2 (translation dropped).
func (p SE2) Rotation() SO2 { return p.rot }

// Angles returns the rotation angle in radians of every element.
func (p SE2) Angles() []float64 { return p.rot.Angles() }

// Det returns the determinant of every homogeneous matrix.
func (p SE2) Det() []float64 { return p.c.dets() }

// Transl returns the (x, y) translation of every element.
func (p SE2) Transl() []r2.Vec {
	out := make([]r2.Vec, len(p.transl))
	copy(out, p.transl)

	return out
}

// TranslVec returns the translations as 2-element column vectors.
func (p SE2) TranslVec() []*mat.VecDense {
	out := make([]*mat.VecDense, len(p.transl))
	for i, t := range p.transl {
		out[i] = mat.NewVecDense(2, []float64{t.X, t.Y})
	}

	return out
}

// TMatrix returns copies of the stored homogeneous matrices.
func (p SE2) TMatrix() []*mat.Dense { return p.c.copies() }

// Inv returns the rigid-motion inverse of every element: rotation Rᵀ and
// translation −Rᵀt, rebuilt through the (x, y, rot) path.
//
// Each rebuild rounds again, so p.Inv().Inv() matches p under EqualApprox
// with DefaultEpsilon, not always under Equal.
func (p SE2) Inv() SE2 {
	b := newSE2Builder(p.Len())
	for i, r := range p.rot.c.mats {
		rt := mat.DenseCopyOf(r.T())
		var t mat.VecDense
		t.MulVec(rt, mat.NewVecDense(2, []float64{p.transl[i].X, p.transl[i].Y}))
		t.ScaleVec(-1, &t)
		b.add(rt, t.AtVec(0), t.AtVec(1))
	}

	return b.build(p.unit)
}

// XYT returns, per element, the column vector [x, y, θ] with θ in unit.
//
// Errors: ErrInvalidUnit; ErrLengthMismatch if the translation and angle
// lists disagree (internal consistency).
func (p SE2) XYT(unit Unit) ([]*mat.VecDense, error) {
	u, err := unit.normalize()
	if err != nil {
		return nil, fmt.Errorf("SE2.XYT: %w", err)
	}
	angles := p.Angles()
	if len(angles) != len(p.transl) {
		return nil, fmt.Errorf("SE2.XYT: %d angles, %d translations: %w", len(angles), len(p.transl), ErrLengthMismatch)
	}
	out := make([]*mat.VecDense, len(angles))
	for i, th := range angles {
		out[i] = mat.NewVecDense(3, []float64{p.transl[i].X, p.transl[i].Y, u.fromRad(th)})
	}

	return out, nil
}

// Mul composes p with o using the collection broadcast rules.
func (p SE2) Mul(o SE2) (SE2, error) {
	c, err := p.c.compose(o.c)
	if err != nil {
		return SE2{}, fmt.Errorf("SE2.Mul: %w", err)
	}
	b := newSE2Builder(c.Len())
	for _, m := range c.mats {
		b.addHomogeneous(m)
	}

	return b.build(p.unit), nil
}

// Interp interpolates rotation angles as SO2.Interp does and translations
// linearly: t = tp + s·(to − tp). Endpoints match p and o under
// EqualApprox, as for SO2.Interp.
func (p SE2) Interp(o SE2, s float64) (SE2, error) {
	thetas, err := interpAngles(p.rot, o.rot, s)
	if err != nil {
		return SE2{}, fmt.Errorf("SE2.Interp: %w", err)
	}
	b := newSE2Builder(len(thetas))
	for i, th := range thetas {
		t := r2.Add(p.transl[i], r2.Scale(s, r2.Sub(o.transl[i], p.transl[i])))
		b.add(transforms.Rot2(th), t.X, t.Y)
	}

	return b.build(p.unit), nil
}

// Equal reports element-wise equality after rounding.
func (p SE2) Equal(o SE2) bool { return p.c.equal(o.c) }

// EqualApprox reports element-wise equality within tol.
func (p SE2) EqualApprox(o SE2, tol float64) bool { return p.c.equalApprox(o.c, tol) }

// New returns an independent copy.
func (p SE2) New() SE2 {
	return SE2{
		c:      p.c.clone(),
		rot:    p.rot.New(),
		transl: p.Transl(),
		unit:   p.unit,
	}
}

// SE3 would embed the planar motion in 3D. Not provided: the embedding
// plane is not fixed by the type.
func (p SE2) SE3() (SE3, error) {
	return SE3{}, fmt.Errorf("SE2.SE3: %w", ErrNotImplemented)
}

// Log is the group logarithm. Not provided.
func (p SE2) Log() ([]*mat.Dense, error) {
	return nil, fmt.Errorf("SE2.Log: %w", ErrNotImplemented)
}

// String renders every element.
func (p SE2) String() string { return p.c.format("SE2") }
