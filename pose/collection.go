// SPDX-License-Identifier: MIT

// Package pose: the ordered matrix container shared by SO2, SE2, SO3 and SE3.
//
// A collection is an immutable, ordered list of equally-shaped matrices.
// It is populated only through a builder confined to constructor scope;
// once built it is never written again, so values can be read from many
// goroutines. Accessors hand out copies.
package pose

import (
	"fmt"
	"iter"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigid/transforms"
)

// collection stores rounded r×c matrices in insertion order.
type collection struct {
	rows, cols int
	mats       []*mat.Dense
}

// builder is the staging object for a collection. The zero-length state it
// starts in is never returned to callers.
type builder struct {
	c collection
}

// newBuilder prepares an empty r×c staging collection with room for n items.
func newBuilder(rows, cols, n int) *builder {
	return &builder{c: collection{rows: rows, cols: cols, mats: make([]*mat.Dense, 0, n)}}
}

// append rounds m to Decimals places and stores it at the end.
// m must already be validated; a wrong shape is a programmer error.
func (b *builder) append(m mat.Matrix) {
	r, c := m.Dims()
	if r != b.c.rows || c != b.c.cols {
		panic(fmt.Sprintf("pose: builder expects %dx%d, got %dx%d", b.c.rows, b.c.cols, r, c))
	}
	b.c.mats = append(b.c.mats, transforms.Round(m, Decimals))
}

// build freezes the staged collection.
func (b *builder) build() collection {
	return b.c
}

// Len returns the number of stored matrices.
func (c collection) Len() int { return len(c.mats) }

// at returns a copy of element i.
func (c collection) at(i int) (*mat.Dense, error) {
	if i < 0 || i >= len(c.mats) {
		return nil, fmt.Errorf("At(%d) len %d: %w", i, len(c.mats), ErrOutOfRange)
	}

	return mat.DenseCopyOf(c.mats[i]), nil
}

// all yields copies of every element in insertion order.
func (c collection) all() iter.Seq2[int, mat.Matrix] {
	return func(yield func(int, mat.Matrix) bool) {
		for i, m := range c.mats {
			if !yield(i, mat.DenseCopyOf(m)) {
				return
			}
		}
	}
}

// copies returns independent copies of every element.
func (c collection) copies() []*mat.Dense {
	out := make([]*mat.Dense, len(c.mats))
	for i, m := range c.mats {
		out[i] = mat.DenseCopyOf(m)
	}

	return out
}

// clone returns a collection that shares no storage with c.
func (c collection) clone() collection {
	return collection{rows: c.rows, cols: c.cols, mats: c.copies()}
}

// equal reports same shape, same length and exactly equal elements.
// Elements are rounded on insert, so exact comparison is post-rounding.
func (c collection) equal(o collection) bool {
	if c.rows != o.rows || c.cols != o.cols || len(c.mats) != len(o.mats) {
		return false
	}
	for i := range c.mats {
		if !mat.Equal(c.mats[i], o.mats[i]) {
			return false
		}
	}

	return true
}

// equalApprox is equal with an absolute-or-relative tolerance per entry.
func (c collection) equalApprox(o collection, tol float64) bool {
	if c.rows != o.rows || c.cols != o.cols || len(c.mats) != len(o.mats) {
		return false
	}
	for i := range c.mats {
		if !mat.EqualApprox(c.mats[i], o.mats[i], tol) {
			return false
		}
	}

	return true
}

// pairs walks the broadcast pairing of two collections: index-wise for
// equal lengths, or a length-1 side repeated against the other side.
//
// Errors: ErrEmptyPose when either side is empty; ErrShapeMismatch when the
// lengths differ and neither is 1.
func (c collection) pairs(o collection, fn func(a, b *mat.Dense)) error {
	n, m := len(c.mats), len(o.mats)
	if n == 0 || m == 0 {
		return ErrEmptyPose
	}
	switch {
	case n == m:
		for i := 0; i < n; i++ {
			fn(c.mats[i], o.mats[i])
		}
	case n == 1:
		for i := 0; i < m; i++ {
			fn(c.mats[0], o.mats[i])
		}
	case m == 1:
		for i := 0; i < n; i++ {
			fn(c.mats[i], o.mats[0])
		}
	default:
		return fmt.Errorf("lengths %d and %d: %w", n, m, ErrShapeMismatch)
	}

	return nil
}

// compose multiplies c by o element-wise with length-1 broadcasting.
func (c collection) compose(o collection) (collection, error) {
	if len(c.mats) == 0 || len(o.mats) == 0 {
		return collection{}, fmt.Errorf("compose: %w", ErrEmptyPose)
	}
	if c.rows != o.rows || c.cols != o.cols {
		return collection{}, fmt.Errorf("compose %dx%d with %dx%d: %w", c.rows, c.cols, o.rows, o.cols, ErrBadShape)
	}
	b := newBuilder(c.rows, c.cols, max(len(c.mats), len(o.mats)))
	err := c.pairs(o, func(a, m *mat.Dense) {
		var p mat.Dense
		p.Mul(a, m)
		b.append(&p)
	})
	if err != nil {
		return collection{}, fmt.Errorf("compose: %w", err)
	}

	return b.build(), nil
}

// dets returns the determinant of every element.
func (c collection) dets() []float64 {
	out := make([]float64, len(c.mats))
	for i, m := range c.mats {
		out[i] = mat.Det(m)
	}

	return out
}

// format renders every element with its index, one block per element.
func (c collection) format(kind string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s len=%d\n", kind, len(c.mats))
	for i, m := range c.mats {
		fmt.Fprintf(&b, "[%d]\n%v\n", i, mat.Formatted(m, mat.Prefix(""), mat.Squeeze()))
	}

	return b.String()
}
