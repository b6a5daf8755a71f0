// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigid/pose"
	"github.com/katalvlaran/rigid/transforms"
)

// render prints a heading, every matrix and then the notes.
func render(w io.Writer, title string, mats []*mat.Dense, notes ...string) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render(title)); err != nil {
		return err
	}
	for i, m := range mats {
		m.Apply(positiveZero, m)
		if _, err := fmt.Fprintf(w, "[%d]\n%v\n\n", i, mat.Formatted(m, mat.Squeeze())); err != nil {
			return err
		}
	}
	for _, n := range notes {
		if _, err := fmt.Fprintln(w, noteStyle.Render(n)); err != nil {
			return err
		}
	}

	return nil
}

// positiveZero maps -0 to 0 so printed matrices never show a signed zero.
func positiveZero(_, _ int, v float64) float64 {
	if v == 0 {
		return 0
	}

	return v
}

// inUnit converts a radian angle for display in u.
func inUnit(rad float64, u pose.Unit) float64 {
	if u == pose.Deg {
		return transforms.RadToDeg(rad)
	}

	return rad
}

// angleNote formats one angle per element.
func angleNote(rads []float64, u pose.Unit) []string {
	out := make([]string, len(rads))
	for i, a := range rads {
		out[i] = fmt.Sprintf("[%d] angle %.6g %s", i, positiveZero(0, 0, inUnit(a, u)), u)
	}

	return out
}

// xytNote formats the [x, y, θ] vector of every SE2 element.
func xytNote(p pose.SE2, u pose.Unit) ([]string, error) {
	vs, err := p.XYT(u)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprintf("[%d] x=%.6g y=%.6g theta=%.6g %s", i,
			positiveZero(0, 0, v.AtVec(0)), positiveZero(0, 0, v.AtVec(1)), positiveZero(0, 0, v.AtVec(2)), u)
	}

	return out, nil
}
