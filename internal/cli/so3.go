// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/rigid/pose"
)

// axisBuilders maps --axis values to elementary rotations.
var axisBuilders = map[string]func(float64, pose.Unit) (pose.SO3, error){
	"x": pose.Rx,
	"y": pose.Ry,
	"z": pose.Rz,
}

func newSO3Command(a *app) *cobra.Command {
	var (
		axis       string
		theta      float64
		tx, ty, tz float64
		inv        bool
	)
	cmd := &cobra.Command{
		Use:   "so3",
		Short: "Build a rotation about one axis, or a spatial motion when a translation is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			build, ok := axisBuilders[axis]
			if !ok {
				return fmt.Errorf("--axis %q: want x, y or z: %w", axis, pose.ErrInvalidArgs)
			}
			rot, err := build(theta, a.unit)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			if !fs.Changed("tx") && !fs.Changed("ty") && !fs.Changed("tz") {
				if inv {
					rot = rot.Inv()
				}
				a.logger.Debug("built SO3", "axis", axis, "theta", theta, "unit", a.unit, "inv", inv)
				return render(cmd.OutOrStdout(), "SO3", rot.Matrices())
			}

			m, err := rot.At(0)
			if err != nil {
				return err
			}
			p, err := pose.SE3FromRotTransl(m, r3.Vec{X: tx, Y: ty, Z: tz})
			if err != nil {
				return err
			}
			if inv {
				p = p.Inv()
			}
			a.logger.Debug("built SE3", "axis", axis, "theta", theta, "transl", []float64{tx, ty, tz}, "inv", inv)

			return render(cmd.OutOrStdout(), "SE3", p.TMatrix(), translNote(p.Transl())...)
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "z", "rotation axis: x, y or z")
	cmd.Flags().Float64Var(&theta, "theta", 0, "rotation angle in --unit")
	cmd.Flags().Float64Var(&tx, "tx", 0, "translation along x (switches to SE3)")
	cmd.Flags().Float64Var(&ty, "ty", 0, "translation along y (switches to SE3)")
	cmd.Flags().Float64Var(&tz, "tz", 0, "translation along z (switches to SE3)")
	cmd.Flags().BoolVar(&inv, "inv", false, "print the inverse")

	return cmd
}

func translNote(ts []r3.Vec) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = fmt.Sprintf("[%d] t=(%.6g, %.6g, %.6g)", i,
			positiveZero(0, 0, t.X), positiveZero(0, 0, t.Y), positiveZero(0, 0, t.Z))
	}

	return out
}
