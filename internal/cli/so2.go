// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rigid/pose"
)

func newSO2Command(a *app) *cobra.Command {
	var (
		theta float64
		inv   bool
	)
	cmd := &cobra.Command{
		Use:   "so2",
		Short: "Build a planar rotation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := pose.SO2FromAngle(theta, a.unit)
			if err != nil {
				return err
			}
			if inv {
				p = p.Inv()
			}
			a.logger.Debug("built SO2", "theta", theta, "unit", a.unit, "inv", inv)

			return render(cmd.OutOrStdout(), "SO2", p.Matrices(), angleNote(p.Angles(), a.unit)...)
		},
	}
	cmd.Flags().Float64Var(&theta, "theta", 0, "rotation angle in --unit")
	cmd.Flags().BoolVar(&inv, "inv", false, "print the inverse rotation")

	cmd.AddCommand(newSO2InterpCommand(a))

	return cmd
}

func newSO2InterpCommand(a *app) *cobra.Command {
	var from, to, s float64
	cmd := &cobra.Command{
		Use:   "interp",
		Short: "Interpolate between two planar rotations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p1, err := pose.SO2FromAngle(from, a.unit)
			if err != nil {
				return err
			}
			p2, err := pose.SO2FromAngle(to, a.unit)
			if err != nil {
				return err
			}
			p, err := p1.Interp(p2, s)
			if err != nil {
				return err
			}
			a.logger.Debug("interpolated SO2", "from", from, "to", to, "s", s)

			return render(cmd.OutOrStdout(), "SO2", p.Matrices(), angleNote(p.Angles(), a.unit)...)
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "start angle in --unit")
	cmd.Flags().Float64Var(&to, "to", 0, "end angle in --unit")
	cmd.Flags().Float64Var(&s, "s", 0.5, "interpolation parameter in [0,1]")

	return cmd
}
