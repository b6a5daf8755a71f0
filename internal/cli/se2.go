// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rigid/pose"
)

func newSE2Command(a *app) *cobra.Command {
	var (
		x, y, theta float64
		inv         bool
	)
	cmd := &cobra.Command{
		Use:   "se2",
		Short: "Build a planar rigid motion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := pose.SE2FromXYTheta(x, y, theta, a.unit)
			if err != nil {
				return err
			}
			if inv {
				p = p.Inv()
			}
			a.logger.Debug("built SE2", "x", x, "y", y, "theta", theta, "unit", a.unit, "inv", inv)

			return renderSE2(cmd, p, a.unit)
		},
	}
	cmd.Flags().Float64Var(&x, "x", 0, "translation along x")
	cmd.Flags().Float64Var(&y, "y", 0, "translation along y")
	cmd.Flags().Float64Var(&theta, "theta", 0, "rotation angle in --unit")
	cmd.Flags().BoolVar(&inv, "inv", false, "print the inverse motion")

	cmd.AddCommand(newSE2ComposeCommand(a))

	return cmd
}

func newSE2ComposeCommand(a *app) *cobra.Command {
	var flat []float64
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose planar rigid motions left to right",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(flat) == 0 || len(flat)%3 != 0 {
				return fmt.Errorf("--pose: want x,y,theta triples, got %d values: %w", len(flat), pose.ErrInvalidArgs)
			}
			var acc pose.SE2
			for i := 0; i < len(flat); i += 3 {
				p, err := pose.SE2FromXYTheta(flat[i], flat[i+1], flat[i+2], a.unit)
				if err != nil {
					return err
				}
				if i == 0 {
					acc = p
					continue
				}
				if acc, err = acc.Mul(p); err != nil {
					return err
				}
			}
			a.logger.Debug("composed SE2", "poses", len(flat)/3, "unit", a.unit)

			return renderSE2(cmd, acc, a.unit)
		},
	}
	cmd.Flags().Float64SliceVar(&flat, "pose", nil, "x,y,theta of one motion; repeat to compose")

	return cmd
}

func renderSE2(cmd *cobra.Command, p pose.SE2, u pose.Unit) error {
	notes, err := xytNote(p, u)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), "SE2", p.TMatrix(), notes...)
}
