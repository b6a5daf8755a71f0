// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rigid/pose"
)

func newCheckCommand(a *app) *cobra.Command {
	var (
		vals []float64
		eps  float64
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a 2x2 rotation or 3x3 planar homogeneous matrix",
		Long: `Validate a row-major matrix. Four values are read as a 2x2 rotation and
checked as SO2; nine values are read as a 3x3 homogeneous matrix and
checked as SE2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n := int(math.Sqrt(float64(len(vals))))
			if n*n != len(vals) || (n != 2 && n != 3) {
				return fmt.Errorf("--matrix: want 4 or 9 values, got %d: %w", len(vals), pose.ErrBadShape)
			}
			if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
				return fmt.Errorf("--eps %g: %w", eps, pose.ErrInvalidArgs)
			}
			in := pose.PlanarOfMatrix(mat.NewDense(n, n, vals))
			a.logger.Debug("checking matrix", "kind", in.Kind(), "eps", eps)

			out, err := pose.Check(in, pose.WithEpsilon(eps))
			if err != nil {
				return err
			}
			verdict := okStyle.Render("valid " + out.Kind().String())
			if so2, ok := out.SO2(); ok {
				return render(cmd.OutOrStdout(), verdict, so2.Matrices(), angleNote(so2.Angles(), a.unit)...)
			}
			se2, _ := out.SE2()
			notes, err := xytNote(se2, a.unit)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), verdict, se2.TMatrix(), notes...)
		},
	}
	cmd.Flags().Float64SliceVar(&vals, "matrix", nil, "row-major matrix entries (4 or 9 values)")
	cmd.Flags().Float64Var(&eps, "eps", pose.DefaultEpsilon, "tolerance for orthogonality and determinant")

	return cmd
}
