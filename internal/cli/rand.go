// SPDX-License-Identifier: MIT

package cli

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rigid/pose"
)

func newRandCommand(a *app) *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Draw a random rotation",
	}
	cmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed; 0 draws from the shared source")

	options := func() []pose.Option {
		if seed == 0 {
			return nil
		}
		return []pose.Option{pose.WithRand(rand.New(rand.NewSource(seed)))}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "so2",
		Short: "Random planar rotation, angle uniform in [0, 360) degrees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := pose.RandSO2(options()...)
			a.logger.Debug("drew SO2", "seed", seed)

			return render(cmd.OutOrStdout(), "SO2", p.Matrices(), angleNote(p.Angles(), a.unit)...)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "so3",
		Short: "Random rotation about one uniformly chosen axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := pose.RandSO3(options()...)
			a.logger.Debug("drew SO3", "seed", seed)

			return render(cmd.OutOrStdout(), "SO3", p.Matrices())
		},
	})

	return cmd
}
