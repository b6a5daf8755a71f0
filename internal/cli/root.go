// SPDX-License-Identifier: MIT

// Package cli holds the rigid command tree. Each subcommand builds a pose
// value from flags, optionally transforms it and prints its matrices.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rigid/pose"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// app carries the global flags and the logger resolved before any
// subcommand runs.
type app struct {
	verbose  bool
	unitFlag string

	unit   pose.Unit
	logger *log.Logger
}

// NewRootCommand assembles the full command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "rigid",
		Short: "Build and combine rigid-body transformations",
		Long: titleStyle.Render("rigid") + noteStyle.Render(" - planar and spatial rotations and rigid motions") + `

Every value is stored as a rounded rotation or homogeneous matrix and is
validated on construction. Angles are read in --unit (rad by default).

` + noteStyle.Render("Examples:") + `
  rigid so2 --theta 90 --unit deg
  rigid se2 --x 1 --y 2 --theta 30 --unit deg --inv
  rigid se2 compose --pose 1,2,90 --pose 0,1,0 --unit deg
  rigid so2 interp --from 0 --to 90 --s 0.5 --unit deg
  rigid so3 --axis z --theta 45 --unit deg
  rigid check --matrix 0,-1,1,0
  rigid rand so3 --seed 7`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.unitFlag, "unit", string(pose.Rad), "angle unit: rad or deg")

	root.AddCommand(newSO2Command(a))
	root.AddCommand(newSE2Command(a))
	root.AddCommand(newSO3Command(a))
	root.AddCommand(newCheckCommand(a))
	root.AddCommand(newRandCommand(a))

	return root
}

// setup resolves the unit flag and the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "rigid"})
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	u, err := pose.ParseUnit(a.unitFlag)
	if err != nil {
		return fmt.Errorf("--unit: %w", err)
	}
	a.unit = u

	return nil
}

// versionString returns the version shown by --version.
func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}

	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the command tree with fang styling and interrupt handling.
func Execute(ctx context.Context) error {
	return fang.Execute(
		ctx,
		NewRootCommand(),
		fang.WithVersion(versionString()),
		fang.WithNotifySignal(os.Interrupt),
	)
}
