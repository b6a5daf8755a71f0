// SPDX-License-Identifier: MIT

// Command rigid builds, composes and checks rigid-body transformations from
// the command line.
package main

import (
	"context"
	"os"

	"github.com/katalvlaran/rigid/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		os.Exit(1)
	}
}
