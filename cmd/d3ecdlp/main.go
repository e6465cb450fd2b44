// d3ecdlp solves toy elliptic-curve discrete logarithms on y² = x³ + b and
// compares the generic solvers with their GLV counterparts.
package main

import (
	"context"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "d3ecdlp",
		Short: "ECDLP solvers for curves with D = -3",
		Long: `d3ecdlp solves Q = [k]G on toy curves y² = x³ + b over F_p with p ≡ 1 mod 3.

These curves have six automorphisms, which lets baby-step giant-step and
Pollard's rho work on automorphism classes instead of points. The demo
command runs the generic and the class-based solvers side by side.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(
		newDemoCommand(),
		newVerifyCommand(),
		newCurveCommand(),
	)
	return cmd
}

func main() {
	rootCmd := newRootCommand()
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(versioninfo.Short()),
	); err != nil {
		os.Exit(1)
	}
}
