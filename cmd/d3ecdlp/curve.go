package main

import (
	"fmt"

	"github.com/spf13/cobra"

	ecc "github.com/sjnam/d3ecdlp"
	"github.com/sjnam/d3ecdlp/internal/config"
)

func newCurveCommand() *cobra.Command {
	var cc config.Curve

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print a curve, its generator and the automorphism orbit of G",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cc.Validate(); err != nil {
				return err
			}
			c, err := ecc.NewCurve(cc.P, cc.B)
			if err != nil {
				return err
			}
			e, err := ecc.NewEndomorphism(c)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("y² = x³ + %d over F_%d", c.B, c.P)))
			fmt.Fprintf(w, "order   n = %d\n", c.N)
			fmt.Fprintf(w, "base    G = %v\n", c.G)
			fmt.Fprintf(w, "beta    β = %d, β² = %d\n", e.Beta, e.Beta2)
			fmt.Fprintf(w, "lambda  λ = %d, λ² = %d\n", e.Lambda, e.Lambda2)

			rep, s := e.Canonical(c.G)
			fmt.Fprintf(w, "class   %v = [%d]G\n", rep, s)
			scalars := e.Scalars()
			for i, pt := range e.Orbit(c.G) {
				fmt.Fprintf(w, "  [%d]G = %v\n", scalars[i], pt)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&cc.P, "p", config.DefaultP, "field prime, p ≡ 1 mod 3")
	cmd.Flags().Uint64Var(&cc.B, "b", config.DefaultB, "curve constant b")
	return cmd
}
