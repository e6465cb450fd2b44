package main

import (
	"errors"
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/sjnam/d3ecdlp/verify"
)

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Bright green
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Bright red
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true) // Bright yellow
)

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the GLV identities on secp256k1",
		RunE: func(cmd *cobra.Command, args []string) error {
			prm := verify.Secp256k1()
			checks := verify.RunParams(prm)

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render(prm.Name))
			for _, c := range checks {
				mark := passStyle.Render("PASS")
				if !c.Passed {
					mark = failStyle.Render("FAIL")
				}
				fmt.Fprintf(w, "%s  %s\n      %s\n", mark, c.Name, detailStyle.Render(c.Detail))
			}
			if !verify.Passed(checks) {
				return errors.New("verification failed")
			}
			return nil
		},
	}
}
