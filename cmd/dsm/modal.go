package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newModalCmd(load loader) *cobra.Command {
	var (
		modes int
		mass  string
	)
	cmd := &cobra.Command{
		Use:   "modal <model.yaml>",
		Short: "Natural frequencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mass") {
				in.Analysis.Mass = mass
			}
			m, _, err := in.Build()
			if err != nil {
				return err
			}
			md, err := m.SolveModal()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d modes, %s mass\n", md.Len(), md.Mass)
			for i := 0; i < md.Len() && i < modes; i++ {
				fmt.Fprintf(w, "  mode %3d  ω² %12.5e  f %12.5e Hz\n", i+1, md.Eigenvalues[i], md.Frequencies[i])
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&modes, "modes", "n", 5, "number of modes to print")
	cmd.Flags().StringVar(&mass, "mass", "lumped", "mass matrix: lumped or consistent")
	return cmd
}
