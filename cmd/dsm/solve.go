package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSolveCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <model.yaml>",
		Short: "Static solve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			m, F, err := in.Build()
			if err != nil {
				return err
			}
			sol, err := m.Solve(F)
			if err != nil {
				return err
			}
			forces, err := m.MemberForces(sol.Displacements)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprint(w, m)
			fmt.Fprintln(w, "Displacements / reactions:")
			for id := 0; id < m.NumNodes(); id++ {
				u, r := sol.Node(id)
				fmt.Fprintf(w, "  node %3d  u %12.5e  R %12.5e\n", id, u, r)
			}
			fmt.Fprintln(w, "Member forces:")
			for _, f := range forces {
				fmt.Fprintf(w, "  %s\n", f)
			}
			return nil
		},
	}
}
