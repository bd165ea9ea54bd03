package main

import (
	"log"

	"github.com/notargets/DSMKernel/inp"
	"github.com/spf13/cobra"
)

// loader reads the input named on the command line
type loader func(cmd *cobra.Command, path string) (*inp.Input, error)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "dsm",
		Short: "Direct stiffness finite element solver",
		Long: `Solve trusses, beams, spatial frames and plates defined in YAML files.

Example input:

kind: truss
nodes: [[0, 0], [1, 0]]
elements:
  - {nodes: [0, 1], A: 0.1, E: 7e10, rho: 1}
supports: {0: [0, 1], 1: [1]}
loads:
  nodal: [{node: 1, dof: 0, value: -1000}]

Subcommands:
  solve  - displacements, reactions and member forces
  modal  - natural frequencies
  dump   - element matrices`,
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log solver diagnostics to stderr")

	load := func(cmd *cobra.Command, path string) (*inp.Input, error) {
		in, err := inp.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if verbose {
			in.Logger = log.New(cmd.ErrOrStderr(), "dsm: ", 0)
		}
		return in, nil
	}
	root.AddCommand(newSolveCmd(load), newModalCmd(load), newDumpCmd(load))
	return root
}
