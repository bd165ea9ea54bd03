package main

import (
	"fmt"

	"github.com/notargets/DSMKernel/element"
	"github.com/spf13/cobra"
)

func newDumpCmd(load loader) *cobra.Command {
	var id int
	cmd := &cobra.Command{
		Use:   "dump <model.yaml>",
		Short: "Print element matrices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := load(cmd, args[0])
			if err != nil {
				return err
			}
			m, _, err := in.Build()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if id >= 0 {
				el, ok := m.Element(id)
				if !ok {
					return fmt.Errorf("no element %d", id)
				}
				fmt.Fprint(w, element.Dump(el))
				return nil
			}
			for _, el := range m.Elements() {
				fmt.Fprint(w, element.Dump(el))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&id, "element", "e", -1, "element id, all when negative")
	return cmd
}
