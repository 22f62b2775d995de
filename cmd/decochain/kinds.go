package main

import (
	"fmt"

	"github.com/grahms/decochain"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newKindsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the known shapes and wrapper kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := decochain.DefaultRegistry()
			w := cmd.OutOrStdout()

			if !opts.tableOutput() {
				for _, n := range reg.ShapeNames() {
					fmt.Fprintf(w, "shape\t%s\n", n)
				}
				for _, n := range reg.WrapperNames() {
					p, _ := reg.Wrapper(n)
					fmt.Fprintf(w, "wrapper\t%s\t%s\n", n, p.Policy())
				}
				return nil
			}

			table := tablewriter.NewWriter(w)
			table.Header("Type", "Name", "Policy")
			for _, n := range reg.ShapeNames() {
				if err := table.Append("shape", n, "-"); err != nil {
					return err
				}
			}
			for _, n := range reg.WrapperNames() {
				p, _ := reg.Wrapper(n)
				if err := table.Append("wrapper", n, p.Policy()); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
