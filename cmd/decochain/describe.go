package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDescribeCmd(opts *rootOptions) *cobra.Command {
	var flags chainFlags
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Build a chain and print its description",
		Example: `  decochain describe --shape square --size 4 --wrap color=red --wrap transparency=20.5
  decochain describe -f chain.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := flags.build(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Describe())
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}
