package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/grahms/decochain"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newLayersCmd(opts *rootOptions) *cobra.Command {
	var flags chainFlags
	cmd := &cobra.Command{
		Use:   "layers",
		Short: "Build a chain and show each wrapper, outermost first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := flags.build(opts)
			if err != nil {
				return err
			}
			return printLayers(cmd.OutOrStdout(), decochain.Layers(c), opts.tableOutput())
		},
	}
	flags.bind(cmd)
	return cmd
}

func printLayers(w io.Writer, layers []decochain.Layer, asTable bool) error {
	if !asTable {
		for _, l := range layers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", l.Depth, kindLabel(l), l.Policy, l.History, l.Applied)
		}
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Depth", "Kind", "Policy", "History", "Applied")
	for _, l := range layers {
		if err := table.Append(
			strconv.Itoa(l.Depth),
			kindLabel(l),
			l.Policy,
			l.History.String(),
			strconv.FormatBool(l.Applied),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func kindLabel(l decochain.Layer) string {
	if l.Tag == "" {
		return "(leaf)"
	}
	return string(l.Tag)
}
