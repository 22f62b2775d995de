package main

import (
	"fmt"
	"os"

	"github.com/grahms/decochain"
	"github.com/spf13/cobra"
)

// chainFlags selects a chain either from a YAML document or from flags.
type chainFlags struct {
	file  string
	shape string
	size  float64
	wraps []string
}

func (f *chainFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "chain document (YAML); overrides --shape, --size and --wrap")
	cmd.Flags().StringVar(&f.shape, "shape", "square", "leaf shape")
	cmd.Flags().Float64Var(&f.size, "size", 1, "leaf size: side length or radius")
	cmd.Flags().StringArrayVarP(&f.wraps, "wrap", "w", nil, "wrapper as kind=value, innermost first (repeatable)")
}

func (f *chainFlags) spec() (*decochain.ChainSpec, error) {
	if f.file != "" {
		r, err := os.Open(f.file)
		if err != nil {
			return nil, fmt.Errorf("open chain document: %w", err)
		}
		defer r.Close()
		return decochain.ParseChainSpec(r)
	}

	spec := &decochain.ChainSpec{Leaf: decochain.LeafSpec{Shape: f.shape, Size: f.size}}
	for _, w := range f.wraps {
		ws, err := decochain.ParseWrapperSpec(w)
		if err != nil {
			return nil, err
		}
		spec.Wrappers = append(spec.Wrappers, ws)
	}
	return spec, nil
}

func (f *chainFlags) build(opts *rootOptions) (decochain.Capability, error) {
	spec, err := f.spec()
	if err != nil {
		return nil, err
	}
	b := decochain.NewBuilder(decochain.DefaultRegistry(), decochain.WithBuilderLogger(opts.logger))
	return b.Build(*spec)
}
