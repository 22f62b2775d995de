package decochain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"
)

// ChainSpec describes a chain: one leaf, then wrappers applied in list order
// (innermost first).
type ChainSpec struct {
	Leaf     LeafSpec      `yaml:"leaf"`
	Wrappers []WrapperSpec `yaml:"wrappers"`
}

type LeafSpec struct {
	Shape string  `yaml:"shape"`
	Size  float64 `yaml:"size"`
}

type WrapperSpec struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
}

// ParseChainSpec decodes a YAML chain document. Unknown fields are rejected.
func ParseChainSpec(r io.Reader) (*ChainSpec, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var spec ChainSpec
	if err := dec.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, NewInvalidArgumentError("chain", "document is empty")
		}
		return nil, fmt.Errorf("decode chain spec: %w", err)
	}
	return &spec, nil
}

// ParseWrapperSpec parses the kind=value form used on the command line.
func ParseWrapperSpec(s string) (WrapperSpec, error) {
	kind, value, ok := strings.Cut(s, "=")
	kind = strings.TrimSpace(kind)
	if !ok || kind == "" {
		return WrapperSpec{}, NewInvalidArgumentError("wrapper", fmt.Sprintf("expected kind=value, got %q", s))
	}
	return WrapperSpec{Kind: kind, Value: value}, nil
}

// Builder turns a ChainSpec into a chain using the plugins of a Registry.
type Builder struct {
	reg    *Registry
	logger *slog.Logger
}

func NewBuilder(reg *Registry, opts ...func(*Builder)) *Builder {
	b := &Builder{reg: reg, logger: slog.New(slog.DiscardHandler)}
	for _, o := range opts {
		o(b)
	}
	return b
}

func WithBuilderLogger(l *slog.Logger) func(*Builder) {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Build constructs the leaf, then each wrapper around the previous result.
// It stops at the first failure; the error names the failing wrapper and
// wraps the underlying InvalidArgumentError or CycleViolationError.
func (b *Builder) Build(spec ChainSpec) (Capability, error) {
	if b.reg == nil {
		return nil, NewInvalidArgumentError("registry", "must not be nil")
	}
	shape, ok := b.reg.Shape(spec.Leaf.Shape)
	if !ok {
		return nil, NewInvalidArgumentError("shape", fmt.Sprintf("unknown shape %q", spec.Leaf.Shape))
	}
	current, err := shape.New(spec.Leaf.Size)
	if err != nil {
		return nil, fmt.Errorf("leaf %s: %w", spec.Leaf.Shape, err)
	}
	b.logger.Debug("leaf built", "shape", shape.Name, "size", spec.Leaf.Size)

	for i, w := range spec.Wrappers {
		plugin, ok := b.reg.Wrapper(w.Kind)
		if !ok {
			return nil, fmt.Errorf("wrapper %d: %w", i, NewInvalidArgumentError("kind", fmt.Sprintf("unknown wrapper kind %q", w.Kind)))
		}
		next, err := plugin.Wrap(current, w.Value, WithLogger(b.logger))
		if err != nil {
			b.logger.Debug("wrapper not built", "index", i, "kind", w.Kind, "error", err)
			return nil, fmt.Errorf("wrapper %d (%s=%s): %w", i, w.Kind, w.Value, err)
		}
		current = next
	}
	return current, nil
}

// Layered is implemented by every Node. It lets callers walk a chain without
// knowing the concrete kinds inside it.
type Layered interface {
	Capability
	HistoryCarrier
	Inner() Capability
	Tag() Tag
	PolicyName() string
	Applied() bool
}

// Layer is one level of a chain as reported by Layers.
type Layer struct {
	Depth       int    // 0 is the outermost
	Tag         Tag    // empty for the leaf
	Policy      string // empty for the leaf
	History     History
	Applied     bool
	Description string
}

// Layers walks c from the outside in and reports every node, ending with
// the leaf.
func Layers(c Capability) []Layer {
	var out []Layer
	for depth := 0; c != nil; depth++ {
		l, ok := c.(Layered)
		if !ok {
			out = append(out, Layer{Depth: depth, Applied: true, Description: c.Describe()})
			break
		}
		out = append(out, Layer{
			Depth:       depth,
			Tag:         l.Tag(),
			Policy:      l.PolicyName(),
			History:     l.History(),
			Applied:     l.Applied(),
			Description: l.Describe(),
		})
		c = l.Inner()
	}
	return out
}
