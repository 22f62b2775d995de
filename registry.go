package decochain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// WrapperPlugin builds wrappers of one kind from a textual value, e.g. the
// "red" in color=red.
type WrapperPlugin interface {
	// Names returns the kind names handled by this plugin (e.g., ["color", "colour"]).
	Names() []string
	// Policy returns the name of the cycle policy the kind is bound to.
	Policy() string
	// Wrap parses value and wraps inner with the resulting kind.
	Wrap(inner Capability, value string, opts ...Option) (Capability, error)
}

// KindPlugin is a WrapperPlugin for kind K, which is bound to policy P.
type KindPlugin[K Kind[P], P CyclePolicy] struct {
	Name    string
	Aliases []string
	Parse   func(value string) (K, error)
}

func (p KindPlugin[K, P]) Names() []string {
	return append([]string{p.Name}, p.Aliases...)
}

func (p KindPlugin[K, P]) Policy() string {
	var policy P
	return PolicyName(policy)
}

// Validate rejects a plugin without a name or a parser.
func (p KindPlugin[K, P]) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewInvalidArgumentError("plugin", "name must not be empty")
	}
	if p.Parse == nil {
		return NewInvalidArgumentError("plugin", fmt.Sprintf("%s: parse func must not be nil", p.Name))
	}
	return nil
}

func (p KindPlugin[K, P]) Wrap(inner Capability, value string, opts ...Option) (Capability, error) {
	if p.Parse == nil {
		return nil, NewInvalidArgumentError("plugin", fmt.Sprintf("%s: parse func must not be nil", p.Name))
	}
	kind, err := p.Parse(value)
	if err != nil {
		return nil, err
	}
	n, err := Wrap[K, P](inner, kind, opts...)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// ShapePlugin builds a leaf shape from its size.
type ShapePlugin struct {
	Name string
	New  func(size float64) (Capability, error)
}

// Registry maps shape and wrapper kind names to their plugins. Names are
// matched case-insensitively. The zero value is an empty registry.
type Registry struct {
	shapes   map[string]ShapePlugin
	wrappers map[string]WrapperPlugin
}

func NewRegistry() *Registry {
	return &Registry{
		shapes:   map[string]ShapePlugin{},
		wrappers: map[string]WrapperPlugin{},
	}
}

// Register adds a wrapper plugin under each of its names. A later
// registration for the same name replaces the earlier one. Plugins that
// implement Validator are checked first.
func (r *Registry) Register(p WrapperPlugin) error {
	if isNil(p) {
		return NewInvalidArgumentError("plugin", "must not be nil")
	}
	if v, ok := p.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	if r.wrappers == nil {
		r.wrappers = map[string]WrapperPlugin{}
	}
	for _, n := range p.Names() {
		r.wrappers[canonicalName(n)] = p
	}
	return nil
}

// RegisterShape adds a leaf shape plugin.
func (r *Registry) RegisterShape(p ShapePlugin) error {
	if p.New == nil {
		return NewInvalidArgumentError("shape", fmt.Sprintf("%s: constructor must not be nil", p.Name))
	}
	if r.shapes == nil {
		r.shapes = map[string]ShapePlugin{}
	}
	r.shapes[canonicalName(p.Name)] = p
	return nil
}

func (r *Registry) Wrapper(name string) (WrapperPlugin, bool) {
	p, ok := r.wrappers[canonicalName(name)]
	return p, ok
}

func (r *Registry) Shape(name string) (ShapePlugin, bool) {
	p, ok := r.shapes[canonicalName(name)]
	return p, ok
}

// WrapperNames returns the registered kind names, sorted.
func (r *Registry) WrapperNames() []string {
	names := make([]string, 0, len(r.wrappers))
	for n := range r.wrappers {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// ShapeNames returns the registered shape names, sorted.
func (r *Registry) ShapeNames() []string {
	names := make([]string, 0, len(r.shapes))
	for n := range r.shapes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// DefaultRegistry knows the square and circle shapes and the color and
// transparency wrappers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.RegisterShape(ShapePlugin{Name: "square", New: func(size float64) (Capability, error) {
		s, err := NewSquare(size)
		if err != nil {
			return nil, err
		}
		return s, nil
	}})
	r.RegisterShape(ShapePlugin{Name: "circle", New: func(size float64) (Capability, error) {
		c, err := NewCircle(size)
		if err != nil {
			return nil, err
		}
		return c, nil
	}})
	r.Register(KindPlugin[Color, Strict]{
		Name:    "color",
		Aliases: []string{"colour"},
		Parse: func(value string) (Color, error) {
			return Color{Name: strings.TrimSpace(value)}, nil
		},
	})
	r.Register(KindPlugin[Transparency, Permissive]{
		Name: "transparency",
		Parse: func(value string) (Transparency, error) {
			pct, err := parsePercent(value)
			if err != nil {
				return Transparency{}, err
			}
			return Transparency{Percent: pct}, nil
		},
	})
	return r
}

func parsePercent(value string) (float64, error) {
	v := strings.TrimSuffix(strings.TrimSpace(value), "%")
	pct, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, NewInvalidArgumentError("transparency", fmt.Sprintf("not a number: %q", value))
	}
	return pct, nil
}

func canonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
