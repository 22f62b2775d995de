package decochain

import (
	"fmt"
	"slices"
	"strings"
)

// Tag identifies a wrapper implementation. Two tags are equal iff they name
// the same wrapper kind.
type Tag string

// History is the ordered record of wrapper tags applied along a chain, in
// the order the wrappers were constructed (innermost first).
type History []Tag

// Contains reports whether tag is present.
func (h History) Contains(tag Tag) bool {
	return slices.Contains(h, tag)
}

// Clone returns an independent copy. A nil history clones to nil.
func (h History) Clone() History {
	if h == nil {
		return nil
	}
	return slices.Clone(h)
}

// String renders the history as [a b c].
func (h History) String() string {
	parts := make([]string, len(h))
	for i, t := range h {
		parts[i] = string(t)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Kind is a wrapper implementation: a type-level Tag, the effect it
// contributes to the inner description, and the cycle policy P it is bound
// to. Tag and Policy must not depend on the value of the receiver.
//
// Because P is part of the method set, a kind satisfies Kind for exactly one
// policy type: Color is a Kind[Strict] and never a Kind[Permissive].
type Kind[P CyclePolicy] interface {
	Tag() Tag
	Decorate(inner string) string
	Policy() P
}

// Validator is optionally implemented by a Kind to reject bad configuration
// before a node is built.
type Validator interface {
	Validate() error
}

const (
	ColorTag        Tag = "color"
	TransparencyTag Tag = "transparency"
)

// Color paints a shape.
type Color struct {
	Name string
}

var (
	_ Kind[Strict]     = Color{}
	_ Kind[Permissive] = Transparency{}
)

func (Color) Tag() Tag       { return ColorTag }
func (Color) Policy() Strict { return Strict{} }

func (c Color) Decorate(inner string) string {
	return fmt.Sprintf("%s has the color %s", inner, c.Name)
}

func (c Color) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewInvalidArgumentError("color", "must not be empty")
	}
	return nil
}

// Transparency makes a shape partly see-through.
type Transparency struct {
	Percent float64
}

func (Transparency) Tag() Tag           { return TransparencyTag }
func (Transparency) Policy() Permissive { return Permissive{} }

func (t Transparency) Decorate(inner string) string {
	return fmt.Sprintf("%s with transparency %s%%", inner, formatNumber(t.Percent))
}

func (t Transparency) Validate() error {
	if t.Percent < 0 || t.Percent > 100 {
		return NewInvalidArgumentError("transparency", fmt.Sprintf("must be within [0, 100], got %s", formatNumber(t.Percent)))
	}
	return nil
}
