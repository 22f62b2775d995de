package decochain

import (
	"log/slog"
	"reflect"
)

// Node wraps exactly one inner Capability with the effect of kind K, under
// the cycle policy P that K is bound to. Node[Color, Permissive] does not
// compile.
//
// A Node is immutable once built; it is safe to Describe it from several
// goroutines.
type Node[K Kind[P], P CyclePolicy] struct {
	inner     Capability
	kind      K
	policy    P
	inherited History // history beneath this node
	history   History // inherited plus own tag
	logger    *slog.Logger
}

// ColoredShape may carry a color only once along its chain.
type ColoredShape = Node[Color, Strict]

// TransparentShape applies its transparency regardless of what is beneath it.
type TransparentShape = Node[Transparency, Permissive]

// Option configures a Node at construction.
type Option func(*nodeOptions)

type nodeOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for registration and skipped effects.
func WithLogger(l *slog.Logger) Option {
	return func(o *nodeOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Wrap builds a node of kind K around inner using the policy the kind is
// bound to.
func Wrap[K Kind[P], P CyclePolicy](inner Capability, kind K, opts ...Option) (*Node[K, P], error) {
	return WrapWith[K, P](inner, kind, kind.Policy(), opts...)
}

// WrapWith builds a node of kind K around inner using the given instance of
// the kind's policy type.
//
// It fails with an InvalidArgumentError when inner or policy is nil, or when
// kind rejects its own configuration, and with whatever MayRegister returns
// (a CycleViolationError for Strict) when the policy refuses the kind. On
// failure no node is returned and inner is left untouched.
func WrapWith[K Kind[P], P CyclePolicy](inner Capability, kind K, policy P, opts ...Option) (*Node[K, P], error) {
	if isNil(inner) {
		return nil, NewInvalidArgumentError("inner", "must not be nil")
	}
	if isNil(policy) {
		return nil, NewInvalidArgumentError("policy", "must not be nil")
	}
	if v, ok := any(kind).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}

	o := nodeOptions{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	tag := kind.Tag()
	inherited := inheritedHistory(inner)
	if err := policy.MayRegister(tag, inherited); err != nil {
		o.logger.Debug("wrapper rejected", "tag", tag, "policy", PolicyName(policy), "history", inherited.String(), "error", err)
		return nil, err
	}

	history := make(History, 0, len(inherited)+1)
	history = append(history, inherited...)
	history = append(history, tag)

	o.logger.Debug("wrapper registered", "tag", tag, "policy", PolicyName(policy), "history", history.String())

	return &Node[K, P]{
		inner:     inner,
		kind:      kind,
		policy:    policy,
		inherited: inherited,
		history:   history,
		logger:    o.logger,
	}, nil
}

// NewColoredShape wraps inner with a strict color.
func NewColoredShape(inner Capability, color string, opts ...Option) (*ColoredShape, error) {
	return Wrap[Color, Strict](inner, Color{Name: color}, opts...)
}

// NewTransparentShape wraps inner with a permissive transparency.
func NewTransparentShape(inner Capability, percent float64, opts ...Option) (*TransparentShape, error) {
	return Wrap[Transparency, Permissive](inner, Transparency{Percent: percent}, opts...)
}

// Describe returns the inner description, extended by this node's effect
// when the policy allows it. A refusal is not an error: the inner
// description is returned unchanged.
func (n *Node[K, P]) Describe() string {
	inner := n.inner.Describe()
	if err := n.policy.MayApply(n.kind.Tag(), n.inherited); err != nil {
		n.logger.Debug("wrapper effect skipped", "tag", n.kind.Tag(), "error", err)
		return inner
	}
	return n.kind.Decorate(inner)
}

// Applied reports whether Describe currently applies this node's effect.
func (n *Node[K, P]) Applied() bool {
	return n.policy.MayApply(n.kind.Tag(), n.inherited) == nil
}

// History returns a copy of the tags recorded up to and including this node.
func (n *Node[K, P]) History() History { return n.history.Clone() }

func (n *Node[K, P]) Inner() Capability  { return n.inner }
func (n *Node[K, P]) Kind() K            { return n.kind }
func (n *Node[K, P]) Tag() Tag           { return n.kind.Tag() }
func (n *Node[K, P]) Policy() P          { return n.policy }
func (n *Node[K, P]) PolicyName() string { return PolicyName(n.policy) }

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
