// Package decochain composes wrapping behaviours around a renderable shape.
//
// A chain is built bottom-up: a leaf Capability is wrapped by zero or more
// Nodes, each of which may itself be wrapped. Every Node is bound at the type
// level to a wrapper Kind and a CyclePolicy; the policy decides whether the
// same Kind may appear more than once along a chain.
package decochain

// Capability is implemented by leaves and wrappers alike.
type Capability interface {
	// Describe returns a textual description. It has no side effects.
	Describe() string
}

// CapabilityFunc adapts an ordinary function to a Capability.
type CapabilityFunc func() string

func (f CapabilityFunc) Describe() string { return f() }

// HistoryCarrier is implemented by capabilities that record which wrapper
// kinds were applied beneath them.
type HistoryCarrier interface {
	History() History
}

// inheritedHistory returns a copy of c's history, or nil when c is a plain
// leaf.
func inheritedHistory(c Capability) History {
	if hc, ok := c.(HistoryCarrier); ok {
		return hc.History().Clone()
	}
	return nil
}
