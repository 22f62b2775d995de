package decochain

// CyclePolicy decides whether a wrapper kind may recur along a chain.
//
// MayRegister is consulted once, when a node of kind tag is constructed, with
// the history inherited from the wrapped value. An error aborts construction.
//
// MayApply is consulted on every Describe with the history beneath the node
// (its own tag excluded). An error only suppresses the node's effect.
//
// Implementations hold no per-chain state and may be shared between chains.
type CyclePolicy interface {
	MayRegister(tag Tag, history History) error
	MayApply(tag Tag, remaining History) error
}

// Permissive allows every kind any number of times.
type Permissive struct{}

func (Permissive) MayRegister(Tag, History) error { return nil }
func (Permissive) MayApply(Tag, History) error    { return nil }
func (Permissive) String() string                 { return "permissive" }

// Strict rejects a kind that is already in the history it is checked against.
// At apply time that is only the history beneath the node, so a duplicate
// introduced further out is not seen from the inner node.
type Strict struct{}

func (Strict) MayRegister(tag Tag, history History) error { return rejectRepeat(tag, history) }
func (Strict) MayApply(tag Tag, remaining History) error  { return rejectRepeat(tag, remaining) }
func (Strict) String() string                             { return "strict" }

func rejectRepeat(tag Tag, history History) error {
	if history.Contains(tag) {
		return NewCycleViolationError(tag, history)
	}
	return nil
}

// PolicyName returns a short name for p, for logs and listings.
func PolicyName(p CyclePolicy) string {
	if s, ok := p.(interface{ String() string }); ok {
		return s.String()
	}
	if p == nil {
		return "none"
	}
	return "custom"
}
