package surface

// Rule is one node of the fixed forest the materializer invokes at every
// stone block during the column scan: Sequence, Condition-gated, State
// (leaf placement) and Bandlands (terracotta banding).
type Rule interface {
	// Apply returns the GlobalID to place and true if this rule matched,
	// or (0, false) if it declined (the scan falls through to the next
	// rule, or leaves the block as-is if none match).
	Apply(ctx *Context) (uint32, bool)
}

// Sequence tries each child rule in order and returns the first match.
type Sequence struct{ Rules []Rule }

func NewSequence(rules ...Rule) Sequence { return Sequence{Rules: rules} }

func (s Sequence) Apply(ctx *Context) (uint32, bool) {
	for _, r := range s.Rules {
		if id, ok := r.Apply(ctx); ok {
			return id, true
		}
	}
	return 0, false
}

// ConditionRule gates Then behind Cond: Then only runs (and can only
// match) when Cond holds.
type ConditionRule struct {
	Cond Condition
	Then Rule
}

func NewCondition(cond Condition, then Rule) ConditionRule {
	return ConditionRule{Cond: cond, Then: then}
}

func (c ConditionRule) Apply(ctx *Context) (uint32, bool) {
	if !c.Cond.Test(ctx) {
		return 0, false
	}
	return c.Then.Apply(ctx)
}

// State is a leaf rule that always places a fixed block.
type State struct{ Block uint32 }

func NewState(block uint32) State { return State{Block: block} }

func (s State) Apply(*Context) (uint32, bool) { return s.Block, true }
