package surface

import "testing"

// TestStateAlwaysMatches checks the leaf rule always reports a match.
func TestStateAlwaysMatches(t *testing.T) {
	s := NewState(42)
	id, ok := s.Apply(nil)
	if !ok || id != 42 {
		t.Fatalf("Apply() = (%d, %v), want (42, true)", id, ok)
	}
}

// TestConditionRuleGatesThen checks that Then only runs (and can only
// match) when Cond holds.
func TestConditionRuleGatesThen(t *testing.T) {
	ctx := testCtx()
	ctx.SurfaceDepth = 0 // Hole{} is true

	gated := NewCondition(Hole{}, NewState(1))
	if id, ok := gated.Apply(ctx); !ok || id != 1 {
		t.Fatalf("Apply() with a satisfied condition = (%d, %v), want (1, true)", id, ok)
	}

	ctx.SurfaceDepth = 5 // Hole{} is now false
	if _, ok := gated.Apply(ctx); ok {
		t.Fatalf("Apply() with a failed condition should decline")
	}
}

// TestSequenceTriesInOrder checks that Sequence returns the first matching
// child and never runs later ones once one has matched.
func TestSequenceTriesInOrder(t *testing.T) {
	ctx := testCtx()
	ctx.SurfaceDepth = 5 // Hole{} false, so the first branch declines

	seq := NewSequence(
		NewCondition(Hole{}, NewState(1)),
		NewCondition(Not{Inner: Hole{}}, NewState(2)),
		NewState(3), // would match if reached
	)
	id, ok := seq.Apply(ctx)
	if !ok || id != 2 {
		t.Fatalf("Apply() = (%d, %v), want (2, true) from the second branch", id, ok)
	}
}

// TestSequenceDeclinesWhenNoChildMatches checks the empty-sequence and
// all-declined cases both report no match.
func TestSequenceDeclinesWhenNoChildMatches(t *testing.T) {
	ctx := testCtx()
	ctx.SurfaceDepth = 5

	empty := NewSequence()
	if _, ok := empty.Apply(ctx); ok {
		t.Fatalf("empty Sequence should never match")
	}

	allDecline := NewSequence(NewCondition(Hole{}, NewState(1)))
	if _, ok := allDecline.Apply(ctx); ok {
		t.Fatalf("Sequence with only a declining child should not match")
	}
}
