package save

import "reflect"

// WithTokState returns s with its TokState field set to ts. Pure JSON
// missions never call this; tok-backed missions merge their evaluator
// snapshot in after building the rules-shaped fields (§4.G: "a save
// produced by one runner MUST round-trip through the other's restore
// as a no-op on its non-owned fields").
func WithTokState(s MissionSaveState, ts *TokState) MissionSaveState {
	s.TokState = ts
	return s
}

// Equal performs a field-wise comparison of two MissionSaveState values,
// used by the round-trip property tests of §8
// (serialize(restore(serialize(s))) == serialize(s)).
func Equal(a, b MissionSaveState) bool {
	return reflect.DeepEqual(normalize(a), normalize(b)) &&
		reflect.DeepEqual(a.TokState, b.TokState)
}

// normalize clears TokState (compared separately) and replaces nil maps
// with empty ones, so map nilness introduced by an empty encode doesn't
// cause a spurious mismatch against an explicitly-empty one built by hand
// in a test. Slice fields are compared as they are.
func normalize(s MissionSaveState) MissionSaveState {
	s.TokState = nil
	if s.Flags == nil {
		s.Flags = map[string]bool{}
	}
	if s.GroupEntities == nil {
		s.GroupEntities = map[string][]int32{}
	}
	if s.RepeatCounts == nil {
		s.RepeatCounts = map[string]int32{}
	}
	if s.RulesSideCash == nil {
		s.RulesSideCash = map[int32]int32{}
	}
	return s
}
