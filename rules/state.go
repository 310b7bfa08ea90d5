package rules

import "github.com/kestrelrts/missionvm/world"

// State is the save/restore-shaped snapshot of a Runner's runtime state
// (§4.G). It holds plain data only, so the save package can rewrite its
// entity-bearing fields through the host's dense-index mapping.
type State struct {
	Groups          map[string][]int32
	Flags           map[string]bool
	SideCash        map[int32]int32
	FiredOnce       map[string]bool
	DisabledRuntime map[string]bool
	RepeatFireCount map[string]int32
	Pending         []PendingActionState
}

// PendingActionState is the serializable form of a pendingAction.
type PendingActionState struct {
	RuleID      string
	ExecuteTick int32
}

// Snapshot captures r's current runtime state.
func (r *Runner) Snapshot() State {
	s := State{
		Groups:          map[string][]int32{},
		Flags:           map[string]bool{},
		SideCash:        map[int32]int32{},
		FiredOnce:       map[string]bool{},
		DisabledRuntime: map[string]bool{},
		RepeatFireCount: map[string]int32{},
	}
	for name, members := range r.groups {
		ids := make([]int32, len(members))
		for i, eid := range members {
			ids[i] = int32(eid)
		}
		s.Groups[name] = ids
	}
	for k, v := range r.flags {
		s.Flags[k] = v
	}
	for k, v := range r.sideCash {
		s.SideCash[k] = v
	}
	for k, v := range r.firedOnce {
		s.FiredOnce[k] = v
	}
	for k, v := range r.disabledRuntime {
		s.DisabledRuntime[k] = v
	}
	for k, v := range r.repeatFireCount {
		s.RepeatFireCount[k] = v
	}
	for _, p := range r.pending {
		s.Pending = append(s.Pending, PendingActionState{RuleID: p.RuleID, ExecuteTick: p.ExecuteTick})
	}
	return s
}

// Restore replaces r's runtime state with s. Restore is idempotent:
// calling it twice with the same s yields the same resulting state.
func (r *Runner) Restore(s State) {
	r.groups = map[string][]world.EntityID{}
	for name, ids := range s.Groups {
		members := make([]world.EntityID, len(ids))
		for i, id := range ids {
			members[i] = world.EntityID(id)
		}
		r.groups[name] = members
	}
	r.flags = map[string]bool{}
	for k, v := range s.Flags {
		r.flags[k] = v
	}
	r.sideCash = map[int32]int32{}
	for k, v := range s.SideCash {
		r.sideCash[k] = v
	}
	r.firedOnce = map[string]bool{}
	for k, v := range s.FiredOnce {
		r.firedOnce[k] = v
	}
	r.disabledRuntime = map[string]bool{}
	for k, v := range s.DisabledRuntime {
		r.disabledRuntime[k] = v
	}
	r.repeatFireCount = map[string]int32{}
	for k, v := range s.RepeatFireCount {
		r.repeatFireCount[k] = v
	}
	r.pending = nil
	for _, p := range s.Pending {
		r.pending = append(r.pending, pendingAction{RuleID: p.RuleID, ExecuteTick: p.ExecuteTick})
	}
}
