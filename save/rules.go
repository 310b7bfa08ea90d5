package save

import "github.com/kestrelrts/missionvm/rules"

// EncodeRulesState folds a rules.State into the shared MissionSaveState
// shape, rewriting group membership through dense (§6.4).
func EncodeRulesState(rs rules.State, dense DenseMap) MissionSaveState {
	groupEntities := map[string][]int32{}
	for name, members := range rs.Groups {
		var idxs []int32
		for _, eid := range members {
			if idx := toDense(dense, eid); idx >= 0 {
				idxs = append(idxs, idx)
			}
		}
		groupEntities[name] = idxs
	}

	var fired []string
	for id, v := range rs.FiredOnce {
		if v {
			fired = append(fired, id)
		}
	}
	var disabled []string
	for id, v := range rs.DisabledRuntime {
		if v {
			disabled = append(disabled, id)
		}
	}

	flags := map[string]bool{}
	for k, v := range rs.Flags {
		flags[k] = v
	}
	repeats := map[string]int32{}
	for k, v := range rs.RepeatFireCount {
		repeats[k] = v
	}

	var pending []PendingDelayed
	for _, p := range rs.Pending {
		pending = append(pending, PendingDelayed{RuleID: p.RuleID, ExecuteTick: p.ExecuteTick})
	}

	cash := map[int32]int32{}
	for k, v := range rs.SideCash {
		cash[k] = v
	}

	return MissionSaveState{
		FiredRuleIDs:   fired,
		Flags:          flags,
		GroupEntities:  groupEntities,
		DisabledRules:  disabled,
		RepeatCounts:   repeats,
		PendingDelayed: pending,
		RulesSideCash:  cash,
	}
}

// DecodeRulesState is the inverse of EncodeRulesState, rewriting group
// membership back through inv.
func DecodeRulesState(s MissionSaveState, inv InverseMap) rules.State {
	groups := map[string][]int32{}
	for name, idxs := range s.GroupEntities {
		var members []int32
		for _, idx := range idxs {
			if eid := fromDense(inv, idx); eid >= 0 {
				members = append(members, eid)
			}
		}
		groups[name] = members
	}

	firedOnce := map[string]bool{}
	for _, id := range s.FiredRuleIDs {
		firedOnce[id] = true
	}
	disabled := map[string]bool{}
	for _, id := range s.DisabledRules {
		disabled[id] = true
	}

	flags := map[string]bool{}
	for k, v := range s.Flags {
		flags[k] = v
	}
	repeats := map[string]int32{}
	for k, v := range s.RepeatCounts {
		repeats[k] = v
	}

	var pending []rules.PendingActionState
	for _, p := range s.PendingDelayed {
		pending = append(pending, rules.PendingActionState{RuleID: p.RuleID, ExecuteTick: p.ExecuteTick})
	}

	cash := map[int32]int32{}
	for k, v := range s.RulesSideCash {
		cash[k] = v
	}

	return rules.State{
		Groups:          groups,
		Flags:           flags,
		SideCash:        cash,
		FiredOnce:       firedOnce,
		DisabledRuntime: disabled,
		RepeatFireCount: repeats,
		Pending:         pending,
	}
}
