package rules

import "github.com/kestrelrts/missionvm/world"

// evalTrigger reports whether t fires on the current tick, given r's
// runtime state. Composers (and/or/not) recurse; leaf triggers read
// r's groups, flags, and this-tick event buffer.
func (r *Runner) evalTrigger(t *TriggerDef) bool {
	if t == nil {
		return false
	}
	switch t.Type {
	case "always":
		return true

	case "timer":
		return r.tick == t.Tick

	case "timerRepeat":
		start := t.Start
		if r.tick < start {
			return false
		}
		if t.Interval <= 0 {
			return false
		}
		if (r.tick-start)%t.Interval != 0 {
			return false
		}
		if t.Limit > 0 && r.repeatFireCount[r.evalRuleID] >= t.Limit {
			return false
		}
		return true

	case "event":
		for _, ev := range r.eventsThisTick {
			if ev.Name != t.Name {
				continue
			}
			if matchesFilter(ev.Data, t.Filter) {
				return true
			}
		}
		return false

	case "groupDefeated":
		members := r.groups[t.Name]
		if len(members) == 0 {
			return false
		}
		for _, eid := range members {
			if isAlive(r.World, eid) {
				return false
			}
		}
		return true

	case "groupReachedArea":
		if t.Area == nil {
			return false
		}
		members := r.groups[t.Name]
		if len(members) == 0 {
			return false
		}
		for _, eid := range members {
			p, ok := r.World.Position(eid)
			if !ok {
				return false
			}
			if !withinRadius(p, *t.Area) {
				return false
			}
		}
		return true

	case "buildingCount", "unitCount":
		ids := r.World.LiveUnitsOf(t.Owner)
		if t.Type == "buildingCount" {
			ids = r.World.LiveBuildingsOf(t.Owner)
		}
		n := 0
		for _, eid := range ids {
			if tn, ok := r.World.TypeOf(eid); t.TypeName == "" || (ok && tn == t.TypeName) {
				n++
			}
		}
		return compareCount(n, t.Op, t.Value)

	case "flag":
		want := true
		if t.FlagValue != nil {
			want = *t.FlagValue
		}
		return r.flags[t.Name] == want

	case "and":
		for _, sub := range t.Sub {
			if !r.evalTrigger(sub) {
				return false
			}
		}
		return len(t.Sub) > 0

	case "or":
		for _, sub := range t.Sub {
			if r.evalTrigger(sub) {
				return true
			}
		}
		return false

	case "not":
		return !r.evalTrigger(t.Not)
	}
	return false
}

func matchesFilter(data map[string]any, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := data[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}

func compareCount(count int, op string, value int32) bool {
	c := int32(count)
	switch op {
	case ">":
		return c > value
	case ">=", "":
		return c >= value
	case "<":
		return c < value
	case "<=":
		return c <= value
	case "==":
		return c == value
	case "!=":
		return c != value
	}
	return false
}

func withinRadius(p world.Point, a AreaDef) bool {
	dx := float64(p.X - a.X)
	dz := float64(p.Z - a.Z)
	return dx*dx+dz*dz <= float64(a.Radius)*float64(a.Radius)
}

func isAlive(w world.View, eid world.EntityID) bool {
	h, ok := w.Health(eid)
	return ok && h > 0
}
