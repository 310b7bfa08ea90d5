package rules

import (
	"github.com/kestrelrts/missionvm/log"
	"github.com/kestrelrts/missionvm/world"
)

// execAction applies one action to the world/runtime. Actions never
// fail loudly (§7 category 2, "keep the mission running"); a malformed
// or unresolvable action logs a warning and is skipped.
func (r *Runner) execAction(a *ActionDef) {
	switch a.Type {
	case "spawn":
		r.spawnGroup(a.GroupName)

	case "move":
		for _, eid := range r.groups[a.GroupName] {
			r.World.IssueMove(eid, a.X, a.Z)
		}

	case "attackMove":
		members := r.groups[a.GroupName]
		r.World.SetAttackMove(members)
		for _, eid := range members {
			r.World.IssueMove(eid, a.X, a.Z)
		}

	case "damage":
		for _, eid := range r.groups[a.GroupName] {
			h, ok := r.World.Health(eid)
			if !ok {
				continue
			}
			newHealth := h - a.Damage
			if newHealth < 0 {
				newHealth = 0
			}
			r.World.SetHealth(eid, newHealth)
		}

	case "kill":
		for _, eid := range r.groups[a.GroupName] {
			r.World.KillEntity(eid)
		}

	case "changeOwner":
		for _, eid := range r.groups[a.GroupName] {
			r.World.SetOwner(eid, a.Owner)
		}

	case "grantCredits":
		r.sideCash[a.Side] += a.Credits

	case "setFlag":
		val := true
		if a.FlagValue != nil {
			val = *a.FlagValue
		}
		r.flags[a.FlagName] = val

	case "showDialog":
		r.World.PushNotification(r.ctx, "dialog", a.DialogText)

	case "setObjective":
		r.World.PushNotification(r.ctx, "objective", a.ObjectiveText)

	case "message":
		r.World.PushNotification(r.ctx, "message", a.Message)

	case "playSound":
		r.World.PlaySfx(r.ctx, a.Sound)

	case "revealArea":
		r.World.RevealArea(r.ctx, world.Point{X: a.X, Z: a.Z}, a.Radius)

	case "coverArea":
		r.World.CoverArea(r.ctx, world.Point{X: a.X, Z: a.Z}, a.Radius)

	case "panCamera":
		r.World.PanCameraTo(r.ctx, world.Point{X: a.X, Z: a.Z})

	case "spawnCrate":
		r.World.NotifyEffect(r.ctx, "crate:"+a.CrateKind, world.Point{X: a.X, Z: a.Z}, nil)

	case "declareVictory":
		r.World.DeclareVictory(r.ctx)

	case "declareDefeat":
		r.World.DeclareDefeat(r.ctx)

	case "setVictoryCondition":
		r.Script.VictoryCondition = a.VictoryConditionText

	case "enableRule":
		delete(r.disabledRuntime, a.TargetRuleID)

	case "disableRule":
		r.disabledRuntime[a.TargetRuleID] = true

	default:
		log.Warn("rules: unknown action type", log.F("type", a.Type))
	}
}

func (r *Runner) spawnGroup(name string) {
	def := r.groupDefByName[name]
	if def == nil || def.Spawn == nil {
		log.Warn("rules: spawn action references non-spawn group", log.F("group", name))
		return
	}
	spec := def.Spawn
	ids := make([]world.EntityID, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		ids = append(ids, r.World.SpawnUnit(spec.TypeName, spec.Owner, spec.X, spec.Z))
	}
	r.groups[name] = append(r.groups[name], ids...)
}

// resolveMatchGroup refreshes a match-defined group's membership by
// querying live entities for the side (and optional type/area filter).
// Members that have died stay in the group, so groupDefeated can fire.
func (r *Runner) resolveMatchGroup(name string) {
	def := r.groupDefByName[name]
	if def == nil || def.Match == nil {
		return
	}
	m := def.Match
	candidates := append(r.World.LiveUnitsOf(m.Owner), r.World.LiveBuildingsOf(m.Owner)...)
	var out []world.EntityID
	for _, eid := range candidates {
		if m.TypeName != "" {
			tn, ok := r.World.TypeOf(eid)
			if !ok || tn != m.TypeName {
				continue
			}
		}
		if m.Near != nil {
			p, ok := r.World.Position(eid)
			if !ok || !withinRadius(p, *m.Near) {
				continue
			}
		}
		out = append(out, eid)
	}
	for _, eid := range r.groups[name] {
		if !isAlive(r.World, eid) {
			out = append(out, eid)
		}
	}
	r.groups[name] = out
}
