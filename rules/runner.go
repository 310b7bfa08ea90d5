package rules

import (
	"context"

	"github.com/kestrelrts/missionvm/log"
	"github.com/kestrelrts/missionvm/world"
)

// namedEvent is a host notification translated into the rule engine's
// own event vocabulary (e.g. "unitDied", "buildingCompleted"); the
// interp package pushes these in via PushEvent, sourced from the
// world.EventHandlers callbacks it subscribes with.
type namedEvent struct {
	Name string
	Data map[string]any
}

type pendingAction struct {
	RuleID      string
	ExecuteTick int32
}

// Runner evaluates a MissionScript's rules against a world.View, one
// tick at a time (§4.F).
type Runner struct {
	World  world.View
	Script *MissionScript

	groups        map[string][]world.EntityID
	groupDefByName map[string]*EntityGroupDef
	flags         map[string]bool
	sideCash      map[int32]int32

	firedOnce       map[string]bool
	disabledRuntime map[string]bool
	repeatFireCount map[string]int32
	pending         []pendingAction

	eventsThisTick []namedEvent

	tick       int32
	evalRuleID string
	ctx        context.Context
}

// New builds a Runner for script, resolving group membership and
// applying StartingCredits/Flags from the document.
func New(w world.View, script *MissionScript) *Runner {
	r := &Runner{
		World:           w,
		Script:          script,
		groups:          map[string][]world.EntityID{},
		groupDefByName:  map[string]*EntityGroupDef{},
		flags:           map[string]bool{},
		sideCash:        map[int32]int32{},
		firedOnce:       map[string]bool{},
		disabledRuntime: map[string]bool{},
		repeatFireCount: map[string]int32{},
		ctx:             context.Background(),
	}
	for name, v := range script.Flags {
		r.flags[name] = v
	}
	if script.StartingCredits != nil {
		r.sideCash[0] = *script.StartingCredits
	}
	for _, g := range script.EntityGroups {
		r.groupDefByName[g.Name] = g
		if g.Spawn != nil {
			r.spawnGroup(g.Name)
		}
	}
	return r
}

// PushEvent records a named event fact visible to "event" triggers for
// the remainder of the current tick only.
func (r *Runner) PushEvent(name string, data map[string]any) {
	r.eventsThisTick = append(r.eventsThisTick, namedEvent{Name: name, Data: data})
}

// SideCash returns the rule runner's own credit ledger for side.
func (r *Runner) SideCash(side int32) int32 { return r.sideCash[side] }

// isEnabled reports whether a rule currently runs: false if a disableRule
// action has disabled it at runtime, otherwise its authored default. An
// enableRule action only clears such a runtime disable; a rule authored
// with enabled: false stays disabled.
func (r *Runner) isEnabled(rule *ScriptRule) bool {
	if r.disabledRuntime[rule.ID] {
		return false
	}
	return rule.Enabled()
}

// Tick advances the runner by one tick: refresh match groups, fire any
// rules whose trigger now holds, run due delayed actions, then clear
// the per-tick event buffer.
func (r *Runner) Tick(ctx context.Context, currentTick int32) {
	r.ctx = ctx
	r.tick = currentTick

	for name, def := range r.groupDefByName {
		if def.Match != nil {
			r.resolveMatchGroup(name)
		}
	}

	for _, rule := range r.Script.Rules {
		if !r.isEnabled(rule) {
			continue
		}
		if rule.Once() && r.firedOnce[rule.ID] {
			continue
		}
		r.evalRuleID = rule.ID
		if !r.evalTrigger(rule.Trigger) {
			continue
		}
		if rule.Trigger != nil && rule.Trigger.Type == "timerRepeat" {
			r.repeatFireCount[rule.ID]++
		}
		if rule.Once() {
			r.firedOnce[rule.ID] = true
		}
		if rule.Delay > 0 {
			r.pending = append(r.pending, pendingAction{RuleID: rule.ID, ExecuteTick: currentTick + rule.Delay})
			continue
		}
		r.fire(rule)
	}

	r.advancePending(currentTick)
	r.eventsThisTick = nil
}

func (r *Runner) fire(rule *ScriptRule) {
	log.Debug("rules: rule fired", log.F("ruleId", rule.ID), log.F("tick", r.tick))
	for _, a := range rule.Actions {
		r.execAction(a)
	}
}

func (r *Runner) advancePending(currentTick int32) {
	var remaining []pendingAction
	for _, p := range r.pending {
		if p.ExecuteTick > currentTick {
			remaining = append(remaining, p)
			continue
		}
		if rule := r.ruleByID(p.RuleID); rule != nil {
			r.fire(rule)
		}
	}
	r.pending = remaining
}

func (r *Runner) ruleByID(id string) *ScriptRule {
	for _, rule := range r.Script.Rules {
		if rule.ID == id {
			return rule
		}
	}
	return nil
}
