// Package interp implements the top-level Interpreter: init/tick/dispose,
// wiring tok+vm+dispatch+rules+save into the single entry point a host
// embeds (§5, §6.5).
package interp

import (
	"context"

	"github.com/kestrelrts/missionvm/dispatch"
	"github.com/kestrelrts/missionvm/log"
	"github.com/kestrelrts/missionvm/rules"
	"github.com/kestrelrts/missionvm/save"
	"github.com/kestrelrts/missionvm/tok"
	"github.com/kestrelrts/missionvm/vm"
	"github.com/kestrelrts/missionvm/world"
)

// TickRate is the fixed simulation cadence scripts assume when computing
// elapsed time from ModelTick (§6.5).
const TickRate = 25

// Interpreter is the single object a host embeds: one .tok program (or
// one JSON mission script, or both) driven tick by tick against a
// world.View.
type Interpreter struct {
	world world.View
	seed  uint32

	prog   *tok.Program
	slots  *vm.Slots
	sides  *vm.SideTable
	events *vm.EventLog
	eval   *vm.Evaluator
	disp   *dispatch.Dispatcher

	script *rules.MissionScript
	runner *rules.Runner

	sub       world.SubscriptionHandle
	haveSub   bool
	lastTick  int32
	initDone  bool
}

// New returns an Interpreter bound to w. Nothing is loaded until Init.
func New(w world.View, seed uint32) *Interpreter {
	return &Interpreter{world: w, seed: seed}
}

// Init loads a .tok program, a JSON mission script, or both (either may
// be nil), replacing anything previously loaded. Calling Init on an
// already-initialized instance implicitly disposes it first (§4.G
// "Re-init hygiene", §5 "a second init implicitly calls dispose first"),
// so no stale event-log facts or listener registrations leak into the
// new mission.
func (in *Interpreter) Init(ctx context.Context, tokBytes []byte, script *rules.MissionScript) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("interp: recovered from init panic", log.F("panic", r))
			err = nil // §7: never throw across the VM/host boundary; keep the mission running
		}
	}()

	if in.initDone {
		in.Dispose()
	}

	if tokBytes != nil {
		in.prog = tok.Decode(tokBytes)
		in.slots = vm.NewSlots(in.prog.SlotCount)
		in.sides = vm.NewSideTable()
		in.events = vm.NewEventLog()
		in.eval = vm.NewEvaluator()
		in.disp = dispatch.New(in.world, in.seed)
		in.disp.Slots = in.slots
		in.disp.Sides = in.sides
		in.disp.Events = in.events
		in.disp.Ctx = ctx
	}

	if script != nil {
		in.script = script
		in.runner = rules.New(in.world, script)
	}

	in.sub = in.world.Subscribe(world.EventHandlers{
		UnitDied:          in.onUnitDied,
		UnitAttacked:      in.onUnitAttacked,
		BuildingCompleted: in.onBuildingCompleted,
	})
	in.haveSub = true
	in.lastTick = 0
	in.initDone = true
	return nil
}

// Dispose unregisters event listeners and zeroes interpreter state
// (§5 "Cancellation").
func (in *Interpreter) Dispose() {
	if in.haveSub {
		in.world.Unsubscribe(in.sub)
		in.haveSub = false
	}
	in.prog = nil
	in.slots = nil
	in.sides = nil
	in.events = nil
	in.eval = nil
	in.disp = nil
	in.script = nil
	in.runner = nil
	in.initDone = false
}

// Tick advances both the .tok evaluator (if loaded) and the JSON rule
// runner (if loaded) by one simulation step. currentTick is the host's
// monotonic tick counter (§6.5, 25/s).
func (in *Interpreter) Tick(ctx context.Context, currentTick int32) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("interp: recovered from tick panic", log.F("panic", r), log.F("tick", currentTick))
		}
	}()

	in.lastTick = currentTick
	if in.disp != nil {
		in.disp.Ctx = ctx
		in.disp.CurrentTick = currentTick
		in.eval.Tick(in.prog, in.slots, in.disp.AsEvaluatorDispatcher())
		in.events.Clear()
	}
	if in.runner != nil {
		in.runner.Tick(ctx, currentTick)
	}
}

func (in *Interpreter) onUnitDied(victim, killer world.EntityID) {
	if in.events != nil {
		in.events.RecordDestroyed(int32(victim))
	}
	if in.runner != nil {
		in.runner.PushEvent("unitDied", map[string]any{"victim": int32(victim), "killer": int32(killer)})
	}
}

func (in *Interpreter) onUnitAttacked(attacker, target world.EntityID) {
	if in.events != nil && in.disp != nil {
		if owner, ok := in.world.Owner(target); ok {
			in.events.RecordObjectAttacksSide(int32(attacker), vm.Side(owner))
			if attOwner, ok := in.world.Owner(attacker); ok {
				in.events.RecordSideAttacksSide(vm.Side(attOwner), vm.Side(owner))
			}
		}
	}
	if in.runner != nil {
		in.runner.PushEvent("unitAttacked", map[string]any{"attacker": int32(attacker), "target": int32(target)})
	}
}

func (in *Interpreter) onBuildingCompleted(builder, eid world.EntityID, typeName string) {
	if in.events != nil {
		if owner, ok := in.world.Owner(eid); ok {
			in.events.RecordConstructed(vm.Side(owner), int32(eid))
			in.events.RecordTypeConstructed(vm.Side(owner), typeName, int32(eid))
		}
	}
	if in.runner != nil {
		in.runner.PushEvent("buildingCompleted", map[string]any{"builder": int32(builder), "eid": int32(eid), "typeName": typeName})
	}
}

// Save produces a plain-data snapshot of everything currently loaded,
// rewriting entity fields through dense (§4.G, §6.4).
func (in *Interpreter) Save(dense save.DenseMap) save.MissionSaveState {
	var s save.MissionSaveState
	if in.runner != nil {
		s = save.EncodeRulesState(in.runner.Snapshot(), dense)
	}
	if in.disp != nil {
		ts := save.EncodeTokState(in.slots, in.sides, in.events, in.disp.State, dense)
		s = save.WithTokState(s, ts)
	}
	return s
}

// Restore replaces currently-loaded state with s, rewriting entity
// fields through inv. Restore is idempotent.
func (in *Interpreter) Restore(s save.MissionSaveState, inv save.InverseMap) {
	if in.disp != nil {
		save.ApplyTokState(s.TokState, in.slots, in.sides, in.disp.State, inv)
	}
	if in.runner != nil {
		in.runner.Restore(save.DecodeRulesState(s, inv))
	}
}
