package dispatch

import (
	"context"
	"math"

	"github.com/kestrelrts/missionvm/log"
	"github.com/kestrelrts/missionvm/vm"
	"github.com/kestrelrts/missionvm/world"
)

// Dispatcher is the finite switch bridging the evaluator to the host
// world. Despite the size of the function catalog this stays a single
// switch over funcId (§9 "Dispatch as a finite switch"): no registry, no
// virtual dispatch.
type Dispatcher struct {
	World   world.View
	Slots   *vm.Slots
	Sides   *vm.SideTable
	Events  *vm.EventLog
	State   *State
	Strings StringTable

	Ctx         context.Context
	CurrentTick int32
}

// New returns a Dispatcher wired to w, with a string table snapshotted
// once (§9 "String-table drift") and a PRNG seeded from seed.
func New(w world.View, seed uint32) *Dispatcher {
	units := append([]string(nil), w.UnitTypeNames()...)
	buildings := append([]string(nil), w.BuildingTypeNames()...)
	return &Dispatcher{
		World:   w,
		Slots:   vm.NewSlots(0),
		Sides:   vm.NewSideTable(),
		Events:  vm.NewEventLog(),
		State:   NewState(seed),
		Strings: StringTable{Units: units, Buildings: buildings},
		Ctx:     context.Background(),
	}
}

// AsEvaluatorDispatcher adapts this Dispatcher to the vm.Dispatcher seam.
func (d *Dispatcher) AsEvaluatorDispatcher() vm.Dispatcher {
	return vm.Dispatcher{Call: d.Call}
}

// Call evaluates one host function call. args have already been evaluated
// by the caller, in left-to-right order.
func (d *Dispatcher) Call(funcID int, args []any) any {
	switch funcID {
	case fnModelTick:
		return d.CurrentTick
	case fnRandom:
		return d.random(argInt(args, 0))
	case fnMultiplayer:
		return int32(0)

	case fnCreateSide, fnGetPlayerSide, fnGetEnemySide, fnGetNeutralSide,
		fnSideEnemyTo, fnSideFriendTo, fnSideNeutralTo:
		return d.callSides(funcID, args)

	case fnGetSidePosition, fnGetEntrancePoint, fnGetNeutralEntrancePoint,
		fnGetScriptPoint, fnGetUnusedBasePoint:
		return d.callPoints(funcID, args)

	case fnNewObject, fnNewObjectInAPC, fnNewObjectOffsetOrientation:
		return d.callSpawn(funcID, args)

	case fnObjectValid, fnObjectDestroyed, fnObjectNearToSide, fnObjectNearToObject,
		fnObjectGetHealth, fnObjectMaxHealth, fnObjectSetHealth, fnObjectChangeSide,
		fnObjectChange, fnObjectRemove, fnObjectDeploy, fnObjectUndeploy, fnObjectSell,
		fnObjectInfect, fnObjectDetonate:
		return d.callObjects(funcID, args)

	case fnSideUnitCount, fnSideBuildingCount, fnSideAIDone, fnSideNearToSide, fnSideNearToPoint:
		return d.callSideQueries(funcID, args)

	case fnSideAIAggressive, fnSideAIMove, fnSideAIStop, fnSideAIAttackObject,
		fnSideAIGuardObject, fnSideAIExitMap, fnSideAIEncounterAttack,
		fnSideAIBehaviourAggressive, fnSideAIBehaviourRetreat, fnSideAIBehaviourNormal,
		fnSideAIBehaviourDefensive, fnSideAIBehaviourShuffle, fnSideAIHeadlessChicken,
		fnSideAIEnterBuilding, fnSideAIEncounterIgnore, fnSideAIControl:
		return d.callAIOrders(funcID, args)

	case fnMessage, fnGiftingMessage, fnTimerMessage:
		return d.callMessages(funcID, args)

	case fnAddSideCash, fnSetSideCash, fnGetSideCash, fnGetSideSpice:
		return d.callCredits(funcID, args)

	case fnCameraLookAtPoint, fnCameraPanToPoint, fnCameraScrollToPoint, fnCameraTrackObject,
		fnCameraStartRotate, fnCameraStopRotate, fnCameraIsSpinning, fnCameraStore, fnCameraRestore,
		fnPIPCameraLookAtPoint, fnPIPCameraTrackObject, fnPIPCameraStartRotate,
		fnPIPCameraStopRotate, fnPIPCameraStore, fnPIPCameraRestore:
		return d.callCamera(funcID, args)

	case fnRemoveShroud, fnReplaceShroud, fnRemoveMapShroud, fnRadarEnabled, fnRadarAlert:
		return d.callFog(funcID, args)

	case fnMissionOutcome, fnEndGameWin, fnEndGameLose, fnNormalConditionLose:
		return d.callVictory(funcID, args)

	case fnEventObjectDestroyed, fnEventObjectDelivered, fnEventObjectDeliveredToSide,
		fnEventObjectConstructed, fnEventObjectTypeConstructed, fnEventSideAttacksSide,
		fnEventObjectAttacksSide:
		return d.callEvents(funcID, args)

	case fnForceWormStrike, fnSideNuke, fnFireSpecialWeapon, fnAirStrike, fnAirStrikeDone:
		return d.callSuperweapons(funcID, args)

	case fnNewCrateUnit, fnNewCrateBomb, fnNewCrateStealth, fnNewCrateCash, fnNewCrateShroud:
		return d.callCrates(funcID, args)

	case fnSetTilePos, fnNeg, fnSetValue, fnSetThreatLevel,
		fnDisableUI, fnEnableUI, fnFreezeGame, fnUnFreezeGame:
		return d.callMisc(funcID, args)

	default:
		log.Warn("dispatch: unknown function id", log.F("funcId", funcID))
		return int32(0)
	}
}

// random implements Random(max) -> PRNG.int(0,max-1), with the Random(0)
// open question resolved as "return 0 without touching the stream" (§9):
// a distinct, more defensive contract than prng.Stream.Int's raw -1.
func (d *Dispatcher) random(max int32) int32 {
	if max <= 0 {
		return 0
	}
	return int32(d.State.RNG.Int(0, int(max)-1))
}

// --- shared arg/geometry helpers ---

func argInt(args []any, i int) int32 {
	if i >= len(args) {
		return 0
	}
	return vm.AsInt32(args[i])
}

func argSide(args []any, i int) vm.Side {
	return vm.Side(argInt(args, i))
}

func argPos(args []any, i int) vm.Pos {
	if i >= len(args) {
		return vm.Pos{}
	}
	if p, ok := vm.Unwrap(args[i]).(vm.Pos); ok {
		return p
	}
	return vm.Pos{}
}

func argString(args []any, i int) string {
	if i >= len(args) {
		return ""
	}
	if s, ok := vm.Unwrap(args[i]).(string); ok {
		return s
	}
	return ""
}

func toWorldPoint(p vm.Pos) world.Point { return world.Point{X: p.X, Z: p.Z} }
func fromWorldPoint(p world.Point) vm.Pos { return vm.Pos{X: p.X, Z: p.Z} }

func distance(a, b vm.Pos) float64 {
	dx := float64(a.X - b.X)
	dz := float64(a.Z - b.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// centroidOf returns the average position of a set of entities, and false
// if the set is empty.
func (d *Dispatcher) centroidOf(eids []world.EntityID) (vm.Pos, bool) {
	if len(eids) == 0 {
		return vm.Pos{}, false
	}
	var sumX, sumZ float64
	n := 0
	for _, e := range eids {
		p, ok := d.World.Position(e)
		if !ok {
			continue
		}
		sumX += float64(p.X)
		sumZ += float64(p.Z)
		n++
	}
	if n == 0 {
		return vm.Pos{}, false
	}
	return vm.Pos{X: float32(sumX / float64(n)), Z: float32(sumZ / float64(n))}, true
}

// sidePosition implements GetSidePosition's three-tier fallback (§4.E
// group 3).
func (d *Dispatcher) sidePosition(side vm.Side) vm.Pos {
	units := d.World.LiveUnitsOf(int32(side))
	buildings := d.World.LiveBuildingsOf(int32(side))
	all := make([]world.EntityID, 0, len(units)+len(buildings))
	all = append(all, units...)
	all = append(all, buildings...)

	if p, ok := d.centroidOf(all); ok {
		return p
	}
	if p, ok := d.State.SideBasePos[int32(side)]; ok {
		return p
	}
	return vm.Pos{X: float32(side) * TileSize, Z: float32(side) * TileSize}
}
