package dispatch

import (
	"github.com/kestrelrts/missionvm/vm"
	"github.com/kestrelrts/missionvm/world"
)

// callAIOrders implements §4.E group 8. The named AI order functions
// translate into move-target assignments on the host; the behavior
// modifiers (Aggressive/Retreat/Normal/Defensive/Shuffle, HeadlessChicken,
// EnterBuilding, EncounterIgnore, Control) are allowed to be inert per §9's
// open question and only exist so scripts that call them for their side
// effects don't hit the unknown-id branch.
func (d *Dispatcher) callAIOrders(funcID int, args []any) any {
	switch funcID {
	case fnSideAIAggressive:
		side := argSide(args, 0)
		units := d.World.LiveUnitsOf(int32(side))
		d.World.SetAttackMove(units)
		if target, ok := d.nearestEnemyCentroid(side); ok {
			for _, u := range units {
				d.World.IssueMove(u, target.X, target.Z)
			}
		}

	case fnSideAIMove:
		side := argSide(args, 0)
		p := argPos(args, 1)
		for _, u := range d.World.LiveUnitsOf(int32(side)) {
			d.World.IssueMove(u, p.X, p.Z)
		}

	case fnSideAIStop:
		side := argSide(args, 0)
		for _, u := range d.World.LiveUnitsOf(int32(side)) {
			d.World.ClearMove(u)
		}

	case fnSideAIAttackObject:
		side := argSide(args, 0)
		target := world.EntityID(argInt(args, 1))
		units := d.World.LiveUnitsOf(int32(side))
		d.World.SetAttackMove(units)
		if p, ok := d.World.Position(target); ok {
			for _, u := range units {
				d.World.IssueMove(u, p.X, p.Z)
			}
		}

	case fnSideAIGuardObject:
		side := argSide(args, 0)
		target := world.EntityID(argInt(args, 1))
		if p, ok := d.World.Position(target); ok {
			for _, u := range d.World.LiveUnitsOf(int32(side)) {
				d.World.IssueMove(u, p.X, p.Z)
			}
		}

	case fnSideAIExitMap, fnSideAIEncounterAttack:
		// No map-edge/encounter primitive in the world-view seam; the
		// order is accepted and otherwise inert.

	case fnSideAIBehaviourAggressive, fnSideAIBehaviourRetreat, fnSideAIBehaviourNormal,
		fnSideAIBehaviourDefensive, fnSideAIBehaviourShuffle, fnSideAIHeadlessChicken,
		fnSideAIEnterBuilding, fnSideAIEncounterIgnore, fnSideAIControl:
		// Inert by design (§9 open question).
	}
	return int32(0)
}

// nearestEnemyCentroid finds the closest enemy side's unit/building
// centroid to side's own position.
func (d *Dispatcher) nearestEnemyCentroid(side vm.Side) (vm.Pos, bool) {
	from := d.sidePosition(side)
	best, found := vm.Pos{}, false
	bestDist := -1.0

	for other := vm.Side(0); other < d.Sides.NextSideID; other++ {
		if other == side || !d.Sides.IsEnemy(side, other) {
			continue
		}
		units := d.World.LiveUnitsOf(int32(other))
		buildings := d.World.LiveBuildingsOf(int32(other))
		all := append(append([]world.EntityID(nil), units...), buildings...)
		c, ok := d.centroidOf(all)
		if !ok {
			continue
		}
		dist := distance(from, c)
		if !found || dist < bestDist {
			best, bestDist, found = c, dist, true
		}
	}
	return best, found
}
