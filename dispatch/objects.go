package dispatch

import "github.com/kestrelrts/missionvm/world"

const (
	objectNearToSideThreshold   = 30
	objectNearToObjectThreshold = 20
)

// callObjects implements §4.E groups 5 (queries) and 6 (mutation).
func (d *Dispatcher) callObjects(funcID int, args []any) any {
	switch funcID {
	case fnObjectValid:
		return boolInt32(d.isValid(world.EntityID(argInt(args, 0))))

	case fnObjectDestroyed:
		return boolInt32(!d.isValid(world.EntityID(argInt(args, 0))))

	case fnObjectNearToSide:
		eid := world.EntityID(argInt(args, 0))
		side := argSide(args, 1)
		p, ok := d.World.Position(eid)
		if !ok {
			return int32(0)
		}
		target := d.sidePosition(side)
		return boolInt32(distance(fromWorldPoint(p), target) < objectNearToSideThreshold)

	case fnObjectNearToObject:
		a := world.EntityID(argInt(args, 0))
		b := world.EntityID(argInt(args, 1))
		pa, okA := d.World.Position(a)
		pb, okB := d.World.Position(b)
		if !okA || !okB {
			return int32(0)
		}
		return boolInt32(distance(fromWorldPoint(pa), fromWorldPoint(pb)) < objectNearToObjectThreshold)

	case fnObjectGetHealth:
		h, _ := d.World.Health(world.EntityID(argInt(args, 0)))
		return h

	case fnObjectMaxHealth:
		h, _ := d.World.MaxHealth(world.EntityID(argInt(args, 0)))
		return h

	case fnObjectSetHealth:
		d.World.SetHealth(world.EntityID(argInt(args, 0)), argInt(args, 1))
		return int32(0)

	case fnObjectChangeSide:
		d.World.SetOwner(world.EntityID(argInt(args, 0)), argInt(args, 1))
		return int32(0)

	case fnObjectChange:
		return d.objectChange(args)

	case fnObjectRemove:
		d.World.KillEntity(world.EntityID(argInt(args, 0)))
		return int32(0)

	case fnObjectSell:
		d.World.SellBuilding(world.EntityID(argInt(args, 0)))
		return int32(0)

	case fnObjectInfect, fnObjectDetonate:
		// §4.E group 6: morph in place, same entity id, new type &
		// owner. world.View has no type-morph seam, so the type half is
		// inert; the owner half has one (SetOwner), so honor it rather
		// than no-op the whole call.
		if len(args) > 1 {
			d.World.SetOwner(world.EntityID(argInt(args, 0)), argInt(args, 1))
		}
		return int32(0)

	case fnObjectDeploy, fnObjectUndeploy:
		// No host primitive for in-place deploy/undeploy in the
		// world-view seam (§4.H); left inert per §9's open question on
		// dispatch entries without a corresponding host capability.
		return int32(0)
	}
	return int32(0)
}

func (d *Dispatcher) isValid(eid world.EntityID) bool {
	h, ok := d.World.Health(eid)
	return ok && h > 0
}

// objectChange destroys the old entity and spawns a new one at its
// position, preserving owner unless a side override is given (§4.E group 6).
func (d *Dispatcher) objectChange(args []any) any {
	eid := world.EntityID(argInt(args, 0))
	typeIdx := argInt(args, 1)

	owner := argInt(args, 2)
	if len(args) < 3 {
		if o, ok := d.World.Owner(eid); ok {
			owner = o
		}
	}

	p, _ := d.World.Position(eid)
	d.World.KillEntity(eid)
	return d.spawnByIndex(owner, typeIdx, p.X, p.Z)
}

func boolInt32(v bool) int32 {
	if v {
		return 1
	}
	return 0
}
