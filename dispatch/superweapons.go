package dispatch

import "github.com/kestrelrts/missionvm/world"

// callSuperweapons implements §4.E group 15.
func (d *Dispatcher) callSuperweapons(funcID int, args []any) any {
	switch funcID {
	case fnForceWormStrike:
		p := argPos(args, 0)
		d.World.NotifyEffect(d.Ctx, "wormStrike", toWorldPoint(p), nil)
		return int32(0)

	case fnSideNuke:
		side := argInt(args, 0)
		p := argPos(args, 1)
		d.World.NotifyEffect(d.Ctx, "nuke", toWorldPoint(p), map[string]any{"side": side})
		return int32(0)

	case fnFireSpecialWeapon:
		side := argInt(args, 0)
		p := argPos(args, 1)
		d.World.NotifyEffect(d.Ctx, "specialWeapon", toWorldPoint(p), map[string]any{"side": side})
		return int32(0)

	case fnAirStrike:
		return d.airStrike(args)

	case fnAirStrikeDone:
		strikeID := argInt(args, 0)
		rec, ok := d.State.AirStrikes[strikeID]
		if !ok {
			return int32(1)
		}
		for _, u := range rec.UnitIDs {
			if d.World.HasActiveMove(u) {
				return int32(0)
			}
		}
		return int32(1)
	}
	return int32(0)
}

// airStrike spawns the strike-unit set, records a dispatch row keyed by
// strikeId, and attack-moves the units at pos (§4.E group 15). Expected
// argument shape: strikeId, side, pos, count, typeA, typeB.
func (d *Dispatcher) airStrike(args []any) any {
	strikeID := argInt(args, 0)
	side := argInt(args, 1)
	pos := argPos(args, 2)
	count := int(argInt(args, 3))
	typeA := argInt(args, 4)
	typeB := argInt(args, 5)

	if count <= 0 {
		count = 1
	}

	units := make([]world.EntityID, 0, count)
	for i := 0; i < count; i++ {
		typeIdx := typeA
		if i%2 == 1 {
			typeIdx = typeB
		}
		name, isBuilding, ok := d.Strings.Lookup(typeIdx)
		if !ok || isBuilding {
			continue
		}
		eid := d.World.SpawnUnit(name, side, pos.X, pos.Z)
		units = append(units, eid)
	}

	d.State.AirStrikes[strikeID] = &AirStrikeRecord{
		StrikeID: strikeID,
		UnitIDs:  units,
		TargetX:  pos.X,
		TargetZ:  pos.Z,
	}

	d.World.SetAttackMove(units)
	for _, u := range units {
		d.World.IssueMove(u, pos.X, pos.Z)
	}
	return int32(0)
}
