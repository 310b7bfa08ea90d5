package dispatch

import (
	"github.com/kestrelrts/missionvm/log"
	"github.com/kestrelrts/missionvm/world"
)

// callSpawn implements §4.E group 4.
func (d *Dispatcher) callSpawn(funcID int, args []any) any {
	switch funcID {
	case fnNewObject:
		side := argInt(args, 0)
		typeIdx := argInt(args, 1)
		pos := argPos(args, 2)
		return d.spawnByIndex(side, typeIdx, pos.X, pos.Z)

	case fnNewObjectInAPC:
		side := argInt(args, 0)
		typeIdx := argInt(args, 1)
		apc := world.EntityID(argInt(args, 2))
		x, z := 0.0, 0.0
		if p, ok := d.World.Position(apc); ok {
			x, z = float64(p.X), float64(p.Z)
		}
		jx := d.State.RNG.Float(-0.5, 0.5)
		jz := d.State.RNG.Float(-0.5, 0.5)
		return d.spawnByIndex(side, typeIdx, float32(x+jx), float32(z+jz))

	case fnNewObjectOffsetOrientation:
		side := argInt(args, 0)
		typeIdx := argInt(args, 1)
		pos := argPos(args, 2)
		// Offset and orientation args (if present) are informational
		// per §4.E group 4; the host may apply them, we don't need to.
		return d.spawnByIndex(side, typeIdx, pos.X, pos.Z)
	}
	return int32(-1)
}

// spawnByIndex resolves typeIdx through the string table and spawns a
// unit or building accordingly (§4.E group 4, §4.H "string table").
func (d *Dispatcher) spawnByIndex(side, typeIdx int32, x, z float32) int32 {
	name, isBuilding, ok := d.Strings.Lookup(typeIdx)
	if !ok {
		log.Warn("dispatch: NewObject string-table index out of range",
			log.F("typeIdx", typeIdx))
		return -1
	}
	if isBuilding {
		return int32(d.World.SpawnBuilding(name, side, x, z))
	}
	return int32(d.World.SpawnUnit(name, side, x, z))
}
