package dispatch

import "github.com/kestrelrts/missionvm/vm"

const neutralEntranceMarker = 99

// callPoints implements §4.E group 3.
func (d *Dispatcher) callPoints(funcID int, args []any) any {
	switch funcID {
	case fnGetSidePosition:
		return d.sidePosition(argSide(args, 0))

	case fnGetEntrancePoint:
		return d.entrancePoint(int32(argSide(args, 0)))

	case fnGetNeutralEntrancePoint:
		return d.entrancePoint(neutralEntranceMarker)

	case fnGetScriptPoint:
		n := int(argInt(args, 0))
		pts := d.World.GetMapMetadata().ScriptPoints
		idx := n - 1
		if idx < 0 || idx >= len(pts) {
			return vm.Pos{}
		}
		return fromWorldPoint(pts[idx])

	case fnGetUnusedBasePoint:
		return d.unusedBasePoint()
	}
	return vm.Pos{}
}

func (d *Dispatcher) entrancePoint(marker int32) vm.Pos {
	meta := d.World.GetMapMetadata()
	p, ok := meta.EntrancePoints[marker]
	if !ok {
		return vm.Pos{}
	}
	return vm.Pos{X: p.X * TileSize, Z: p.Z * TileSize}
}

func (d *Dispatcher) unusedBasePoint() vm.Pos {
	meta := d.World.GetMapMetadata()
	used := map[[2]float32]bool{}
	for _, p := range d.State.SideBasePos {
		used[[2]float32{p.X, p.Z}] = true
	}
	for _, p := range meta.BaseSpawnPoints {
		key := [2]float32{p.X, p.Z}
		if !used[key] {
			return fromWorldPoint(p)
		}
	}
	return vm.Pos{}
}
