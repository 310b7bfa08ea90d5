package dispatch

import "github.com/kestrelrts/missionvm/vm"

// callMisc implements §4.E group 17.
func (d *Dispatcher) callMisc(funcID int, args []any) any {
	switch funcID {
	case fnSetTilePos:
		tx := argInt(args, 0)
		tz := argInt(args, 1)
		return vm.Pos{X: float32(tx * TileSize), Z: float32(tz * TileSize)}

	case fnNeg:
		return -argInt(args, 0)

	case fnSetValue:
		if len(args) < 2 {
			return int32(0)
		}
		return vm.Unwrap(args[1])

	case fnSetThreatLevel:
		typeIdx := argInt(args, 0)
		level := argInt(args, 1)
		name, _, ok := d.Strings.Lookup(typeIdx)
		if ok {
			d.State.ThreatLevels[name] = level
		}
		return int32(0)

	case fnDisableUI, fnFreezeGame:
		d.State.InputDisabled = true
		return int32(0)

	case fnEnableUI, fnUnFreezeGame:
		d.State.InputDisabled = false
		return int32(0)
	}
	return int32(0)
}
