package dispatch

import "math"

// callFog implements §4.E group 12.
func (d *Dispatcher) callFog(funcID int, args []any) any {
	switch funcID {
	case fnRemoveShroud:
		p := argPos(args, 0)
		d.World.RevealArea(d.Ctx, toWorldPoint(p), float32(argInt(args, 1)))
		return int32(0)

	case fnReplaceShroud:
		p := argPos(args, 0)
		d.World.CoverArea(d.Ctx, toWorldPoint(p), float32(argInt(args, 1)))
		return int32(0)

	case fnRemoveMapShroud:
		d.World.RevealArea(d.Ctx, toWorldPoint(argPos(args, 0)), math.MaxFloat32)
		return int32(0)

	case fnRadarEnabled:
		d.State.RadarForced = true
		return int32(1)

	case fnRadarAlert:
		p := argPos(args, 0)
		d.World.NotifyEffect(d.Ctx, "radarAlert", toWorldPoint(p), nil)
		return int32(0)
	}
	return int32(0)
}
