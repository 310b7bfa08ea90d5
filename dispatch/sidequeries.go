package dispatch

const (
	sideNearToSideThreshold  = 40
	sideNearToPointThreshold = 40
)

// callSideQueries implements §4.E group 7.
func (d *Dispatcher) callSideQueries(funcID int, args []any) any {
	switch funcID {
	case fnSideUnitCount:
		return int32(len(d.World.LiveUnitsOf(int32(argSide(args, 0)))))

	case fnSideBuildingCount:
		return int32(len(d.World.LiveBuildingsOf(int32(argSide(args, 0)))))

	case fnSideAIDone:
		side := argSide(args, 0)
		units := d.World.LiveUnitsOf(int32(side))
		for _, u := range units {
			if d.World.HasActiveMove(u) {
				return int32(0)
			}
		}
		return int32(1)

	case fnSideNearToSide:
		a := d.sidePosition(argSide(args, 0))
		b := d.sidePosition(argSide(args, 1))
		return boolInt32(distance(a, b) < sideNearToSideThreshold)

	case fnSideNearToPoint:
		a := d.sidePosition(argSide(args, 0))
		b := argPos(args, 1)
		return boolInt32(distance(a, b) < sideNearToPointThreshold)
	}
	return int32(0)
}
