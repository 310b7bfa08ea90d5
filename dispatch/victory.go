package dispatch

// callVictory implements §4.E group 13.
func (d *Dispatcher) callVictory(funcID int, args []any) any {
	switch funcID {
	case fnMissionOutcome:
		if argInt(args, 0) == 1 {
			d.State.VictoryOutcome = 1
			d.World.DeclareVictory(d.Ctx)
		} else {
			d.State.VictoryOutcome = -1
			d.World.DeclareDefeat(d.Ctx)
		}
		return int32(0)

	case fnEndGameWin:
		d.State.VictoryOutcome = 1
		d.World.DeclareVictory(d.Ctx)
		return int32(0)

	case fnEndGameLose:
		d.State.VictoryOutcome = -1
		d.World.DeclareDefeat(d.Ctx)
		return int32(0)

	case fnNormalConditionLose:
		side := int32(argSide(args, 0))
		noUnits := len(d.World.LiveUnitsOf(side)) == 0
		noBuildings := len(d.World.LiveBuildingsOf(side)) == 0
		return boolInt32(noUnits && noBuildings)
	}
	return int32(0)
}
