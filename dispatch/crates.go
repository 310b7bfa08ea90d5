package dispatch

// callCrates implements §4.E group 16.
func (d *Dispatcher) callCrates(funcID int, args []any) any {
	var kind string
	switch funcID {
	case fnNewCrateUnit:
		kind = "unit"
	case fnNewCrateBomb:
		kind = "bomb"
	case fnNewCrateStealth:
		kind = "stealth"
	case fnNewCrateCash:
		kind = "cash"
	case fnNewCrateShroud:
		kind = "shroud"
	}

	p := argPos(args, 0)
	crateID := d.State.NextCrateID
	d.State.NextCrateID++
	d.State.Crates = append(d.State.Crates, CrateRecord{CrateID: crateID, Kind: kind, X: p.X, Z: p.Z})

	d.World.NotifyEffect(d.Ctx, "crate:"+kind, toWorldPoint(p), nil)
	return crateID
}
