package dispatch

// callCredits implements §4.E group 10. AddSideCash/SetSideCash push a
// formatted notification to the credits panel, using notifPrinter so
// large balances get locale-correct thousands separators instead of a
// bare decimal run.
func (d *Dispatcher) callCredits(funcID int, args []any) any {
	side := argInt(args, 0)
	switch funcID {
	case fnAddSideCash:
		amount := argInt(args, 1)
		d.State.SideCash[side] += amount
		d.World.PushNotification(d.Ctx, "credits",
			notifPrinter.Sprintf("side %d: %+d credits (balance %d)", side, amount, d.State.SideCash[side]))
		return int32(0)

	case fnSetSideCash:
		d.State.SideCash[side] = argInt(args, 1)
		d.World.PushNotification(d.Ctx, "credits",
			notifPrinter.Sprintf("side %d credits set to %d", side, d.State.SideCash[side]))
		return int32(0)

	case fnGetSideCash, fnGetSideSpice:
		return d.State.SideCash[side]
	}
	return int32(0)
}
