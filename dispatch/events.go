package dispatch

import "github.com/kestrelrts/missionvm/vm"

// callEvents implements §4.E group 14. The four consuming variants write
// the matching entity handle into outVar and remove that fact so the next
// call returns a different match; on no match they return 0 and leave
// outVar untouched (§4.E group 14).
func (d *Dispatcher) callEvents(funcID int, args []any) any {
	switch funcID {
	case fnEventObjectDestroyed:
		eid := argInt(args, 0)
		return boolInt32(d.Events.HasDestroyed(eid))

	case fnEventObjectDelivered:
		eid, ok := d.Events.ConsumeDelivered()
		return d.writeOutVar(args, 1, eid, ok)

	case fnEventObjectDeliveredToSide:
		side := argSide(args, 0)
		eid, ok := d.Events.ConsumeDeliveredSide(side)
		return d.writeOutVar(args, 1, eid, ok)

	case fnEventObjectConstructed:
		side := argSide(args, 0)
		eid, ok := d.Events.ConsumeConstructed(side)
		return d.writeOutVar(args, 1, eid, ok)

	case fnEventObjectTypeConstructed:
		side := argSide(args, 0)
		typeIdx := argInt(args, 1)
		name, _, _ := d.Strings.Lookup(typeIdx)
		eid, ok := d.Events.ConsumeTypeConstructed(side, name)
		return d.writeOutVar(args, 2, eid, ok)

	case fnEventSideAttacksSide:
		return boolInt32(d.Events.HasSideAttacksSide(argSide(args, 0), argSide(args, 1)))

	case fnEventObjectAttacksSide:
		return boolInt32(d.Events.HasObjectAttacksSide(argInt(args, 0), argSide(args, 1)))
	}
	return int32(0)
}

// writeOutVar writes eid into the outVar argument at idx (a bare variable
// argument arrives wrapped as a vm.VarRef, see eval.go) and returns
// whether a match was found. On no match the slot is left untouched.
func (d *Dispatcher) writeOutVar(args []any, idx int, eid int32, found bool) int32 {
	if !found {
		return 0
	}
	if idx < len(args) {
		if ref, ok := args[idx].(vm.VarRef); ok {
			d.Slots.Set(ref.Slot, ref.Kind, eid)
		}
	}
	return 1
}
