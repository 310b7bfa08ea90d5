package dispatch

import "github.com/kestrelrts/missionvm/vm"

// callSides implements §4.E group 2.
func (d *Dispatcher) callSides(funcID int, args []any) any {
	switch funcID {
	case fnCreateSide:
		return int32(d.Sides.CreateSide())
	case fnGetPlayerSide:
		return int32(vm.SidePlayer)
	case fnGetEnemySide:
		return int32(vm.SideEnemy)
	case fnGetNeutralSide:
		return int32(vm.SideNeutral)
	case fnSideEnemyTo:
		d.Sides.SetEnemy(argSide(args, 0), argSide(args, 1))
		return int32(0)
	case fnSideFriendTo:
		d.Sides.SetFriend(argSide(args, 0), argSide(args, 1))
		return int32(0)
	case fnSideNeutralTo:
		d.Sides.SetNeutral(argSide(args, 0), argSide(args, 1))
		return int32(0)
	}
	return int32(0)
}
