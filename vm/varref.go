package vm

import "github.com/kestrelrts/missionvm/tok"

// VarRef is how a bare variable argument to a Call is passed: it carries
// both the slot's current value (for ordinary reads) and enough identity
// to write back into that slot (for the handful of dispatch calls that
// use an argument as an out-parameter, per §4.E group 14).
type VarRef struct {
	Slot  int
	Kind  tok.VarKind
	Value any
}

// Unwrap returns v's underlying value, unwrapping a VarRef if present.
func Unwrap(v any) any {
	if vr, ok := v.(VarRef); ok {
		return vr.Value
	}
	return v
}
