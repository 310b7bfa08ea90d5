package vm

import "github.com/kestrelrts/missionvm/tok"

// Slots holds the three parallel variable arrays (§3.2). Arrays grow lazily
// to the highest used slot and never shrink.
type Slots struct {
	Int []int32
	Obj []int32 // entity handles; -1 = none
	Pos []Pos
}

// NewSlots creates a Slots sized to n, all entries at their kind's zero
// (Obj defaults to -1, "none").
func NewSlots(n int) *Slots {
	s := &Slots{}
	s.growTo(n)
	return s
}

func (s *Slots) growTo(n int) {
	for len(s.Int) < n {
		s.Int = append(s.Int, 0)
	}
	for len(s.Obj) < n {
		s.Obj = append(s.Obj, -1)
	}
	for len(s.Pos) < n {
		s.Pos = append(s.Pos, Pos{})
	}
}

// Get returns slot's current value coerced to kind; a slot past the tail
// reads as the kind's zero (§4.C).
func (s *Slots) Get(slot int, kind tok.VarKind) any {
	if slot < 0 {
		return zeroOf(kind)
	}
	switch kind {
	case tok.KindInt:
		if slot >= len(s.Int) {
			return int32(0)
		}
		return s.Int[slot]
	case tok.KindObj:
		if slot >= len(s.Obj) {
			return int32(-1)
		}
		return s.Obj[slot]
	case tok.KindPos:
		if slot >= len(s.Pos) {
			return Pos{}
		}
		return s.Pos[slot]
	default:
		return int32(0)
	}
}

func zeroOf(kind tok.VarKind) any {
	switch kind {
	case tok.KindObj:
		return int32(-1)
	case tok.KindPos:
		return Pos{}
	default:
		return int32(0)
	}
}

// Set grows all three arrays in lockstep to slot+1 and writes value into
// the array matching kind, coercing mismatched shapes to that kind's zero
// (e.g. a number written into a Pos slot writes {0,0}).
func (s *Slots) Set(slot int, kind tok.VarKind, value any) {
	if slot < 0 {
		return
	}
	s.growTo(slot + 1)

	switch kind {
	case tok.KindInt:
		s.Int[slot] = coerceInt(value)
	case tok.KindObj:
		s.Obj[slot] = coerceObj(value)
	case tok.KindPos:
		s.Pos[slot] = coercePos(value)
	}
}

func coerceInt(v any) int32 {
	switch x := v.(type) {
	case int32:
		return x
	case int:
		return int32(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func coerceObj(v any) int32 {
	switch x := v.(type) {
	case int32:
		return x
	case int:
		return int32(x)
	default:
		return -1
	}
}

func coercePos(v any) Pos {
	if p, ok := v.(Pos); ok {
		return p
	}
	return Pos{}
}

// Truthy implements the evaluator's truthiness rule (§4.C): numbers are
// truthy iff nonzero; positions are always truthy.
func Truthy(v any) bool {
	switch x := Unwrap(v).(type) {
	case int32:
		return x != 0
	case int:
		return x != 0
	case bool:
		return x
	case Pos:
		_ = x
		return true
	default:
		return false
	}
}

// AsInt32 coerces an evaluator value down to an int32, the shape binary
// arithmetic and comparisons operate on.
func AsInt32(v any) int32 {
	switch x := Unwrap(v).(type) {
	case int32:
		return x
	case int:
		return int32(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case Pos:
		return 0 // mixing number and position silently treats the position side as 0 (§4.D)
	default:
		return 0
	}
}
