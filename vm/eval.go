package vm

import "github.com/kestrelrts/missionvm/tok"

// Dispatcher is the seam the evaluator calls through for every CallExpr
// and CallStmt; the host dispatch package supplies its Call function.
// Keeping this as a function-valued struct (rather than importing dispatch
// directly) avoids a cyclic dependency: dispatch needs
// Slots/SideTable/EventLog from this package.
type Dispatcher struct {
	Call func(funcID int, args []any) any
}

// Evaluator runs a decoded Program to quiescence once per tick (§4.D).
// It owns no state of its own beyond what is passed in: Slots, SideTable
// and EventLog are supplied by the interpreter so they can be persisted
// and restored independently.
type Evaluator struct{}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator { return &Evaluator{} }

// Tick evaluates every top-level block of prog, source order, exactly
// once, and returns. There is no program counter, no suspension: a block
// either runs its body or its else body, strictly synchronously.
func (e *Evaluator) Tick(prog *tok.Program, slots *Slots, d Dispatcher) {
	if prog == nil {
		return
	}
	for _, b := range prog.Blocks {
		e.runBlock(b, slots, d)
	}
}

func (e *Evaluator) runBlock(b *tok.Block, slots *Slots, d Dispatcher) {
	cond := e.evalExpr(b.Cond, slots, d)
	if Truthy(cond) {
		e.runStmts(b.Body, slots, d)
	} else {
		e.runStmts(b.Else, slots, d)
	}
}

func (e *Evaluator) runStmts(stmts []tok.Stmt, slots *Slots, d Dispatcher) {
	for _, s := range stmts {
		e.runStmt(s, slots, d)
	}
}

func (e *Evaluator) runStmt(s tok.Stmt, slots *Slots, d Dispatcher) {
	switch st := s.(type) {
	case *tok.BlockStmt:
		e.runBlock(st.Block, slots, d)

	case *tok.AssignStmt:
		// Right-hand side is evaluated before the write; the write is
		// atomic at the slot (§4.D "Assignment semantics").
		val := e.evalExpr(st.Value, slots, d)
		slots.Set(st.Slot, st.Kind, val)

	case *tok.CallStmt:
		args := e.evalArgs(st.Args, slots, d)
		if d.Call != nil {
			d.Call(st.FuncID, args)
		}
	}
}

func (e *Evaluator) evalArgs(exprs []tok.Expr, slots *Slots, d Dispatcher) []any {
	args := make([]any, len(exprs))
	for i, ex := range exprs {
		// Left-to-right, no short-circuit beyond the strict &&/|| rule
		// below (§4.D "Evaluate expressions strictly left-to-right").
		//
		// A bare variable argument is wrapped as a VarRef rather than its
		// plain value: a handful of dispatch calls (the event-consuming
		// queries of group 14) write a result back into an "outVar"
		// argument in addition to returning a boolean, which requires
		// knowing which slot the argument came from.
		if vr, ok := ex.(*tok.VarExpr); ok {
			args[i] = VarRef{Slot: vr.Slot, Kind: vr.Kind, Value: slots.Get(vr.Slot, vr.Kind)}
			continue
		}
		args[i] = e.evalExpr(ex, slots, d)
	}
	return args
}

func (e *Evaluator) evalExpr(ex tok.Expr, slots *Slots, d Dispatcher) any {
	switch v := ex.(type) {
	case *tok.LiteralExpr:
		return v.Value

	case *tok.BoolExpr:
		return v.Value

	case *tok.VarExpr:
		return slots.Get(v.Slot, v.Kind)

	case *tok.StringRefExpr:
		// StringRef resolves through the host's string table; the
		// evaluator itself only carries the raw index forward as an
		// int, letting dispatch (which owns the registry) resolve it.
		return int32(v.Index)

	case *tok.CallExpr:
		args := e.evalArgs(v.Args, slots, d)
		if d.Call != nil {
			return d.Call(v.FuncID, args)
		}
		return int32(0)

	case *tok.BinaryExpr:
		return e.evalBinary(v, slots, d)

	default:
		return int32(0)
	}
}

func (e *Evaluator) evalBinary(b *tok.BinaryExpr, slots *Slots, d Dispatcher) any {
	// && and || are strict: both operands are always evaluated, because
	// operands may be Call expressions with side effects that the
	// original VM runs regardless (§4.D "Expression semantics").
	left := e.evalExpr(b.Left, slots, d)
	right := e.evalExpr(b.Right, slots, d)

	switch b.Op {
	case tok.OpAnd:
		if Truthy(left) && Truthy(right) {
			return int32(1)
		}
		return int32(0)

	case tok.OpOr:
		if Truthy(left) || Truthy(right) {
			return int32(1)
		}
		return int32(0)

	case tok.OpEq:
		return boolInt(valuesEqual(left, right))
	case tok.OpNe:
		return boolInt(!valuesEqual(left, right))

	case tok.OpGe:
		return boolInt(AsInt32(left) >= AsInt32(right))
	case tok.OpLe:
		return boolInt(AsInt32(left) <= AsInt32(right))
	case tok.OpGt:
		return boolInt(AsInt32(left) > AsInt32(right))
	case tok.OpLt:
		return boolInt(AsInt32(left) < AsInt32(right))

	case tok.OpAdd:
		return AsInt32(left) + AsInt32(right)
	case tok.OpSub:
		return AsInt32(left) - AsInt32(right)

	default:
		return int32(0)
	}
}

// valuesEqual implements §4.D: "mixing number and position on either side
// silently treats the position side as 0".
func valuesEqual(a, b any) bool {
	a, b = Unwrap(a), Unwrap(b)
	pa, aIsPos := a.(Pos)
	pb, bIsPos := b.(Pos)
	switch {
	case aIsPos && bIsPos:
		return pa == pb
	case aIsPos && !bIsPos:
		return AsInt32(b) == 0
	case !aIsPos && bIsPos:
		return AsInt32(a) == 0
	default:
		return AsInt32(a) == AsInt32(b)
	}
}

func boolInt(v bool) int32 {
	if v {
		return 1
	}
	return 0
}
