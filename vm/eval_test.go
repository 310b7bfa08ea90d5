package vm

import (
	"testing"

	"github.com/kestrelrts/missionvm/tok"
)

func TestEvalAssignSimple(t *testing.T) {
	prog := &tok.Program{
		Blocks: []*tok.Block{
			{
				Cond: &tok.BoolExpr{Value: true},
				Body: []tok.Stmt{
					&tok.AssignStmt{Slot: 0, Kind: tok.KindInt, Value: &tok.LiteralExpr{Value: 7}},
				},
			},
		},
	}

	slots := NewSlots(1)
	e := NewEvaluator()
	e.Tick(prog, slots, Dispatcher{})

	if slots.Int[0] != 7 {
		t.Fatalf("Int[0] = %d, want 7", slots.Int[0])
	}
}

func TestEvalFalseConditionRunsElse(t *testing.T) {
	prog := &tok.Program{
		Blocks: []*tok.Block{
			{
				Cond: &tok.BoolExpr{Value: false},
				Body: []tok.Stmt{
					&tok.AssignStmt{Slot: 0, Kind: tok.KindInt, Value: &tok.LiteralExpr{Value: 1}},
				},
				Else: []tok.Stmt{
					&tok.AssignStmt{Slot: 0, Kind: tok.KindInt, Value: &tok.LiteralExpr{Value: 2}},
				},
			},
		},
	}

	slots := NewSlots(1)
	e := NewEvaluator()
	e.Tick(prog, slots, Dispatcher{})

	if slots.Int[0] != 2 {
		t.Fatalf("Int[0] = %d, want 2 (else body)", slots.Int[0])
	}
}

func TestEvalFalseBodyNeverRuns(t *testing.T) {
	// if (FALSE) ... endif whose body has a side effect MUST NOT run it (§8).
	calls := 0
	d := Dispatcher{Call: func(funcID int, args []any) any {
		calls++
		return int32(0)
	}}

	prog := &tok.Program{
		Blocks: []*tok.Block{
			{
				Cond: &tok.BoolExpr{Value: false},
				Body: []tok.Stmt{
					&tok.CallStmt{FuncID: 99, Args: nil},
				},
			},
		},
	}

	e := NewEvaluator()
	e.Tick(prog, NewSlots(0), d)

	if calls != 0 {
		t.Fatalf("calls = %d, want 0 (FALSE body must not execute)", calls)
	}
}

func TestEvalStrictAndOrEvaluatesBothSides(t *testing.T) {
	var callOrder []int
	d := Dispatcher{Call: func(funcID int, args []any) any {
		callOrder = append(callOrder, funcID)
		return int32(1) // truthy, so a short-circuiting || would skip the right side if not strict
	}}

	cond := &tok.BinaryExpr{
		Op:    tok.OpOr,
		Left:  &tok.CallExpr{FuncID: 1},
		Right: &tok.CallExpr{FuncID: 2},
	}
	prog := &tok.Program{Blocks: []*tok.Block{{Cond: cond}}}

	e := NewEvaluator()
	e.Tick(prog, NewSlots(0), d)

	if len(callOrder) != 2 || callOrder[0] != 1 || callOrder[1] != 2 {
		t.Fatalf("callOrder = %v, want [1 2] (both operands always evaluated)", callOrder)
	}
}

func TestEvalBinaryPositionMixWithNumberTreatsPositionAsZero(t *testing.T) {
	expr := &tok.BinaryExpr{
		Op:    tok.OpEq,
		Left:  &tok.VarExpr{Slot: 0, Kind: tok.KindPos},
		Right: &tok.LiteralExpr{Value: 0},
	}

	e := NewEvaluator()
	slots := NewSlots(1)
	got := e.evalExpr(expr, slots, Dispatcher{})
	if got != int32(1) {
		t.Fatalf("Pos{} == 0 = %v, want 1 (position side treated as 0)", got)
	}
}

func TestEvalArithmetic(t *testing.T) {
	expr := &tok.BinaryExpr{
		Op:    tok.OpAdd,
		Left:  &tok.LiteralExpr{Value: 5},
		Right: &tok.LiteralExpr{Value: -3},
	}
	e := NewEvaluator()
	got := e.evalExpr(expr, NewSlots(0), Dispatcher{})
	if got != int32(2) {
		t.Fatalf("5 + -3 = %v, want 2", got)
	}
}
