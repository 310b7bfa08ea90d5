// Package save implements the save/restore codec shared by the evaluator,
// dispatcher, and JSON rule runner (§4.G, §6.4). A save is a plain-data
// value: entity handles are rewritten through a host-supplied
// entityId<->denseIndex bijection so a save never pins a live host id.
package save

import (
	"github.com/kestrelrts/missionvm/vm"
)

// DenseMap is the host-supplied bijection used at save time: entityId -> denseIndex.
type DenseMap map[int32]int32

// InverseMap is the host-supplied bijection used at restore time: denseIndex -> entityId.
type InverseMap map[int32]int32

// RelationPair is the serializable form of a side relationship override.
type RelationPair struct {
	A, B int32
	Rel  int
}

// CameraState is the serializable form of dispatch.CameraState.
type CameraState struct {
	TrackEid int32
	Tracking bool
	Spin     CameraSpin
	Stored   *CameraSnapshot
}

type CameraSpin struct {
	Active bool
	Speed  int32
	Dir    int32
}

type CameraSnapshot struct {
	X, Z, Zoom, Rotation float32
}

// AirStrikeRecord is the serializable form of dispatch.AirStrikeRecord.
type AirStrikeRecord struct {
	StrikeID        int32
	UnitDenseIdx    []int32
	TargetX, TargetZ float32
}

// CrateRecord mirrors dispatch.CrateRecord (no entity fields to rewrite).
type CrateRecord struct {
	CrateID int32
	Kind    string
	X, Z    float32
}

// DispatchState is the serializable §3.5 runtime block, entity fields
// rewritten through the dense-index mapping.
type DispatchState struct {
	AirStrikes           []AirStrikeRecord
	TooltipOverrides     map[int32]int32 // denseIndex -> tooltipId
	SideColors           map[int32]int32
	ThreatLevels         map[string]int32
	MainCamera           CameraState
	PIPCamera            CameraState
	SideBasePos          map[int32]vm.Pos
	SideCash             map[int32]int32
	RNGState             [4]uint32
	NextCrateID          int32
	Crates               []CrateRecord
	InputDisabled        bool
	RadarForced          bool
	VictoryOutcome       int
}

// TokState is the serializable evaluator-side state: variable slots, side
// table, and the (usually-empty-at-boundary) event flags (§6.4).
type TokState struct {
	IntVars       []int32
	ObjVars       []int32 // denseIndex, or -1 if unmapped/none
	PosVars       []vm.Pos
	NextSideID    int32
	Relationships []RelationPair
	EventFlags    map[string]bool
	DispatchState *DispatchState
}

// PendingDelayed is the serializable form of a rules.pendingAction.
type PendingDelayed struct {
	RuleID      string
	ExecuteTick int32
}

// MissionSaveState is the full opaque save shape (§6.4), shared by the
// JSON rule runner and the .tok interpreter. Either side MUST tolerate
// the other's fields being present-but-foreign and round-trip them
// untouched: a save produced by the JSON runner still carries a
// TokState if one was active, and vice versa.
type MissionSaveState struct {
	FiredRuleIDs   []string
	Flags          map[string]bool
	GroupEntities  map[string][]int32 // denseIndex
	DisabledRules  []string
	RepeatCounts   map[string]int32
	PendingDelayed []PendingDelayed
	TokState       *TokState

	// RulesSideCash supplements §6.4's schema, which predates the rule
	// runner's own credit ledger (§4.F "grantCredits"); it round-trips
	// the same way dispatch's SideCash block does.
	RulesSideCash map[int32]int32
}
