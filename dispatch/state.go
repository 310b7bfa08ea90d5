// Package dispatch implements the host-call surface scripts invoke: a
// finite switch over the 162 function ids (§4.E), plus the runtime state
// those calls read and mutate across ticks (§3.5).
package dispatch

import (
	"github.com/kestrelrts/missionvm/prng"
	"github.com/kestrelrts/missionvm/vm"
	"github.com/kestrelrts/missionvm/world"
)

// TileSize converts map tile coordinates to world coordinates (§4.E
// group 3).
const TileSize = 2

// AirStrikeRecord tracks one in-flight AirStrike call, keyed by the
// script-supplied strikeId (§3.5).
type AirStrikeRecord struct {
	StrikeID  int32
	UnitIDs   []world.EntityID
	TargetX   float32
	TargetZ   float32
}

// CameraSpin is the active-rotation record for a camera (§4.E group 11).
type CameraSpin struct {
	Active bool
	Speed  int32
	Dir    int32
}

// CameraSnapshot is a stored {x,z,zoom,rotation} camera pose.
type CameraSnapshot struct {
	X, Z, Zoom, Rotation float32
}

// CameraState is the full persisted state of one camera (main or PIP).
type CameraState struct {
	TrackEid world.EntityID
	Tracking bool
	Spin     CameraSpin
	Stored   *CameraSnapshot
}

// CrateRecord is one allocated crate (§4.E group 16).
type CrateRecord struct {
	CrateID int32
	Kind    string
	X, Z    float32
}

// StringTable is the snapshot of unit/building names the host registry
// held at Init time. Per §9 "String-table drift", this is captured once
// and never re-derived, even if the host's registries grow afterward.
type StringTable struct {
	Units     []string
	Buildings []string
}

// Lookup resolves a StringRef index against the snapshot, returning the
// resolved name, whether it names a building, and ok.
func (st StringTable) Lookup(index int32) (name string, isBuilding bool, ok bool) {
	if index < 0 {
		return "", false, false
	}
	u := int32(len(st.Units))
	if index < u {
		return st.Units[index], false, true
	}
	b := index - u
	if b < int32(len(st.Buildings)) {
		return st.Buildings[b], true, true
	}
	return "", false, false
}

// State is the full §3.5 runtime block, independent of vm.Slots/SideTable
// (which the interpreter owns and persists alongside it).
type State struct {
	AirStrikes       map[int32]*AirStrikeRecord
	TooltipOverrides map[world.EntityID]int32
	SideColors       map[int32]int32
	ThreatLevels     map[string]int32
	MainCamera       CameraState
	PIPCamera        CameraState
	SideBasePos      map[int32]vm.Pos
	SideCash         map[int32]int32
	RNG              *prng.Stream

	// Ambient runtime state that isn't individually named in §3.5 but is
	// needed to make the functions that reference it deterministic across
	// save/restore: crate allocation and the UI freeze/radar flags.
	NextCrateID int32
	Crates      []CrateRecord
	// InputDisabled backs both DisableUI/EnableUI and FreezeGame/
	// UnFreezeGame: §4.E group 17 requires the two pairs to "behave
	// identically", so they toggle one shared flag rather than two.
	InputDisabled  bool
	RadarForced    bool
	VictoryOutcome int // 0 = undecided, 1 = victory, -1 = defeat
}

// NewState returns a zeroed runtime state seeded with seed.
func NewState(seed uint32) *State {
	return &State{
		AirStrikes:       map[int32]*AirStrikeRecord{},
		TooltipOverrides: map[world.EntityID]int32{},
		SideColors:       map[int32]int32{},
		ThreatLevels:     map[string]int32{},
		SideBasePos:      map[int32]vm.Pos{},
		SideCash:         map[int32]int32{},
		RNG:              prng.New(seed),
	}
}
