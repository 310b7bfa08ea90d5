package save

import (
	"sort"

	"github.com/kestrelrts/missionvm/dispatch"
	"github.com/kestrelrts/missionvm/prng"
	"github.com/kestrelrts/missionvm/vm"
	"github.com/kestrelrts/missionvm/world"
)

// toDense rewrites a live entity id to a dense index, or -1 if eid is
// the "none" sentinel or unmapped.
func toDense(dense DenseMap, eid int32) int32 {
	if eid < 0 {
		return -1
	}
	if idx, ok := dense[eid]; ok {
		return idx
	}
	return -1
}

// fromDense rewrites a dense index back to a live entity id, or -1 if
// the index is the sentinel or no longer maps to a live entity.
func fromDense(inv InverseMap, idx int32) int32 {
	if idx < 0 {
		return -1
	}
	if eid, ok := inv[idx]; ok {
		return eid
	}
	return -1
}

// EncodeTokState captures the evaluator + dispatch runtime into a plain
// TokState, rewriting every entity field through dense (§4.G).
func EncodeTokState(slots *vm.Slots, sides *vm.SideTable, events *vm.EventLog, d *dispatch.State, dense DenseMap) *TokState {
	objVars := make([]int32, len(slots.Obj))
	for i, v := range slots.Obj {
		objVars[i] = toDense(dense, v)
	}
	posVars := append([]vm.Pos(nil), slots.Pos...)

	var rels []RelationPair
	for _, p := range sides.Pairs() {
		rels = append(rels, RelationPair{A: int32(p.A), B: int32(p.B), Rel: int(p.Rel)})
	}

	eventFlags := map[string]bool{}
	if events != nil {
		eventFlags = events.StringKeys()
	}

	return &TokState{
		IntVars:       append([]int32(nil), slots.Int...),
		ObjVars:       objVars,
		PosVars:       posVars,
		NextSideID:    int32(sides.NextSideID),
		Relationships: rels,
		EventFlags:    eventFlags,
		DispatchState: encodeDispatchState(d, dense),
	}
}

func encodeDispatchState(d *dispatch.State, dense DenseMap) *DispatchState {
	if d == nil {
		return nil
	}

	var strikes []AirStrikeRecord
	for _, rec := range d.AirStrikes {
		var idxs []int32
		for _, eid := range rec.UnitIDs {
			if idx := toDense(dense, int32(eid)); idx >= 0 {
				idxs = append(idxs, idx)
			}
		}
		sort.Slice(idxs, func(i, j int) bool { return idxs[i] < idxs[j] })
		strikes = append(strikes, AirStrikeRecord{
			StrikeID:     rec.StrikeID,
			UnitDenseIdx: idxs,
			TargetX:      rec.TargetX,
			TargetZ:      rec.TargetZ,
		})
	}
	// d.AirStrikes is keyed by StrikeID but is a Go map, so range order is
	// randomized; sort for a deterministic serialization (§1, §8).
	sort.SliceStable(strikes, func(i, j int) bool { return strikes[i].StrikeID < strikes[j].StrikeID })

	tooltips := map[int32]int32{}
	for eid, tooltipID := range d.TooltipOverrides {
		if idx := toDense(dense, int32(eid)); idx >= 0 {
			tooltips[idx] = tooltipID
		}
	}

	rngState := d.RNG.State()

	return &DispatchState{
		AirStrikes:       strikes,
		TooltipOverrides: tooltips,
		SideColors:       copyInt32Map(d.SideColors),
		ThreatLevels:     copyStringIntMap(d.ThreatLevels),
		MainCamera:       encodeCamera(d.MainCamera, dense),
		PIPCamera:        encodeCamera(d.PIPCamera, dense),
		SideBasePos:      copyPosMap(d.SideBasePos),
		SideCash:         copyInt32Map(d.SideCash),
		RNGState:         [4]uint32(rngState),
		NextCrateID:      d.NextCrateID,
		Crates:           encodeCrates(d.Crates),
		InputDisabled:    d.InputDisabled,
		RadarForced:      d.RadarForced,
		VictoryOutcome:   d.VictoryOutcome,
	}
}

func encodeCamera(c dispatch.CameraState, dense DenseMap) CameraState {
	out := CameraState{
		TrackEid: toDense(dense, int32(c.TrackEid)),
		Tracking: c.Tracking && toDense(dense, int32(c.TrackEid)) >= 0,
		Spin:     CameraSpin{Active: c.Spin.Active, Speed: c.Spin.Speed, Dir: c.Spin.Dir},
	}
	if c.Stored != nil {
		snap := CameraSnapshot{X: c.Stored.X, Z: c.Stored.Z, Zoom: c.Stored.Zoom, Rotation: c.Stored.Rotation}
		out.Stored = &snap
	}
	return out
}

func encodeCrates(crates []dispatch.CrateRecord) []CrateRecord {
	out := make([]CrateRecord, len(crates))
	for i, c := range crates {
		out[i] = CrateRecord{CrateID: c.CrateID, Kind: c.Kind, X: c.X, Z: c.Z}
	}
	return out
}

func copyInt32Map(m map[int32]int32) map[int32]int32 {
	out := make(map[int32]int32, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyStringIntMap(m map[string]int32) map[string]int32 {
	out := make(map[string]int32, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyPosMap(m map[int32]vm.Pos) map[int32]vm.Pos {
	out := make(map[int32]vm.Pos, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ApplyTokState restores slots/sides/d from ts, rewriting entity fields
// through inv. Unmapped entities drop out of group-shaped collections and
// become -1 in scalar Obj-kind fields (§4.G). ApplyTokState is idempotent.
func ApplyTokState(ts *TokState, slots *vm.Slots, sides *vm.SideTable, d *dispatch.State, inv InverseMap) {
	if ts == nil {
		return
	}
	slots.Int = append([]int32(nil), ts.IntVars...)
	slots.Pos = append([]vm.Pos(nil), ts.PosVars...)
	slots.Obj = make([]int32, len(ts.ObjVars))
	for i, idx := range ts.ObjVars {
		slots.Obj[i] = fromDense(inv, idx)
	}

	sides.NextSideID = vm.Side(ts.NextSideID)
	pairs := make([]vm.RelationPair, len(ts.Relationships))
	for i, p := range ts.Relationships {
		pairs[i] = vm.RelationPair{A: vm.Side(p.A), B: vm.Side(p.B), Rel: vm.Relation(p.Rel)}
	}
	sides.SetPairs(pairs)

	applyDispatchState(ts.DispatchState, d, inv)
}

func applyDispatchState(ds *DispatchState, d *dispatch.State, inv InverseMap) {
	if ds == nil || d == nil {
		return
	}

	d.AirStrikes = map[int32]*dispatch.AirStrikeRecord{}
	for _, rec := range ds.AirStrikes {
		var ids []world.EntityID
		for _, idx := range rec.UnitDenseIdx {
			if eid := fromDense(inv, idx); eid >= 0 {
				ids = append(ids, world.EntityID(eid))
			}
		}
		d.AirStrikes[rec.StrikeID] = &dispatch.AirStrikeRecord{
			StrikeID: rec.StrikeID,
			UnitIDs:  ids,
			TargetX:  rec.TargetX,
			TargetZ:  rec.TargetZ,
		}
	}

	d.TooltipOverrides = map[world.EntityID]int32{}
	for idx, tooltipID := range ds.TooltipOverrides {
		if eid := fromDense(inv, idx); eid >= 0 {
			d.TooltipOverrides[world.EntityID(eid)] = tooltipID
		}
	}

	d.SideColors = copyInt32Map(ds.SideColors)
	d.ThreatLevels = copyStringIntMap(ds.ThreatLevels)
	d.MainCamera = applyCamera(ds.MainCamera, inv)
	d.PIPCamera = applyCamera(ds.PIPCamera, inv)
	d.SideBasePos = copyPosMap(ds.SideBasePos)
	d.SideCash = copyInt32Map(ds.SideCash)
	d.RNG.SetState(prng.State(ds.RNGState))
	d.NextCrateID = ds.NextCrateID
	d.Crates = applyCrates(ds.Crates)
	d.InputDisabled = ds.InputDisabled
	d.RadarForced = ds.RadarForced
	d.VictoryOutcome = ds.VictoryOutcome
}

func applyCamera(c CameraState, inv InverseMap) dispatch.CameraState {
	eid := fromDense(inv, c.TrackEid)
	out := dispatch.CameraState{
		TrackEid: world.EntityID(eid),
		Tracking: c.Tracking && eid >= 0,
		Spin:     dispatch.CameraSpin{Active: c.Spin.Active, Speed: c.Spin.Speed, Dir: c.Spin.Dir},
	}
	if c.Stored != nil {
		snap := dispatch.CameraSnapshot{X: c.Stored.X, Z: c.Stored.Z, Zoom: c.Stored.Zoom, Rotation: c.Stored.Rotation}
		out.Stored = &snap
	}
	return out
}

func applyCrates(crates []CrateRecord) []dispatch.CrateRecord {
	out := make([]dispatch.CrateRecord, len(crates))
	for i, c := range crates {
		out[i] = dispatch.CrateRecord{CrateID: c.CrateID, Kind: c.Kind, X: c.X, Z: c.Z}
	}
	return out
}
