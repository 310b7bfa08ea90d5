package vm

import "strconv"

// EventLog is the per-tick multiset of facts derived from host events
// (§3.4). It is cleared after every tick (§4.D step 4) so a fact is
// visible to exactly the tick immediately following its recording.
type EventLog struct {
	destroyed     []int32
	delivered     []int32
	deliveredSide []sideEid
	constructed   []sideEid
	typeConstr    []typeConstructedFact
	sideAttacks   []sidePairFact
	objectAttacks []objectAttacksFact
}

type sideEid struct {
	Side Side
	Eid  int32
}

type typeConstructedFact struct {
	Side     Side
	TypeName string
	Eid      int32
}

type sidePairFact struct {
	A, B Side
}

type objectAttacksFact struct {
	Eid  int32
	Side Side
}

// NewEventLog returns an empty log.
func NewEventLog() *EventLog { return &EventLog{} }

// Clear empties every fact bucket.
func (l *EventLog) Clear() {
	*l = EventLog{}
}

// --- recording (host -> log) ---

func (l *EventLog) RecordDestroyed(eid int32) { l.destroyed = append(l.destroyed, eid) }
func (l *EventLog) RecordDelivered(eid int32)  { l.delivered = append(l.delivered, eid) }
func (l *EventLog) RecordDeliveredSide(side Side, eid int32) {
	l.deliveredSide = append(l.deliveredSide, sideEid{side, eid})
}
func (l *EventLog) RecordConstructed(side Side, eid int32) {
	l.constructed = append(l.constructed, sideEid{side, eid})
}
func (l *EventLog) RecordTypeConstructed(side Side, typeName string, eid int32) {
	l.typeConstr = append(l.typeConstr, typeConstructedFact{side, typeName, eid})
}
func (l *EventLog) RecordSideAttacksSide(a, b Side) {
	l.sideAttacks = append(l.sideAttacks, sidePairFact{a, b})
}
func (l *EventLog) RecordObjectAttacksSide(eid int32, side Side) {
	l.objectAttacks = append(l.objectAttacks, objectAttacksFact{eid, side})
}

// --- querying (dispatch -> log) ---

// HasDestroyed reports whether eid was recorded as destroyed this tick.
func (l *EventLog) HasDestroyed(eid int32) bool {
	for _, e := range l.destroyed {
		if e == eid {
			return true
		}
	}
	return false
}

// HasSideAttacksSide reports whether (a,b) was recorded this tick.
func (l *EventLog) HasSideAttacksSide(a, b Side) bool {
	for _, f := range l.sideAttacks {
		if f.A == a && f.B == b {
			return true
		}
	}
	return false
}

// HasObjectAttacksSide reports whether (eid,side) was recorded this tick.
func (l *EventLog) HasObjectAttacksSide(eid int32, side Side) bool {
	for _, f := range l.objectAttacks {
		if f.Eid == eid && f.Side == side {
			return true
		}
	}
	return false
}

// ConsumeDelivered returns the first pending delivered(eid) fact (any
// side), removing it so a subsequent call returns a different match.
func (l *EventLog) ConsumeDelivered() (int32, bool) {
	if len(l.delivered) == 0 {
		return 0, false
	}
	eid := l.delivered[0]
	l.delivered = l.delivered[1:]
	return eid, true
}

// ConsumeDeliveredSide is the side-filtered variant
// EventObjectDeliveredToSide dispatches against.
func (l *EventLog) ConsumeDeliveredSide(side Side) (int32, bool) {
	for i, f := range l.deliveredSide {
		if f.Side == side {
			l.deliveredSide = append(l.deliveredSide[:i], l.deliveredSide[i+1:]...)
			return f.Eid, true
		}
	}
	return 0, false
}

// ConsumeConstructed finds and removes the first constructed(side, eid)
// fact matching side.
func (l *EventLog) ConsumeConstructed(side Side) (int32, bool) {
	for i, f := range l.constructed {
		if f.Side == side {
			l.constructed = append(l.constructed[:i], l.constructed[i+1:]...)
			return f.Eid, true
		}
	}
	return 0, false
}

// ConsumeTypeConstructed finds and removes the first typeConstructed fact
// matching (side, typeName).
func (l *EventLog) ConsumeTypeConstructed(side Side, typeName string) (int32, bool) {
	for i, f := range l.typeConstr {
		if f.Side == side && f.TypeName == typeName {
			l.typeConstr = append(l.typeConstr[:i], l.typeConstr[i+1:]...)
			return f.Eid, true
		}
	}
	return 0, false
}

// StringKeys serializes the log into the stable string-keyed map the save
// schema requires (§4.G). Implementations MAY emit it empty if serialize
// is only called at tick boundaries, since the log is cleared by then;
// this flattening exists for callers that snapshot mid-tick regardless.
func (l *EventLog) StringKeys() map[string]bool {
	out := map[string]bool{}
	for _, e := range l.destroyed {
		out[factKey("destroyed", e)] = true
	}
	for _, e := range l.delivered {
		out[factKey("delivered", e)] = true
	}
	for _, f := range l.deliveredSide {
		out[factKey("deliveredSide", f.Side, f.Eid)] = true
	}
	for _, f := range l.constructed {
		out[factKey("constructed", f.Side, f.Eid)] = true
	}
	for _, f := range l.typeConstr {
		out[factKey("typeConstructed", f.Side, f.TypeName, f.Eid)] = true
	}
	for _, f := range l.sideAttacks {
		out[factKey("sideAttacksSide", f.A, f.B)] = true
	}
	for _, f := range l.objectAttacks {
		out[factKey("objectAttacksSide", f.Eid, f.Side)] = true
	}
	return out
}

func factKey(kind string, parts ...any) string {
	s := kind
	for _, p := range parts {
		s += ":" + toStringPart(p)
	}
	return s
}

func toStringPart(v any) string {
	switch x := v.(type) {
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case Side:
		return strconv.FormatInt(int64(x), 10)
	case string:
		return x
	default:
		return ""
	}
}
