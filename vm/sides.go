package vm

import "sort"

// sidePair is an unordered key into the relationship overrides map; the
// directed relation is symmetrized on write per §3.3, so lookups only ever
// need the unordered pair.
type sidePair struct {
	a, b Side
}

func pairOf(a, b Side) sidePair {
	if a > b {
		a, b = b, a
	}
	return sidePair{a, b}
}

// SideTable tracks side allocation and the directed relationship map.
type SideTable struct {
	NextSideID Side
	rel        map[sidePair]Relation
}

// NewSideTable returns a table with the default {0,1,255} topology and
// nextSideId starting at 2 (§3.3).
func NewSideTable() *SideTable {
	return &SideTable{NextSideID: 2, rel: map[sidePair]Relation{}}
}

// CreateSide allocates and returns the next side id.
func (t *SideTable) CreateSide() Side {
	id := t.NextSideID
	t.NextSideID++
	return id
}

// Relation returns the relationship of a to b. Defaults (§3.3): a == b is
// Friend; the {0,1} pair is Enemy; everything else is Neutral, unless
// overridden by a setter.
func (t *SideTable) Relation(a, b Side) Relation {
	if a == b {
		return RelFriend
	}
	if r, ok := t.rel[pairOf(a, b)]; ok {
		return r
	}
	if (a == SidePlayer && b == SideEnemy) || (a == SideEnemy && b == SidePlayer) {
		return RelEnemy
	}
	return RelNeutral
}

// IsEnemy, IsFriend, IsNeutral are convenience predicates matching the
// dispatch-level query functions.
func (t *SideTable) IsEnemy(a, b Side) bool   { return t.Relation(a, b) == RelEnemy }
func (t *SideTable) IsFriend(a, b Side) bool  { return t.Relation(a, b) == RelFriend }
func (t *SideTable) IsNeutral(a, b Side) bool { return t.Relation(a, b) == RelNeutral }

// SetEnemy, SetFriend, SetNeutral symmetrize a directed setter call into the
// unordered pair (§3.3: "Relationship setters write the pair").
func (t *SideTable) SetEnemy(a, b Side)   { t.rel[pairOf(a, b)] = RelEnemy }
func (t *SideTable) SetFriend(a, b Side)  { t.rel[pairOf(a, b)] = RelFriend }
func (t *SideTable) SetNeutral(a, b Side) { t.rel[pairOf(a, b)] = RelNeutral }

// RelationPair is a flattened, serialization-friendly view of one override
// entry (§4.G: "nextSideId and the relationship pairs").
type RelationPair struct {
	A, B Side
	Rel  Relation
}

// Pairs returns every explicit override, for save serialization. The
// result is sorted by (A, B) so two calls over equivalent state always
// emit the same order, since range over t.rel is not itself ordered.
func (t *SideTable) Pairs() []RelationPair {
	out := make([]RelationPair, 0, len(t.rel))
	for p, r := range t.rel {
		out = append(out, RelationPair{A: p.a, B: p.b, Rel: r})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

// SetPairs replaces the override map wholesale, for restore.
func (t *SideTable) SetPairs(pairs []RelationPair) {
	t.rel = make(map[sidePair]Relation, len(pairs))
	for _, p := range pairs {
		t.rel[pairOf(p.A, p.B)] = p.Rel
	}
}
