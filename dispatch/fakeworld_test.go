package dispatch

import (
	"context"

	"github.com/kestrelrts/missionvm/world"
)

// fakeWorld is a minimal, deterministic world.View used across dispatch
// tests. It keeps just enough entity bookkeeping to exercise the
// dispatcher's query/mutation logic.
type fakeWorld struct {
	nextID    int32
	units     map[world.EntityID]*fakeEntity
	buildings map[world.EntityID]*fakeEntity

	unitNames     []string
	buildingNames []string

	campaignStrings map[int32]string
	meta            world.MapMetadata

	notifications []notification
	effects       []effect
	victories     int
	defeats       int
}

type fakeEntity struct {
	owner     int32
	x, z      float32
	health    int32
	maxHealth int32
	typeName  string
	moving    bool
}

type notification struct {
	category, text string
}

type effect struct {
	kind string
	p    world.Point
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{
		units:           map[world.EntityID]*fakeEntity{},
		buildings:       map[world.EntityID]*fakeEntity{},
		unitNames:       []string{"Rifleman", "Tank"},
		buildingNames:   []string{"Barracks", "Factory"},
		campaignStrings: map[int32]string{},
	}
}

func (w *fakeWorld) spawn(store map[world.EntityID]*fakeEntity, typeName string, owner int32, x, z float32) world.EntityID {
	w.nextID++
	store[world.EntityID(w.nextID)] = &fakeEntity{owner: owner, x: x, z: z, health: 100, maxHealth: 100, typeName: typeName}
	return world.EntityID(w.nextID)
}

func (w *fakeWorld) LiveUnitsOf(side int32) []world.EntityID {
	var out []world.EntityID
	for id, e := range w.units {
		if e.owner == side && e.health > 0 {
			out = append(out, id)
		}
	}
	return out
}

func (w *fakeWorld) LiveBuildingsOf(side int32) []world.EntityID {
	var out []world.EntityID
	for id, e := range w.buildings {
		if e.owner == side && e.health > 0 {
			out = append(out, id)
		}
	}
	return out
}

func (w *fakeWorld) lookup(eid world.EntityID) (*fakeEntity, bool) {
	if e, ok := w.units[eid]; ok {
		return e, true
	}
	if e, ok := w.buildings[eid]; ok {
		return e, true
	}
	return nil, false
}

func (w *fakeWorld) Position(eid world.EntityID) (world.Point, bool) {
	e, ok := w.lookup(eid)
	if !ok {
		return world.Point{}, false
	}
	return world.Point{X: e.x, Z: e.z}, true
}

func (w *fakeWorld) Owner(eid world.EntityID) (int32, bool) {
	e, ok := w.lookup(eid)
	if !ok {
		return 0, false
	}
	return e.owner, true
}

func (w *fakeWorld) Health(eid world.EntityID) (int32, bool) {
	e, ok := w.lookup(eid)
	if !ok {
		return 0, false
	}
	return e.health, true
}

func (w *fakeWorld) MaxHealth(eid world.EntityID) (int32, bool) {
	e, ok := w.lookup(eid)
	if !ok {
		return 0, false
	}
	return e.maxHealth, true
}

func (w *fakeWorld) TypeOf(eid world.EntityID) (string, bool) {
	e, ok := w.lookup(eid)
	if !ok {
		return "", false
	}
	return e.typeName, true
}

func (w *fakeWorld) SpawnUnit(typeName string, owner int32, x, z float32) world.EntityID {
	return w.spawn(w.units, typeName, owner, x, z)
}

func (w *fakeWorld) SpawnBuilding(typeName string, owner int32, x, z float32) world.EntityID {
	return w.spawn(w.buildings, typeName, owner, x, z)
}

func (w *fakeWorld) SetHealth(eid world.EntityID, health int32) {
	if e, ok := w.lookup(eid); ok {
		e.health = health
	}
}

func (w *fakeWorld) SetOwner(eid world.EntityID, owner int32) {
	if e, ok := w.lookup(eid); ok {
		e.owner = owner
	}
}

func (w *fakeWorld) IssueMove(eid world.EntityID, x, z float32) {
	if e, ok := w.lookup(eid); ok {
		e.moving = true
	}
}

func (w *fakeWorld) ClearMove(eid world.EntityID) {
	if e, ok := w.lookup(eid); ok {
		e.moving = false
	}
}

func (w *fakeWorld) SetAttackMove(eids []world.EntityID) {
	for _, eid := range eids {
		if e, ok := w.lookup(eid); ok {
			e.moving = true
		}
	}
}

func (w *fakeWorld) KillEntity(eid world.EntityID) {
	if e, ok := w.lookup(eid); ok {
		e.health = 0
	}
}

func (w *fakeWorld) SellBuilding(eid world.EntityID) {
	delete(w.buildings, eid)
}

func (w *fakeWorld) HasActiveMove(eid world.EntityID) bool {
	e, ok := w.lookup(eid)
	return ok && e.moving
}

func (w *fakeWorld) Subscribe(h world.EventHandlers) world.SubscriptionHandle { return 1 }
func (w *fakeWorld) Unsubscribe(handle world.SubscriptionHandle)             {}

func (w *fakeWorld) RevealArea(ctx context.Context, center world.Point, radius float32) {}
func (w *fakeWorld) CoverArea(ctx context.Context, center world.Point, radius float32)  {}
func (w *fakeWorld) PanCameraTo(ctx context.Context, p world.Point)                     {}
func (w *fakeWorld) PlaySfx(ctx context.Context, name string)                           {}

func (w *fakeWorld) PushNotification(ctx context.Context, category string, text string) {
	w.notifications = append(w.notifications, notification{category, text})
}

func (w *fakeWorld) CampaignString(id int32) (string, bool) {
	s, ok := w.campaignStrings[id]
	return s, ok
}

func (w *fakeWorld) GetMapMetadata() world.MapMetadata { return w.meta }

func (w *fakeWorld) DeclareVictory(ctx context.Context) { w.victories++ }
func (w *fakeWorld) DeclareDefeat(ctx context.Context)  { w.defeats++ }

func (w *fakeWorld) NotifyEffect(ctx context.Context, kind string, p world.Point, meta map[string]any) {
	w.effects = append(w.effects, effect{kind, p})
}

func (w *fakeWorld) UnitTypeNames() []string     { return w.unitNames }
func (w *fakeWorld) BuildingTypeNames() []string { return w.buildingNames }
func (w *fakeWorld) CampaignSpiceCredits(side int32) int32 { return 0 }
