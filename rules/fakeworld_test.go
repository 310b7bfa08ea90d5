package rules

import (
	"context"

	"github.com/kestrelrts/missionvm/world"
)

type fakeEntity struct {
	owner    int32
	x, z     float32
	health   int32
	typeName string
}

type fakeWorld struct {
	nextID int32
	ents   map[world.EntityID]*fakeEntity

	notifications []string
	effects       []string
	victories     int
	defeats       int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{ents: map[world.EntityID]*fakeEntity{}}
}

func (w *fakeWorld) spawn(owner int32, x, z float32, typeName string) world.EntityID {
	w.nextID++
	w.ents[world.EntityID(w.nextID)] = &fakeEntity{owner: owner, x: x, z: z, health: 100, typeName: typeName}
	return world.EntityID(w.nextID)
}

func (w *fakeWorld) LiveUnitsOf(side int32) []world.EntityID {
	var out []world.EntityID
	for id, e := range w.ents {
		if e.owner == side && e.health > 0 {
			out = append(out, id)
		}
	}
	return out
}
func (w *fakeWorld) LiveBuildingsOf(side int32) []world.EntityID { return nil }

func (w *fakeWorld) Position(eid world.EntityID) (world.Point, bool) {
	e, ok := w.ents[eid]
	if !ok {
		return world.Point{}, false
	}
	return world.Point{X: e.x, Z: e.z}, true
}
func (w *fakeWorld) Owner(eid world.EntityID) (int32, bool) {
	e, ok := w.ents[eid]
	if !ok {
		return 0, false
	}
	return e.owner, true
}
func (w *fakeWorld) Health(eid world.EntityID) (int32, bool) {
	e, ok := w.ents[eid]
	if !ok {
		return 0, false
	}
	return e.health, true
}
func (w *fakeWorld) MaxHealth(eid world.EntityID) (int32, bool) { return 100, true }
func (w *fakeWorld) TypeOf(eid world.EntityID) (string, bool) {
	e, ok := w.ents[eid]
	if !ok {
		return "", false
	}
	return e.typeName, true
}

func (w *fakeWorld) SpawnUnit(typeName string, owner int32, x, z float32) world.EntityID {
	return w.spawn(owner, x, z, typeName)
}
func (w *fakeWorld) SpawnBuilding(typeName string, owner int32, x, z float32) world.EntityID {
	return w.spawn(owner, x, z, typeName)
}
func (w *fakeWorld) SetHealth(eid world.EntityID, health int32) {
	if e, ok := w.ents[eid]; ok {
		e.health = health
	}
}
func (w *fakeWorld) SetOwner(eid world.EntityID, owner int32) {
	if e, ok := w.ents[eid]; ok {
		e.owner = owner
	}
}
func (w *fakeWorld) IssueMove(eid world.EntityID, x, z float32) {
	if e, ok := w.ents[eid]; ok {
		e.x, e.z = x, z
	}
}
func (w *fakeWorld) ClearMove(eid world.EntityID)            {}
func (w *fakeWorld) SetAttackMove(eids []world.EntityID)     {}
func (w *fakeWorld) KillEntity(eid world.EntityID) {
	if e, ok := w.ents[eid]; ok {
		e.health = 0
	}
}
func (w *fakeWorld) SellBuilding(eid world.EntityID)      { delete(w.ents, eid) }
func (w *fakeWorld) HasActiveMove(world.EntityID) bool    { return false }

func (w *fakeWorld) Subscribe(h world.EventHandlers) world.SubscriptionHandle { return 1 }
func (w *fakeWorld) Unsubscribe(world.SubscriptionHandle)                    {}

func (w *fakeWorld) RevealArea(ctx context.Context, center world.Point, radius float32) {}
func (w *fakeWorld) CoverArea(ctx context.Context, center world.Point, radius float32)  {}
func (w *fakeWorld) PanCameraTo(ctx context.Context, p world.Point)                     {}
func (w *fakeWorld) PlaySfx(ctx context.Context, name string)                           {}
func (w *fakeWorld) PushNotification(ctx context.Context, category, text string) {
	w.notifications = append(w.notifications, category+":"+text)
}
func (w *fakeWorld) CampaignString(id int32) (string, bool)        { return "", false }
func (w *fakeWorld) GetMapMetadata() world.MapMetadata              { return world.MapMetadata{} }
func (w *fakeWorld) DeclareVictory(ctx context.Context)              { w.victories++ }
func (w *fakeWorld) DeclareDefeat(ctx context.Context)               { w.defeats++ }
func (w *fakeWorld) NotifyEffect(ctx context.Context, kind string, p world.Point, meta map[string]any) {
	w.effects = append(w.effects, kind)
}
func (w *fakeWorld) UnitTypeNames() []string               { return []string{"Rifleman"} }
func (w *fakeWorld) BuildingTypeNames() []string           { return []string{"Barracks"} }
func (w *fakeWorld) CampaignSpiceCredits(side int32) int32 { return 0 }
