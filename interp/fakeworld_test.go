package interp

import (
	"context"

	"github.com/kestrelrts/missionvm/world"
)

type fakeEntity struct {
	owner  int32
	x, z   float32
	health int32
	typeN  string
}

type fakeWorld struct {
	nextID int32
	ents   map[world.EntityID]*fakeEntity

	handlers      world.EventHandlers
	subscribeCalls int
	unsubCalls     int

	notifications []string
}

func newFakeWorld() *fakeWorld { return &fakeWorld{ents: map[world.EntityID]*fakeEntity{}} }

func (w *fakeWorld) spawn(owner int32, x, z float32, typeN string) world.EntityID {
	w.nextID++
	w.ents[world.EntityID(w.nextID)] = &fakeEntity{owner: owner, x: x, z: z, health: 100, typeN: typeN}
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
func (w *fakeWorld) MaxHealth(world.EntityID) (int32, bool) { return 100, true }
func (w *fakeWorld) TypeOf(eid world.EntityID) (string, bool) {
	e, ok := w.ents[eid]
	if !ok {
		return "", false
	}
	return e.typeN, true
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
func (w *fakeWorld) IssueMove(world.EntityID, float32, float32) {}
func (w *fakeWorld) ClearMove(world.EntityID)                   {}
func (w *fakeWorld) SetAttackMove([]world.EntityID)             {}
func (w *fakeWorld) KillEntity(eid world.EntityID) {
	if e, ok := w.ents[eid]; ok {
		e.health = 0
	}
}
func (w *fakeWorld) SellBuilding(eid world.EntityID) { delete(w.ents, eid) }
func (w *fakeWorld) HasActiveMove(world.EntityID) bool { return false }

func (w *fakeWorld) Subscribe(h world.EventHandlers) world.SubscriptionHandle {
	w.handlers = h
	w.subscribeCalls++
	return world.SubscriptionHandle(w.subscribeCalls)
}
func (w *fakeWorld) Unsubscribe(world.SubscriptionHandle) { w.unsubCalls++ }

func (w *fakeWorld) RevealArea(context.Context, world.Point, float32) {}
func (w *fakeWorld) CoverArea(context.Context, world.Point, float32)  {}
func (w *fakeWorld) PanCameraTo(context.Context, world.Point)         {}
func (w *fakeWorld) PlaySfx(context.Context, string)                  {}
func (w *fakeWorld) PushNotification(ctx context.Context, category, text string) {
	w.notifications = append(w.notifications, category+":"+text)
}
func (w *fakeWorld) CampaignString(int32) (string, bool)       { return "", false }
func (w *fakeWorld) GetMapMetadata() world.MapMetadata         { return world.MapMetadata{} }
func (w *fakeWorld) DeclareVictory(context.Context)            {}
func (w *fakeWorld) DeclareDefeat(context.Context)             {}
func (w *fakeWorld) NotifyEffect(context.Context, string, world.Point, map[string]any) {}

func (w *fakeWorld) UnitTypeNames() []string          { return []string{"Rifleman"} }
func (w *fakeWorld) BuildingTypeNames() []string      { return []string{"Barracks"} }
func (w *fakeWorld) CampaignSpiceCredits(int32) int32 { return 0 }
