package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kestrelrts/missionvm/world"
)

// stubWorld is a minimal, deterministic world.View used when
// cmd/missionrun is run without a real simulation host attached: it
// tracks entities in memory and prints service calls to stderr instead
// of rendering anything.
type stubWorld struct {
	nextID        int32
	ents          map[world.EntityID]*stubEntity
	unitNames     []string
	buildingNames []string
	meta          world.MapMetadata
}

type stubEntity struct {
	owner    int32
	x, z     float32
	health   int32
	maxHP    int32
	typeName string
}

func newStubWorld(unitNames, buildingNames []string) *stubWorld {
	return &stubWorld{
		ents:          map[world.EntityID]*stubEntity{},
		unitNames:     unitNames,
		buildingNames: buildingNames,
	}
}

func (w *stubWorld) spawn(owner int32, x, z float32, typeName string) world.EntityID {
	w.nextID++
	w.ents[world.EntityID(w.nextID)] = &stubEntity{owner: owner, x: x, z: z, health: 100, maxHP: 100, typeName: typeName}
	return world.EntityID(w.nextID)
}

func (w *stubWorld) LiveUnitsOf(side int32) []world.EntityID {
	var out []world.EntityID
	for id, e := range w.ents {
		if e.owner == side && e.health > 0 {
			out = append(out, id)
		}
	}
	return out
}
func (w *stubWorld) LiveBuildingsOf(side int32) []world.EntityID { return nil }

func (w *stubWorld) Position(eid world.EntityID) (world.Point, bool) {
	e, ok := w.ents[eid]
	if !ok {
		return world.Point{}, false
	}
	return world.Point{X: e.x, Z: e.z}, true
}
func (w *stubWorld) Owner(eid world.EntityID) (int32, bool) {
	e, ok := w.ents[eid]
	if !ok {
		return 0, false
	}
	return e.owner, true
}
func (w *stubWorld) Health(eid world.EntityID) (int32, bool) {
	e, ok := w.ents[eid]
	if !ok {
		return 0, false
	}
	return e.health, true
}
func (w *stubWorld) MaxHealth(eid world.EntityID) (int32, bool) {
	e, ok := w.ents[eid]
	if !ok {
		return 0, false
	}
	return e.maxHP, true
}
func (w *stubWorld) TypeOf(eid world.EntityID) (string, bool) {
	e, ok := w.ents[eid]
	if !ok {
		return "", false
	}
	return e.typeName, true
}

func (w *stubWorld) SpawnUnit(typeName string, owner int32, x, z float32) world.EntityID {
	return w.spawn(owner, x, z, typeName)
}
func (w *stubWorld) SpawnBuilding(typeName string, owner int32, x, z float32) world.EntityID {
	return w.spawn(owner, x, z, typeName)
}
func (w *stubWorld) SetHealth(eid world.EntityID, health int32) {
	if e, ok := w.ents[eid]; ok {
		e.health = health
	}
}
func (w *stubWorld) SetOwner(eid world.EntityID, owner int32) {
	if e, ok := w.ents[eid]; ok {
		e.owner = owner
	}
}
func (w *stubWorld) IssueMove(eid world.EntityID, x, z float32) {
	if e, ok := w.ents[eid]; ok {
		e.x, e.z = x, z
	}
}
func (w *stubWorld) ClearMove(world.EntityID)           {}
func (w *stubWorld) SetAttackMove([]world.EntityID)     {}
func (w *stubWorld) KillEntity(eid world.EntityID) {
	if e, ok := w.ents[eid]; ok {
		e.health = 0
	}
}
func (w *stubWorld) SellBuilding(eid world.EntityID)   { delete(w.ents, eid) }
func (w *stubWorld) HasActiveMove(world.EntityID) bool { return false }

func (w *stubWorld) Subscribe(world.EventHandlers) world.SubscriptionHandle { return 1 }
func (w *stubWorld) Unsubscribe(world.SubscriptionHandle)                  {}

func (w *stubWorld) RevealArea(ctx context.Context, center world.Point, radius float32) {
	fmt.Fprintf(os.Stderr, "revealArea %+v r=%.1f\n", center, radius)
}
func (w *stubWorld) CoverArea(ctx context.Context, center world.Point, radius float32) {}
func (w *stubWorld) PanCameraTo(ctx context.Context, p world.Point)                    {}
func (w *stubWorld) PlaySfx(ctx context.Context, name string)                          {}
func (w *stubWorld) PushNotification(ctx context.Context, category, text string) {
	fmt.Fprintf(os.Stderr, "[%s] %s\n", category, text)
}
func (w *stubWorld) CampaignString(id int32) (string, bool) { return "", false }
func (w *stubWorld) GetMapMetadata() world.MapMetadata      { return w.meta }
func (w *stubWorld) DeclareVictory(ctx context.Context) {
	fmt.Fprintln(os.Stderr, "*** VICTORY ***")
}
func (w *stubWorld) DeclareDefeat(ctx context.Context) {
	fmt.Fprintln(os.Stderr, "*** DEFEAT ***")
}
func (w *stubWorld) NotifyEffect(ctx context.Context, kind string, p world.Point, meta map[string]any) {
	fmt.Fprintf(os.Stderr, "effect %s at %+v\n", kind, p)
}

func (w *stubWorld) UnitTypeNames() []string          { return w.unitNames }
func (w *stubWorld) BuildingTypeNames() []string      { return w.buildingNames }
func (w *stubWorld) CampaignSpiceCredits(int32) int32 { return 0 }
