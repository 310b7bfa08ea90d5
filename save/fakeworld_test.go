package save

import (
	"context"

	"github.com/kestrelrts/missionvm/world"
)

// fakeRulesWorld is a minimal world.View sufficient to exercise
// rules.New's spawn-group bootstrapping from a save-package test.
type fakeRulesWorld struct {
	nextID int32
}

func newFakeRulesWorld() *fakeRulesWorld { return &fakeRulesWorld{} }

func (w *fakeRulesWorld) LiveUnitsOf(side int32) []world.EntityID     { return nil }
func (w *fakeRulesWorld) LiveBuildingsOf(side int32) []world.EntityID { return nil }
func (w *fakeRulesWorld) Position(world.EntityID) (world.Point, bool) { return world.Point{}, false }
func (w *fakeRulesWorld) Owner(world.EntityID) (int32, bool)          { return 0, false }
func (w *fakeRulesWorld) Health(world.EntityID) (int32, bool)        { return 0, false }
func (w *fakeRulesWorld) MaxHealth(world.EntityID) (int32, bool)     { return 0, false }
func (w *fakeRulesWorld) TypeOf(world.EntityID) (string, bool)       { return "", false }

func (w *fakeRulesWorld) SpawnUnit(typeName string, owner int32, x, z float32) world.EntityID {
	w.nextID++
	return world.EntityID(w.nextID)
}
func (w *fakeRulesWorld) SpawnBuilding(typeName string, owner int32, x, z float32) world.EntityID {
	w.nextID++
	return world.EntityID(w.nextID)
}
func (w *fakeRulesWorld) SetHealth(world.EntityID, int32)        {}
func (w *fakeRulesWorld) SetOwner(world.EntityID, int32)         {}
func (w *fakeRulesWorld) IssueMove(world.EntityID, float32, float32) {}
func (w *fakeRulesWorld) ClearMove(world.EntityID)               {}
func (w *fakeRulesWorld) SetAttackMove([]world.EntityID)         {}
func (w *fakeRulesWorld) KillEntity(world.EntityID)              {}
func (w *fakeRulesWorld) SellBuilding(world.EntityID)            {}
func (w *fakeRulesWorld) HasActiveMove(world.EntityID) bool      { return false }

func (w *fakeRulesWorld) Subscribe(world.EventHandlers) world.SubscriptionHandle { return 1 }
func (w *fakeRulesWorld) Unsubscribe(world.SubscriptionHandle)                  {}

func (w *fakeRulesWorld) RevealArea(context.Context, world.Point, float32) {}
func (w *fakeRulesWorld) CoverArea(context.Context, world.Point, float32)  {}
func (w *fakeRulesWorld) PanCameraTo(context.Context, world.Point)         {}
func (w *fakeRulesWorld) PlaySfx(context.Context, string)                  {}
func (w *fakeRulesWorld) PushNotification(context.Context, string, string) {}
func (w *fakeRulesWorld) CampaignString(int32) (string, bool)              { return "", false }
func (w *fakeRulesWorld) GetMapMetadata() world.MapMetadata                { return world.MapMetadata{} }
func (w *fakeRulesWorld) DeclareVictory(context.Context)                   {}
func (w *fakeRulesWorld) DeclareDefeat(context.Context)                    {}
func (w *fakeRulesWorld) NotifyEffect(context.Context, string, world.Point, map[string]any) {}

func (w *fakeRulesWorld) UnitTypeNames() []string               { return nil }
func (w *fakeRulesWorld) BuildingTypeNames() []string           { return nil }
func (w *fakeRulesWorld) CampaignSpiceCredits(int32) int32      { return 0 }
