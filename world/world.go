// Package world declares the minimal capability surface (§4.H) the core
// requires of the host simulation: entity queries and mutations, event
// subscription, ambient services, and the type registries that back the
// string table NewObject and friends resolve against.
package world

import "context"

// EntityID is a host-owned entity handle. The core never constructs one;
// it only threads values the host returned back into host calls.
type EntityID int32

// Point is a world-space coordinate, matching vm.Pos's shape so dispatch
// can convert between them without loss.
type Point struct {
	X, Z float32
}

// MapMetadata exposes map-authored data the points group of the
// dispatcher resolves against: entrance markers, script points, and AI
// base spawn slots.
type MapMetadata struct {
	// EntrancePoints maps a side id (or 99 for the neutral marker) to a
	// tile-space entrance location.
	EntrancePoints map[int32]Point
	// ScriptPoints is 0-indexed internally; GetScriptPoint(n) reads index n-1.
	ScriptPoints []Point
	// BaseSpawnPoints lists every AI base spawn slot defined by the map,
	// in authoring order.
	BaseSpawnPoints []Point
}

// View is the read/mutate/subscribe/service surface the evaluator and
// dispatcher require of the host. Implementations own the actual
// entity-component store, pathfinder, and combat system; the core only
// ever sees this interface.
type View interface {
	// Entity query.
	LiveUnitsOf(side int32) []EntityID
	LiveBuildingsOf(side int32) []EntityID
	Position(eid EntityID) (Point, bool)
	Owner(eid EntityID) (int32, bool)
	Health(eid EntityID) (int32, bool)
	MaxHealth(eid EntityID) (int32, bool)
	TypeOf(eid EntityID) (string, bool)

	// Mutations.
	SpawnUnit(typeName string, owner int32, x, z float32) EntityID
	SpawnBuilding(typeName string, owner int32, x, z float32) EntityID
	SetHealth(eid EntityID, health int32)
	SetOwner(eid EntityID, owner int32)
	IssueMove(eid EntityID, x, z float32)
	ClearMove(eid EntityID)
	SetAttackMove(eids []EntityID)
	KillEntity(eid EntityID)
	SellBuilding(eid EntityID)

	// HasActiveMove reports whether eid currently has a live move/attack
	// order in flight; SideAIDone and AirStrikeDone poll this.
	HasActiveMove(eid EntityID) bool

	// Event subscription. Subscribe returns a handle Unsubscribe accepts;
	// the interpreter calls Unsubscribe for every handle it is holding on
	// dispose (§4.G "Re-init hygiene").
	Subscribe(h EventHandlers) SubscriptionHandle
	Unsubscribe(handle SubscriptionHandle)

	// Services.
	RevealArea(ctx context.Context, center Point, radius float32)
	CoverArea(ctx context.Context, center Point, radius float32)
	PanCameraTo(ctx context.Context, p Point)
	PlaySfx(ctx context.Context, name string)
	PushNotification(ctx context.Context, category string, text string)
	CampaignString(id int32) (string, bool)
	GetMapMetadata() MapMetadata
	DeclareVictory(ctx context.Context)
	DeclareDefeat(ctx context.Context)
	// NotifyEffect routes to the host's effects manager (§4.E group 16):
	// crates, worm lures, superweapon fires, and radar pulses all funnel
	// through this single sink rather than one bespoke method each.
	NotifyEffect(ctx context.Context, kind string, p Point, meta map[string]any)

	// Registries. The string table used by NewObject et al. is the fixed
	// concatenation UnitTypeNames ++ BuildingTypeNames; ids 0..U-1 are
	// units, U..U+B-1 are buildings (§4.H, §9 "String-table drift").
	UnitTypeNames() []string
	BuildingTypeNames() []string
	CampaignSpiceCredits(side int32) int32
}

// SubscriptionHandle identifies one Subscribe call for Unsubscribe.
type SubscriptionHandle int64

// EventHandlers groups the callbacks a single Subscribe call registers.
// A nil field means the caller isn't interested in that notification.
type EventHandlers struct {
	UnitDied          func(victim, killer EntityID)
	UnitAttacked      func(attacker, target EntityID)
	BuildingCompleted func(builder, eid EntityID, typeName string)
}
