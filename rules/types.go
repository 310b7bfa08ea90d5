// Package rules implements the declarative JSON mission runner (§4.F): a
// trigger/action rule engine that mirrors most of the host surface the
// .tok interpreter drives, sharing the same save-state shape (§4.G).
package rules

// MissionScript is the top-level JSON document (§6.3). The schema is
// version-free; unknown fields MUST be tolerated, which is why every
// struct here only declares the fields it understands and leaves
// anything else to go's default json.Unmarshal forward-compat behavior.
type MissionScript struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	VictoryCondition string           `json:"victoryCondition"`
	VictoryTicks     *int32           `json:"victoryTicks,omitempty"`
	ObjectiveLabel   string           `json:"objectiveLabel"`
	StartingCredits  *int32           `json:"startingCredits,omitempty"`
	EntityGroups     []*EntityGroupDef `json:"entityGroups"`
	Rules            []*ScriptRule    `json:"rules"`
	Flags            map[string]bool  `json:"flags,omitempty"`
}

// EntityGroupDef names a group: either a spawn recipe or a match query
// over existing entities (§4.F).
type EntityGroupDef struct {
	Name  string          `json:"name"`
	Spawn *SpawnGroupDef  `json:"spawn,omitempty"`
	Match *MatchGroupDef  `json:"match,omitempty"`
}

// SpawnGroupDef spawns Count copies of TypeName, owned by Owner, at (X,Z).
type SpawnGroupDef struct {
	TypeName string  `json:"typeName"`
	Count    int     `json:"count"`
	Owner    int32   `json:"owner"`
	X        float32 `json:"x"`
	Z        float32 `json:"z"`
}

// MatchGroupDef selects existing entities by owner + optional type name +
// optional proximity to a point.
type MatchGroupDef struct {
	Owner    int32    `json:"owner"`
	TypeName string   `json:"typeName,omitempty"`
	Near     *AreaDef `json:"near,omitempty"`
}

// AreaDef is a circular region, used by groupReachedArea and MatchGroupDef.
type AreaDef struct {
	X      float32 `json:"x"`
	Z      float32 `json:"z"`
	Radius float32 `json:"radius"`
}

// TriggerDef is the tagged union of every trigger variant (§4.F). Only
// the fields relevant to Type are populated by the author; the rest are
// left at their zero value.
type TriggerDef struct {
	Type string `json:"type"`

	Tick int32 `json:"tick,omitempty"` // timer

	Interval int32 `json:"interval,omitempty"` // timerRepeat
	Start    int32 `json:"start,omitempty"`
	Limit    int32 `json:"limit,omitempty"`

	Name   string         `json:"name,omitempty"`   // event / groupDefeated / flag
	Filter map[string]any `json:"filter,omitempty"` // event

	Area *AreaDef `json:"area,omitempty"` // groupReachedArea

	Owner    int32  `json:"owner,omitempty"`    // buildingCount / unitCount
	TypeName string `json:"typeName,omitempty"` // buildingCount / unitCount
	Op       string `json:"op,omitempty"`       // ">", ">=", "<", "<=", "==", "!="
	Value    int32  `json:"value,omitempty"`    // buildingCount / unitCount threshold

	FlagValue *bool `json:"flagValue,omitempty"` // flag: compared value, defaults to true

	Sub []*TriggerDef `json:"sub,omitempty"` // and / or
	Not *TriggerDef   `json:"not,omitempty"` // not
}

// ActionDef is the tagged union of every action variant (§4.F).
type ActionDef struct {
	Type string `json:"type"`

	GroupName string `json:"groupName,omitempty"` // spawn/move/attackMove/damage/changeOwner

	X float32 `json:"x,omitempty"` // move / attackMove / pan / crate
	Z float32 `json:"z,omitempty"`

	DialogText    string `json:"dialogText,omitempty"`
	ObjectiveText string `json:"objectiveText,omitempty"`
	Message       string `json:"message,omitempty"`

	Side    int32 `json:"side,omitempty"`    // grant credits
	Credits int32 `json:"credits,omitempty"`

	Owner int32 `json:"owner,omitempty"` // changeOwner

	FlagName  string `json:"flagName,omitempty"`
	FlagValue *bool  `json:"flagValue,omitempty"`

	VictoryConditionText string `json:"victoryConditionText,omitempty"` // setVictoryCondition

	Sound string `json:"sound,omitempty"`

	CrateKind string `json:"crateKind,omitempty"`

	Damage int32 `json:"damage,omitempty"`

	EdgeName string `json:"edgeName,omitempty"` // dropReinforcements (Runner.execAction has no case for it and logs it as unknown)

	TargetRuleID string `json:"targetRuleId,omitempty"` // enable/disable another rule

	Radius float32 `json:"radius,omitempty"` // reveal area
}

// ScriptRule is one {trigger, actions, once?, delay?, enabled?} entry.
// Once and Enabled default to true when the author omits them; the
// pointer fields here exist only to detect that omission (§4.F).
type ScriptRule struct {
	ID       string        `json:"id"`
	Trigger  *TriggerDef   `json:"trigger"`
	Actions  []*ActionDef  `json:"actions"`
	OnceP    *bool         `json:"once,omitempty"`
	Delay    int32         `json:"delay,omitempty"`
	EnabledP *bool         `json:"enabled,omitempty"`
}

// Once reports the rule's once-semantics, defaulting to true.
func (r *ScriptRule) Once() bool {
	return r.OnceP == nil || *r.OnceP
}

// Enabled reports the rule's authored enabled flag, defaulting to true.
// The Runner also keeps a set of rules disabled at runtime by disableRule
// actions, which it checks before this value (see Runner.isEnabled).
func (r *ScriptRule) Enabled() bool {
	return r.EnabledP == nil || *r.EnabledP
}
