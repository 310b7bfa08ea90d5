package dispatch

import "github.com/kestrelrts/missionvm/tok"

// Named function ids, resolved once from the canonical table so the
// switch in dispatch.go reads by name rather than by magic number. This
// keeps the table (tok.Funcs) as the single source of truth for ids.
var (
	fnModelTick                  = id("ModelTick")
	fnRandom                     = id("Random")
	fnMultiplayer                = id("Multiplayer")
	fnCreateSide                 = id("CreateSide")
	fnGetPlayerSide              = id("GetPlayerSide")
	fnGetEnemySide               = id("GetEnemySide")
	fnGetNeutralSide             = id("GetNeutralSide")
	fnSideEnemyTo                = id("SideEnemyTo")
	fnSideFriendTo               = id("SideFriendTo")
	fnSideNeutralTo              = id("SideNeutralTo")
	fnGetSidePosition            = id("GetSidePosition")
	fnGetEntrancePoint           = id("GetEntrancePoint")
	fnGetNeutralEntrancePoint    = id("GetNeutralEntrancePoint")
	fnGetScriptPoint             = id("GetScriptPoint")
	fnGetUnusedBasePoint         = id("GetUnusedBasePoint")
	fnNewObject                  = id("NewObject")
	fnNewObjectInAPC             = id("NewObjectInAPC")
	fnNewObjectOffsetOrientation = id("NewObjectOffsetOrientation")
	fnObjectValid                = id("ObjectValid")
	fnObjectDestroyed            = id("ObjectDestroyed")
	fnObjectNearToSide           = id("ObjectNearToSide")
	fnObjectNearToObject         = id("ObjectNearToObject")
	fnObjectGetHealth            = id("ObjectGetHealth")
	fnObjectMaxHealth            = id("ObjectMaxHealth")
	fnObjectSetHealth            = id("ObjectSetHealth")
	fnObjectChangeSide           = id("ObjectChangeSide")
	fnObjectChange               = id("ObjectChange")
	fnObjectRemove               = id("ObjectRemove")
	fnObjectDeploy               = id("ObjectDeploy")
	fnObjectUndeploy             = id("ObjectUndeploy")
	fnObjectSell                 = id("ObjectSell")
	fnObjectInfect                = id("ObjectInfect")
	fnObjectDetonate             = id("ObjectDetonate")
	fnSideUnitCount              = id("SideUnitCount")
	fnSideBuildingCount          = id("SideBuildingCount")
	fnSideAIDone                 = id("SideAIDone")
	fnSideNearToSide             = id("SideNearToSide")
	fnSideNearToPoint            = id("SideNearToPoint")
	fnSideAIAggressive           = id("SideAIAggressive")
	fnSideAIMove                 = id("SideAIMove")
	fnSideAIStop                 = id("SideAIStop")
	fnSideAIAttackObject         = id("SideAIAttackObject")
	fnSideAIGuardObject          = id("SideAIGuardObject")
	fnSideAIExitMap              = id("SideAIExitMap")
	fnSideAIEncounterAttack      = id("SideAIEncounterAttack")
	fnSideAIBehaviourAggressive  = id("SideAIBehaviourAggressive")
	fnSideAIBehaviourRetreat     = id("SideAIBehaviourRetreat")
	fnSideAIBehaviourNormal      = id("SideAIBehaviourNormal")
	fnSideAIBehaviourDefensive   = id("SideAIBehaviourDefensive")
	fnSideAIBehaviourShuffle     = id("SideAIBehaviourShuffle")
	fnSideAIHeadlessChicken      = id("SideAIHeadlessChicken")
	fnSideAIEnterBuilding        = id("SideAIEnterBuilding")
	fnSideAIEncounterIgnore      = id("SideAIEncounterIgnore")
	fnSideAIControl              = id("SideAIControl")
	fnMessage                    = id("Message")
	fnGiftingMessage             = id("GiftingMessage")
	fnTimerMessage               = id("TimerMessage")
	fnAddSideCash                = id("AddSideCash")
	fnSetSideCash                = id("SetSideCash")
	fnGetSideCash                = id("GetSideCash")
	fnGetSideSpice               = id("GetSideSpice")
	fnCameraLookAtPoint          = id("CameraLookAtPoint")
	fnCameraPanToPoint           = id("CameraPanToPoint")
	fnCameraScrollToPoint        = id("CameraScrollToPoint")
	fnCameraTrackObject          = id("CameraTrackObject")
	fnCameraStartRotate          = id("CameraStartRotate")
	fnCameraStopRotate           = id("CameraStopRotate")
	fnCameraIsSpinning           = id("CameraIsSpinning")
	fnCameraStore                = id("CameraStore")
	fnCameraRestore              = id("CameraRestore")
	fnPIPCameraLookAtPoint       = id("PIPCameraLookAtPoint")
	fnPIPCameraTrackObject       = id("PIPCameraTrackObject")
	fnPIPCameraStartRotate       = id("PIPCameraStartRotate")
	fnPIPCameraStopRotate        = id("PIPCameraStopRotate")
	fnPIPCameraStore             = id("PIPCameraStore")
	fnPIPCameraRestore           = id("PIPCameraRestore")
	fnRemoveShroud               = id("RemoveShroud")
	fnReplaceShroud              = id("ReplaceShroud")
	fnRemoveMapShroud            = id("RemoveMapShroud")
	fnRadarEnabled               = id("RadarEnabled")
	fnRadarAlert                 = id("RadarAlert")
	fnMissionOutcome             = id("MissionOutcome")
	fnEndGameWin                 = id("EndGameWin")
	fnEndGameLose                = id("EndGameLose")
	fnNormalConditionLose        = id("NormalConditionLose")
	fnEventObjectDestroyed       = id("EventObjectDestroyed")
	fnEventObjectDelivered       = id("EventObjectDelivered")
	fnEventObjectDeliveredToSide = id("EventObjectDeliveredToSide")
	fnEventObjectConstructed     = id("EventObjectConstructed")
	fnEventObjectTypeConstructed = id("EventObjectTypeConstructed")
	fnEventSideAttacksSide       = id("EventSideAttacksSide")
	fnEventObjectAttacksSide     = id("EventObjectAttacksSide")
	fnForceWormStrike            = id("ForceWormStrike")
	fnSideNuke                   = id("SideNuke")
	fnFireSpecialWeapon          = id("FireSpecialWeapon")
	fnAirStrike                  = id("AirStrike")
	fnAirStrikeDone              = id("AirStrikeDone")
	fnNewCrateUnit               = id("NewCrateUnit")
	fnNewCrateBomb               = id("NewCrateBomb")
	fnNewCrateStealth            = id("NewCrateStealth")
	fnNewCrateCash               = id("NewCrateCash")
	fnNewCrateShroud             = id("NewCrateShroud")
	fnSetTilePos                 = id("SetTilePos")
	fnNeg                        = id("Neg")
	fnSetValue                   = id("SetValue")
	fnSetThreatLevel             = id("SetThreatLevel")
	fnDisableUI                  = id("DisableUI")
	fnEnableUI                   = id("EnableUI")
	fnFreezeGame                 = id("FreezeGame")
	fnUnFreezeGame               = id("UnFreezeGame")
)

// id resolves a canonical function name to its numeric id, panicking at
// package init if the name is missing from the table: a typo here is a
// programming error, not a runtime condition.
func id(name string) int {
	fid, ok := tok.FuncIDByName(name)
	if !ok {
		panic("dispatch: unknown function name " + name)
	}
	return int(fid)
}
