package game

// Direction values accepted by Navigate
const (
	DirectionPrev = "prev"
	DirectionNext = "next"
)

// StarterEggCount is how many eggs a slot reset hands out
const StarterEggCount = 3

// Log messages
const (
	LogMsgSessionLoaded        = "Session loaded"
	LogMsgSessionRetired       = "Session evicted with unsaved changes, kept until flushed"
	LogMsgSaveSkippedGuard     = "Save refused by data-loss guard"
	LogMsgSaveDeferred         = "Save deferred while an unlock is in flight"
	LogMsgPublishFailed        = "Failed to publish event"
	LogMsgEggPlaced            = "Egg placed"
	LogMsgEggHatched           = "Egg hatched"
	LogMsgSlotsReset           = "Inventory slots reset"
	LogMsgSlotsCleared         = "Inventory slots cleared"
	LogMsgIncubatorReset       = "Paid incubators reset"
	LogMsgVisibleReload        = "Reloaded state on visibility"
	LogMsgVisibleReloadSkipped = "Kept in-memory state on visibility, a save is still pending"
	LogMsgPlayerCreated        = "Player created"
)

// MaxPlayerNicknameLength bounds login nicknames, in bytes
const MaxPlayerNicknameLength = 32
