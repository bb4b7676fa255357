package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "egg.hatched")
const (
	// EventTypeEggPlaced is published when an egg moves from inventory into an incubator
	EventTypeEggPlaced = "egg.placed"

	// EventTypeEggHatched is published when a hatched egg is dismissed into the roster
	EventTypeEggHatched = "egg.hatched"

	// EventTypeIncubatorUnlocked is published when the server confirms an unlock
	EventTypeIncubatorUnlocked = "incubator.unlocked"

	// EventTypeUnlockRolledBack is published when an optimistic unlock is compensated
	EventTypeUnlockRolledBack = "incubator.unlock_rolled_back"

	// EventTypeInventoryRestored is published when a failed inventory write was rolled back
	EventTypeInventoryRestored = "persist.inventory_restored"

	// EventTypeSnapshotSaveSkipped is published when the data-loss guard refuses a save
	EventTypeSnapshotSaveSkipped = "persist.save_skipped"
)

// EggPlacedPayload is the payload for EventTypeEggPlaced
type EggPlacedPayload struct {
	UserID    string  `json:"user_id"`
	EggID     string  `json:"egg_id"`
	Element   Element `json:"element"`
	Incubator int     `json:"incubator"`
	Timestamp int64   `json:"timestamp"`
}

// EggHatchedPayload is the payload for EventTypeEggHatched
type EggHatchedPayload struct {
	UserID    string   `json:"user_id"`
	MonsterID string   `json:"monster_id"`
	Element   Element  `json:"element"`
	Location  Location `json:"location"`
	Reward    int      `json:"reward"`
	Timestamp int64    `json:"timestamp"`
}

// IncubatorUnlockPayload is the payload for unlock events
type IncubatorUnlockPayload struct {
	UserID    string `json:"user_id"`
	Slot      int    `json:"slot"`
	Cost      int    `json:"cost"`
	Reason    string `json:"reason,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// PersistencePayload is the payload for save-path incidents
type PersistencePayload struct {
	UserID    string `json:"user_id"`
	Detail    string `json:"detail"`
	Timestamp int64  `json:"timestamp"`
}
