package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Unlock rejection reasons returned by UnlockIncubatorSlot
const (
	UnlockReasonAlreadyUnlocked  = "already_unlocked"
	UnlockReasonInsufficientGold = "insufficient_gold"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgInvalidUserID      = "invalid user id"
	ErrMsgFailedToGetUser    = "failed to get user"
	ErrMsgFailedToInsertUser = "failed to insert user"
	ErrMsgFailedToUpdateUser = "failed to update user"
	ErrMsgFailedToLockUser   = "failed to lock user row"
	ErrMsgFailedToUnlockSlot = "failed to unlock incubator slot"
)

// Error Messages - Monster Operations
const (
	ErrMsgInvalidMonsterID       = "invalid monster id"
	ErrMsgFailedToListMonsters   = "failed to list monsters"
	ErrMsgFailedToUpsertMonster  = "failed to upsert monster"
	ErrMsgFailedToDeleteMonsters = "failed to delete monsters"
	ErrMsgFailedToScanMonster    = "failed to scan monster"
	ErrMsgFailedToListEggTypes   = "failed to list egg types"
	ErrMsgFailedToScanEggType    = "failed to scan egg type"
)

// Error Messages - Event Log Operations
const (
	ErrMsgFailedToMarshalPayload = "failed to marshal event payload"
	ErrMsgFailedToLogEvent       = "failed to log event"
	ErrMsgFailedToListEvents     = "failed to list events"
	ErrMsgFailedToCleanupEvents  = "failed to cleanup events"
)
