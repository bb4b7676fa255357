package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound  = "player not found"
	ErrMsgSessionExpired  = "session expired"
	ErrMsgInvalidNickname = "invalid nickname"

	// Incubator errors
	ErrMsgInvalidSlot      = "invalid slot index"
	ErrMsgSlotLocked       = "slot is locked"
	ErrMsgSlotOccupied     = "incubator already holds an egg"
	ErrMsgSlotEmpty        = "slot is empty"
	ErrMsgEggNotReady      = "egg is not ready to hatch"
	ErrMsgNotHatched       = "egg has not hatched yet"
	ErrMsgAlreadyUnlocked  = "slot is already unlocked"
	ErrMsgUnlockRejected   = "unlock rejected"
	ErrMsgNotStarted       = "egg is not incubating"
	ErrMsgDebugUnavailable = "debug controls are disabled"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Roster errors
	ErrMsgSanctuaryFull     = "sanctuary is full"
	ErrMsgFieldEmpty        = "no monster in the field"
	ErrMsgCareLimitReached  = "daily care limit reached"
	ErrMsgSanctuarySlotFree = "sanctuary slot is empty"

	// Persistence errors
	ErrMsgDataLossGuard  = "refusing to persist an empty state over existing data"
	ErrMsgRestored       = "save failed; previous data restored"
	ErrMsgRestoreFailed  = "save failed and previous data could not be restored"
	ErrMsgTxClosed       = "tx is closed"
	ErrMsgEggTypeInvalid = "invalid egg type thresholds"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrPlayerNotFound  = errors.New(ErrMsgPlayerNotFound)
	ErrSessionExpired  = errors.New(ErrMsgSessionExpired)
	ErrInvalidNickname = errors.New(ErrMsgInvalidNickname)

	ErrInvalidSlot      = errors.New(ErrMsgInvalidSlot)
	ErrSlotLocked       = errors.New(ErrMsgSlotLocked)
	ErrSlotOccupied     = errors.New(ErrMsgSlotOccupied)
	ErrSlotEmpty        = errors.New(ErrMsgSlotEmpty)
	ErrEggNotReady      = errors.New(ErrMsgEggNotReady)
	ErrNotHatched       = errors.New(ErrMsgNotHatched)
	ErrAlreadyUnlocked  = errors.New(ErrMsgAlreadyUnlocked)
	ErrUnlockRejected   = errors.New(ErrMsgUnlockRejected)
	ErrNotStarted       = errors.New(ErrMsgNotStarted)
	ErrDebugUnavailable = errors.New(ErrMsgDebugUnavailable)

	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	ErrSanctuaryFull     = errors.New(ErrMsgSanctuaryFull)
	ErrFieldEmpty        = errors.New(ErrMsgFieldEmpty)
	ErrCareLimitReached  = errors.New(ErrMsgCareLimitReached)
	ErrSanctuarySlotFree = errors.New(ErrMsgSanctuarySlotFree)

	ErrDataLossGuard  = errors.New(ErrMsgDataLossGuard)
	ErrRestored       = errors.New(ErrMsgRestored)
	ErrRestoreFailed  = errors.New(ErrMsgRestoreFailed)
	ErrEggTypeInvalid = errors.New(ErrMsgEggTypeInvalid)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
