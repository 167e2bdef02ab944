package roulette

// Cache sizing. Kiosks poll their roulette for display, so entries are kept
// small and short-lived; mutations invalidate eagerly.
const (
	DefaultCacheSize = 256
)

// Error context strings used when wrapping repository failures
const (
	ErrContextFailedToCreateRoulette = "failed to create roulette"
	ErrContextFailedToGetRoulette    = "failed to get roulette"
	ErrContextFailedToListRoulettes  = "failed to list roulettes"
	ErrContextFailedToUpdateStatus   = "failed to update roulette status"
	ErrContextFailedToDeleteRoulette = "failed to delete roulette"
	ErrContextFailedToCreatePrize    = "failed to create prize"
	ErrContextFailedToGetPrize       = "failed to get prize"
	ErrContextFailedToUpdatePrize    = "failed to update prize"
	ErrContextFailedToDeletePrize    = "failed to delete prize"
)

// Log messages
const (
	LogMsgRouletteCreated = "Roulette created"
	LogMsgStatusChanged   = "Roulette status changed"
	LogMsgRouletteDeleted = "Roulette deleted"
	LogMsgPrizeAdded      = "Prize added"
	LogMsgPrizeUpdated    = "Prize updated"
	LogMsgPrizeDeleted    = "Prize deleted"
)
