package draw

// Error context strings used when wrapping lower-layer failures
const (
	ErrContextFailedToBeginTx        = "failed to begin draw transaction"
	ErrContextFailedToCommitTx       = "failed to commit draw transaction"
	ErrContextFailedToCheckKey       = "failed to check idempotency key"
	ErrContextFailedToLoadPrizes     = "failed to load eligible prizes"
	ErrContextFailedToDecrementStock = "failed to decrement prize stock"
	ErrContextFailedToRecordDraw     = "failed to record draw"
	ErrContextFailedToFindSession    = "failed to find active session"
	ErrContextFailedToDrawRandom     = "failed to draw random number"
	ErrContextRollOutOfRange         = "selection roll out of range"
)

// Record listing page sizes
const (
	DefaultRecordsPageSize = 100
	MaxRecordsPageSize     = 1000
)

// Log messages
const (
	LogMsgDrawRequested    = "Draw requested"
	LogMsgIdempotentReplay = "Idempotency key already recorded, replaying outcome"
	LogMsgPrizesExhausted  = "No eligible prizes remain"
	LogMsgStockRaceLost    = "Prize stock exhausted between selection and decrement"
	LogMsgDuplicateKeyRace = "Lost idempotency race, returning winner's record"
	LogMsgPrizeAwarded     = "Prize awarded"
)
