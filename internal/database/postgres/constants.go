package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Roulette Operations
const (
	ErrMsgFailedToInsertRoulette = "failed to insert roulette"
	ErrMsgFailedToGetRoulette    = "failed to get roulette"
	ErrMsgFailedToListRoulettes  = "failed to list roulettes"
	ErrMsgFailedToUpdateStatus   = "failed to update roulette status"
	ErrMsgFailedToDeleteRoulette = "failed to delete roulette"
)

// Error Messages - Prize Operations
const (
	ErrMsgFailedToInsertPrize = "failed to insert prize"
	ErrMsgFailedToGetPrize    = "failed to get prize"
	ErrMsgFailedToGetPrizes   = "failed to get prizes"
	ErrMsgFailedToUpdatePrize = "failed to update prize"
	ErrMsgFailedToDeletePrize = "failed to delete prize"
	ErrMsgFailedToDecrement   = "failed to decrement stock"
)

// Error Messages - Session Operations
const (
	ErrMsgFailedToInsertSession  = "failed to insert session"
	ErrMsgFailedToGetSession     = "failed to get session"
	ErrMsgFailedToTouchSession   = "failed to touch session"
	ErrMsgFailedToCloseSession   = "failed to close session"
	ErrMsgFailedToCloseIdle      = "failed to close idle sessions"
)

// Error Messages - Draw Record Operations
const (
	ErrMsgFailedToInsertDrawRecord = "failed to insert draw record"
	ErrMsgFailedToGetDrawRecord    = "failed to get draw record"
	ErrMsgFailedToGetDrawRecords   = "failed to get draw records"
)

// Error Messages - Audit Log Operations
const (
	ErrMsgFailedToInsertAuditLog = "failed to insert audit log"
	ErrMsgFailedToGetAuditLogs   = "failed to get audit logs"
	ErrMsgFailedToMarshalPayload = "failed to marshal audit payload"
)
