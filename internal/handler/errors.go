package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingOperatorHeader = "Missing or invalid X-Operator-ID header"
	ErrMsgInvalidID             = "Invalid id"

	ErrMsgActivateFailed   = "Failed to activate roulette"
	ErrMsgDrawFailed       = "Failed to perform draw"
	ErrMsgGetRecordsFailed = "Failed to get draw records"
	ErrMsgExportFailed     = "Failed to export draw records"
)
