package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Roulette errors
	ErrMsgRouletteNotFound  = "roulette not found"
	ErrMsgRouletteNotActive = "roulette is not active"
	ErrMsgInvalidTransition = "invalid status transition"

	// Prize errors
	ErrMsgPrizeNotFound = "prize not found"
	ErrMsgInvalidWeight = "weight must be non-negative"
	ErrMsgInvalidStock  = "stock must be non-negative"

	// Session errors
	ErrMsgDeviceLocked    = "roulette is in use by another device"
	ErrMsgNoActiveSession = "no active session for this device"
	ErrMsgSessionConflict = "concurrent session activation"

	// Draw errors
	ErrMsgDuplicateIdempotencyKey = "duplicate idempotency key"
	ErrMsgDrawRecordNotFound      = "draw record not found"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Roulette errors
	ErrRouletteNotFound  = errors.New(ErrMsgRouletteNotFound)
	ErrRouletteNotActive = errors.New(ErrMsgRouletteNotActive)
	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)

	// Prize errors
	ErrPrizeNotFound = errors.New(ErrMsgPrizeNotFound)
	ErrInvalidWeight = errors.New(ErrMsgInvalidWeight)
	ErrInvalidStock  = errors.New(ErrMsgInvalidStock)

	// Session errors
	ErrDeviceLocked    = errors.New(ErrMsgDeviceLocked)
	ErrNoActiveSession = errors.New(ErrMsgNoActiveSession)
	ErrSessionConflict = errors.New(ErrMsgSessionConflict)

	// Draw errors
	ErrDuplicateIdempotencyKey = errors.New(ErrMsgDuplicateIdempotencyKey)
	ErrDrawRecordNotFound      = errors.New(ErrMsgDrawRecordNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
