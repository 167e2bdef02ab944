package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoPrizeID is the sentinel prize id returned when no eligible prize remains.
// Exhaustion is a defined terminal outcome of normal operation, not an error.
const NoPrizeID = "NO_PRIZE"

// DrawRecord is the immutable audit of one completed draw. The prize name and
// win message are snapshotted at draw time so later prize edits do not rewrite
// history. PrizeID is nil only for legacy rows; exhaustion produces no record.
type DrawRecord struct {
	ID              uuid.UUID  `json:"id"`
	RouletteID      uuid.UUID  `json:"roulette_id"`
	PrizeID         *uuid.UUID `json:"prize_id"`
	SessionID       uuid.UUID  `json:"session_id"`
	IdempotencyKey  string     `json:"idempotency_key"`
	PrizeName       string     `json:"prize_name"`
	PrizeWinMessage string     `json:"prize_win_message"`
	Signature       string     `json:"signature"`
	IsReversal      bool       `json:"is_reversal"`
	CreatedAt       time.Time  `json:"created_at"`
}

// DrawResult is the outcome returned to the caller of a draw. PrizeID is the
// winning prize's id, or NoPrizeID when every prize is exhausted.
type DrawResult struct {
	PrizeID   string `json:"prizeId"`
	Name      string `json:"name"`
	Message   string `json:"message"`
	Signature string `json:"signature,omitempty"`
}

// Won reports whether the result carries an actual prize
func (r DrawResult) Won() bool {
	return r.PrizeID != NoPrizeID
}
