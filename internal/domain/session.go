package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionState is the lifecycle state of a device session
type SessionState string

const (
	SessionStateActive SessionState = "ACTIVE"
	SessionStateClosed SessionState = "CLOSED"
)

// Session is a device's exclusive lock on a roulette. At most one ACTIVE
// session may exist per roulette at any time; the constraint is enforced at
// the storage layer, not just here.
type Session struct {
	ID         uuid.UUID    `json:"id"`
	RouletteID uuid.UUID    `json:"roulette_id"`
	OperatorID uuid.UUID    `json:"operator_id"`
	DeviceInfo string       `json:"device_info,omitempty"`
	State      SessionState `json:"state"`
	LastSeenAt time.Time    `json:"last_seen_at"`
	CreatedAt  time.Time    `json:"created_at"`
}

// IdleSince reports whether the session has been idle longer than ttl.
// A zero ttl means sessions never expire.
func (s Session) IdleSince(now time.Time, ttl time.Duration) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(s.LastSeenAt) > ttl
}
