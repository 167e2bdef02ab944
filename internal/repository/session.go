package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// Session defines the data access required by the session manager
type Session interface {
	// CreateSession inserts a new ACTIVE session. The storage layer enforces
	// at most one ACTIVE session per roulette; losing a concurrent activation
	// race maps to domain.ErrSessionConflict.
	CreateSession(ctx context.Context, session *domain.Session) error

	// GetActiveSession returns the ACTIVE session for a roulette, or nil
	GetActiveSession(ctx context.Context, rouletteID uuid.UUID) (*domain.Session, error)

	// FindActiveSession returns the ACTIVE session matching the full
	// (roulette, operator, device) triple, or nil
	FindActiveSession(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error)

	// TouchSession refreshes last_seen_at on an ACTIVE session
	TouchSession(ctx context.Context, id uuid.UUID) error

	// CloseSession transitions a session to CLOSED if it is still ACTIVE.
	// Returns the number of rows affected.
	CloseSession(ctx context.Context, id uuid.UUID) (int64, error)

	// CloseIdleSessions closes every ACTIVE session idle since the cutoff
	// and returns how many were closed
	CloseIdleSessions(ctx context.Context, cutoff time.Time) (int64, error)
}
