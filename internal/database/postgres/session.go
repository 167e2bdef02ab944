package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/repository"
)

// SessionRepository implements the session repository for PostgreSQL
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) repository.Session {
	return &SessionRepository{db: db}
}

// CreateSession inserts a new ACTIVE session. The partial unique index on
// (roulette_id) WHERE state = 'ACTIVE' rejects a second ACTIVE session; a
// violation maps to domain.ErrSessionConflict so the service can re-read
// and resolve the race.
func (r *SessionRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	query := `
		INSERT INTO sessions (roulette_id, operator_id, device_info, state)
		VALUES ($1, $2, $3, $4)
		RETURNING id, last_seen_at, created_at
	`

	err := r.db.QueryRow(ctx, query,
		session.RouletteID, session.OperatorID, strToText(session.DeviceInfo), string(session.State),
	).Scan(&session.ID, &session.LastSeenAt, &session.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSessionConflict
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertSession, err)
	}
	return nil
}

// GetActiveSession returns the ACTIVE session for a roulette, or nil
func (r *SessionRepository) GetActiveSession(ctx context.Context, rouletteID uuid.UUID) (*domain.Session, error) {
	query := `
		SELECT id, roulette_id, operator_id, device_info, state, last_seen_at, created_at
		FROM sessions
		WHERE roulette_id = $1 AND state = 'ACTIVE'
	`

	session, err := scanSession(r.db.QueryRow(ctx, query, rouletteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}
	return session, nil
}

// FindActiveSession returns the ACTIVE session matching the full
// (roulette, operator, device) triple, or nil
func (r *SessionRepository) FindActiveSession(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error) {
	query := `
		SELECT id, roulette_id, operator_id, device_info, state, last_seen_at, created_at
		FROM sessions
		WHERE roulette_id = $1 AND operator_id = $2
		  AND device_info IS NOT DISTINCT FROM $3
		  AND state = 'ACTIVE'
	`

	session, err := scanSession(r.db.QueryRow(ctx, query, rouletteID, operatorID, strToText(deviceInfo)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}
	return session, nil
}

// TouchSession refreshes last_seen_at on an ACTIVE session
func (r *SessionRepository) TouchSession(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE sessions
		SET last_seen_at = NOW()
		WHERE id = $1 AND state = 'ACTIVE'
	`

	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToTouchSession, err)
	}
	return nil
}

// CloseSession transitions a session to CLOSED if it is still ACTIVE.
// Returns the number of rows affected (0 if already closed).
func (r *SessionRepository) CloseSession(ctx context.Context, id uuid.UUID) (int64, error) {
	query := `
		UPDATE sessions
		SET state = 'CLOSED'
		WHERE id = $1 AND state = 'ACTIVE'
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCloseSession, err)
	}
	return result.RowsAffected(), nil
}

// CloseIdleSessions closes every ACTIVE session whose last_seen_at is older
// than the cutoff and returns how many were closed
func (r *SessionRepository) CloseIdleSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE sessions
		SET state = 'CLOSED'
		WHERE state = 'ACTIVE' AND last_seen_at < $1
	`

	result, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCloseIdle, err)
	}
	return result.RowsAffected(), nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	var session domain.Session
	var deviceInfo pgtype.Text
	var state string
	err := row.Scan(
		&session.ID, &session.RouletteID, &session.OperatorID,
		&deviceInfo, &state, &session.LastSeenAt, &session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	session.DeviceInfo = textToStr(deviceInfo)
	session.State = domain.SessionState(state)
	return &session, nil
}
