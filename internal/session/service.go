package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/logger"
	"github.com/kioskworks/roulette-go/internal/repository"
)

// Service defines the interface for session operations
type Service interface {
	// Activate acquires the device-exclusive lock on a roulette. Re-activation
	// from the device holding the lock returns the existing session instead
	// of failing, regardless of which operator is signed in on the kiosk.
	Activate(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error)

	// FindActive returns the caller's ACTIVE session on a roulette, or nil
	FindActive(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error)

	// Close releases a session's lock
	Close(ctx context.Context, sessionID uuid.UUID) error

	// CloseIdle closes every ACTIVE session idle longer than the configured
	// TTL and returns how many were closed. No-op when the TTL is disabled.
	CloseIdle(ctx context.Context) (int64, error)
}

// AuditRecorder records management actions best-effort
type AuditRecorder interface {
	Record(ctx context.Context, action string, actorID, rouletteID uuid.UUID, payload map[string]interface{})
}

type service struct {
	sessions  repository.Session
	roulettes repository.Roulette
	audit     AuditRecorder
	idleTTL   time.Duration
	now       func() time.Time
}

// NewService creates a new session service. idleTTL of zero disables stale
// session reclaim; locks are then held until explicitly closed.
func NewService(sessions repository.Session, roulettes repository.Roulette, audit AuditRecorder, idleTTL time.Duration) Service {
	return &service{
		sessions:  sessions,
		roulettes: roulettes,
		audit:     audit,
		idleTTL:   idleTTL,
		now:       time.Now,
	}
}

func (s *service) Activate(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgActivateCalled, "rouletteID", rouletteID, "operatorID", operatorID)

	roulette, err := s.roulettes.GetRoulette(ctx, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRoulette, err)
	}
	if roulette == nil {
		return nil, domain.ErrRouletteNotFound
	}
	if roulette.Status != domain.RouletteStatusActive {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrRouletteNotActive, roulette.Status)
	}

	existing, err := s.sessions.GetActiveSession(ctx, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSession, err)
	}
	if existing != nil {
		if s.sameDevice(existing, deviceInfo) {
			if err := s.sessions.TouchSession(ctx, existing.ID); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextFailedToTouchSession, err)
			}
			log.Info(LogMsgSessionResumed, "sessionID", existing.ID)
			return existing, nil
		}
		if s.idleTTL > 0 && existing.IdleSince(s.now(), s.idleTTL) {
			if _, err := s.sessions.CloseSession(ctx, existing.ID); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrContextFailedToCloseSession, err)
			}
			log.Info(LogMsgStaleSessionReclaimed, "sessionID", existing.ID, "rouletteID", rouletteID)
		} else {
			return nil, domain.ErrDeviceLocked
		}
	}

	return s.createSession(ctx, rouletteID, operatorID, deviceInfo)
}

func (s *service) createSession(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error) {
	log := logger.FromContext(ctx)

	created := &domain.Session{
		RouletteID: rouletteID,
		OperatorID: operatorID,
		DeviceInfo: deviceInfo,
		State:      domain.SessionStateActive,
	}
	err := s.sessions.CreateSession(ctx, created)
	if err == nil {
		log.Info(LogMsgSessionActivated, "sessionID", created.ID, "rouletteID", rouletteID)
		if s.audit != nil {
			s.audit.Record(ctx, domain.AuditActionActivateSession, operatorID, rouletteID, map[string]interface{}{
				"session_id":  created.ID.String(),
				"device_info": deviceInfo,
			})
		}
		return created, nil
	}
	if !errors.Is(err, domain.ErrSessionConflict) {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateSession, err)
	}

	// Lost the activation race against a concurrent insert. The winner may
	// still be this very caller retrying, so re-read and compare fingerprints.
	winner, err := s.sessions.GetActiveSession(ctx, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSession, err)
	}
	if winner != nil && s.sameDevice(winner, deviceInfo) {
		log.Info(LogMsgSessionResumed, "sessionID", winner.ID)
		return winner, nil
	}
	return nil, domain.ErrDeviceLocked
}

// sameDevice reports whether a session was opened from the given device.
// The lock is per-device, not per-operator: re-activation compares device
// fingerprints only, so a shift change on the kiosk resumes the session.
// An empty device string never matches: without a fingerprint there is no
// safe way to tell a retry from a second kiosk.
func (s *service) sameDevice(session *domain.Session, deviceInfo string) bool {
	return deviceInfo != "" && session.DeviceInfo == deviceInfo
}

func (s *service) FindActive(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error) {
	found, err := s.sessions.FindActiveSession(ctx, rouletteID, operatorID, deviceInfo)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetSession, err)
	}
	return found, nil
}

func (s *service) Close(ctx context.Context, sessionID uuid.UUID) error {
	rows, err := s.sessions.CloseSession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCloseSession, err)
	}
	if rows == 0 {
		return domain.ErrNoActiveSession
	}
	logger.FromContext(ctx).Info(LogMsgSessionClosed, "sessionID", sessionID)
	return nil
}

func (s *service) CloseIdle(ctx context.Context) (int64, error) {
	if s.idleTTL <= 0 {
		return 0, nil
	}
	cutoff := s.now().Add(-s.idleTTL)
	closed, err := s.sessions.CloseIdleSessions(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextFailedToCloseIdle, err)
	}
	if closed > 0 {
		logger.FromContext(ctx).Info(LogMsgIdleSessionsClosed, "count", closed)
	}
	return closed, nil
}
