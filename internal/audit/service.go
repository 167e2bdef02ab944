// Package audit writes best-effort records of management actions. A failed
// audit write is logged and swallowed: the action it describes has already
// happened and must not be rolled back over bookkeeping.
package audit

import (
	"context"

	"github.com/google/uuid"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/logger"
	"github.com/kioskworks/roulette-go/internal/repository"
)

// Service defines the interface for audit log operations
type Service interface {
	// Record writes one audit entry, best-effort
	Record(ctx context.Context, action string, actorID, rouletteID uuid.UUID, payload map[string]interface{})

	// List returns a roulette's audit trail, newest first
	List(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.AuditLog, error)
}

type service struct {
	repo repository.Audit
}

// NewService creates a new audit service
func NewService(repo repository.Audit) Service {
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, action string, actorID, rouletteID uuid.UUID, payload map[string]interface{}) {
	entry := &domain.AuditLog{
		Action:     action,
		ActorID:    actorID,
		RouletteID: rouletteID,
		Payload:    payload,
	}
	if err := s.repo.CreateAuditLog(ctx, entry); err != nil {
		logger.FromContext(ctx).Error(LogMsgAuditWriteFailed, "action", action, "rouletteID", rouletteID, "error", err)
	}
}

func (s *service) List(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	return s.repo.GetAuditLogs(ctx, rouletteID, limit)
}
