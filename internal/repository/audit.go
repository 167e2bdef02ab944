package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// Audit defines the data access required by the audit log service
type Audit interface {
	CreateAuditLog(ctx context.Context, entry *domain.AuditLog) error
	GetAuditLogs(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.AuditLog, error)
}
