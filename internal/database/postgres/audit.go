package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/repository"
)

// AuditRepository implements the audit log repository for PostgreSQL
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository creates a new AuditRepository
func NewAuditRepository(db *pgxpool.Pool) repository.Audit {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) CreateAuditLog(ctx context.Context, entry *domain.AuditLog) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalPayload, err)
	}

	query := `
		INSERT INTO audit_logs (action, actor_id, roulette_id, payload)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err = r.db.QueryRow(ctx, query, entry.Action, entry.ActorID, entry.RouletteID, payload).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertAuditLog, err)
	}
	return nil
}

func (r *AuditRepository) GetAuditLogs(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.AuditLog, error) {
	query := `
		SELECT id, action, actor_id, roulette_id, payload, created_at
		FROM audit_logs
		WHERE roulette_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, rouletteID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAuditLogs, err)
	}
	defer rows.Close()

	var entries []domain.AuditLog
	for rows.Next() {
		var entry domain.AuditLog
		var payload []byte
		if err := rows.Scan(&entry.ID, &entry.Action, &entry.ActorID, &entry.RouletteID, &payload, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAuditLogs, err)
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &entry.Payload); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAuditLogs, err)
			}
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetAuditLogs, err)
	}

	return entries, nil
}
