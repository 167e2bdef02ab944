package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// DrawTx wraps every step of one draw in a single atomic transaction.
// All reads and writes happen against the same underlying storage
// transaction; any failure before Commit leaves stock and records unchanged.
type DrawTx interface {
	Tx

	// GetDrawRecordByKey returns the record for an idempotency key, or nil
	GetDrawRecordByKey(ctx context.Context, idempotencyKey string) (*domain.DrawRecord, error)

	// GetEligiblePrizesForUpdate loads prizes with weight > 0 and remaining
	// stock in creation order, locking the rows against concurrent draws
	GetEligiblePrizesForUpdate(ctx context.Context, rouletteID uuid.UUID) ([]domain.Prize, error)

	// DecrementStock performs the conditional stock decrement guarded by
	// stock > 0. Returns the number of rows affected (0 means a concurrent
	// draw exhausted the prize first).
	DecrementStock(ctx context.Context, prizeID uuid.UUID) (int64, error)

	// CreateDrawRecord inserts the immutable draw record. A unique violation
	// on the idempotency key maps to domain.ErrDuplicateIdempotencyKey.
	CreateDrawRecord(ctx context.Context, record *domain.DrawRecord) error
}

// Draw defines the data access required by the draw engine
type Draw interface {
	BeginDrawTx(ctx context.Context) (DrawTx, error)

	// GetDrawRecordByKey resolves idempotent replays outside a transaction
	GetDrawRecordByKey(ctx context.Context, idempotencyKey string) (*domain.DrawRecord, error)

	// GetDrawRecords lists records for a roulette, newest first
	GetDrawRecords(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.DrawRecord, error)
}
