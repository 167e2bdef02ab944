package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/repository"
)

// DrawRepository implements the draw repository for PostgreSQL
type DrawRepository struct {
	db *pgxpool.Pool
}

// NewDrawRepository creates a new DrawRepository
func NewDrawRepository(db *pgxpool.Pool) repository.Draw {
	return &DrawRepository{db: db}
}

// BeginDrawTx starts a transaction covering one complete draw
func (r *DrawRepository) BeginDrawTx(ctx context.Context) (repository.DrawTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &drawTx{tx: tx}, nil
}

// GetDrawRecordByKey retrieves a draw record by its idempotency key, or nil
func (r *DrawRepository) GetDrawRecordByKey(ctx context.Context, idempotencyKey string) (*domain.DrawRecord, error) {
	return getDrawRecordByKey(ctx, r.db, idempotencyKey)
}

// GetDrawRecords lists draw records for a roulette, newest first
func (r *DrawRepository) GetDrawRecords(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.DrawRecord, error) {
	query := `
		SELECT id, roulette_id, prize_id, session_id, idempotency_key,
		       prize_name, prize_win_message, signature, is_reversal, created_at
		FROM draw_records
		WHERE roulette_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, rouletteID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDrawRecords, err)
	}
	defer rows.Close()

	var records []domain.DrawRecord
	for rows.Next() {
		record, err := scanDrawRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDrawRecords, err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDrawRecords, err)
	}

	return records, nil
}

// drawTx implements repository.DrawTx on a single pgx transaction.
// Every read and write of one draw flows through the same transaction so a
// failure before Commit leaves stock and records untouched.
type drawTx struct {
	tx pgx.Tx
}

func (t *drawTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *drawTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *drawTx) GetDrawRecordByKey(ctx context.Context, idempotencyKey string) (*domain.DrawRecord, error) {
	return getDrawRecordByKey(ctx, t.tx, idempotencyKey)
}

// GetEligiblePrizesForUpdate loads the winnable prizes in creation order and
// locks the rows so concurrent draws on the same roulette serialize here.
func (t *drawTx) GetEligiblePrizesForUpdate(ctx context.Context, rouletteID uuid.UUID) ([]domain.Prize, error) {
	query := `
		SELECT id, roulette_id, name, win_message, weight, stock, created_at, updated_at
		FROM prizes
		WHERE roulette_id = $1
		  AND weight > 0
		  AND (stock IS NULL OR stock > 0)
		ORDER BY created_at
		FOR UPDATE
	`

	rows, err := t.tx.Query(ctx, query, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrizes, err)
	}
	defer rows.Close()

	var prizes []domain.Prize
	for rows.Next() {
		prize, err := scanPrize(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrizes, err)
		}
		prizes = append(prizes, *prize)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrizes, err)
	}

	return prizes, nil
}

// DecrementStock performs the conditional decrement guarded by stock > 0.
// Zero rows affected means a concurrent draw exhausted the prize first.
func (t *drawTx) DecrementStock(ctx context.Context, prizeID uuid.UUID) (int64, error) {
	query := `
		UPDATE prizes
		SET stock = stock - 1, updated_at = NOW()
		WHERE id = $1 AND stock > 0
	`

	result, err := t.tx.Exec(ctx, query, prizeID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToDecrement, err)
	}
	return result.RowsAffected(), nil
}

// CreateDrawRecord inserts the immutable draw record. A unique violation on
// idempotency_key maps to domain.ErrDuplicateIdempotencyKey.
func (t *drawTx) CreateDrawRecord(ctx context.Context, record *domain.DrawRecord) error {
	query := `
		INSERT INTO draw_records (roulette_id, prize_id, session_id, idempotency_key,
		                          prize_name, prize_win_message, signature, is_reversal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := t.tx.QueryRow(ctx, query,
		record.RouletteID, record.PrizeID, record.SessionID, record.IdempotencyKey,
		record.PrizeName, record.PrizeWinMessage, record.Signature, record.IsReversal,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateIdempotencyKey
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertDrawRecord, err)
	}
	return nil
}

// queryRower is satisfied by both *pgxpool.Pool and pgx.Tx
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getDrawRecordByKey(ctx context.Context, q queryRower, idempotencyKey string) (*domain.DrawRecord, error) {
	query := `
		SELECT id, roulette_id, prize_id, session_id, idempotency_key,
		       prize_name, prize_win_message, signature, is_reversal, created_at
		FROM draw_records
		WHERE idempotency_key = $1
	`

	record, err := scanDrawRecord(q.QueryRow(ctx, query, idempotencyKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetDrawRecord, err)
	}
	return record, nil
}

func scanDrawRecord(row pgx.Row) (*domain.DrawRecord, error) {
	var record domain.DrawRecord
	var prizeID pgtype.UUID
	err := row.Scan(
		&record.ID, &record.RouletteID, &prizeID, &record.SessionID,
		&record.IdempotencyKey, &record.PrizeName, &record.PrizeWinMessage,
		&record.Signature, &record.IsReversal, &record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if prizeID.Valid {
		id := uuid.UUID(prizeID.Bytes)
		record.PrizeID = &id
	}
	return &record, nil
}
