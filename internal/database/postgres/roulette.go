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

// RouletteRepository implements the roulette repository for PostgreSQL
type RouletteRepository struct {
	db *pgxpool.Pool
}

// NewRouletteRepository creates a new RouletteRepository
func NewRouletteRepository(db *pgxpool.Pool) repository.Roulette {
	return &RouletteRepository{db: db}
}

// CreateRoulette inserts a new roulette record
func (r *RouletteRepository) CreateRoulette(ctx context.Context, roulette *domain.Roulette) error {
	query := `
		INSERT INTO roulettes (name, theme, status, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		roulette.Name, roulette.Theme, string(roulette.Status), roulette.OwnerID,
	).Scan(&roulette.ID, &roulette.CreatedAt, &roulette.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRoulette, err)
	}
	return nil
}

// GetRoulette retrieves a roulette by ID without its prizes
func (r *RouletteRepository) GetRoulette(ctx context.Context, id uuid.UUID) (*domain.Roulette, error) {
	query := `
		SELECT id, name, theme, status, owner_id, created_at, updated_at
		FROM roulettes
		WHERE id = $1
	`

	roulette, err := scanRoulette(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRoulette, err)
	}
	return roulette, nil
}

// GetRouletteWithPrizes retrieves a roulette and its prizes in creation order
func (r *RouletteRepository) GetRouletteWithPrizes(ctx context.Context, id uuid.UUID) (*domain.Roulette, error) {
	roulette, err := r.GetRoulette(ctx, id)
	if err != nil || roulette == nil {
		return roulette, err
	}

	query := `
		SELECT id, roulette_id, name, win_message, weight, stock, created_at, updated_at
		FROM prizes
		WHERE roulette_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrizes, err)
	}
	defer rows.Close()

	for rows.Next() {
		prize, err := scanPrize(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrizes, err)
		}
		roulette.Prizes = append(roulette.Prizes, *prize)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrizes, err)
	}

	return roulette, nil
}

// ListRoulettes retrieves all roulettes, newest first
func (r *RouletteRepository) ListRoulettes(ctx context.Context) ([]domain.Roulette, error) {
	query := `
		SELECT id, name, theme, status, owner_id, created_at, updated_at
		FROM roulettes
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRoulettes, err)
	}
	defer rows.Close()

	var roulettes []domain.Roulette
	for rows.Next() {
		roulette, err := scanRoulette(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRoulettes, err)
		}
		roulettes = append(roulettes, *roulette)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListRoulettes, err)
	}

	return roulettes, nil
}

// UpdateRouletteStatus performs a compare-and-swap operation on status.
// Returns the number of rows affected (0 if the current status didn't match).
func (r *RouletteRepository) UpdateRouletteStatus(ctx context.Context, id uuid.UUID, expected, next domain.RouletteStatus) (int64, error) {
	query := `
		UPDATE roulettes
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.db.Exec(ctx, query, string(next), id, string(expected))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpdateStatus, err)
	}
	return result.RowsAffected(), nil
}

// DeleteRoulette removes a roulette; children cascade via foreign keys
func (r *RouletteRepository) DeleteRoulette(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM roulettes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteRoulette, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrRouletteNotFound
	}
	return nil
}

// CreatePrize inserts a new prize record
func (r *RouletteRepository) CreatePrize(ctx context.Context, prize *domain.Prize) error {
	query := `
		INSERT INTO prizes (roulette_id, name, win_message, weight, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		prize.RouletteID, prize.Name, prize.WinMessage, prize.Weight, ptrToInt4(prize.Stock),
	).Scan(&prize.ID, &prize.CreatedAt, &prize.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPrize, err)
	}
	return nil
}

// GetPrize retrieves a prize by ID
func (r *RouletteRepository) GetPrize(ctx context.Context, id uuid.UUID) (*domain.Prize, error) {
	query := `
		SELECT id, roulette_id, name, win_message, weight, stock, created_at, updated_at
		FROM prizes
		WHERE id = $1
	`

	prize, err := scanPrize(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrize, err)
	}
	return prize, nil
}

// UpdatePrize updates a prize's name, message, weight and stock
func (r *RouletteRepository) UpdatePrize(ctx context.Context, prize *domain.Prize) error {
	query := `
		UPDATE prizes
		SET name = $1, win_message = $2, weight = $3, stock = $4, updated_at = NOW()
		WHERE id = $5
	`

	result, err := r.db.Exec(ctx, query,
		prize.Name, prize.WinMessage, prize.Weight, ptrToInt4(prize.Stock), prize.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdatePrize, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPrizeNotFound
	}
	return nil
}

// DeletePrize removes a prize
func (r *RouletteRepository) DeletePrize(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM prizes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeletePrize, err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPrizeNotFound
	}
	return nil
}

func scanRoulette(row pgx.Row) (*domain.Roulette, error) {
	var roulette domain.Roulette
	var status string
	err := row.Scan(
		&roulette.ID, &roulette.Name, &roulette.Theme, &status,
		&roulette.OwnerID, &roulette.CreatedAt, &roulette.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	roulette.Status = domain.RouletteStatus(status)
	return &roulette, nil
}

func scanPrize(row pgx.Row) (*domain.Prize, error) {
	var prize domain.Prize
	var stock pgtype.Int4
	err := row.Scan(
		&prize.ID, &prize.RouletteID, &prize.Name, &prize.WinMessage,
		&prize.Weight, &stock, &prize.CreatedAt, &prize.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	prize.Stock = int4ToPtr(stock)
	return &prize, nil
}
