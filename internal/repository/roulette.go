package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// Roulette defines the data access required by the roulette management service
type Roulette interface {
	CreateRoulette(ctx context.Context, roulette *domain.Roulette) error

	// GetRoulette returns a roulette without its prizes, or nil
	GetRoulette(ctx context.Context, id uuid.UUID) (*domain.Roulette, error)

	// GetRouletteWithPrizes returns a roulette with prizes in creation order, or nil
	GetRouletteWithPrizes(ctx context.Context, id uuid.UUID) (*domain.Roulette, error)

	ListRoulettes(ctx context.Context) ([]domain.Roulette, error)

	// UpdateRouletteStatus performs a compare-and-swap on status.
	// Returns the number of rows affected (0 if the current status changed
	// under the caller).
	UpdateRouletteStatus(ctx context.Context, id uuid.UUID, expected, next domain.RouletteStatus) (int64, error)

	// DeleteRoulette removes the roulette; prizes, sessions and draw records
	// cascade at the storage layer
	DeleteRoulette(ctx context.Context, id uuid.UUID) error

	CreatePrize(ctx context.Context, prize *domain.Prize) error
	GetPrize(ctx context.Context, id uuid.UUID) (*domain.Prize, error)
	UpdatePrize(ctx context.Context, prize *domain.Prize) error
	DeletePrize(ctx context.Context, id uuid.UUID) error
}
