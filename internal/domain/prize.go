package domain

import (
	"time"

	"github.com/google/uuid"
)

// Prize is a weighted, optionally stock-limited outcome belonging to a
// roulette. Stock is nil for unlimited prizes; otherwise it is decremented
// by each win and never goes negative.
type Prize struct {
	ID         uuid.UUID `json:"id"`
	RouletteID uuid.UUID `json:"roulette_id"`
	Name       string    `json:"name"`
	WinMessage string    `json:"win_message"`
	Weight     int       `json:"weight"`
	Stock      *int      `json:"stock"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Eligible reports whether the prize can currently be won:
// positive weight and either unlimited stock or stock remaining.
func (p Prize) Eligible() bool {
	if p.Weight <= 0 {
		return false
	}
	return p.Stock == nil || *p.Stock > 0
}
