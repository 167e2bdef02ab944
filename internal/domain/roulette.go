package domain

import (
	"time"

	"github.com/google/uuid"
)

// RouletteStatus is the lifecycle status of a roulette
type RouletteStatus string

const (
	RouletteStatusDraft    RouletteStatus = "DRAFT"
	RouletteStatusActive   RouletteStatus = "ACTIVE"
	RouletteStatusPaused   RouletteStatus = "PAUSED"
	RouletteStatusEnded    RouletteStatus = "ENDED"
	RouletteStatusArchived RouletteStatus = "ARCHIVED"
)

// validTransitions defines the allowed lifecycle moves. Draws are only
// permitted while the roulette is ACTIVE; the draw path never mutates status.
var validTransitions = map[RouletteStatus][]RouletteStatus{
	RouletteStatusDraft:  {RouletteStatusActive, RouletteStatusArchived},
	RouletteStatusActive: {RouletteStatusPaused, RouletteStatusEnded},
	RouletteStatusPaused: {RouletteStatusActive, RouletteStatusEnded},
	RouletteStatusEnded:  {RouletteStatusArchived},
}

// CanTransitionTo reports whether moving from s to target is a legal
// lifecycle transition. ARCHIVED is terminal.
func (s RouletteStatus) CanTransitionTo(target RouletteStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsValid reports whether s is a known lifecycle status
func (s RouletteStatus) IsValid() bool {
	switch s {
	case RouletteStatusDraft, RouletteStatusActive, RouletteStatusPaused,
		RouletteStatusEnded, RouletteStatusArchived:
		return true
	}
	return false
}

// Roulette is a configured prize wheel with a lifecycle status
type Roulette struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Theme     string         `json:"theme"`
	Status    RouletteStatus `json:"status"`
	OwnerID   uuid.UUID      `json:"owner_id"`
	Prizes    []Prize        `json:"prizes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
