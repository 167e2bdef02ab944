package roulette

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/logger"
	"github.com/kioskworks/roulette-go/internal/repository"
)

// Service defines the interface for roulette management operations
type Service interface {
	Create(ctx context.Context, actorID uuid.UUID, name, theme string) (*domain.Roulette, error)

	// GetByID returns the roulette with its prizes in creation order
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Roulette, error)

	List(ctx context.Context) ([]domain.Roulette, error)

	// UpdateStatus applies one legal lifecycle transition
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, next domain.RouletteStatus) (*domain.Roulette, error)

	Delete(ctx context.Context, actorID, id uuid.UUID) error

	AddPrize(ctx context.Context, actorID, rouletteID uuid.UUID, input PrizeInput) (*domain.Prize, error)
	UpdatePrize(ctx context.Context, actorID, prizeID uuid.UUID, input PrizeInput) (*domain.Prize, error)
	DeletePrize(ctx context.Context, actorID, prizeID uuid.UUID) error
}

// PrizeInput carries the mutable fields of a prize
type PrizeInput struct {
	Name       string `json:"name"`
	WinMessage string `json:"winMessage"`
	Weight     int    `json:"weight"`
	Stock      *int   `json:"stock"`
}

// AuditRecorder records management actions best-effort
type AuditRecorder interface {
	Record(ctx context.Context, action string, actorID, rouletteID uuid.UUID, payload map[string]interface{})
}

type service struct {
	repo  repository.Roulette
	audit AuditRecorder
	cache *rouletteCache
}

// NewService creates a new roulette management service. cacheTTL bounds how
// stale a display read may be; zero disables caching.
func NewService(repo repository.Roulette, audit AuditRecorder, cacheTTL time.Duration) Service {
	var cache *rouletteCache
	if cacheTTL > 0 {
		cache = newRouletteCache(DefaultCacheSize, cacheTTL)
	}
	return &service{
		repo:  repo,
		audit: audit,
		cache: cache,
	}
}

func (s *service) Create(ctx context.Context, actorID uuid.UUID, name, theme string) (*domain.Roulette, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	roulette := &domain.Roulette{
		Name:    name,
		Theme:   theme,
		Status:  domain.RouletteStatusDraft,
		OwnerID: actorID,
	}
	if err := s.repo.CreateRoulette(ctx, roulette); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateRoulette, err)
	}

	logger.FromContext(ctx).Info(LogMsgRouletteCreated, "rouletteID", roulette.ID, "name", name)
	s.recordAudit(ctx, domain.AuditActionCreateRoulette, actorID, roulette.ID, map[string]interface{}{
		"name":  name,
		"theme": theme,
	})
	return roulette, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Roulette, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(id); ok {
			return cached, nil
		}
	}

	roulette, err := s.repo.GetRouletteWithPrizes(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRoulette, err)
	}
	if roulette == nil {
		return nil, domain.ErrRouletteNotFound
	}

	if s.cache != nil {
		s.cache.Set(id, roulette)
	}
	return roulette, nil
}

func (s *service) List(ctx context.Context) ([]domain.Roulette, error) {
	roulettes, err := s.repo.ListRoulettes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListRoulettes, err)
	}
	return roulettes, nil
}

func (s *service) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, next domain.RouletteStatus) (*domain.Roulette, error) {
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, next)
	}

	roulette, err := s.repo.GetRoulette(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRoulette, err)
	}
	if roulette == nil {
		return nil, domain.ErrRouletteNotFound
	}
	if !roulette.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, roulette.Status, next)
	}

	rows, err := s.repo.UpdateRouletteStatus(ctx, id, roulette.Status, next)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdateStatus, err)
	}
	if rows == 0 {
		// Status moved under us; the transition that was legal a moment ago
		// may no longer be.
		return nil, fmt.Errorf("%w: status changed concurrently", domain.ErrInvalidTransition)
	}

	s.invalidate(id)
	logger.FromContext(ctx).Info(LogMsgStatusChanged, "rouletteID", id, "from", roulette.Status, "to", next)
	s.recordAudit(ctx, domain.AuditActionUpdateStatus, actorID, id, map[string]interface{}{
		"from": string(roulette.Status),
		"to":   string(next),
	})

	roulette.Status = next
	return roulette, nil
}

func (s *service) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if err := s.repo.DeleteRoulette(ctx, id); err != nil {
		return err
	}

	s.invalidate(id)
	logger.FromContext(ctx).Info(LogMsgRouletteDeleted, "rouletteID", id)
	s.recordAudit(ctx, domain.AuditActionDeleteRoulette, actorID, id, nil)
	return nil
}

func (s *service) AddPrize(ctx context.Context, actorID, rouletteID uuid.UUID, input PrizeInput) (*domain.Prize, error) {
	if err := validatePrizeInput(input); err != nil {
		return nil, err
	}

	roulette, err := s.repo.GetRoulette(ctx, rouletteID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetRoulette, err)
	}
	if roulette == nil {
		return nil, domain.ErrRouletteNotFound
	}

	prize := &domain.Prize{
		RouletteID: rouletteID,
		Name:       input.Name,
		WinMessage: input.WinMessage,
		Weight:     input.Weight,
		Stock:      input.Stock,
	}
	if err := s.repo.CreatePrize(ctx, prize); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreatePrize, err)
	}

	s.invalidate(rouletteID)
	logger.FromContext(ctx).Info(LogMsgPrizeAdded, "rouletteID", rouletteID, "prizeID", prize.ID)
	s.recordAudit(ctx, domain.AuditActionAddPrize, actorID, rouletteID, map[string]interface{}{
		"prize_id": prize.ID.String(),
		"name":     input.Name,
		"weight":   input.Weight,
	})
	return prize, nil
}

func (s *service) UpdatePrize(ctx context.Context, actorID, prizeID uuid.UUID, input PrizeInput) (*domain.Prize, error) {
	if err := validatePrizeInput(input); err != nil {
		return nil, err
	}

	prize, err := s.repo.GetPrize(ctx, prizeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetPrize, err)
	}
	if prize == nil {
		return nil, domain.ErrPrizeNotFound
	}

	prize.Name = input.Name
	prize.WinMessage = input.WinMessage
	prize.Weight = input.Weight
	prize.Stock = input.Stock
	if err := s.repo.UpdatePrize(ctx, prize); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToUpdatePrize, err)
	}

	s.invalidate(prize.RouletteID)
	logger.FromContext(ctx).Info(LogMsgPrizeUpdated, "prizeID", prizeID)
	s.recordAudit(ctx, domain.AuditActionUpdatePrize, actorID, prize.RouletteID, map[string]interface{}{
		"prize_id": prizeID.String(),
		"weight":   input.Weight,
	})
	return prize, nil
}

func (s *service) DeletePrize(ctx context.Context, actorID, prizeID uuid.UUID) error {
	prize, err := s.repo.GetPrize(ctx, prizeID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToGetPrize, err)
	}
	if prize == nil {
		return domain.ErrPrizeNotFound
	}

	if err := s.repo.DeletePrize(ctx, prizeID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToDeletePrize, err)
	}

	s.invalidate(prize.RouletteID)
	logger.FromContext(ctx).Info(LogMsgPrizeDeleted, "prizeID", prizeID)
	s.recordAudit(ctx, domain.AuditActionDeletePrize, actorID, prize.RouletteID, map[string]interface{}{
		"prize_id": prizeID.String(),
	})
	return nil
}

func validatePrizeInput(input PrizeInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: prize name is required", domain.ErrInvalidInput)
	}
	if input.Weight < 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidWeight, input.Weight)
	}
	if input.Stock != nil && *input.Stock < 0 {
		return fmt.Errorf("%w: got %d", domain.ErrInvalidStock, *input.Stock)
	}
	return nil
}

func (s *service) invalidate(id uuid.UUID) {
	if s.cache != nil {
		s.cache.Invalidate(id)
	}
}

func (s *service) recordAudit(ctx context.Context, action string, actorID, rouletteID uuid.UUID, payload map[string]interface{}) {
	if s.audit != nil {
		s.audit.Record(ctx, action, actorID, rouletteID, payload)
	}
}
