package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/roulette"
)

type MockDrawService struct {
	mock.Mock
}

func (m *MockDrawService) PerformDraw(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo, idempotencyKey, lang string) (*domain.DrawResult, error) {
	args := m.Called(ctx, rouletteID, operatorID, deviceInfo, idempotencyKey, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawResult), args.Error(1)
}

func (m *MockDrawService) GetDrawRecords(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.DrawRecord, error) {
	args := m.Called(ctx, rouletteID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DrawRecord), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Activate(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error) {
	args := m.Called(ctx, rouletteID, operatorID, deviceInfo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) FindActive(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error) {
	args := m.Called(ctx, rouletteID, operatorID, deviceInfo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) Close(ctx context.Context, sessionID uuid.UUID) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionService) CloseIdle(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockRouletteService struct {
	mock.Mock
}

func (m *MockRouletteService) Create(ctx context.Context, actorID uuid.UUID, name, theme string) (*domain.Roulette, error) {
	args := m.Called(ctx, actorID, name, theme)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roulette), args.Error(1)
}

func (m *MockRouletteService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Roulette, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roulette), args.Error(1)
}

func (m *MockRouletteService) List(ctx context.Context) ([]domain.Roulette, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Roulette), args.Error(1)
}

func (m *MockRouletteService) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, next domain.RouletteStatus) (*domain.Roulette, error) {
	args := m.Called(ctx, actorID, id, next)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roulette), args.Error(1)
}

func (m *MockRouletteService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

func (m *MockRouletteService) AddPrize(ctx context.Context, actorID, rouletteID uuid.UUID, input roulette.PrizeInput) (*domain.Prize, error) {
	args := m.Called(ctx, actorID, rouletteID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prize), args.Error(1)
}

func (m *MockRouletteService) UpdatePrize(ctx context.Context, actorID, prizeID uuid.UUID, input roulette.PrizeInput) (*domain.Prize, error) {
	args := m.Called(ctx, actorID, prizeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prize), args.Error(1)
}

func (m *MockRouletteService) DeletePrize(ctx context.Context, actorID, prizeID uuid.UUID) error {
	args := m.Called(ctx, actorID, prizeID)
	return args.Error(0)
}
