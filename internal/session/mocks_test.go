package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// MockSessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) CreateSession(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	if args.Error(0) == nil && session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *MockSessionRepository) GetActiveSession(ctx context.Context, rouletteID uuid.UUID) (*domain.Session, error) {
	args := m.Called(ctx, rouletteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) FindActiveSession(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error) {
	args := m.Called(ctx, rouletteID, operatorID, deviceInfo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) TouchSession(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSessionRepository) CloseSession(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockSessionRepository) CloseIdleSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return int64(args.Int(0)), args.Error(1)
}

// MockRouletteRepository
type MockRouletteRepository struct {
	mock.Mock
}

func (m *MockRouletteRepository) CreateRoulette(ctx context.Context, roulette *domain.Roulette) error {
	args := m.Called(ctx, roulette)
	return args.Error(0)
}

func (m *MockRouletteRepository) GetRoulette(ctx context.Context, id uuid.UUID) (*domain.Roulette, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roulette), args.Error(1)
}

func (m *MockRouletteRepository) GetRouletteWithPrizes(ctx context.Context, id uuid.UUID) (*domain.Roulette, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Roulette), args.Error(1)
}

func (m *MockRouletteRepository) ListRoulettes(ctx context.Context) ([]domain.Roulette, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Roulette), args.Error(1)
}

func (m *MockRouletteRepository) UpdateRouletteStatus(ctx context.Context, id uuid.UUID, expected, next domain.RouletteStatus) (int64, error) {
	args := m.Called(ctx, id, expected, next)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockRouletteRepository) DeleteRoulette(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRouletteRepository) CreatePrize(ctx context.Context, prize *domain.Prize) error {
	args := m.Called(ctx, prize)
	return args.Error(0)
}

func (m *MockRouletteRepository) GetPrize(ctx context.Context, id uuid.UUID) (*domain.Prize, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prize), args.Error(1)
}

func (m *MockRouletteRepository) UpdatePrize(ctx context.Context, prize *domain.Prize) error {
	args := m.Called(ctx, prize)
	return args.Error(0)
}

func (m *MockRouletteRepository) DeletePrize(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAuditRecorder
type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, action string, actorID, rouletteID uuid.UUID, payload map[string]interface{}) {
	m.Called(ctx, action, actorID, rouletteID, payload)
}
