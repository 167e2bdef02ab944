package draw

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/repository"
)

// MockDrawRepository
type MockDrawRepository struct {
	mock.Mock
}

func (m *MockDrawRepository) BeginDrawTx(ctx context.Context) (repository.DrawTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.DrawTx), args.Error(1)
}

func (m *MockDrawRepository) GetDrawRecordByKey(ctx context.Context, idempotencyKey string) (*domain.DrawRecord, error) {
	args := m.Called(ctx, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawRecord), args.Error(1)
}

func (m *MockDrawRepository) GetDrawRecords(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.DrawRecord, error) {
	args := m.Called(ctx, rouletteID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DrawRecord), args.Error(1)
}

// MockDrawTx
type MockDrawTx struct {
	mock.Mock
}

func (m *MockDrawTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDrawTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDrawTx) GetDrawRecordByKey(ctx context.Context, idempotencyKey string) (*domain.DrawRecord, error) {
	args := m.Called(ctx, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawRecord), args.Error(1)
}

func (m *MockDrawTx) GetEligiblePrizesForUpdate(ctx context.Context, rouletteID uuid.UUID) ([]domain.Prize, error) {
	args := m.Called(ctx, rouletteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prize), args.Error(1)
}

func (m *MockDrawTx) DecrementStock(ctx context.Context, prizeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, prizeID)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockDrawTx) CreateDrawRecord(ctx context.Context, record *domain.DrawRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockSessionFinder
type MockSessionFinder struct {
	mock.Mock
}

func (m *MockSessionFinder) FindActive(ctx context.Context, rouletteID, operatorID uuid.UUID, deviceInfo string) (*domain.Session, error) {
	args := m.Called(ctx, rouletteID, operatorID, deviceInfo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
