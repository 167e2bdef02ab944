package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kioskworks/roulette-go/internal/domain"
)

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, action string, actorID, rouletteID uuid.UUID, payload map[string]interface{}) {
	m.Called(ctx, action, actorID, rouletteID, payload)
}

func (m *MockAuditService) List(ctx context.Context, rouletteID uuid.UUID, limit int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, rouletteID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

func TestHandleListAuditLogs(t *testing.T) {
	rouletteID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockAuditService)
		mockSvc.On("List", mock.Anything, rouletteID, 0).Return([]domain.AuditLog{
			{ID: 1, Action: domain.AuditActionActivateSession, RouletteID: rouletteID},
		}, nil)
		handler := NewAuditHandler(mockSvc)

		req := newRequest("GET", "/roulettes/"+rouletteID.String()+"/audit", nil,
			"", map[string]string{"id": rouletteID.String()})
		rec := httptest.NewRecorder()

		handler.HandleList(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), domain.AuditActionActivateSession)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Bad Limit", func(t *testing.T) {
		handler := NewAuditHandler(new(MockAuditService))

		req := newRequest("GET", "/roulettes/"+rouletteID.String()+"/audit?limit=-1", nil,
			"", map[string]string{"id": rouletteID.String()})
		rec := httptest.NewRecorder()

		handler.HandleList(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
