package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kioskworks/roulette-go/internal/domain"
	"github.com/kioskworks/roulette-go/internal/roulette"
)

func intPtr(v int) *int {
	return &v
}

func TestHandleCreate(t *testing.T) {
	operatorID := uuid.New()
	createdID := uuid.New()

	tests := []struct {
		name           string
		operatorHeader string
		reqBody        interface{}
		setupMocks     func(*MockRouletteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			operatorHeader: operatorID.String(),
			reqBody:        CreateRouletteRequest{Name: "Summer Festival", Theme: "summer"},
			setupMocks: func(ms *MockRouletteService) {
				ms.On("Create", mock.Anything, operatorID, "Summer Festival", "summer").
					Return(&domain.Roulette{ID: createdID, Name: "Summer Festival", Status: domain.RouletteStatusDraft}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   createdID.String(),
		},
		{
			name:           "Missing Name",
			operatorHeader: operatorID.String(),
			reqBody:        CreateRouletteRequest{Theme: "summer"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing Operator Header",
			operatorHeader: "",
			reqBody:        CreateRouletteRequest{Name: "Summer Festival"},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgMissingOperatorHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockRouletteService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}
			handler := NewRouletteHandler(mockSvc)

			body, _ := json.Marshal(tt.reqBody)
			req := newRequest("POST", "/roulettes", body, tt.operatorHeader, nil)
			rec := httptest.NewRecorder()

			handler.HandleCreate(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleGet(t *testing.T) {
	rouletteID := uuid.New()

	t.Run("Success With Prizes", func(t *testing.T) {
		mockSvc := new(MockRouletteService)
		mockSvc.On("GetByID", mock.Anything, rouletteID).Return(&domain.Roulette{
			ID:     rouletteID,
			Name:   "Summer Festival",
			Status: domain.RouletteStatusActive,
			Prizes: []domain.Prize{{ID: uuid.New(), Name: "Plush Bear", Weight: 10, Stock: intPtr(3)}},
		}, nil)
		handler := NewRouletteHandler(mockSvc)

		req := newRequest("GET", "/roulettes/"+rouletteID.String(), nil, "", map[string]string{"id": rouletteID.String()})
		rec := httptest.NewRecorder()

		handler.HandleGet(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Plush Bear")
	})

	t.Run("Not Found", func(t *testing.T) {
		mockSvc := new(MockRouletteService)
		mockSvc.On("GetByID", mock.Anything, rouletteID).Return(nil, domain.ErrRouletteNotFound)
		handler := NewRouletteHandler(mockSvc)

		req := newRequest("GET", "/roulettes/"+rouletteID.String(), nil, "", map[string]string{"id": rouletteID.String()})
		rec := httptest.NewRecorder()

		handler.HandleGet(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgRouletteNotFoundError)
	})
}

func TestHandleUpdateStatus(t *testing.T) {
	rouletteID := uuid.New()
	operatorID := uuid.New()

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockRouletteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Activate Draft",
			reqBody: UpdateStatusRequest{Status: "ACTIVE"},
			setupMocks: func(ms *MockRouletteService) {
				ms.On("UpdateStatus", mock.Anything, operatorID, rouletteID, domain.RouletteStatusActive).
					Return(&domain.Roulette{ID: rouletteID, Status: domain.RouletteStatusActive}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"ACTIVE"`,
		},
		{
			name:           "Unknown Status Rejected By Validation",
			reqBody:        UpdateStatusRequest{Status: "BOGUS"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "Illegal Transition",
			reqBody: UpdateStatusRequest{Status: "ARCHIVED"},
			setupMocks: func(ms *MockRouletteService) {
				ms.On("UpdateStatus", mock.Anything, operatorID, rouletteID, domain.RouletteStatusArchived).
					Return(nil, domain.ErrInvalidTransition)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidTransitionError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockRouletteService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}
			handler := NewRouletteHandler(mockSvc)

			body, _ := json.Marshal(tt.reqBody)
			req := newRequest("PATCH", "/roulettes/"+rouletteID.String()+"/status", body,
				operatorID.String(), map[string]string{"id": rouletteID.String()})
			rec := httptest.NewRecorder()

			handler.HandleUpdateStatus(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleAddPrize(t *testing.T) {
	rouletteID := uuid.New()
	operatorID := uuid.New()

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockRouletteService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Limited Stock",
			reqBody: PrizeRequest{Name: "Plush Bear", WinMessage: "You won!", Weight: 10, Stock: intPtr(3)},
			setupMocks: func(ms *MockRouletteService) {
				ms.On("AddPrize", mock.Anything, operatorID, rouletteID,
					roulette.PrizeInput{Name: "Plush Bear", WinMessage: "You won!", Weight: 10, Stock: intPtr(3)}).
					Return(&domain.Prize{ID: uuid.New(), Name: "Plush Bear", Weight: 10, Stock: intPtr(3)}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "Plush Bear",
		},
		{
			name:    "Unlimited Stock",
			reqBody: PrizeRequest{Name: "Sticker", Weight: 50},
			setupMocks: func(ms *MockRouletteService) {
				ms.On("AddPrize", mock.Anything, operatorID, rouletteID,
					roulette.PrizeInput{Name: "Sticker", Weight: 50}).
					Return(&domain.Prize{ID: uuid.New(), Name: "Sticker", Weight: 50}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Negative Weight Rejected By Validation",
			reqBody:        PrizeRequest{Name: "Plush Bear", Weight: -1},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Negative Stock Rejected By Validation",
			reqBody:        PrizeRequest{Name: "Plush Bear", Weight: 1, Stock: intPtr(-1)},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "Roulette Not Found",
			reqBody: PrizeRequest{Name: "Plush Bear", Weight: 10},
			setupMocks: func(ms *MockRouletteService) {
				ms.On("AddPrize", mock.Anything, operatorID, rouletteID,
					roulette.PrizeInput{Name: "Plush Bear", Weight: 10}).
					Return(nil, domain.ErrRouletteNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgRouletteNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockRouletteService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSvc)
			}
			handler := NewRouletteHandler(mockSvc)

			body, _ := json.Marshal(tt.reqBody)
			req := newRequest("POST", "/roulettes/"+rouletteID.String()+"/prizes", body,
				operatorID.String(), map[string]string{"id": rouletteID.String()})
			rec := httptest.NewRecorder()

			handler.HandleAddPrize(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleDeletePrize(t *testing.T) {
	prizeID := uuid.New()
	operatorID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockRouletteService)
		mockSvc.On("DeletePrize", mock.Anything, operatorID, prizeID).Return(nil)
		handler := NewRouletteHandler(mockSvc)

		req := newRequest("DELETE", "/prizes/"+prizeID.String(), nil,
			operatorID.String(), map[string]string{"prizeId": prizeID.String()})
		rec := httptest.NewRecorder()

		handler.HandleDeletePrize(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockSvc := new(MockRouletteService)
		mockSvc.On("DeletePrize", mock.Anything, operatorID, prizeID).Return(domain.ErrPrizeNotFound)
		handler := NewRouletteHandler(mockSvc)

		req := newRequest("DELETE", "/prizes/"+prizeID.String(), nil,
			operatorID.String(), map[string]string{"prizeId": prizeID.String()})
		rec := httptest.NewRecorder()

		handler.HandleDeletePrize(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgPrizeNotFoundError)
	})
}
