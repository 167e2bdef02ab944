package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kioskworks/roulette-go/internal/domain"
)

// newRequest builds a request with chi URL params and the operator header set,
// matching what the router would hand the handler.
func newRequest(method, target string, body []byte, operatorID string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	if operatorID != "" {
		req.Header.Set(HeaderOperatorID, operatorID)
	}

	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleActivate(t *testing.T) {
	rouletteID := uuid.New()
	operatorID := uuid.New()
	sessionID := uuid.New()

	tests := []struct {
		name           string
		operatorHeader string
		paramID        string
		reqBody        interface{}
		setupMocks     func(*MockSessionService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			operatorHeader: operatorID.String(),
			paramID:        rouletteID.String(),
			reqBody:        ActivateRequest{DeviceInfo: "kiosk-7"},
			setupMocks: func(ms *MockSessionService) {
				ms.On("Activate", mock.Anything, rouletteID, operatorID, "kiosk-7").
					Return(&domain.Session{ID: sessionID, RouletteID: rouletteID}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   sessionID.String(),
		},
		{
			name:           "Missing Operator Header",
			operatorHeader: "",
			paramID:        rouletteID.String(),
			reqBody:        ActivateRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgMissingOperatorHeader,
		},
		{
			name:           "Invalid Roulette ID",
			operatorHeader: operatorID.String(),
			paramID:        "not-a-uuid",
			reqBody:        ActivateRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidID,
		},
		{
			name:           "Device Locked",
			operatorHeader: operatorID.String(),
			paramID:        rouletteID.String(),
			reqBody:        ActivateRequest{DeviceInfo: "kiosk-7"},
			setupMocks: func(ms *MockSessionService) {
				ms.On("Activate", mock.Anything, rouletteID, operatorID, "kiosk-7").
					Return(nil, domain.ErrDeviceLocked)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgDeviceLockedError,
		},
		{
			name:           "Roulette Not Active",
			operatorHeader: operatorID.String(),
			paramID:        rouletteID.String(),
			reqBody:        ActivateRequest{},
			setupMocks: func(ms *MockSessionService) {
				ms.On("Activate", mock.Anything, rouletteID, operatorID, "").
					Return(nil, domain.ErrRouletteNotActive)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgRouletteNotActiveError,
		},
		{
			name:           "Roulette Not Found",
			operatorHeader: operatorID.String(),
			paramID:        rouletteID.String(),
			reqBody:        ActivateRequest{},
			setupMocks: func(ms *MockSessionService) {
				ms.On("Activate", mock.Anything, rouletteID, operatorID, "").
					Return(nil, domain.ErrRouletteNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgRouletteNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSession := new(MockSessionService)
			mockDraw := new(MockDrawService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockSession)
			}
			handler := NewDrawHandler(mockDraw, mockSession)

			body, _ := json.Marshal(tt.reqBody)
			req := newRequest("POST", "/roulettes/"+tt.paramID+"/activate", body,
				tt.operatorHeader, map[string]string{"id": tt.paramID})
			rec := httptest.NewRecorder()

			handler.HandleActivate(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			mockSession.AssertExpectations(t)
		})
	}
}

func TestHandleDraw(t *testing.T) {
	rouletteID := uuid.New()
	operatorID := uuid.New()
	prizeID := uuid.New()

	tests := []struct {
		name           string
		target         string
		acceptLanguage string
		reqBody        interface{}
		rawBody        []byte
		setupMocks     func(*MockDrawService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			target:  "/roulettes/" + rouletteID.String() + "/draw",
			reqBody: DrawRequest{IdempotencyKey: "key-1", DeviceInfo: "kiosk-7"},
			setupMocks: func(md *MockDrawService) {
				md.On("PerformDraw", mock.Anything, rouletteID, operatorID, "kiosk-7", "key-1", "").
					Return(&domain.DrawResult{PrizeID: prizeID.String(), Name: "Plush Bear", Message: "You won!", Signature: "abc123"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Plush Bear"`,
		},
		{
			name:    "Lang Query Param Wins Over Header",
			target:  "/roulettes/" + rouletteID.String() + "/draw?lang=zh",
			reqBody: DrawRequest{IdempotencyKey: "key-2"},
			setupMocks: func(md *MockDrawService) {
				md.On("PerformDraw", mock.Anything, rouletteID, operatorID, "", "key-2", "zh").
					Return(&domain.DrawResult{PrizeID: domain.NoPrizeID, Name: "很遗憾", Message: "奖品已全部抽完,请下次再来!", Signature: "def456"}, nil)
			},
			acceptLanguage: "en",
			expectedStatus: http.StatusOK,
			expectedBody:   "很遗憾",
		},
		{
			name:           "Accept-Language Fallback",
			target:         "/roulettes/" + rouletteID.String() + "/draw",
			reqBody:        DrawRequest{IdempotencyKey: "key-3"},
			acceptLanguage: "zh-TW,zh;q=0.9",
			setupMocks: func(md *MockDrawService) {
				md.On("PerformDraw", mock.Anything, rouletteID, operatorID, "", "key-3", "zh-TW,zh;q=0.9").
					Return(&domain.DrawResult{PrizeID: prizeID.String(), Name: "奖", Message: "恭喜", Signature: "sig"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing Idempotency Key",
			target:         "/roulettes/" + rouletteID.String() + "/draw",
			reqBody:        DrawRequest{DeviceInfo: "kiosk-7"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid JSON",
			target:         "/roulettes/" + rouletteID.String() + "/draw",
			rawBody:        []byte("not json"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:    "No Active Session",
			target:  "/roulettes/" + rouletteID.String() + "/draw",
			reqBody: DrawRequest{IdempotencyKey: "key-4"},
			setupMocks: func(md *MockDrawService) {
				md.On("PerformDraw", mock.Anything, rouletteID, operatorID, "", "key-4", "").
					Return(nil, domain.ErrNoActiveSession)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgNoActiveSessionError,
		},
		{
			name:    "In-Flight Duplicate",
			target:  "/roulettes/" + rouletteID.String() + "/draw",
			reqBody: DrawRequest{IdempotencyKey: "key-5"},
			setupMocks: func(md *MockDrawService) {
				md.On("PerformDraw", mock.Anything, rouletteID, operatorID, "", "key-5", "").
					Return(nil, domain.ErrDuplicateIdempotencyKey)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgDrawConflictError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSession := new(MockSessionService)
			mockDraw := new(MockDrawService)
			if tt.setupMocks != nil {
				tt.setupMocks(mockDraw)
			}
			handler := NewDrawHandler(mockDraw, mockSession)

			body := tt.rawBody
			if body == nil {
				body, _ = json.Marshal(tt.reqBody)
			}
			req := newRequest("POST", tt.target, body,
				operatorID.String(), map[string]string{"id": rouletteID.String()})
			if tt.acceptLanguage != "" {
				req.Header.Set("Accept-Language", tt.acceptLanguage)
			}
			rec := httptest.NewRecorder()

			handler.HandleDraw(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			mockDraw.AssertExpectations(t)
		})
	}
}

func TestHandleDeactivate(t *testing.T) {
	sessionID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockSession := new(MockSessionService)
		mockSession.On("Close", mock.Anything, sessionID).Return(nil)
		handler := NewDrawHandler(new(MockDrawService), mockSession)

		req := newRequest("DELETE", "/sessions/"+sessionID.String(), nil,
			"", map[string]string{"id": sessionID.String()})
		rec := httptest.NewRecorder()

		handler.HandleDeactivate(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockSession.AssertExpectations(t)
	})

	t.Run("Already Closed", func(t *testing.T) {
		mockSession := new(MockSessionService)
		mockSession.On("Close", mock.Anything, sessionID).Return(domain.ErrNoActiveSession)
		handler := NewDrawHandler(new(MockDrawService), mockSession)

		req := newRequest("DELETE", "/sessions/"+sessionID.String(), nil,
			"", map[string]string{"id": sessionID.String()})
		rec := httptest.NewRecorder()

		handler.HandleDeactivate(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
