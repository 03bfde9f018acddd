package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"greenscape/internal/adapter/http/handlers/mocks"
	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const testBaseURL = "http://localhost:8080"

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, testBaseURL)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing email fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, testBaseURL)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"name":"Dana","service_type":"lawn care"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, testBaseURL)

		created := entities.Quote{
			ID:          "q-1",
			Contact:     entities.ContactSnapshot{Name: "Dana", Email: "dana@example.com"},
			ServiceType: "lawn care",
			Status:      entities.QuoteStatusPending,
		}
		uc.EXPECT().RequestQuote(gomock.Any(), gomock.Any(), "lawn care", "weekly").Return(created, nil)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		body := `{"name":"Dana","email":"dana@example.com","service_type":"lawn care","description":"weekly"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res["id"] != "q-1" || res["status"] != "pending" {
			t.Fatalf("unexpected response: %v", res)
		}
	})
}

func TestQuoteHandler_PriceQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid amount string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, testBaseURL)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/price", h.PriceQuote)

		body := `{"amount":"abc","valid_until":"2026-12-01T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/price", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("conflict on bad state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, testBaseURL)

		uc.EXPECT().PriceQuote(gomock.Any(), "q-1", gomock.Any(), gomock.Any()).Return(entities.Quote{}, entities.AcceptanceToken{}, usecase.ErrInvalidTransition)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/price", h.PriceQuote)

		body := `{"amount":"300.00","valid_until":"2026-12-01T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/price", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns acceptance link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, testBaseURL)

		until := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
		priced := entities.Quote{ID: "q-1", Status: entities.QuoteStatusQuoted, Amount: decimal.RequireFromString("300.00"), AmountSet: true, ValidUntil: until}
		token := entities.AcceptanceToken{ID: "abcd1234", QuoteID: "q-1", ExpiresAt: until}
		uc.EXPECT().PriceQuote(gomock.Any(), "q-1", gomock.Any(), until).Return(priced, token, nil)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/price", h.PriceQuote)

		body := `{"amount":"300.00","valid_until":"2026-12-01T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/price", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res["acceptance_url"] != testBaseURL+"/v1/quotes/accept?token=abcd1234" {
			t.Fatalf("unexpected acceptance url: %v", res["acceptance_url"])
		}
	})
}

func TestQuoteHandler_DeclineQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, testBaseURL)

		uc.EXPECT().DeclineQuote(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/decline", h.DeclineQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-404/decline", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc, testBaseURL)

		uc.EXPECT().DeclineQuote(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusDeclined}, nil)

		r := gin.New()
		r.POST("/v1/quotes/:quote_id/decline", h.DeclineQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/decline", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
