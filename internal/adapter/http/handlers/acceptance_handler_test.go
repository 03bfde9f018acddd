package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenscape/internal/adapter/http/handlers/mocks"
	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAcceptanceHandler_PreviewAcceptance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAcceptanceUseCase(ctrl)
		h := NewAcceptanceHandler(uc)

		r := gin.New()
		r.GET("/v1/quotes/accept", h.PreviewAcceptance)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAcceptanceUseCase(ctrl)
		h := NewAcceptanceHandler(uc)

		uc.EXPECT().ValidateToken(gomock.Any(), "t-1").Return(entities.Quote{}, usecase.ErrTokenExpired)

		r := gin.New()
		r.GET("/v1/quotes/accept", h.PreviewAcceptance)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/accept?token=t-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("valid token renders the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAcceptanceUseCase(ctrl)
		h := NewAcceptanceHandler(uc)

		quote := entities.Quote{ID: "q-1", Status: entities.QuoteStatusQuoted, Amount: decimal.RequireFromString("300.00"), AmountSet: true}
		uc.EXPECT().ValidateToken(gomock.Any(), "t-1").Return(quote, nil)

		r := gin.New()
		r.GET("/v1/quotes/accept", h.PreviewAcceptance)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/accept?token=t-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res["amount"] != "300.00" {
			t.Fatalf("unexpected amount: %v", res["amount"])
		}
	})
}

func TestAcceptanceHandler_AcceptQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAcceptanceUseCase(ctrl)
		h := NewAcceptanceHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes/accept", h.AcceptQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/accept", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already consumed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAcceptanceUseCase(ctrl)
		h := NewAcceptanceHandler(uc)

		uc.EXPECT().ConsumeToken(gomock.Any(), "t-1").Return(entities.Project{}, entities.Invoice{}, usecase.ErrTokenAlreadyConsumed)

		r := gin.New()
		r.POST("/v1/quotes/accept", h.AcceptQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/accept", bytes.NewBufferString(`{"token":"t-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns project and deposit invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAcceptanceUseCase(ctrl)
		h := NewAcceptanceHandler(uc)

		project := entities.Project{
			ID:            "p-1",
			QuoteID:       "q-1",
			TotalAmount:   decimal.RequireFromString("300.00"),
			DepositAmount: decimal.RequireFromString("150.00"),
			Status:        entities.ProjectStatusScheduled,
		}
		deposit := entities.Invoice{ID: "i-1", ProjectID: "p-1", Type: entities.InvoiceTypeDeposit, Amount: decimal.RequireFromString("150.00"), Status: entities.InvoiceStatusPending}
		uc.EXPECT().ConsumeToken(gomock.Any(), "t-1").Return(project, deposit, nil)

		r := gin.New()
		r.POST("/v1/quotes/accept", h.AcceptQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/accept", bytes.NewBufferString(`{"token":"t-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var res struct {
			Project struct {
				ID            string `json:"id"`
				BalanceAmount string `json:"balance_amount"`
			} `json:"project"`
			DepositInvoice struct {
				ID     string `json:"id"`
				Amount string `json:"amount"`
			} `json:"deposit_invoice"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res.Project.ID != "p-1" || res.Project.BalanceAmount != "150.00" {
			t.Fatalf("unexpected project: %+v", res.Project)
		}
		if res.DepositInvoice.ID != "i-1" || res.DepositInvoice.Amount != "150.00" {
			t.Fatalf("unexpected invoice: %+v", res.DepositInvoice)
		}
	})
}
