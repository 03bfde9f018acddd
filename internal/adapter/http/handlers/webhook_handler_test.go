package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"greenscape/internal/adapter/http/handlers/mocks"
	"greenscape/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestWebhookHandler_HandleNotification(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := `{"id":"evt-1","data":{"id":"mp-1","status":"approved"}}`

	serve := func(t *testing.T, uc *mocks.MockIWebhookUseCase) *httptest.ResponseRecorder {
		t.Helper()
		h := NewWebhookHandler(uc)
		r := gin.New()
		r.POST("/v1/payments/webhook", h.HandleNotification)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/webhook", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Signature", "sig")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		uc.EXPECT().Process(gomock.Any(), []byte(body), "sig").Return(usecase.WebhookOutcomeApplied, nil)

		w := serve(t, uc)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res["status"] != "applied" {
			t.Fatalf("unexpected status: %v", res)
		}
	})

	t.Run("bad signature acked without retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		uc.EXPECT().Process(gomock.Any(), gomock.Any(), "sig").Return(usecase.WebhookOutcome(""), usecase.ErrSignatureInvalid)

		w := serve(t, uc)
		if w.Code != http.StatusOK {
			t.Fatalf("a retry cannot fix a bad signature; expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown attempt acked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		uc.EXPECT().Process(gomock.Any(), gomock.Any(), "sig").Return(usecase.WebhookOutcome(""), usecase.ErrUnknownAttempt)

		w := serve(t, uc)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("malformed payload rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		uc.EXPECT().Process(gomock.Any(), gomock.Any(), "sig").Return(usecase.WebhookOutcome(""), usecase.ErrInvalidWebhookPayload)

		w := serve(t, uc)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("storage error returns 500 so the gateway retries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		uc.EXPECT().Process(gomock.Any(), gomock.Any(), "sig").Return(usecase.WebhookOutcome(""), errors.New("dynamo down"))

		w := serve(t, uc)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
