package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"greenscape/internal/domain/entities"
	mock_interfaces "greenscape/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const webhookSecret = "test-secret"

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookUseCase_Process(t *testing.T) {
	approved := []byte(`{"id":"evt-1","type":"payment","data":{"id":"mp-1","status":"approved"}}`)

	t.Run("missing signature", func(t *testing.T) {
		uc := NewWebhookUseCase(nil, nil, webhookSecret)
		_, err := uc.Process(context.Background(), approved, "")
		if !errors.Is(err, ErrSignatureInvalid) {
			t.Fatalf("expected ErrSignatureInvalid, got %v", err)
		}
	})

	t.Run("tampered body", func(t *testing.T) {
		uc := NewWebhookUseCase(nil, nil, webhookSecret)
		tampered := append([]byte{}, approved...)
		tampered[len(tampered)-2] = 'X'
		_, err := uc.Process(context.Background(), tampered, signBody(approved))
		if !errors.Is(err, ErrSignatureInvalid) {
			t.Fatalf("expected ErrSignatureInvalid, got %v", err)
		}
	})

	t.Run("sha256 prefix accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		ledger := mock_interfaces.NewMockIInvoiceLedger(ctrl)
		uc := NewWebhookUseCase(attempts, ledger, webhookSecret)

		attempts.EXPECT().GetByGatewaySessionID(gomock.Any(), "mp-1").Return(entities.PaymentAttempt{ID: "a-1", InvoiceID: "i-1", Status: entities.PaymentAttemptStatusCreated}, nil)
		ledger.EXPECT().MarkPaid(gomock.Any(), "i-1", "a-1", gomock.Any()).Return(nil)

		outcome, err := uc.Process(context.Background(), approved, "sha256="+signBody(approved))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != WebhookOutcomeApplied {
			t.Fatalf("expected applied, got %s", outcome)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		body := []byte(`{"id":"evt-1"`)
		uc := NewWebhookUseCase(nil, nil, webhookSecret)
		_, err := uc.Process(context.Background(), body, signBody(body))
		if !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		body := []byte(`{"id":"evt-1","data":{"id":"mp-1","status":"weird"}}`)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		uc := NewWebhookUseCase(attempts, nil, webhookSecret)
		attempts.EXPECT().GetByGatewaySessionID(gomock.Any(), "mp-1").Return(entities.PaymentAttempt{ID: "a-1", InvoiceID: "i-1"}, nil)

		_, err := uc.Process(context.Background(), body, signBody(body))
		if !errors.Is(err, ErrInvalidWebhookPayload) {
			t.Fatalf("expected ErrInvalidWebhookPayload, got %v", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		uc := NewWebhookUseCase(attempts, nil, webhookSecret)
		attempts.EXPECT().GetByGatewaySessionID(gomock.Any(), "mp-1").Return(entities.PaymentAttempt{}, nil)

		_, err := uc.Process(context.Background(), approved, signBody(approved))
		if !errors.Is(err, ErrUnknownAttempt) {
			t.Fatalf("expected ErrUnknownAttempt, got %v", err)
		}
	})

	t.Run("duplicate delivery replays the settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		ledger := mock_interfaces.NewMockIInvoiceLedger(ctrl)
		uc := NewWebhookUseCase(attempts, ledger, webhookSecret)

		attempts.EXPECT().GetByGatewaySessionID(gomock.Any(), "mp-1").Return(entities.PaymentAttempt{ID: "a-1", InvoiceID: "i-1", Status: entities.PaymentAttemptStatusSucceeded}, nil)
		// MarkPaid runs on the duplicate path too: it repairs a crash between
		// the attempt flip and the invoice write, and is a no-op otherwise.
		ledger.EXPECT().MarkPaid(gomock.Any(), "i-1", "a-1", gomock.Any()).Return(nil)

		outcome, err := uc.Process(context.Background(), approved, signBody(approved))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != WebhookOutcomeDuplicate {
			t.Fatalf("expected duplicate, got %s", outcome)
		}
	})

	t.Run("success for a superseded attempt is acknowledged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		ledger := mock_interfaces.NewMockIInvoiceLedger(ctrl)
		uc := NewWebhookUseCase(attempts, ledger, webhookSecret)

		// The invoice was settled under a different attempt: redelivering the
		// same event can never apply it, so the attempt is recorded as failed
		// instead of surfacing an error the gateway would retry forever.
		attempts.EXPECT().GetByGatewaySessionID(gomock.Any(), "mp-1").Return(entities.PaymentAttempt{ID: "a-2", InvoiceID: "i-1", Status: entities.PaymentAttemptStatusCreated}, nil)
		ledger.EXPECT().MarkPaid(gomock.Any(), "i-1", "a-2", gomock.Any()).Return(ErrInvoiceNotPayable)
		attempts.EXPECT().MarkStatus(gomock.Any(), "a-2", entities.PaymentAttemptStatusFailed).Return(true, nil)

		outcome, err := uc.Process(context.Background(), approved, signBody(approved))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != WebhookOutcomeRecorded {
			t.Fatalf("expected recorded, got %s", outcome)
		}
	})

	t.Run("rejected records failure and leaves the invoice alone", func(t *testing.T) {
		body := []byte(`{"id":"evt-2","data":{"id":"mp-1","status":"rejected"}}`)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		uc := NewWebhookUseCase(attempts, nil, webhookSecret)

		attempts.EXPECT().GetByGatewaySessionID(gomock.Any(), "mp-1").Return(entities.PaymentAttempt{ID: "a-1", InvoiceID: "i-1", Status: entities.PaymentAttemptStatusCreated}, nil)
		attempts.EXPECT().MarkStatus(gomock.Any(), "a-1", entities.PaymentAttemptStatusFailed).Return(true, nil)

		outcome, err := uc.Process(context.Background(), body, signBody(body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != WebhookOutcomeRecorded {
			t.Fatalf("expected recorded, got %s", outcome)
		}
	})

	t.Run("expired records expiry", func(t *testing.T) {
		body := []byte(`{"id":"evt-3","data":{"id":"mp-1","status":"expired"}}`)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		uc := NewWebhookUseCase(attempts, nil, webhookSecret)

		attempts.EXPECT().GetByGatewaySessionID(gomock.Any(), "mp-1").Return(entities.PaymentAttempt{ID: "a-1", InvoiceID: "i-1", Status: entities.PaymentAttemptStatusCreated}, nil)
		attempts.EXPECT().MarkStatus(gomock.Any(), "a-1", entities.PaymentAttemptStatusExpired).Return(true, nil)

		outcome, err := uc.Process(context.Background(), body, signBody(body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome != WebhookOutcomeRecorded {
			t.Fatalf("expected recorded, got %s", outcome)
		}
	})
}
