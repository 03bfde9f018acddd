package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase/interfaces"
)

var (
	ErrSignatureInvalid      = errors.New("webhook signature invalid")
	ErrUnknownAttempt        = errors.New("webhook event for unknown payment attempt")
	ErrInvalidWebhookPayload = errors.New("invalid webhook payload")
)

// webhookEvent is the provider's payment-confirmation envelope. Unknown
// statuses are rejected, not defaulted.
type webhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		SessionID string `json:"id"`
		Status    string `json:"status"`
	} `json:"data"`
}

// WebhookOutcome reports what a delivery did, mostly for logging and tests.
type WebhookOutcome string

const (
	WebhookOutcomeApplied   WebhookOutcome = "applied"
	WebhookOutcomeDuplicate WebhookOutcome = "duplicate"
	WebhookOutcomeRecorded  WebhookOutcome = "recorded" // failure/expiry noted, invoice untouched
)

// IWebhookUseCase reconciles asynchronous payment confirmations against local
// state exactly once.

type IWebhookUseCase interface {
	Process(ctx context.Context, rawBody []byte, signature string) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	attempts interfaces.IPaymentAttemptRepository
	ledger   interfaces.IInvoiceLedger
	secret   []byte
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(attempts interfaces.IPaymentAttemptRepository, ledger interfaces.IInvoiceLedger, secret string) *WebhookUseCase {
	return &WebhookUseCase{attempts: attempts, ledger: ledger, secret: []byte(secret)}
}

// Process runs the verify → lookup → idempotency-gate → apply sequence.
//
// The authoritative gate is not a read: applying a success runs through the
// ledger's settlement transaction, whose invoice condition admits exactly one
// delivery. A duplicate, whether redelivered minutes later or racing the
// first delivery, lands on the idempotent no-op path and reports success
// without re-mutating state. That also covers a crash between the attempt
// flip and the invoice write: the redelivery replays the settlement.
func (u *WebhookUseCase) Process(ctx context.Context, rawBody []byte, signature string) (WebhookOutcome, error) {
	if !u.verify(rawBody, signature) {
		return "", ErrSignatureInvalid
	}

	var event webhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return "", ErrInvalidWebhookPayload
	}
	sessionID := strings.TrimSpace(event.Data.SessionID)
	status := strings.ToLower(strings.TrimSpace(event.Data.Status))
	if sessionID == "" || status == "" {
		return "", ErrInvalidWebhookPayload
	}

	attempt, err := u.attempts.GetByGatewaySessionID(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if attempt.ID == "" {
		log.Printf("[webhook][usecase] unknown session event_id=%s session_id=%s", event.ID, sessionID)
		return "", ErrUnknownAttempt
	}

	switch status {
	case "approved":
		return u.applySuccess(ctx, event.ID, attempt)
	case "rejected", "cancelled":
		return u.recordTerminal(ctx, attempt, entities.PaymentAttemptStatusFailed)
	case "expired":
		return u.recordTerminal(ctx, attempt, entities.PaymentAttemptStatusExpired)
	default:
		return "", ErrInvalidWebhookPayload
	}
}

func (u *WebhookUseCase) applySuccess(ctx context.Context, eventID string, attempt entities.PaymentAttempt) (WebhookOutcome, error) {
	duplicate := attempt.Status == entities.PaymentAttemptStatusSucceeded

	// MarkPaid is idempotent on the attempt id, so it runs on the duplicate
	// path too; the settlement transaction inside is the serialization point.
	if err := u.ledger.MarkPaid(ctx, attempt.InvoiceID, attempt.ID, time.Now().UTC()); err != nil {
		if errors.Is(err, ErrInvoiceNotPayable) {
			// The invoice was settled under a different attempt. Redelivery
			// can never apply this event, so record the attempt and
			// acknowledge; the captured funds need an out-of-band refund.
			if attempt.Status == entities.PaymentAttemptStatusCreated {
				if _, err := u.attempts.MarkStatus(ctx, attempt.ID, entities.PaymentAttemptStatusFailed); err != nil {
					return "", err
				}
			}
			log.Printf("[webhook][usecase] success event for superseded attempt event_id=%s attempt_id=%s invoice_id=%s", eventID, attempt.ID, attempt.InvoiceID)
			return WebhookOutcomeRecorded, nil
		}
		log.Printf("[webhook][usecase] apply failed event_id=%s attempt_id=%s err=%v", eventID, attempt.ID, err)
		return "", err
	}

	if duplicate {
		log.Printf("[webhook][usecase] duplicate delivery event_id=%s attempt_id=%s", eventID, attempt.ID)
		return WebhookOutcomeDuplicate, nil
	}
	log.Printf("[webhook][usecase] payment applied event_id=%s attempt_id=%s invoice_id=%s", eventID, attempt.ID, attempt.InvoiceID)
	return WebhookOutcomeApplied, nil
}

// recordTerminal notes a failed or expired attempt. The invoice is left
// untouched and stays payable for a retry.
func (u *WebhookUseCase) recordTerminal(ctx context.Context, attempt entities.PaymentAttempt, status entities.PaymentAttemptStatus) (WebhookOutcome, error) {
	if attempt.Status != entities.PaymentAttemptStatusCreated {
		return WebhookOutcomeDuplicate, nil
	}
	if _, err := u.attempts.MarkStatus(ctx, attempt.ID, status); err != nil {
		return "", err
	}
	log.Printf("[webhook][usecase] attempt %s attempt_id=%s invoice_id=%s", status, attempt.ID, attempt.InvoiceID)
	return WebhookOutcomeRecorded, nil
}

func (u *WebhookUseCase) verify(rawBody []byte, signature string) bool {
	signature = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(signature), "sha256="))
	if signature == "" || len(u.secret) == 0 {
		return false
	}
	provided, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, u.secret)
	mac.Write(rawBody)
	return hmac.Equal(mac.Sum(nil), provided)
}
