package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentAttemptStatus represents one gateway-side attempt to settle an
// invoice.

type PaymentAttemptStatus string

const (
	PaymentAttemptStatusCreated   PaymentAttemptStatus = "created"
	PaymentAttemptStatusSucceeded PaymentAttemptStatus = "succeeded"
	PaymentAttemptStatusFailed    PaymentAttemptStatus = "failed"
	PaymentAttemptStatusExpired   PaymentAttemptStatus = "expired"
)

// abandonedAfter is how long a created attempt stays relevant. Stale attempts
// are ignored by new sessions, never cleaned up synchronously.
const AttemptAbandonedAfter = 30 * time.Minute

// PaymentAttempt is one checkout session opened against an invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI gateway_session_id-index (PK: gateway_session_id)
//   - GSI invoice_id-index (PK: invoice_id)
//
// At most one attempt per invoice ever reaches succeeded; the webhook
// reconciler enforces that with a conditional status flip keyed on the
// idempotency key before any invoice state is touched.
type PaymentAttempt struct {
	ID               string               `json:"id"`
	InvoiceID        string               `json:"invoice_id"`
	GatewaySessionID string               `json:"gateway_session_id"`
	AmountCharged    decimal.Decimal      `json:"amount_charged"`
	Status           PaymentAttemptStatus `json:"status"`
	IdempotencyKey   string               `json:"idempotency_key"`
	PayerEmail       string               `json:"payer_email"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

// Abandoned reports whether a created attempt is past the session timeout.
func (a PaymentAttempt) Abandoned(now time.Time) bool {
	return a.Status == PaymentAttemptStatusCreated && now.Sub(a.CreatedAt) > AttemptAbandonedAfter
}
