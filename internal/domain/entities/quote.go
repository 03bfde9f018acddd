package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle of a service quote.
//
// Domain notes:
//   - pending: requested by the customer, not yet priced by staff.
//   - quoted: priced, awaiting acceptance; the only state an acceptance
//     token can move the quote out of.
//   - expired is never stored; it is derived at read time from ValidUntil
//     (no background sweeper in this service).

type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusQuoted   QuoteStatus = "quoted"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// ContactSnapshot is the customer contact captured at quote-request time.
// It is a snapshot on purpose: later edits to a customer profile must not
// change what was quoted or who an invoice belongs to.
type ContactSnapshot struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Quote is the priced service offer persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Amount is null (zero decimal, AmountSet=false) until staff prices the
//     quote; set iff status is quoted or accepted.
type Quote struct {
	ID          string          `json:"id"`
	Contact     ContactSnapshot `json:"contact"`
	ServiceType string          `json:"service_type"`
	Description string          `json:"description"`
	Status      QuoteStatus     `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	AmountSet   bool            `json:"amount_set"`
	ValidUntil  time.Time       `json:"valid_until"`
	ProjectID   string          `json:"project_id,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EffectiveStatus derives expiry lazily: a quoted quote past its validity
// deadline reads back as expired without any stored transition.
func (q Quote) EffectiveStatus(now time.Time) QuoteStatus {
	if q.Status == QuoteStatusQuoted && !q.ValidUntil.IsZero() && now.After(q.ValidUntil) {
		return QuoteStatusExpired
	}
	return q.Status
}
