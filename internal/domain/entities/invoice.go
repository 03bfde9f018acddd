package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceType distinguishes the deposit invoice from the balance invoice.

type InvoiceType string

const (
	InvoiceTypeDeposit InvoiceType = "deposit"
	InvoiceTypeBalance InvoiceType = "balance"
)

// InvoiceStatus represents the billing state of an invoice.
//
// overdue is derived at read time from DueDate; only pending and paid are
// stored.

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a billable amount owed against a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI project_id-index (PK: project_id)
//   - GSI contact_email-index (PK: contact_email) for guest lookup
//
// Domain notes:
//   - Exactly one deposit invoice per project; the balance invoice is created
//     lazily when the deposit is paid.
//   - Amount is immutable once created. Adjusting a project total means
//     issuing a new invoice, never mutating this one.
//   - ContactEmail is denormalized (lowercased) from the project contact so
//     guest lookup is a single index query.
type Invoice struct {
	ID               string          `json:"id"`
	ProjectID        string          `json:"project_id"`
	Type             InvoiceType     `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	Status           InvoiceStatus   `json:"status"`
	ContactEmail     string          `json:"contact_email"`
	DueDate          time.Time       `json:"due_date"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	PaymentAttemptID string          `json:"payment_attempt_id,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// EffectiveStatus derives overdue lazily from the due date.
func (i Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoiceStatusPending && !i.DueDate.IsZero() && now.After(i.DueDate) {
		return InvoiceStatusOverdue
	}
	return i.Status
}
