package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus represents the lifecycle of a landscaping project.

type ProjectStatus string

const (
	ProjectStatusScheduled  ProjectStatus = "scheduled"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusCancelled  ProjectStatus = "cancelled"
)

// Project is the unit of work materialized from an accepted quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI quote_id-index (PK: quote_id)
//
// Domain notes:
//   - TotalAmount is copied from the quote at acceptance and immutable after.
//   - DepositAmount is a policy-derived fraction of the total, rounded to
//     currency precision; balance = total - deposit, always.
//   - DepositPaid/BalancePaid are flipped only by the webhook reconciler via
//     the invoice ledger; nothing else writes them.
type Project struct {
	ID            string          `json:"id"`
	QuoteID       string          `json:"quote_id"`
	Contact       ContactSnapshot `json:"contact"`
	ServiceType   string          `json:"service_type"`
	Description   string          `json:"description"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	Status        ProjectStatus   `json:"status"`
	ScheduledDate *time.Time      `json:"scheduled_date,omitempty"`
	DepositPaid   bool            `json:"deposit_paid"`
	BalancePaid   bool            `json:"balance_paid"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BalanceAmount derives the remainder owed after the deposit.
func (p Project) BalanceAmount() decimal.Decimal {
	return p.TotalAmount.Sub(p.DepositAmount)
}
