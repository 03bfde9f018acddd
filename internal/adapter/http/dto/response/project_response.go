package response

import (
	"time"

	"greenscape/internal/domain/entities"
)

type ProjectResponse struct {
	ID            string     `json:"id"`
	QuoteID       string     `json:"quote_id"`
	ServiceType   string     `json:"service_type"`
	Description   string     `json:"description,omitempty"`
	TotalAmount   string     `json:"total_amount"`
	DepositAmount string     `json:"deposit_amount"`
	BalanceAmount string     `json:"balance_amount"`
	Status        string     `json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	DepositPaid   bool       `json:"deposit_paid"`
	BalancePaid   bool       `json:"balance_paid"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		QuoteID:       p.QuoteID,
		ServiceType:   p.ServiceType,
		Description:   p.Description,
		TotalAmount:   p.TotalAmount.StringFixed(2),
		DepositAmount: p.DepositAmount.StringFixed(2),
		BalanceAmount: p.BalanceAmount().StringFixed(2),
		Status:        string(p.Status),
		ScheduledDate: p.ScheduledDate,
		DepositPaid:   p.DepositPaid,
		BalancePaid:   p.BalancePaid,
		CreatedAt:     p.CreatedAt,
	}
}

// AcceptanceResponse is what the acceptance POST returns: the created project
// and its deposit invoice, ready to pay.
type AcceptanceResponse struct {
	Project        ProjectResponse `json:"project"`
	DepositInvoice InvoiceResponse `json:"deposit_invoice"`
}
