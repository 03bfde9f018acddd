package response

import (
	"time"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase"
)

type InvoiceResponse struct {
	ID            string     `json:"id"`
	ProjectID     string     `json:"project_id"`
	Type          string     `json:"type"`
	Amount        string     `json:"amount"`
	Status        string     `json:"status"`
	StatusDisplay string     `json:"status_display"`
	CanPay        bool       `json:"can_pay"`
	DueDate       time.Time  `json:"due_date"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// FromInvoice renders a bare invoice (no payability derivation), used inside
// the acceptance response where the deposit invoice is payable by
// construction.
func FromInvoice(inv entities.Invoice) InvoiceResponse {
	status := inv.EffectiveStatus(time.Now().UTC())
	return InvoiceResponse{
		ID:            inv.ID,
		ProjectID:     inv.ProjectID,
		Type:          string(inv.Type),
		Amount:        inv.Amount.StringFixed(2),
		Status:        string(status),
		StatusDisplay: statusDisplay(status),
		CanPay:        status != entities.InvoiceStatusPaid,
		DueDate:       inv.DueDate,
		PaidAt:        inv.PaidAt,
		CreatedAt:     inv.CreatedAt,
	}
}

// FromPayableInvoice renders an invoice with its server-derived CanPay flag.
func FromPayableInvoice(pi usecase.PayableInvoice) InvoiceResponse {
	res := FromInvoice(pi.Invoice)
	res.CanPay = pi.CanPay
	return res
}

func FromPayableInvoices(items []usecase.PayableInvoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(items))
	for _, pi := range items {
		out = append(out, FromPayableInvoice(pi))
	}
	return out
}

// GuestLookupResponse always has the same shape: an email with no
// outstanding invoices and an unknown email are indistinguishable.
type GuestLookupResponse struct {
	CustomerName string            `json:"customer_name,omitempty"`
	Invoices     []InvoiceResponse `json:"invoices"`
}

func FromGuestInvoices(g usecase.GuestInvoices) GuestLookupResponse {
	return GuestLookupResponse{
		CustomerName: g.CustomerName,
		Invoices:     FromPayableInvoices(g.Invoices),
	}
}

func statusDisplay(status entities.InvoiceStatus) string {
	switch status {
	case entities.InvoiceStatusPaid:
		return "Paid"
	case entities.InvoiceStatusOverdue:
		return "Overdue"
	default:
		return "Awaiting payment"
	}
}
