package response

import (
	"testing"
	"time"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromPayableInvoice(t *testing.T) {
	t.Run("overdue derives from due date", func(t *testing.T) {
		inv := entities.Invoice{
			ID:        "i-1",
			ProjectID: "p-1",
			Type:      entities.InvoiceTypeDeposit,
			Amount:    decimal.RequireFromString("150.00"),
			Status:    entities.InvoiceStatusPending,
			DueDate:   time.Now().Add(-24 * time.Hour),
		}
		res := FromPayableInvoice(usecase.PayableInvoice{Invoice: inv, CanPay: true})
		if res.Status != "overdue" || res.StatusDisplay != "Overdue" {
			t.Fatalf("unexpected status: %+v", res)
		}
		if !res.CanPay {
			t.Fatalf("CanPay must come from the derivation, not the status")
		}
		if res.Amount != "150.00" {
			t.Fatalf("unexpected amount: %q", res.Amount)
		}
	})

	t.Run("paid invoice is display-only", func(t *testing.T) {
		at := time.Now().UTC()
		inv := entities.Invoice{
			ID:     "i-1",
			Amount: decimal.RequireFromString("150.00"),
			Status: entities.InvoiceStatusPaid,
			PaidAt: &at,
		}
		res := FromPayableInvoice(usecase.PayableInvoice{Invoice: inv, CanPay: false})
		if res.Status != "paid" || res.StatusDisplay != "Paid" || res.CanPay {
			t.Fatalf("unexpected rendering: %+v", res)
		}
		if res.PaidAt == nil {
			t.Fatalf("expected paid_at")
		}
	})
}

func TestFromGuestInvoices_EmptyShape(t *testing.T) {
	res := FromGuestInvoices(usecase.GuestInvoices{Invoices: []usecase.PayableInvoice{}})
	if res.Invoices == nil || len(res.Invoices) != 0 {
		t.Fatalf("empty lookup must serialize as an empty array, got %+v", res)
	}
	if res.CustomerName != "" {
		t.Fatalf("unexpected customer name: %q", res.CustomerName)
	}
}
