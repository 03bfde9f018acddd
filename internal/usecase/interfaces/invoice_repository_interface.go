package interfaces

import (
	"context"
	"time"

	"greenscape/internal/domain/entities"
)

// ApplyPaymentParams carries everything the settlement transaction writes.
type ApplyPaymentParams struct {
	InvoiceID        string
	ProjectID        string
	InvoiceType      entities.InvoiceType
	PaymentAttemptID string
	PaidAt           time.Time
	// BalanceInvoice, when set, is created in the same transaction. Used for
	// the lazy balance-invoice policy when the deposit settles.
	BalanceInvoice *entities.Invoice
}

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.

type IInvoiceRepository interface {
	// GetByID uses a strongly consistent read; payable checks must not see
	// stale replicas.
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Invoice, error)
	// ListUnpaidByEmail queries the contact-email index for invoices not yet
	// paid. Email must already be lowercased by the caller.
	ListUnpaidByEmail(ctx context.Context, email string) ([]entities.Invoice, error)
	// ApplyPayment atomically, in one transaction:
	//   - marks the invoice paid (condition: status=pending)
	//   - flips the owning project's deposit_paid or balance_paid flag
	//   - marks the payment attempt succeeded
	//   - creates the balance invoice when params carry one
	// applied=false when the invoice was already paid; nothing is written in
	// that case.
	ApplyPayment(ctx context.Context, params ApplyPaymentParams) (applied bool, err error)
}

// IInvoiceLedger is the reconciliation-facing slice of the invoice ledger.
// The webhook reconciler is its only consumer besides tests.
type IInvoiceLedger interface {
	MarkPaid(ctx context.Context, invoiceID, paymentAttemptID string, paidAt time.Time) error
}
