package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound   = errors.New("invoice not found")
	ErrInvalidInvoiceID  = errors.New("invalid invoice id")
	ErrInvalidProjectID  = errors.New("invalid project id")
	ErrInvoiceNotPayable = errors.New("invoice not payable")
)

// PayableInvoice pairs an invoice with its server-derived payability. CanPay
// is never taken from the client; it is re-derived here at the moment of use.
type PayableInvoice struct {
	Invoice entities.Invoice
	CanPay  bool
}

// IInvoiceUseCase is the invoice ledger: the only mutator of invoice paid
// status and the project paid flags.

type IInvoiceUseCase interface {
	GetPayable(ctx context.Context, invoiceID string) (PayableInvoice, error)
	ListByProject(ctx context.Context, projectID string) ([]PayableInvoice, error)
	MarkPaid(ctx context.Context, invoiceID, paymentAttemptID string, paidAt time.Time) error
}

type InvoiceUseCase struct {
	invoices interfaces.IInvoiceRepository
	projects interfaces.IProjectRepository
	factory  *ProjectFactory
	notifier interfaces.INotifier
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)
var _ interfaces.IInvoiceLedger = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(invoices interfaces.IInvoiceRepository, projects interfaces.IProjectRepository, factory *ProjectFactory, notifier interfaces.INotifier) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, projects: projects, factory: factory, notifier: notifier}
}

func (u *InvoiceUseCase) GetPayable(ctx context.Context, invoiceID string) (PayableInvoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return PayableInvoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return PayableInvoice{}, err
	}
	if inv.ID == "" {
		return PayableInvoice{}, ErrInvoiceNotFound
	}

	project, err := u.projects.GetByID(ctx, inv.ProjectID)
	if err != nil {
		return PayableInvoice{}, err
	}
	if project.ID == "" {
		return PayableInvoice{}, ErrInvoiceNotFound
	}

	return PayableInvoice{
		Invoice: inv,
		CanPay:  invoiceCanPay(inv, project, u.factory.Policy(), time.Now().UTC()),
	}, nil
}

func (u *InvoiceUseCase) ListByProject(ctx context.Context, projectID string) ([]PayableInvoice, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidProjectID
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.ID == "" {
		return []PayableInvoice{}, nil
	}

	invoices, err := u.invoices.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	out := make([]PayableInvoice, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, PayableInvoice{
			Invoice: inv,
			CanPay:  invoiceCanPay(inv, project, u.factory.Policy(), now),
		})
	}
	return out, nil
}

// MarkPaid settles an invoice against a succeeded payment attempt. It is
// idempotent on paymentAttemptID: the second call with the same attempt is a
// no-op reported as success, because webhook delivery is at-least-once.
//
// Settling the deposit invoice also creates the balance invoice, inside the
// same transaction (lazy balance-invoice policy).
func (u *InvoiceUseCase) MarkPaid(ctx context.Context, invoiceID, paymentAttemptID string, paidAt time.Time) error {
	invoiceID = strings.TrimSpace(invoiceID)
	paymentAttemptID = strings.TrimSpace(paymentAttemptID)
	if invoiceID == "" {
		return ErrInvalidInvoiceID
	}
	if paymentAttemptID == "" {
		return ErrInvoiceNotPayable
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return err
	}
	if inv.ID == "" {
		return ErrInvoiceNotFound
	}
	if inv.Status == entities.InvoiceStatusPaid {
		if inv.PaymentAttemptID == paymentAttemptID {
			log.Printf("[invoice][usecase] mark-paid duplicate invoice_id=%s attempt_id=%s", invoiceID, paymentAttemptID)
			return nil
		}
		return ErrInvoiceNotPayable
	}

	project, err := u.projects.GetByID(ctx, inv.ProjectID)
	if err != nil {
		return err
	}
	if project.ID == "" {
		return ErrInvoiceNotFound
	}
	if inv.Type == entities.InvoiceTypeBalance && u.factory.Policy().RequireDeposit && !project.DepositPaid {
		return ErrInvoiceNotPayable
	}

	params := interfaces.ApplyPaymentParams{
		InvoiceID:        inv.ID,
		ProjectID:        project.ID,
		InvoiceType:      inv.Type,
		PaymentAttemptID: paymentAttemptID,
		PaidAt:           paidAt.UTC(),
	}
	if inv.Type == entities.InvoiceTypeDeposit {
		balance := u.factory.BalanceInvoice(project, paidAt.UTC())
		params.BalanceInvoice = &balance
	}

	applied, err := u.invoices.ApplyPayment(ctx, params)
	if err != nil {
		return err
	}
	if !applied {
		// Raced a concurrent delivery of the same confirmation. Same attempt
		// means the effect is already in place: success, no re-mutation.
		current, rerr := u.invoices.GetByID(ctx, invoiceID)
		if rerr != nil {
			return rerr
		}
		if current.Status == entities.InvoiceStatusPaid && current.PaymentAttemptID == paymentAttemptID {
			log.Printf("[invoice][usecase] mark-paid raced duplicate invoice_id=%s attempt_id=%s", invoiceID, paymentAttemptID)
			return nil
		}
		return ErrInvoiceNotPayable
	}

	log.Printf("[invoice][usecase] marked paid invoice_id=%s type=%s attempt_id=%s", inv.ID, inv.Type, paymentAttemptID)

	inv.Status = entities.InvoiceStatusPaid
	at := paidAt.UTC()
	inv.PaidAt = &at
	inv.PaymentAttemptID = paymentAttemptID
	u.notifier.InvoicePaid(ctx, inv)
	return nil
}

// invoiceCanPay is the single payability derivation shared by the ledger, the
// payment adapter and the guest lookup: an invoice can be paid iff it is
// pending or overdue, the project is live, and the deposit ordering holds.
func invoiceCanPay(inv entities.Invoice, project entities.Project, policy DepositPolicy, now time.Time) bool {
	switch inv.EffectiveStatus(now) {
	case entities.InvoiceStatusPending, entities.InvoiceStatusOverdue:
	default:
		return false
	}
	if project.Status == entities.ProjectStatusCancelled {
		return false
	}
	if inv.Type == entities.InvoiceTypeBalance && policy.RequireDeposit && !project.DepositPaid {
		return false
	}
	return true
}
