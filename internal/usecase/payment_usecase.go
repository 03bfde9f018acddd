package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPayer       = errors.New("invalid payer context")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// FeePolicy is the card-processing surcharge passed through to the payer,
// e.g. 2.9% + $0.30. It is disclosed identically in authenticated and guest
// flows; the business never absorbs it.
type FeePolicy struct {
	Rate  decimal.Decimal
	Fixed decimal.Decimal
}

// Fee computes the surcharge for an invoice amount, rounded to cents.
func (f FeePolicy) Fee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(f.Rate).Add(f.Fixed).Round(2)
}

// PayerContext is the explicit authentication context: a verified customer
// identity, or a guest email. Handlers build it from the request; nothing in
// this core infers identity from ambient state.
type PayerContext struct {
	CustomerID string
	Email      string
}

func (p PayerContext) key() string {
	if p.CustomerID != "" {
		return "customer:" + p.CustomerID
	}
	return "guest:" + strings.ToLower(p.Email)
}

// PaymentSession is what the payer is handed back: where to go, and exactly
// what they will be charged.
type PaymentSession struct {
	PaymentAttemptID string
	SessionID        string
	RedirectURL      string
	InvoiceAmount    decimal.Decimal
	FeeAmount        decimal.Decimal
	TotalCharged     decimal.Decimal
}

// IPaymentUseCase opens gateway checkout sessions against payable invoices.

type IPaymentUseCase interface {
	CreateSession(ctx context.Context, invoiceID string, payer PayerContext) (PaymentSession, error)
}

type PaymentUseCase struct {
	attempts interfaces.IPaymentAttemptRepository
	invoices interfaces.IInvoiceRepository
	projects interfaces.IProjectRepository
	gateway  interfaces.IPaymentGateway
	fees     FeePolicy
	policy   DepositPolicy
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(attempts interfaces.IPaymentAttemptRepository, invoices interfaces.IInvoiceRepository, projects interfaces.IProjectRepository, gateway interfaces.IPaymentGateway, fees FeePolicy, policy DepositPolicy) *PaymentUseCase {
	return &PaymentUseCase{attempts: attempts, invoices: invoices, projects: projects, gateway: gateway, fees: fees, policy: policy}
}

// CreateSession re-derives payability at the moment of use (the caller's view
// may be stale), computes the fee-inclusive total, opens the gateway session,
// and only then persists the attempt, so a created attempt always carries a
// session id, and a gateway outage leaves no orphan rows behind.
//
// The attempt write condition-checks the invoice is still unpaid, which
// linearizes session creation against a racing markPaid.
func (u *PaymentUseCase) CreateSession(ctx context.Context, invoiceID string, payer PayerContext) (PaymentSession, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return PaymentSession{}, ErrInvalidInvoiceID
	}
	payer.CustomerID = strings.TrimSpace(payer.CustomerID)
	payer.Email = strings.TrimSpace(payer.Email)
	if payer.CustomerID == "" && (payer.Email == "" || !strings.Contains(payer.Email, "@")) {
		return PaymentSession{}, ErrInvalidPayer
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured invoice_id=%s", invoiceID)
		return PaymentSession{}, ErrGatewayUnavailable
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return PaymentSession{}, err
	}
	if inv.ID == "" {
		return PaymentSession{}, ErrInvoiceNotFound
	}
	project, err := u.projects.GetByID(ctx, inv.ProjectID)
	if err != nil {
		return PaymentSession{}, err
	}
	if project.ID == "" {
		return PaymentSession{}, ErrInvoiceNotFound
	}

	now := time.Now().UTC()
	if !invoiceCanPay(inv, project, u.policy, now) {
		return PaymentSession{}, ErrInvoiceNotPayable
	}

	fee := u.fees.Fee(inv.Amount)
	total := inv.Amount.Add(fee)
	attemptID := uuid.NewString()
	// Key scope is (invoice, payer, attempt nonce): a client retrying the
	// same network call reuses the session; a deliberate new attempt gets a
	// fresh key.
	idemKey := fmt.Sprintf("%s:%s:%s", inv.ID, payer.key(), attemptID)

	payerEmail := payer.Email
	if payerEmail == "" {
		payerEmail = project.Contact.Email
	}

	session, err := u.gateway.CreateCheckoutSession(ctx, interfaces.CheckoutRequest{
		Title:          fmt.Sprintf("%s invoice - %s", inv.Type, project.ServiceType),
		Amount:         total,
		PayerEmail:     payerEmail,
		IdempotencyKey: idemKey,
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway session failed invoice_id=%s err=%v", inv.ID, err)
		return PaymentSession{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	attempt := entities.PaymentAttempt{
		ID:               attemptID,
		InvoiceID:        inv.ID,
		GatewaySessionID: session.SessionID,
		AmountCharged:    total,
		Status:           entities.PaymentAttemptStatusCreated,
		IdempotencyKey:   idemKey,
		PayerEmail:       strings.ToLower(payerEmail),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	ok, err := u.attempts.CreateForPayableInvoice(ctx, attempt)
	if err != nil {
		return PaymentSession{}, err
	}
	if !ok {
		// The invoice was settled between the read above and this write.
		return PaymentSession{}, ErrInvoiceNotPayable
	}

	log.Printf("[payment][usecase] session created invoice_id=%s attempt_id=%s session_id=%s total=%s fee=%s",
		inv.ID, attempt.ID, session.SessionID, total.String(), fee.String())

	return PaymentSession{
		PaymentAttemptID: attempt.ID,
		SessionID:        session.SessionID,
		RedirectURL:      session.RedirectURL,
		InvoiceAmount:    inv.Amount,
		FeeAmount:        fee,
		TotalCharged:     total,
	}, nil
}
