package usecase

import (
	"strings"
	"time"

	"greenscape/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositPolicy decides how a project's total is split into deposit and
// balance.
type DepositPolicy struct {
	// Fraction of the total collected up front, e.g. 0.5.
	Fraction decimal.Decimal
	// RequireDeposit gates the balance invoice on the deposit being paid.
	RequireDeposit bool
}

// ProjectFactory converts an accepted quote into a project and derives its
// invoices. Amounts are fixed here, at acceptance time; later adjustments
// mean new invoices, never mutated ones.
type ProjectFactory struct {
	policy DepositPolicy
	dueIn  time.Duration
}

func NewProjectFactory(policy DepositPolicy, invoiceDueIn time.Duration) *ProjectFactory {
	return &ProjectFactory{policy: policy, dueIn: invoiceDueIn}
}

func (f *ProjectFactory) Policy() DepositPolicy { return f.policy }

// Materialize builds the project and its deposit invoice from a quote that is
// about to be accepted. Nothing is persisted here; the acceptance transaction
// writes both records together with the token flip.
func (f *ProjectFactory) Materialize(q entities.Quote, now time.Time) (entities.Project, entities.Invoice) {
	deposit := q.Amount.Mul(f.policy.Fraction).Round(2)

	p := entities.Project{
		ID:            uuid.NewString(),
		QuoteID:       q.ID,
		Contact:       q.Contact,
		ServiceType:   q.ServiceType,
		Description:   q.Description,
		TotalAmount:   q.Amount,
		DepositAmount: deposit,
		Status:        entities.ProjectStatusScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	inv := entities.Invoice{
		ID:           uuid.NewString(),
		ProjectID:    p.ID,
		Type:         entities.InvoiceTypeDeposit,
		Amount:       deposit,
		Status:       entities.InvoiceStatusPending,
		ContactEmail: strings.ToLower(strings.TrimSpace(q.Contact.Email)),
		DueDate:      now.Add(f.dueIn),
		CreatedAt:    now,
	}
	return p, inv
}

// BalanceInvoice derives the second invoice once the deposit has settled.
// Its amount is the remainder, so deposit + balance always equals the total
// regardless of how the fraction rounded.
func (f *ProjectFactory) BalanceInvoice(p entities.Project, now time.Time) entities.Invoice {
	return entities.Invoice{
		ID:           uuid.NewString(),
		ProjectID:    p.ID,
		Type:         entities.InvoiceTypeBalance,
		Amount:       p.BalanceAmount(),
		Status:       entities.InvoiceStatusPending,
		ContactEmail: strings.ToLower(strings.TrimSpace(p.Contact.Email)),
		DueDate:      now.Add(f.dueIn),
		CreatedAt:    now,
	}
}
