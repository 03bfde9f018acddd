package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase/interfaces"
)

var ErrInvalidEmail = errors.New("invalid email")

// GuestInvoices is what an unauthenticated payer sees for their email:
// outstanding invoices only, nothing else.
type GuestInvoices struct {
	CustomerName string
	Invoices     []PayableInvoice
}

// IGuestLookupUseCase resolves an email to its outstanding invoices without
// authentication.

type IGuestLookupUseCase interface {
	LookupByEmail(ctx context.Context, email string) (GuestInvoices, error)
}

type GuestLookupUseCase struct {
	invoices interfaces.IInvoiceRepository
	projects interfaces.IProjectRepository
	policy   DepositPolicy
}

var _ IGuestLookupUseCase = (*GuestLookupUseCase)(nil)

func NewGuestLookupUseCase(invoices interfaces.IInvoiceRepository, projects interfaces.IProjectRepository, policy DepositPolicy) *GuestLookupUseCase {
	return &GuestLookupUseCase{invoices: invoices, projects: projects, policy: policy}
}

// LookupByEmail matches case-insensitively and exactly, with no fuzzy matching,
// so one customer can never see another's invoices. An email with zero
// outstanding invoices and an email never seen in the system return the same
// empty result: the response shape must not leak whether an address exists.
func (u *GuestLookupUseCase) LookupByEmail(ctx context.Context, email string) (GuestInvoices, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return GuestInvoices{}, ErrInvalidEmail
	}

	invoices, err := u.invoices.ListUnpaidByEmail(ctx, email)
	if err != nil {
		return GuestInvoices{}, err
	}

	now := time.Now().UTC()
	result := GuestInvoices{Invoices: []PayableInvoice{}}
	projectCache := map[string]entities.Project{}

	for _, inv := range invoices {
		project, ok := projectCache[inv.ProjectID]
		if !ok {
			project, err = u.projects.GetByID(ctx, inv.ProjectID)
			if err != nil {
				return GuestInvoices{}, err
			}
			projectCache[inv.ProjectID] = project
		}
		if project.ID == "" {
			continue
		}
		if result.CustomerName == "" {
			result.CustomerName = project.Contact.Name
		}
		result.Invoices = append(result.Invoices, PayableInvoice{
			Invoice: inv,
			CanPay:  invoiceCanPay(inv, project, u.policy, now),
		})
	}
	return result, nil
}
