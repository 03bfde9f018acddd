package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"greenscape/internal/domain/entities"
	mock_interfaces "greenscape/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestGuestLookupUseCase_LookupByEmail(t *testing.T) {
	t.Run("malformed email", func(t *testing.T) {
		uc := NewGuestLookupUseCase(nil, nil, halfDeposit())
		_, err := uc.LookupByEmail(context.Background(), "not-an-email")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("unknown email returns the same empty shape", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewGuestLookupUseCase(invoices, nil, halfDeposit())
		invoices.EXPECT().ListUnpaidByEmail(gomock.Any(), "missing@example.com").Return(nil, nil)

		res, err := uc.LookupByEmail(context.Background(), "Missing@Example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Invoices == nil || len(res.Invoices) != 0 || res.CustomerName != "" {
			t.Fatalf("expected empty lookup shape, got %+v", res)
		}
	})

	t.Run("lowercases and trims before querying", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewGuestLookupUseCase(invoices, nil, halfDeposit())
		invoices.EXPECT().ListUnpaidByEmail(gomock.Any(), "dana@example.com").Return(nil, nil)

		if _, err := uc.LookupByEmail(context.Background(), "  DANA@example.com  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("outstanding invoices with payability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewGuestLookupUseCase(invoices, projects, halfDeposit())

		due := time.Now().Add(time.Hour)
		unpaid := []entities.Invoice{
			{ID: "i-1", ProjectID: "p-1", Type: entities.InvoiceTypeDeposit, Status: entities.InvoiceStatusPending, DueDate: due},
			{ID: "i-2", ProjectID: "p-1", Type: entities.InvoiceTypeBalance, Status: entities.InvoiceStatusPending, DueDate: due},
		}
		invoices.EXPECT().ListUnpaidByEmail(gomock.Any(), "dana@example.com").Return(unpaid, nil)
		// Both invoices share the project; a single read serves them.
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID:      "p-1",
			Contact: entities.ContactSnapshot{Name: "Dana Reyes"},
			Status:  entities.ProjectStatusScheduled,
		}, nil)

		res, err := uc.LookupByEmail(context.Background(), "dana@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CustomerName != "Dana Reyes" {
			t.Fatalf("expected customer name, got %q", res.CustomerName)
		}
		if len(res.Invoices) != 2 {
			t.Fatalf("expected 2 invoices, got %d", len(res.Invoices))
		}
		if !res.Invoices[0].CanPay {
			t.Fatalf("deposit should be payable")
		}
		if res.Invoices[1].CanPay {
			t.Fatalf("balance should be blocked until the deposit is paid")
		}
	})
}
