package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase/interfaces"
	mock_interfaces "greenscape/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func cardFees() FeePolicy {
	return FeePolicy{Rate: decimal.RequireFromString("0.029"), Fixed: decimal.RequireFromString("0.30")}
}

func TestFeePolicy_Fee(t *testing.T) {
	fee := cardFees().Fee(decimal.RequireFromString("150.00"))
	if fee.StringFixed(2) != "4.65" {
		t.Fatalf("expected 4.65, got %s", fee.StringFixed(2))
	}
}

func TestPaymentUseCase_CreateSession(t *testing.T) {
	payer := PayerContext{Email: "dana@example.com"}

	t.Run("invalid invoice id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, cardFees(), halfDeposit())
		_, err := uc.CreateSession(context.Background(), " ", payer)
		if !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("guest without email", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, cardFees(), halfDeposit())
		_, err := uc.CreateSession(context.Background(), "i-1", PayerContext{})
		if !errors.Is(err, ErrInvalidPayer) {
			t.Fatalf("expected ErrInvalidPayer, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, cardFees(), halfDeposit())
		_, err := uc.CreateSession(context.Background(), "i-1", payer)
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("paid invoice rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, invoices, projects, gateway, cardFees(), halfDeposit())

		invoices.EXPECT().GetByID(gomock.Any(), "i-1").Return(entities.Invoice{ID: "i-1", ProjectID: "p-1", Status: entities.InvoiceStatusPaid}, nil)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)

		_, err := uc.CreateSession(context.Background(), "i-1", payer)
		if !errors.Is(err, ErrInvoiceNotPayable) {
			t.Fatalf("expected ErrInvoiceNotPayable, got %v", err)
		}
	})

	t.Run("gateway failure leaves no attempt behind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		// attempts repo is nil on purpose: a call to it would panic the test.
		uc := NewPaymentUseCase(nil, invoices, projects, gateway, cardFees(), halfDeposit())

		inv := entities.Invoice{ID: "i-1", ProjectID: "p-1", Type: entities.InvoiceTypeDeposit, Status: entities.InvoiceStatusPending, Amount: decimal.RequireFromString("150.00"), DueDate: time.Now().Add(time.Hour)}
		invoices.EXPECT().GetByID(gomock.Any(), "i-1").Return(inv, nil)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusScheduled}, nil)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSession{}, errors.New("mp 503"))

		_, err := uc.CreateSession(context.Background(), "i-1", payer)
		if !errors.Is(err, ErrGatewayUnavailable) {
			t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
		}
	})

	t.Run("invoice settled mid-flight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(attempts, invoices, projects, gateway, cardFees(), halfDeposit())

		inv := entities.Invoice{ID: "i-1", ProjectID: "p-1", Type: entities.InvoiceTypeDeposit, Status: entities.InvoiceStatusPending, Amount: decimal.RequireFromString("150.00"), DueDate: time.Now().Add(time.Hour)}
		invoices.EXPECT().GetByID(gomock.Any(), "i-1").Return(inv, nil)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusScheduled}, nil)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSession{SessionID: "mp-1", RedirectURL: "https://mp/checkout/mp-1"}, nil)
		attempts.EXPECT().CreateForPayableInvoice(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := uc.CreateSession(context.Background(), "i-1", payer)
		if !errors.Is(err, ErrInvoiceNotPayable) {
			t.Fatalf("expected ErrInvoiceNotPayable, got %v", err)
		}
	})

	t.Run("success discloses fee and total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		attempts := mock_interfaces.NewMockIPaymentAttemptRepository(ctrl)
		invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(attempts, invoices, projects, gateway, cardFees(), halfDeposit())

		inv := entities.Invoice{ID: "i-1", ProjectID: "p-1", Type: entities.InvoiceTypeDeposit, Status: entities.InvoiceStatusPending, Amount: decimal.RequireFromString("150.00"), DueDate: time.Now().Add(time.Hour)}
		invoices.EXPECT().GetByID(gomock.Any(), "i-1").Return(inv, nil)
		projects.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", ServiceType: "patio install", Status: entities.ProjectStatusScheduled}, nil)
		gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.AssignableToTypeOf(interfaces.CheckoutRequest{})).DoAndReturn(
			func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
				if req.Amount.StringFixed(2) != "154.65" {
					t.Fatalf("expected fee-inclusive charge, got %s", req.Amount)
				}
				if req.PayerEmail != "dana@example.com" {
					t.Fatalf("unexpected payer email: %q", req.PayerEmail)
				}
				if !strings.HasPrefix(req.IdempotencyKey, "i-1:guest:dana@example.com:") {
					t.Fatalf("unexpected idempotency key: %q", req.IdempotencyKey)
				}
				return interfaces.CheckoutSession{SessionID: "mp-1", RedirectURL: "https://mp/checkout/mp-1"}, nil
			},
		)
		attempts.EXPECT().CreateForPayableInvoice(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentAttempt{})).DoAndReturn(
			func(_ context.Context, a entities.PaymentAttempt) (bool, error) {
				if a.InvoiceID != "i-1" || a.GatewaySessionID != "mp-1" {
					t.Fatalf("unexpected attempt: %+v", a)
				}
				if a.Status != entities.PaymentAttemptStatusCreated {
					t.Fatalf("unexpected status: %s", a.Status)
				}
				if a.AmountCharged.StringFixed(2) != "154.65" {
					t.Fatalf("unexpected amount charged: %s", a.AmountCharged)
				}
				return true, nil
			},
		)

		session, err := uc.CreateSession(context.Background(), "i-1", payer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.InvoiceAmount.StringFixed(2) != "150.00" || session.FeeAmount.StringFixed(2) != "4.65" || session.TotalCharged.StringFixed(2) != "154.65" {
			t.Fatalf("unexpected disclosure: %+v", session)
		}
		if session.RedirectURL != "https://mp/checkout/mp-1" {
			t.Fatalf("unexpected redirect: %q", session.RedirectURL)
		}
	})
}
