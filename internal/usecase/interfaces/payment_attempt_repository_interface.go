package interfaces

import (
	"context"

	"greenscape/internal/domain/entities"
)

// IPaymentAttemptRepository abstracts DynamoDB persistence for
// PaymentAttempt.

type IPaymentAttemptRepository interface {
	// CreateForPayableInvoice writes the attempt with a transactional
	// condition check that the invoice row is still unpaid, so a session can
	// never be created against an invoice a racing webhook just settled.
	// ok=false when that check failed.
	CreateForPayableInvoice(ctx context.Context, a entities.PaymentAttempt) (ok bool, err error)
	GetByID(ctx context.Context, id string) (entities.PaymentAttempt, error)
	// GetByGatewaySessionID resolves a webhook event's session id to the
	// attempt this service initiated, or the zero attempt.
	GetByGatewaySessionID(ctx context.Context, sessionID string) (entities.PaymentAttempt, error)
	// MarkStatus moves the attempt out of created. flipped=false when the
	// attempt already left created (duplicate or raced delivery).
	MarkStatus(ctx context.Context, id string, status entities.PaymentAttemptStatus) (flipped bool, err error)
}
