package interfaces

import (
	"context"
	"time"

	"greenscape/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Conditional updates return the zero Quote when the status precondition
// fails, so callers can tell a lost race from a hard error.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	// UpdatePricing sets amount/validity and moves the quote to quoted.
	// Condition: current status is pending or quoted.
	UpdatePricing(ctx context.Context, id string, amount decimal.Decimal, validUntil time.Time) (entities.Quote, error)
	// UpdateStatus transitions the quote, conditionally on its current status
	// being one of from.
	UpdateStatus(ctx context.Context, id string, from []entities.QuoteStatus, to entities.QuoteStatus) (entities.Quote, error)
}
