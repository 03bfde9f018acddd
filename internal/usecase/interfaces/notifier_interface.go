package interfaces

import (
	"context"

	"greenscape/internal/domain/entities"
)

// INotifier is the fire-and-forget notification sender invoked after quote
// acceptance and successful payment. Delivery failures are the notifier's
// problem; they never roll back lifecycle state, which is why these methods
// return nothing.
type INotifier interface {
	QuoteAccepted(ctx context.Context, quote entities.Quote, project entities.Project)
	InvoicePaid(ctx context.Context, invoice entities.Invoice)
}
