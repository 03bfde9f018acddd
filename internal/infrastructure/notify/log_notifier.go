package notify

import (
	"context"
	"log"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase/interfaces"
)

// LogNotifier is the default notification sender: it records what an email
// or SMS integration would deliver. Swapping in a real sender is a wiring
// change only; lifecycle state never depends on delivery succeeding.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) QuoteAccepted(_ context.Context, quote entities.Quote, project entities.Project) {
	log.Printf("[notify] quote accepted quote_id=%s project_id=%s email=%s total=%s",
		quote.ID, project.ID, quote.Contact.Email, project.TotalAmount.String())
}

func (n *LogNotifier) InvoicePaid(_ context.Context, invoice entities.Invoice) {
	log.Printf("[notify] invoice paid invoice_id=%s type=%s email=%s amount=%s",
		invoice.ID, invoice.Type, invoice.ContactEmail, invoice.Amount.String())
}
