package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutRequest describes one checkout session to open at the provider.
type CheckoutRequest struct {
	Title      string
	Amount     decimal.Decimal // fee-inclusive total the payer is charged
	PayerEmail string
	// IdempotencyKey is forwarded as the provider's external reference so a
	// retried network call cannot create a second charge.
	IdempotencyKey string
}

// CheckoutSession is the provider-side session the payer is redirected to.
type CheckoutSession struct {
	SessionID   string
	RedirectURL string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago
// Checkout Pro). Confirmation arrives asynchronously over the webhook; this
// interface only opens sessions.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
}
