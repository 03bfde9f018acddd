package payments

import (
	"context"
	"errors"
	"fmt"
	"log"

	"greenscape/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway opens Checkout Pro preferences. The preference id is our
// gateway session id; init_point is the redirect URL the payer is sent to.
// Confirmation comes back over the webhook, signed with the shared secret.
type MercadoPagoGateway struct {
	client          preference.Client
	notificationURL string
	mockMode        bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. mockMode skips the external API
// entirely and fabricates sessions, for local development and CI.
func NewMercadoPagoGateway(accessToken, notificationURL string, mockMode bool) (*MercadoPagoGateway, error) {
	if mockMode {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, notificationURL: notificationURL}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg), notificationURL: notificationURL}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "mock-" + uuid.NewString()
		log.Printf("[payment][gateway] mock session created session_id=%s amount=%s", id, req.Amount.String())
		return interfaces.CheckoutSession{
			SessionID:   id,
			RedirectURL: fmt.Sprintf("https://checkout.example.test/session/%s", id),
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}

	amount, _ := req.Amount.Float64()
	prefReq := preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     req.Title,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
		ExternalReference: req.IdempotencyKey,
		NotificationURL:   g.notificationURL,
	}
	if req.PayerEmail != "" {
		prefReq.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}

	resp, err := g.client.Create(ctx, prefReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return interfaces.CheckoutSession{}, err
	}

	log.Printf("[payment][gateway] session created session_id=%s", resp.ID)
	return interfaces.CheckoutSession{
		SessionID:   resp.ID,
		RedirectURL: resp.InitPoint,
	}, nil
}
