package response

import (
	"fmt"
	"time"

	"greenscape/internal/domain/entities"
)

type QuoteResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone,omitempty"`
	Address     string     `json:"address,omitempty"`
	ServiceType string     `json:"service_type"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Amount      *string    `json:"amount,omitempty"`
	ValidUntil  *time.Time `json:"valid_until,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// FromQuote renders a quote with its read-time status: a quoted quote past
// its deadline shows as expired. The amount is only exposed while the quote
// is quoted or accepted; a declined or expired quote renders without one.
func FromQuote(q entities.Quote) QuoteResponse {
	effective := q.EffectiveStatus(time.Now().UTC())
	res := QuoteResponse{
		ID:          q.ID,
		Name:        q.Contact.Name,
		Email:       q.Contact.Email,
		Phone:       q.Contact.Phone,
		Address:     q.Contact.Address,
		ServiceType: q.ServiceType,
		Description: q.Description,
		Status:      string(effective),
		ProjectID:   q.ProjectID,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
	if q.AmountSet && (effective == entities.QuoteStatusQuoted || effective == entities.QuoteStatusAccepted) {
		amount := q.Amount.StringFixed(2)
		res.Amount = &amount
	}
	if !q.ValidUntil.IsZero() {
		until := q.ValidUntil
		res.ValidUntil = &until
	}
	return res
}

// QuotePricedResponse adds the freshly minted acceptance link to the priced
// quote. The token value appears only here and in the link itself.
type QuotePricedResponse struct {
	Quote           QuoteResponse `json:"quote"`
	AcceptanceToken string        `json:"acceptance_token"`
	AcceptanceURL   string        `json:"acceptance_url"`
	TokenExpiresAt  time.Time     `json:"token_expires_at"`
}

func FromPricedQuote(q entities.Quote, token entities.AcceptanceToken, baseURL string) QuotePricedResponse {
	return QuotePricedResponse{
		Quote:           FromQuote(q),
		AcceptanceToken: token.ID,
		AcceptanceURL:   fmt.Sprintf("%s/v1/quotes/accept?token=%s", baseURL, token.ID),
		TokenExpiresAt:  token.ExpiresAt,
	}
}
