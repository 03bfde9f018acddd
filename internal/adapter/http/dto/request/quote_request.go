package request

import (
	"errors"
	"strings"
	"time"

	"greenscape/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// QuoteCreateRequest is the public quote-request payload.
type QuoteCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	ServiceType string `json:"service_type" binding:"required"`
	Description string `json:"description"`
}

func (r QuoteCreateRequest) Contact() entities.ContactSnapshot {
	return entities.ContactSnapshot{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
	}
}

// QuotePriceRequest is the staff pricing payload. Amount is a string so the
// boundary never goes through float64 on its way to a decimal.
type QuotePriceRequest struct {
	Amount     string    `json:"amount" binding:"required"`
	ValidUntil time.Time `json:"valid_until" binding:"required"`
}

func (r QuotePriceRequest) ResolveAmount() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil || d.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

// QuoteAcceptRequest carries the single-use acceptance token.
type QuoteAcceptRequest struct {
	Token string `json:"token" binding:"required"`
}
