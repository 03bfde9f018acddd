package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidContact     = errors.New("invalid contact")
	ErrInvalidQuoteAmount = errors.New("invalid quote amount")
	ErrInvalidValidUntil  = errors.New("invalid validity deadline")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// IQuoteUseCase exposes the quote lifecycle up to (but not including)
// acceptance: request, staff pricing, decline, read.

type IQuoteUseCase interface {
	RequestQuote(ctx context.Context, contact entities.ContactSnapshot, serviceType, description string) (entities.Quote, error)
	PriceQuote(ctx context.Context, quoteID string, amount decimal.Decimal, validUntil time.Time) (entities.Quote, entities.AcceptanceToken, error)
	DeclineQuote(ctx context.Context, quoteID string) (entities.Quote, error)
	GetQuote(ctx context.Context, quoteID string) (entities.Quote, error)
}

type QuoteUseCase struct {
	quotes interfaces.IQuoteRepository
	tokens interfaces.IAcceptanceTokenRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(quotes interfaces.IQuoteRepository, tokens interfaces.IAcceptanceTokenRepository) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes, tokens: tokens}
}

func (u *QuoteUseCase) RequestQuote(ctx context.Context, contact entities.ContactSnapshot, serviceType, description string) (entities.Quote, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	serviceType = strings.TrimSpace(serviceType)
	if contact.Name == "" || contact.Email == "" || !strings.Contains(contact.Email, "@") {
		return entities.Quote{}, ErrInvalidContact
	}
	if serviceType == "" {
		return entities.Quote{}, ErrInvalidContact
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:          uuid.NewString(),
		Contact:     contact,
		ServiceType: serviceType,
		Description: strings.TrimSpace(description),
		Status:      entities.QuoteStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] created quote_id=%s service_type=%s", created.ID, created.ServiceType)
	return created, nil
}

// PriceQuote sets the amount and validity deadline and mints a fresh
// acceptance token. Re-pricing is allowed until the quote is accepted or
// declined; each pricing issues its own token.
func (u *QuoteUseCase) PriceQuote(ctx context.Context, quoteID string, amount decimal.Decimal, validUntil time.Time) (entities.Quote, entities.AcceptanceToken, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, entities.AcceptanceToken{}, ErrInvalidQuoteID
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return entities.Quote{}, entities.AcceptanceToken{}, ErrInvalidQuoteAmount
	}
	now := time.Now().UTC()
	if !validUntil.After(now) {
		return entities.Quote{}, entities.AcceptanceToken{}, ErrInvalidValidUntil
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, entities.AcceptanceToken{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, entities.AcceptanceToken{}, ErrQuoteNotFound
	}
	switch q.EffectiveStatus(now) {
	case entities.QuoteStatusPending, entities.QuoteStatusQuoted:
	default:
		return entities.Quote{}, entities.AcceptanceToken{}, ErrInvalidTransition
	}

	updated, err := u.quotes.UpdatePricing(ctx, quoteID, amount.Round(2), validUntil.UTC())
	if err != nil {
		return entities.Quote{}, entities.AcceptanceToken{}, err
	}
	if updated.ID == "" {
		// Lost a race with an acceptance or decline between read and write.
		return entities.Quote{}, entities.AcceptanceToken{}, ErrInvalidTransition
	}

	token := entities.AcceptanceToken{
		ID:        newTokenID(),
		QuoteID:   updated.ID,
		ExpiresAt: updated.ValidUntil,
		CreatedAt: now,
	}
	issued, err := u.tokens.Create(ctx, token)
	if err != nil {
		return entities.Quote{}, entities.AcceptanceToken{}, err
	}
	log.Printf("[quote][usecase] priced quote_id=%s amount=%s valid_until=%s", updated.ID, updated.Amount.String(), updated.ValidUntil.Format(time.RFC3339))
	return updated, issued, nil
}

// DeclineQuote is terminal: a declined quote cannot be re-priced or accepted.
func (u *QuoteUseCase) DeclineQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	if q.EffectiveStatus(time.Now().UTC()) != entities.QuoteStatusQuoted {
		return entities.Quote{}, ErrInvalidTransition
	}

	updated, err := u.quotes.UpdateStatus(ctx, quoteID, []entities.QuoteStatus{entities.QuoteStatusQuoted}, entities.QuoteStatusDeclined)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrInvalidTransition
	}
	log.Printf("[quote][usecase] declined quote_id=%s", updated.ID)
	return updated, nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// newTokenID mints an opaque 128-bit token identifier. The token value is the
// sole credential on the acceptance link, so it comes from crypto/rand, not
// from a UUID generator.
func newTokenID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(b)
}
