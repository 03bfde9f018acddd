package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"greenscape/internal/domain/entities"
	"greenscape/internal/usecase/interfaces"
)

var (
	ErrTokenNotFound        = errors.New("acceptance token not found")
	ErrTokenExpired         = errors.New("acceptance token expired")
	ErrTokenAlreadyConsumed = errors.New("acceptance token already consumed")
)

// IAcceptanceUseCase exposes the single-use acceptance flow: preview a quote
// through its token, and consume the token to materialize the project.

type IAcceptanceUseCase interface {
	ValidateToken(ctx context.Context, tokenID string) (entities.Quote, error)
	ConsumeToken(ctx context.Context, tokenID string) (entities.Project, entities.Invoice, error)
}

type AcceptanceUseCase struct {
	tokens   interfaces.IAcceptanceTokenRepository
	quotes   interfaces.IQuoteRepository
	factory  *ProjectFactory
	notifier interfaces.INotifier
}

var _ IAcceptanceUseCase = (*AcceptanceUseCase)(nil)

func NewAcceptanceUseCase(tokens interfaces.IAcceptanceTokenRepository, quotes interfaces.IQuoteRepository, factory *ProjectFactory, notifier interfaces.INotifier) *AcceptanceUseCase {
	return &AcceptanceUseCase{tokens: tokens, quotes: quotes, factory: factory, notifier: notifier}
}

// ValidateToken is the read-only preview behind the acceptance page. The
// three failure kinds are distinct on purpose: the page renders different
// copy for "already accepted", "expired" and "invalid link".
func (u *AcceptanceUseCase) ValidateToken(ctx context.Context, tokenID string) (entities.Quote, error) {
	_, quote, err := u.loadForAcceptance(ctx, tokenID, time.Now().UTC())
	return quote, err
}

// ConsumeToken accepts the quote and materializes the project plus its
// deposit invoice, all in one transaction with the token flip. Concurrent
// double-submission of the same token yields exactly one project; the loser
// gets ErrTokenAlreadyConsumed.
func (u *AcceptanceUseCase) ConsumeToken(ctx context.Context, tokenID string) (entities.Project, entities.Invoice, error) {
	now := time.Now().UTC()
	token, quote, err := u.loadForAcceptance(ctx, tokenID, now)
	if err != nil {
		return entities.Project{}, entities.Invoice{}, err
	}

	project, deposit := u.factory.Materialize(quote, now)
	ok, err := u.tokens.ConsumeAndMaterialize(ctx, token.ID, quote.ID, project, deposit)
	if err != nil {
		log.Printf("[acceptance][usecase] consume transaction failed token=%s quote_id=%s err=%v", token.ID, quote.ID, err)
		return entities.Project{}, entities.Invoice{}, err
	}
	if !ok {
		// The transaction's conditions lost a race. Re-read to report the
		// precise failure kind.
		log.Printf("[acceptance][usecase] consume condition failed token=%s quote_id=%s", token.ID, quote.ID)
		if _, _, verr := u.loadForAcceptance(ctx, tokenID, time.Now().UTC()); verr != nil {
			return entities.Project{}, entities.Invoice{}, verr
		}
		return entities.Project{}, entities.Invoice{}, ErrTokenAlreadyConsumed
	}

	log.Printf("[acceptance][usecase] quote accepted quote_id=%s project_id=%s total=%s deposit=%s",
		quote.ID, project.ID, project.TotalAmount.String(), project.DepositAmount.String())

	quote.Status = entities.QuoteStatusAccepted
	quote.ProjectID = project.ID
	u.notifier.QuoteAccepted(ctx, quote, project)

	return project, deposit, nil
}

func (u *AcceptanceUseCase) loadForAcceptance(ctx context.Context, tokenID string, now time.Time) (entities.AcceptanceToken, entities.Quote, error) {
	tokenID = strings.TrimSpace(tokenID)
	if tokenID == "" {
		return entities.AcceptanceToken{}, entities.Quote{}, ErrTokenNotFound
	}

	token, err := u.tokens.GetByID(ctx, tokenID)
	if err != nil {
		return entities.AcceptanceToken{}, entities.Quote{}, err
	}
	if token.ID == "" {
		return entities.AcceptanceToken{}, entities.Quote{}, ErrTokenNotFound
	}
	if token.Consumed {
		return entities.AcceptanceToken{}, entities.Quote{}, ErrTokenAlreadyConsumed
	}
	if !token.ExpiresAt.IsZero() && now.After(token.ExpiresAt) {
		return entities.AcceptanceToken{}, entities.Quote{}, ErrTokenExpired
	}

	quote, err := u.quotes.GetByID(ctx, token.QuoteID)
	if err != nil {
		return entities.AcceptanceToken{}, entities.Quote{}, err
	}
	if quote.ID == "" {
		return entities.AcceptanceToken{}, entities.Quote{}, ErrTokenNotFound
	}

	switch quote.EffectiveStatus(now) {
	case entities.QuoteStatusQuoted:
		return token, quote, nil
	case entities.QuoteStatusAccepted:
		return entities.AcceptanceToken{}, entities.Quote{}, ErrTokenAlreadyConsumed
	case entities.QuoteStatusExpired:
		return entities.AcceptanceToken{}, entities.Quote{}, ErrTokenExpired
	default:
		// Declined or never priced: the link is simply invalid.
		return entities.AcceptanceToken{}, entities.Quote{}, ErrTokenNotFound
	}
}
