package response

import (
	"testing"
	"time"

	"greenscape/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func pricedQuote(status entities.QuoteStatus, validUntil time.Time) entities.Quote {
	return entities.Quote{
		ID:          "q-1",
		Contact:     entities.ContactSnapshot{Name: "Dana Reyes", Email: "dana@example.com"},
		ServiceType: "lawn",
		Status:      status,
		Amount:      decimal.RequireFromString("300.00"),
		AmountSet:   true,
		ValidUntil:  validUntil,
	}
}

func TestFromQuote(t *testing.T) {
	t.Run("quoted quote renders its amount", func(t *testing.T) {
		res := FromQuote(pricedQuote(entities.QuoteStatusQuoted, time.Now().Add(24*time.Hour)))
		if res.Status != "quoted" {
			t.Fatalf("unexpected status: %s", res.Status)
		}
		if res.Amount == nil || *res.Amount != "300.00" {
			t.Fatalf("expected amount 300.00, got %v", res.Amount)
		}
	})

	t.Run("accepted quote renders its amount", func(t *testing.T) {
		res := FromQuote(pricedQuote(entities.QuoteStatusAccepted, time.Now().Add(24*time.Hour)))
		if res.Amount == nil || *res.Amount != "300.00" {
			t.Fatalf("expected amount 300.00, got %v", res.Amount)
		}
	})

	t.Run("declined quote hides its amount", func(t *testing.T) {
		res := FromQuote(pricedQuote(entities.QuoteStatusDeclined, time.Now().Add(24*time.Hour)))
		if res.Status != "declined" {
			t.Fatalf("unexpected status: %s", res.Status)
		}
		if res.Amount != nil {
			t.Fatalf("declined quote must not expose an amount, got %q", *res.Amount)
		}
	})

	t.Run("lazily expired quote hides its amount", func(t *testing.T) {
		res := FromQuote(pricedQuote(entities.QuoteStatusQuoted, time.Now().Add(-time.Hour)))
		if res.Status != "expired" {
			t.Fatalf("unexpected status: %s", res.Status)
		}
		if res.Amount != nil {
			t.Fatalf("expired quote must not expose an amount, got %q", *res.Amount)
		}
	})
}
