package entities

import "time"

// AcceptanceToken is the single-use credential authorizing exactly one
// quote-to-project conversion.
//
// Storage model (DynamoDB):
//   - PK: id (the opaque token value, 128 bits of entropy hex-encoded)
//   - GSI quote_id-index (PK: quote_id)
//
// A consumed token, or a token whose quote is no longer quoted, is
// permanently invalid. Consumption is a conditional write on the consumed
// flag so concurrent double-submission yields exactly one success.
type AcceptanceToken struct {
	ID        string    `json:"id"`
	QuoteID   string    `json:"quote_id"`
	Consumed  bool      `json:"consumed"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
