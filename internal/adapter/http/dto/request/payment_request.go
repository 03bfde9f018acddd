package request

// PaymentSessionRequest is the payload for opening a checkout session on an
// invoice. Email is only consulted for guest payers; authenticated requests
// carry identity on the session token, never in the body.
type PaymentSessionRequest struct {
	Email string `json:"email" binding:"required,email"`
}
