package response

import "greenscape/internal/usecase"

type PaymentSessionResponse struct {
	PaymentAttemptID string `json:"payment_attempt_id"`
	SessionID        string `json:"session_id"`
	RedirectURL      string `json:"redirect_url"`
	InvoiceAmount    string `json:"invoice_amount"`
	FeeAmount        string `json:"fee_amount"`
	TotalCharged     string `json:"total_charged"`
}

func FromPaymentSession(s usecase.PaymentSession) PaymentSessionResponse {
	return PaymentSessionResponse{
		PaymentAttemptID: s.PaymentAttemptID,
		SessionID:        s.SessionID,
		RedirectURL:      s.RedirectURL,
		InvoiceAmount:    s.InvoiceAmount.StringFixed(2),
		FeeAmount:        s.FeeAmount.StringFixed(2),
		TotalCharged:     s.TotalCharged.StringFixed(2),
	}
}
