package handlers

import (
	"errors"
	"greenscape/internal/usecase"
	"greenscape/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives payment-gateway notifications. The gateway retries
// on non-2xx, so only malformed requests are rejected; everything the
// reconciler classifies as ignorable is acknowledged with 200.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.Process(c.Request.Context(), raw, c.GetHeader("X-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSignatureInvalid):
			// Logged and acknowledged: a retry with the same bad signature
			// will never succeed.
			log.Printf("[webhook][handler] signature rejected")
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		case errors.Is(err, usecase.ErrUnknownAttempt):
			log.Printf("[webhook][handler] unknown gateway session, ignoring")
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		case errors.Is(err, usecase.ErrInvalidWebhookPayload):
			appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Malformed webhook payload", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		default:
			log.Printf("[webhook][handler] processing failed err=%v", err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(outcome)})
}
