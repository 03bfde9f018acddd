package handlers

import (
	"errors"
	request "greenscape/internal/adapter/http/dto/request"
	response "greenscape/internal/adapter/http/dto/response"
	"greenscape/internal/adapter/http/middleware"
	"greenscape/internal/usecase"
	"greenscape/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles checkout-session creation for an invoice.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateSession opens a hosted checkout session for the invoice in the path.
// Signed-in customers are identified by the session context; guests must
// supply the invoice contact email in the body.
func (h *PaymentHandler) CreateSession(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log.Printf("[payment][handler] session start invoice_id=%s", invoiceID)

	payer := usecase.PayerContext{
		CustomerID: c.GetString(middleware.ContextCustomerID),
		Email:      c.GetString(middleware.ContextCustomerEmail),
	}
	if payer.CustomerID == "" {
		var payload request.PaymentSessionRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_PAYER", "Guest payments require the invoice contact email", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		payer.Email = strings.TrimSpace(payload.Email)
	}

	session, err := h.usecase.CreateSession(c.Request.Context(), invoiceID, payer)
	if err != nil {
		log.Printf("[payment][handler] session failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] session success invoice_id=%s attempt_id=%s total=%s", invoiceID, session.PaymentAttemptID, session.TotalCharged.StringFixed(2))

	c.JSON(http.StatusCreated, response.FromPaymentSession(session))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidPayer):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice cannot be paid in its current state", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is unavailable, try again later", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
