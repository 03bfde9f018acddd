package handlers

import (
	"errors"
	request "greenscape/internal/adapter/http/dto/request"
	response "greenscape/internal/adapter/http/dto/response"
	"greenscape/internal/usecase"
	"greenscape/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote lifecycle: public quote
// requests, staff pricing and staff decline.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	baseURL string
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, baseURL string) *QuoteHandler {
	return &QuoteHandler{usecase: uc, baseURL: baseURL}
}

// CreateQuote registers a public quote request with a contact snapshot.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.RequestQuote(c.Request.Context(), payload.Contact(), payload.ServiceType, payload.Description)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// GetQuote returns a single quote with its read-time status.
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetQuote(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// PriceQuote sets (or replaces) the quoted amount and validity window and
// returns the minted acceptance link.
func (h *QuoteHandler) PriceQuote(c *gin.Context) {
	quoteID := c.Param("quote_id")

	var payload request.QuotePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be a positive decimal string", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, token, err := h.usecase.PriceQuote(c.Request.Context(), quoteID, amount, payload.ValidUntil)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricedQuote(quote, token, h.baseURL))
}

// DeclineQuote marks a quoted quote as declined. Terminal.
func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	quote, err := h.usecase.DeclineQuote(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidContact),
		errors.Is(err, usecase.ErrInvalidQuoteAmount), errors.Is(err, usecase.ErrInvalidValidUntil):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_STATE", "Quote is not in a state that allows this operation", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
