package handlers

import (
	"errors"
	request "greenscape/internal/adapter/http/dto/request"
	response "greenscape/internal/adapter/http/dto/response"
	"greenscape/internal/usecase"
	"greenscape/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AcceptanceHandler handles the token-redemption surface: previewing a quote
// behind an acceptance link and consuming the token to open a project.

type AcceptanceHandler struct {
	usecase usecase.IAcceptanceUseCase
}

func NewAcceptanceHandler(uc usecase.IAcceptanceUseCase) *AcceptanceHandler {
	return &AcceptanceHandler{usecase: uc}
}

// PreviewAcceptance validates the ?token= link and returns the quote it
// points at, without consuming anything.
func (h *AcceptanceHandler) PreviewAcceptance(c *gin.Context) {
	tokenID := strings.TrimSpace(c.Query("token"))
	if tokenID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_TOKEN", "Missing acceptance token", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.ValidateToken(c.Request.Context(), tokenID)
	if err != nil {
		appErr := mapAcceptanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// AcceptQuote consumes the token: flips the quote to accepted, opens the
// project and issues the deposit invoice, all or nothing.
func (h *AcceptanceHandler) AcceptQuote(c *gin.Context) {
	var payload request.QuoteAcceptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_TOKEN", "Missing acceptance token", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	project, deposit, err := h.usecase.ConsumeToken(c.Request.Context(), strings.TrimSpace(payload.Token))
	if err != nil {
		log.Printf("[acceptance][handler] consume failed err=%v", err)
		appErr := mapAcceptanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[acceptance][handler] consume success project_id=%s invoice_id=%s", project.ID, deposit.ID)

	c.JSON(http.StatusCreated, response.AcceptanceResponse{
		Project:        response.FromProject(project),
		DepositInvoice: response.FromInvoice(deposit),
	})
}

func mapAcceptanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrTokenNotFound):
		return pkg.NewDomainErrorSimple("TOKEN_NOT_FOUND", "Acceptance token not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTokenExpired):
		return pkg.NewDomainErrorSimple("TOKEN_EXPIRED", "Acceptance token has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrTokenAlreadyConsumed):
		return pkg.NewDomainErrorSimple("TOKEN_ALREADY_CONSUMED", "Acceptance token was already used", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
