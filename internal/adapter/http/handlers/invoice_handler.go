package handlers

import (
	"errors"
	response "greenscape/internal/adapter/http/dto/response"
	"greenscape/internal/usecase"
	"greenscape/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice reads: per-project listings for signed-in
// customers and the guest email lookup.

type InvoiceHandler struct {
	invoices usecase.IInvoiceUseCase
	guests   usecase.IGuestLookupUseCase
}

func NewInvoiceHandler(invoices usecase.IInvoiceUseCase, guests usecase.IGuestLookupUseCase) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, guests: guests}
}

// ListInvoices routes on the query string: ?project_id= lists a project's
// invoices, ?email= performs the guest lookup. Exactly one must be present.
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	projectID := strings.TrimSpace(c.Query("project_id"))
	email := strings.TrimSpace(c.Query("email"))

	switch {
	case projectID != "" && email == "":
		h.listByProject(c, projectID)
	case email != "" && projectID == "":
		h.lookupByEmail(c, email)
	default:
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Provide exactly one of project_id or email", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// GetInvoice returns a single invoice with its payability flag.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	pi, err := h.invoices.GetPayable(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayableInvoice(pi))
}

func (h *InvoiceHandler) listByProject(c *gin.Context, projectID string) {
	items, err := h.invoices.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": response.FromPayableInvoices(items)})
}

func (h *InvoiceHandler) lookupByEmail(c *gin.Context, email string) {
	result, err := h.guests.LookupByEmail(c.Request.Context(), email)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromGuestInvoices(result))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice cannot be paid in its current state", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
