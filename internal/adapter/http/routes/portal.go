package routes

import (
	"greenscape/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathInvoices = "/invoices"
	PathPayments = "/payments"
)

func addPortalRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	acceptanceHandler *handlers.AcceptanceHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/accept", acceptanceHandler.PreviewAcceptance)
		quotes.POST("/accept", acceptanceHandler.AcceptQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.POST("/:quote_id/price", quoteHandler.PriceQuote)
		quotes.POST("/:quote_id/decline", quoteHandler.DeclineQuote)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoice)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/invoice/:invoice_id", paymentHandler.CreateSession)
		payments.POST("/webhook", webhookHandler.HandleNotification)
	}
}
