package routes

import (
	"log"
	_ "greenscape/docs" // This will be auto-generated
	"greenscape/internal/adapter/http/handlers"
	"greenscape/internal/adapter/http/middleware"
	repository2 "greenscape/internal/adapter/persistence/repository"
	"greenscape/internal/infrastructure/config"
	"greenscape/internal/infrastructure/database"
	"greenscape/internal/infrastructure/notify"
	"greenscape/internal/infrastructure/payments"
	"greenscape/internal/usecase"
	"greenscape/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)
	tokenRepo := repository2.NewTokenDynamoRepository(ddb, repository2.TokenTables{
		Tokens:   cfg.TokensTable,
		Quotes:   cfg.QuotesTable,
		Projects: cfg.ProjectsTable,
		Invoices: cfg.InvoicesTable,
	})
	projectRepo := repository2.NewProjectDynamoRepository(ddb, cfg.ProjectsTable)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb, repository2.InvoiceTables{
		Invoices:        cfg.InvoicesTable,
		Projects:        cfg.ProjectsTable,
		PaymentAttempts: cfg.PaymentAttemptsTable,
	})
	attemptRepo := repository2.NewPaymentAttemptDynamoRepository(ddb, cfg.PaymentAttemptsTable, cfg.InvoicesTable)

	policy := usecase.DepositPolicy{
		Fraction:       cfg.DepositFractionDec(),
		RequireDeposit: cfg.DepositRequired,
	}
	factory := usecase.NewProjectFactory(policy, time.Duration(cfg.InvoiceDueDays)*24*time.Hour)
	notifier := notify.NewLogNotifier()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PublicBaseURL+"/v1/payments/webhook", cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, tokenRepo)
	acceptanceUseCase := usecase.NewAcceptanceUseCase(tokenRepo, quoteRepo, factory, notifier)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, projectRepo, factory, notifier)
	guestUseCase := usecase.NewGuestLookupUseCase(invoiceRepo, projectRepo, policy)
	paymentUseCase := usecase.NewPaymentUseCase(attemptRepo, invoiceRepo, projectRepo, paymentGateway, usecase.FeePolicy{Rate: cfg.FeeRate(), Fixed: cfg.FeeFixed()}, policy)
	webhookUseCase := usecase.NewWebhookUseCase(attemptRepo, invoiceUseCase, cfg.WebhookSecret)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, cfg.PublicBaseURL)
	acceptanceHandler := handlers.NewAcceptanceHandler(acceptanceUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, guestUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	v1.Use(middleware.CustomerContext(cfg.AuthJWTSecret))
	addPingRoutes(v1)
	addPortalRoutes(v1, quoteHandler, acceptanceHandler, invoiceHandler, paymentHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
