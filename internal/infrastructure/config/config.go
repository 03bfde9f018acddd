package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

// Config is the full environment surface of the service. Everything that was
// once a scattered os.Getenv lives here so wiring has one source of truth.
type Config struct {
	Port          int    `env:"PORT" envDefault:"8080"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// AWS / DynamoDB (local-friendly defaults; local DynamoDB does not
	// validate credentials but the SDK requires them)
	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	QuotesTable          string `env:"QUOTES_TABLE" envDefault:"quotes"`
	TokensTable          string `env:"ACCEPTANCE_TOKENS_TABLE" envDefault:"acceptance_tokens"`
	ProjectsTable        string `env:"PROJECTS_TABLE" envDefault:"projects"`
	InvoicesTable        string `env:"INVOICES_TABLE" envDefault:"invoices"`
	PaymentAttemptsTable string `env:"PAYMENT_ATTEMPTS_TABLE" envDefault:"payment_attempts"`

	// Payment gateway
	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
	WebhookSecret          string `env:"PAYMENT_WEBHOOK_SECRET,required"`

	// Session-issuing auth service shares this secret with us; tokens are
	// optional (guest flows carry none).
	AuthJWTSecret string `env:"AUTH_JWT_SECRET"`

	// Billing policy
	CardFeeRate     string `env:"CARD_FEE_RATE" envDefault:"0.029"`
	CardFeeFixed    string `env:"CARD_FEE_FIXED" envDefault:"0.30"`
	DepositFraction string `env:"DEPOSIT_FRACTION" envDefault:"0.5"`
	DepositRequired bool   `env:"DEPOSIT_REQUIRED" envDefault:"true"`
	InvoiceDueDays  int    `env:"INVOICE_DUE_DAYS" envDefault:"7"`

	feeRate         decimal.Decimal
	feeFixed        decimal.Decimal
	depositFraction decimal.Decimal
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var err error
	if cfg.feeRate, err = decimal.NewFromString(cfg.CardFeeRate); err != nil {
		return nil, fmt.Errorf("parse CARD_FEE_RATE: %w", err)
	}
	if cfg.feeFixed, err = decimal.NewFromString(cfg.CardFeeFixed); err != nil {
		return nil, fmt.Errorf("parse CARD_FEE_FIXED: %w", err)
	}
	if cfg.depositFraction, err = decimal.NewFromString(cfg.DepositFraction); err != nil {
		return nil, fmt.Errorf("parse DEPOSIT_FRACTION: %w", err)
	}
	if cfg.depositFraction.LessThanOrEqual(decimal.Zero) || cfg.depositFraction.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("DEPOSIT_FRACTION must be in (0, 1], got %s", cfg.DepositFraction)
	}
	return cfg, nil
}

func (c *Config) FeeRate() decimal.Decimal            { return c.feeRate }
func (c *Config) FeeFixed() decimal.Decimal           { return c.feeFixed }
func (c *Config) DepositFractionDec() decimal.Decimal { return c.depositFraction }
