package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/klarbuch/klarbuch_app/internal/core/domain"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// Numbering holds the display template and reset mode per document type.
	InvoiceNumbers domain.NumberFormat
	ReceiptNumbers domain.NumberFormat
	OrderNumbers   domain.NumberFormat
	QuoteNumbers   domain.NumberFormat
}

// loadNumberFormat reads one template/mode pair, falling back to the given
// defaults when the mode is missing or unknown.
func loadNumberFormat(templateKey, modeKey, defaultTemplate string, defaultMode domain.PeriodMode) domain.NumberFormat {
	format := domain.NumberFormat{
		Template: viper.GetString(templateKey),
		Mode:     domain.PeriodMode(viper.GetString(modeKey)),
	}
	if format.Template == "" {
		format.Template = defaultTemplate
	}
	if !format.Mode.IsValid() {
		if format.Mode != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", modeKey, format.Mode, defaultMode)
		}
		format.Mode = defaultMode
	}
	return format
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT", "300-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
		// Consider returning an error depending on requirements
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.InvoiceNumbers = loadNumberFormat("INVOICE_NUMBER_TEMPLATE", "INVOICE_NUMBER_PERIOD", "INV-{yyyy}-{0000}", domain.PeriodYearly)
	cfg.ReceiptNumbers = loadNumberFormat("RECEIPT_NUMBER_TEMPLATE", "RECEIPT_NUMBER_PERIOD", "REC-{yyyy}{mm}-{0000}", domain.PeriodMonthly)
	cfg.OrderNumbers = loadNumberFormat("ORDER_NUMBER_TEMPLATE", "ORDER_NUMBER_PERIOD", "ORD-{yyyy}-{0000}", domain.PeriodYearly)
	cfg.QuoteNumbers = loadNumberFormat("QUOTE_NUMBER_TEMPLATE", "QUOTE_NUMBER_PERIOD", "QUO-{yyyy}-{0000}", domain.PeriodYearly)

	return cfg, nil
}
