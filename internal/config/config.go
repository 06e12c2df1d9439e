package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	CORS      CORSConfig
	Upload    UploadConfig
	Templates TemplatesConfig
	Banking   BankingConfig
	Parse     ParseConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig holds slip upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// TemplatesConfig holds the paths of the two debit-note templates.
type TemplatesConfig struct {
	PathA string `mapstructure:"a_path"`
	PathB string `mapstructure:"b_path"`
}

// BankingConfig holds the settlement bank account table and the debit-note
// reference prefix. Both are deployment configuration, not code constants.
type BankingConfig struct {
	IBANs           map[string]string `mapstructure:"ibans"`
	ReferencePrefix string            `mapstructure:"reference_prefix"`
}

// IBANForCurrency returns the settlement IBAN for a currency code, or an
// empty string when the currency has no configured account.
func (b *BankingConfig) IBANForCurrency(currency string) string {
	return b.IBANs[currency]
}

// ParseConfig holds slip extraction defaults and policies.
type ParseConfig struct {
	DefaultTermDays int    `mapstructure:"default_term_days"`
	DefaultCurrency string `mapstructure:"default_currency"`
	AmountPolicy    string `mapstructure:"amount_policy"`
}

// Load reads configuration from environment variables with the DEBIT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DEBIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 10)

	// Template defaults
	v.SetDefault("templates.a_path", "templates/template_a.docx")
	v.SetDefault("templates.b_path", "templates/template_b.docx")

	// Banking defaults
	v.SetDefault("banking.reference_prefix", "DN-RHB")
	v.SetDefault("banking.iban_usd", "TR92 0006 2000 3560 0009 0742 54")
	v.SetDefault("banking.iban_eur", "TR22 0006 2000 3560 0009 0742 53")
	v.SetDefault("banking.iban_gbp", "")
	v.SetDefault("banking.iban_try", "")

	// Parse defaults
	v.SetDefault("parse.default_term_days", 120)
	v.SetDefault("parse.default_currency", "EUR")
	v.SetDefault("parse.amount_policy", "zero")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "DEBIT_SERVER_PORT",
		"server.read_timeout":      "DEBIT_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "DEBIT_SERVER_WRITE_TIMEOUT",
		"server.environment":       "DEBIT_SERVER_ENVIRONMENT",
		"log.level":                "DEBIT_LOG_LEVEL",
		"log.format":               "DEBIT_LOG_FORMAT",
		"cors.allowed_origins":     "DEBIT_CORS_ALLOWED_ORIGINS",
		"upload.max_file_size_mb":  "DEBIT_UPLOAD_MAX_FILE_SIZE_MB",
		"templates.a_path":         "DEBIT_TEMPLATES_A_PATH",
		"templates.b_path":         "DEBIT_TEMPLATES_B_PATH",
		"banking.reference_prefix": "DEBIT_BANKING_REFERENCE_PREFIX",
		"banking.iban_usd":         "DEBIT_BANKING_IBAN_USD",
		"banking.iban_eur":         "DEBIT_BANKING_IBAN_EUR",
		"banking.iban_gbp":         "DEBIT_BANKING_IBAN_GBP",
		"banking.iban_try":         "DEBIT_BANKING_IBAN_TRY",
		"parse.default_term_days":  "DEBIT_PARSE_DEFAULT_TERM_DAYS",
		"parse.default_currency":   "DEBIT_PARSE_DEFAULT_CURRENCY",
		"parse.amount_policy":      "DEBIT_PARSE_AMOUNT_POLICY",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DEBIT_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DEBIT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}
	cfg.Templates = TemplatesConfig{
		PathA: v.GetString("templates.a_path"),
		PathB: v.GetString("templates.b_path"),
	}

	ibans := map[string]string{}
	for cur, key := range map[string]string{
		"USD": "banking.iban_usd",
		"EUR": "banking.iban_eur",
		"GBP": "banking.iban_gbp",
		"TRY": "banking.iban_try",
	} {
		if iban := strings.TrimSpace(v.GetString(key)); iban != "" {
			ibans[cur] = iban
		}
	}
	cfg.Banking = BankingConfig{
		IBANs:           ibans,
		ReferencePrefix: v.GetString("banking.reference_prefix"),
	}

	cfg.Parse = ParseConfig{
		DefaultTermDays: v.GetInt("parse.default_term_days"),
		DefaultCurrency: v.GetString("parse.default_currency"),
		AmountPolicy:    v.GetString("parse.amount_policy"),
	}

	return cfg, nil
}
