package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Logging     LoggingConfig
	Storage     StorageConfig
	Database    DatabaseConfig
	DynamoDB    DynamoDBConfig
	Auth        AuthConfig
	Billing     BillingConfig
	Stripe      StripeConfig
	MercadoPago MercadoPagoConfig
	Email       EmailConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
	PublicURL   string
}

type ServerConfig struct {
	ReadTimeout   int
	WriteTimeout  int
	EnableSwagger bool
	EnableMetrics bool
}

type LoggingConfig struct {
	Level  string
	Format string
}

// StorageConfig selects the record store: "dynamodb", "postgres" or "sqlite".
type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	AutoMigrate     bool
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	QuotesTable     string
	ProfilesTable   string
	AccountsTable   string
}

type AuthConfig struct {
	JWTSecret       string
	SessionTTLHours int
	ResetTTLMinutes int
}

// BillingConfig holds provider-independent checkout settings.
type BillingConfig struct {
	Provider     string
	SuccessURL   string
	CancelURL    string
	ProductTitle string
	PriceAmount  float64
	Currency     string
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	PriceID       string
}

type MercadoPagoConfig struct {
	AccessToken     string
	WebhookSecret   string
	NotificationURL string
	Mock            bool
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

func (a *AuthConfig) SessionTTL() time.Duration {
	return time.Duration(a.SessionTTLHours) * time.Hour
}

func (a *AuthConfig) ResetTTL() time.Duration {
	return time.Duration(a.ResetTTLMinutes) * time.Minute
}

func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load loads configuration from an optional config.json and environment variables.
// Environment variables win over the file.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)
	bindEnv(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "dynamodb", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported storage driver %q", c.Storage.Driver)
	}
	switch c.Billing.Provider {
	case "stripe", "mercadopago":
	default:
		return fmt.Errorf("unsupported billing provider %q", c.Billing.Provider)
	}
	if c.App.IsProduction() && c.Auth.JWTSecret == defaultJWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.App.IsProduction() && c.MercadoPago.Mock {
		return errors.New("MERCADOPAGO_MOCK cannot be enabled in production")
	}
	return nil
}

const defaultJWTSecret = "dev-secret-change-me"

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Fifty+ API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.publicURL", "https://www.fiftymais.site")

	v.SetDefault("server.readTimeout", 15)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.enableSwagger", true)
	v.SetDefault("server.enableMetrics", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("storage.driver", "dynamodb")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "fiftymais")
	v.SetDefault("database.user", "fiftymais")
	v.SetDefault("database.password", "fiftymais")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "fiftymais.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.accessKeyID", "local")
	v.SetDefault("dynamodb.secretAccessKey", "local")
	v.SetDefault("dynamodb.quotesTable", "propostas")
	v.SetDefault("dynamodb.profilesTable", "profiles")
	v.SetDefault("dynamodb.accountsTable", "accounts")

	v.SetDefault("auth.jwtSecret", defaultJWTSecret)
	v.SetDefault("auth.sessionTTLHours", 24*7)
	v.SetDefault("auth.resetTTLMinutes", 60)

	v.SetDefault("billing.provider", "stripe")
	v.SetDefault("billing.successURL", "https://fiftymais.site?pagamento=sucesso")
	v.SetDefault("billing.cancelURL", "https://fiftymais.com.br/#oferta")
	v.SetDefault("billing.productTitle", "Assinatura Fifty+")
	v.SetDefault("billing.priceAmount", 49.90)
	v.SetDefault("billing.currency", "BRL")

	v.SetDefault("mercadoPago.mock", false)

	v.SetDefault("email.from", "Fifty+ <noreply@fiftymais.com.br>")
}

// bindEnv maps the deployment's established variable names onto config keys.
func bindEnv(v *viper.Viper) {
	bindings := map[string]string{
		"app.environment":             "APP_ENV",
		"app.port":                    "PORT",
		"app.publicURL":               "APP_URL",
		"logging.level":               "LOG_LEVEL",
		"logging.format":              "LOG_FORMAT",
		"storage.driver":              "STORAGE_DRIVER",
		"database.host":               "DB_HOST",
		"database.port":               "DB_PORT",
		"database.name":               "DB_NAME",
		"database.user":               "DB_USER",
		"database.password":           "DB_PASSWORD",
		"database.sslMode":            "DB_SSLMODE",
		"database.sqlitePath":         "SQLITE_PATH",
		"dynamodb.region":             "AWS_REGION",
		"dynamodb.endpoint":           "DYNAMODB_ENDPOINT",
		"dynamodb.accessKeyID":        "AWS_ACCESS_KEY_ID",
		"dynamodb.secretAccessKey":    "AWS_SECRET_ACCESS_KEY",
		"dynamodb.quotesTable":        "QUOTES_TABLE",
		"dynamodb.profilesTable":      "PROFILES_TABLE",
		"dynamodb.accountsTable":      "ACCOUNTS_TABLE",
		"auth.jwtSecret":              "JWT_SECRET",
		"billing.provider":            "BILLING_PROVIDER",
		"billing.successURL":          "CHECKOUT_SUCCESS_URL",
		"billing.cancelURL":           "CHECKOUT_CANCEL_URL",
		"stripe.secretKey":            "STRIPE_SECRET_KEY",
		"stripe.webhookSecret":        "STRIPE_WEBHOOK_SECRET",
		"stripe.priceID":              "STRIPE_PRICE_ID",
		"mercadoPago.accessToken":     "MERCADOPAGO_ACCESS_TOKEN",
		"mercadoPago.webhookSecret":   "MERCADOPAGO_WEBHOOK_SECRET",
		"mercadoPago.notificationURL": "MERCADOPAGO_NOTIFICATION_URL",
		"mercadoPago.mock":            "MERCADOPAGO_MOCK",
		"email.resendAPIKey":          "RESEND_API_KEY",
		"email.from":                  "EMAIL_FROM",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, env)
	}
}
