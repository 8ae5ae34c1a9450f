package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "dynamodb", cfg.Storage.Driver)
	assert.Equal(t, "stripe", cfg.Billing.Provider)
	assert.Equal(t, "https://fiftymais.site?pagamento=sucesso", cfg.Billing.SuccessURL)
	assert.Equal(t, "https://fiftymais.com.br/#oferta", cfg.Billing.CancelURL)
	assert.Equal(t, "propostas", cfg.DynamoDB.QuotesTable)
	assert.Equal(t, "Fifty+ <noreply@fiftymais.com.br>", cfg.Email.From)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_PRICE_ID", "price_abc")
	t.Setenv("PORT", "9090")
	t.Setenv("MERCADOPAGO_MOCK", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
	assert.Equal(t, "price_abc", cfg.Stripe.PriceID)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.True(t, cfg.MercadoPago.Mock)
}

func TestValidate(t *testing.T) {
	base := Config{
		App:     AppConfig{Environment: "development"},
		Storage: StorageConfig{Driver: "postgres"},
		Billing: BillingConfig{Provider: "stripe"},
		Auth:    AuthConfig{JWTSecret: defaultJWTSecret},
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.Storage.Driver = "mongo"
	assert.Error(t, bad.Validate())

	bad = base
	bad.Billing.Provider = "paypal"
	assert.Error(t, bad.Validate())

	prod := base
	prod.App.Environment = "production"
	assert.Error(t, prod.Validate())
	prod.Auth.JWTSecret = "a-real-secret"
	assert.NoError(t, prod.Validate())

	prod.MercadoPago.Mock = true
	assert.EqualError(t, prod.Validate(), "MERCADOPAGO_MOCK cannot be enabled in production")

	dev := base
	dev.MercadoPago.Mock = true
	assert.NoError(t, dev.Validate())
}

func TestDurations(t *testing.T) {
	a := AuthConfig{SessionTTLHours: 2, ResetTTLMinutes: 30}
	assert.Equal(t, "2h0m0s", a.SessionTTL().String())
	assert.Equal(t, "30m0s", a.ResetTTL().String())

	d := DatabaseConfig{Host: "h", Port: 5432, User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Contains(t, d.ConnectionString(), "host=h port=5432 user=u")
}
