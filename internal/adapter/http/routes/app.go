package routes

import (
	"context"
	"fmt"

	"fiftymais/internal/adapter/http/handlers"
	"fiftymais/internal/adapter/persistence/repository"
	"fiftymais/internal/adapter/persistence/sqlrepository"
	"fiftymais/internal/config"
	"fiftymais/internal/infrastructure/database"
	"fiftymais/internal/infrastructure/email"
	"fiftymais/internal/infrastructure/payments"
	"fiftymais/internal/infrastructure/pdf"
	"fiftymais/internal/infrastructure/security"
	"fiftymais/internal/metrics"
	"fiftymais/internal/usecase"
	"fiftymais/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type stores struct {
	quotes   interfaces.IQuoteRepository
	profiles interfaces.IProfileRepository
	accounts interfaces.IAccountRepository
	close    func()
}

// openStores connects the record store selected by cfg.Storage.Driver.
func openStores(ctx context.Context, cfg *config.Config, log *zap.Logger) (*stores, error) {
	if cfg.Storage.Driver == "dynamodb" {
		ddb, err := database.NewDynamoDBClient(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		log.Info("using dynamodb storage",
			zap.String("region", cfg.DynamoDB.Region),
			zap.String("quotes_table", cfg.DynamoDB.QuotesTable),
		)
		return &stores{
			quotes:   repository.NewQuoteDynamoRepository(ddb, cfg.DynamoDB.QuotesTable),
			profiles: repository.NewProfileDynamoRepository(ddb, cfg.DynamoDB.ProfilesTable),
			accounts: repository.NewAccountDynamoRepository(ddb, cfg.DynamoDB.AccountsTable),
			close:    func() {},
		}, nil
	}

	db, err := database.NewDatabase(cfg.Storage.Driver, &cfg.Database)
	if err != nil {
		return nil, err
	}
	if cfg.Database.AutoMigrate {
		if err := sqlrepository.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	log.Info("using sql storage", zap.String("driver", cfg.Storage.Driver))

	return &stores{
		quotes:   sqlrepository.NewQuoteRepository(db),
		profiles: sqlrepository.NewProfileRepository(db),
		accounts: sqlrepository.NewAccountRepository(db),
		close: func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}, nil
}

// newGateways returns every provider that could be configured plus the one
// selling the subscription. Webhooks are accepted for all of them so a
// provider switch does not drop late notifications.
func newGateways(cfg *config.Config, log *zap.Logger) (interfaces.IPaymentGateway, []interfaces.IPaymentGateway) {
	var (
		checkout interfaces.IPaymentGateway
		all      []interfaces.IPaymentGateway
	)

	stripeGateway, err := payments.NewStripeGateway(cfg.Stripe, cfg.Billing, log)
	if err != nil {
		log.Warn("stripe gateway not configured", zap.Error(err))
	} else {
		all = append(all, stripeGateway)
		if cfg.Billing.Provider == "stripe" {
			checkout = stripeGateway
		}
	}

	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago, cfg.Billing, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		all = append(all, mpGateway)
		if cfg.Billing.Provider == "mercadopago" {
			checkout = mpGateway
		}
	}

	if checkout == nil {
		log.Warn("checkout disabled", zap.String("provider", cfg.Billing.Provider))
	}
	return checkout, all
}

// buildDependencies wires stores, infrastructure and use cases into handlers.
// The returned func releases the record store.
func buildDependencies(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *zap.Logger) (Dependencies, func(), error) {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return Dependencies{}, nil, err
	}

	checkoutGateway, gateways := newGateways(cfg, log)
	mailer := email.NewResendMailer(cfg.Email.ResendAPIKey, cfg.Email.From, log)
	renderer := pdf.NewProposalRenderer()
	passwords := security.NewPasswordGenerator()
	hasher := security.NewBcryptHasher(0)
	tokens := security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL(), cfg.Auth.ResetTTL())

	quoteUseCase := usecase.NewQuoteUseCase(st.quotes, st.profiles, renderer, log)
	profileUseCase := usecase.NewProfileUseCase(st.profiles, log)
	checkoutUseCase := usecase.NewCheckoutUseCase(checkoutGateway, log)
	provisioningUseCase := usecase.NewProvisioningUseCase(
		gateways, st.accounts, st.profiles, mailer, passwords, hasher, cfg.App.PublicURL, log,
	)
	authUseCase := usecase.NewAuthUseCase(st.accounts, hasher, tokens, mailer, cfg.App.PublicURL, log)

	return Dependencies{
		Auth:           authUseCase,
		QuoteHandler:   handlers.NewQuoteHandler(quoteUseCase, m, log),
		ProfileHandler: handlers.NewProfileHandler(profileUseCase, log),
		AuthHandler:    handlers.NewAuthHandler(authUseCase, log),
		BillingHandler: handlers.NewBillingHandler(checkoutUseCase, provisioningUseCase, m, log),
		Metrics:        m,
		Logger:         log,
	}, st.close, nil
}
