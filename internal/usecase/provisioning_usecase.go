package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/domain/messages"
	"fiftymais/internal/logger"
	"fiftymais/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUnknownProvider   = errors.New("unknown payment provider")
	ErrMissingPayerEmail = errors.New("payer email missing from checkout event")
)

// Outcomes reported for each acknowledged webhook.
const (
	OutcomeProvisioned = "provisioned"
	OutcomeDeactivated = "deactivated"
	OutcomeIgnored     = "ignored"
)

type ProvisioningResult struct {
	Event          entities.BillingEvent
	Outcome        string
	AccountCreated bool
	Deactivated    int
}

// IProvisioningUseCase turns verified payment notifications into accounts
// and subscription state.
//
// Nothing is written unless the gateway authenticated the delivery. A
// redelivered checkout event finds the existing account and only refreshes
// the subscription record.
type IProvisioningUseCase interface {
	HandleWebhook(ctx context.Context, provider entities.PaymentProvider, delivery entities.WebhookDelivery) (ProvisioningResult, error)
	HandleEvent(ctx context.Context, event entities.BillingEvent) (ProvisioningResult, error)
}

type ProvisioningUseCase struct {
	gateways  map[entities.PaymentProvider]interfaces.IPaymentGateway
	accounts  interfaces.IAccountRepository
	profiles  interfaces.IProfileRepository
	mailer    interfaces.IMailer
	passwords interfaces.IPasswordGenerator
	hasher    interfaces.IPasswordHasher
	appURL    string
	logger    *zap.Logger
	now       func() time.Time
}

var _ IProvisioningUseCase = (*ProvisioningUseCase)(nil)

func NewProvisioningUseCase(
	gateways []interfaces.IPaymentGateway,
	accounts interfaces.IAccountRepository,
	profiles interfaces.IProfileRepository,
	mailer interfaces.IMailer,
	passwords interfaces.IPasswordGenerator,
	hasher interfaces.IPasswordHasher,
	appURL string,
	logger *zap.Logger,
) *ProvisioningUseCase {
	byProvider := make(map[entities.PaymentProvider]interfaces.IPaymentGateway, len(gateways))
	for _, g := range gateways {
		if g != nil {
			byProvider[g.Provider()] = g
		}
	}
	return &ProvisioningUseCase{
		gateways:  byProvider,
		accounts:  accounts,
		profiles:  profiles,
		mailer:    mailer,
		passwords: passwords,
		hasher:    hasher,
		appURL:    appURL,
		logger:    logger.With(zap.String("component", "provisioning_usecase")),
		now:       time.Now,
	}
}

func (u *ProvisioningUseCase) HandleWebhook(ctx context.Context, provider entities.PaymentProvider, delivery entities.WebhookDelivery) (ProvisioningResult, error) {
	g, ok := u.gateways[provider]
	if !ok {
		return ProvisioningResult{}, fmt.Errorf("%w: %s", ErrUnknownProvider, provider)
	}
	event, err := g.ParseWebhook(ctx, delivery)
	if err != nil {
		u.logger.Warn("webhook rejected", zap.String("provider", string(provider)), zap.Error(err))
		return ProvisioningResult{}, err
	}
	return u.HandleEvent(ctx, event)
}

func (u *ProvisioningUseCase) HandleEvent(ctx context.Context, event entities.BillingEvent) (ProvisioningResult, error) {
	log := u.logger.With(
		zap.String("provider", string(event.Provider)),
		zap.String("event_id", event.ID),
		zap.String("event_type", event.RawType),
	)

	switch event.Kind {
	case entities.BillingEventCheckoutCompleted:
		return u.provision(ctx, event, log)
	case entities.BillingEventSubscriptionDeleted, entities.BillingEventPaymentFailed:
		n, err := u.profiles.DeactivateByCustomerID(ctx, event.CustomerID)
		if err != nil {
			log.Error("deactivate subscription failed", zap.String("customer_id", event.CustomerID), zap.Error(err))
			return ProvisioningResult{}, err
		}
		log.Info("subscription deactivated", zap.String("customer_id", event.CustomerID), zap.Int("profiles", n))
		return ProvisioningResult{Event: event, Outcome: OutcomeDeactivated, Deactivated: n}, nil
	default:
		log.Debug("webhook event ignored")
		return ProvisioningResult{Event: event, Outcome: OutcomeIgnored}, nil
	}
}

func (u *ProvisioningUseCase) provision(ctx context.Context, event entities.BillingEvent, log *zap.Logger) (ProvisioningResult, error) {
	email := entities.NormalizeEmail(event.Email)
	if email == "" {
		log.Warn("checkout event without payer email")
		return ProvisioningResult{}, ErrMissingPayerEmail
	}
	log = log.With(zap.String("email", logger.MaskEmail(email)))

	account, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		log.Error("account lookup failed", zap.Error(err))
		return ProvisioningResult{}, err
	}

	var password string
	created := false
	if account.ID == "" {
		account, password, created, err = u.createAccount(ctx, email, event.Name)
		if err != nil {
			log.Error("account creation failed", zap.Error(err))
			return ProvisioningResult{}, err
		}
	}

	sub := entities.Subscription{
		Active:         true,
		CustomerID:     event.CustomerID,
		SubscriptionID: event.SubscriptionID,
		Status:         entities.SubscriptionStatusActive,
		UpdatedAt:      u.now().UTC(),
	}
	if err := u.profiles.UpsertSubscription(ctx, account.ID, sub); err != nil {
		log.Error("subscription upsert failed", zap.String("account_id", account.ID), zap.Error(err))
		return ProvisioningResult{}, err
	}

	if created {
		u.sendWelcome(ctx, account, password, log)
	}
	log.Info("checkout provisioned", zap.String("account_id", account.ID), zap.Bool("account_created", created))
	return ProvisioningResult{Event: event, Outcome: OutcomeProvisioned, AccountCreated: created}, nil
}

// createAccount reports created=false when a concurrent delivery won the
// race for the same email; the winner's account is returned instead.
func (u *ProvisioningUseCase) createAccount(ctx context.Context, email, name string) (entities.Account, string, bool, error) {
	password, err := u.passwords.Generate()
	if err != nil {
		return entities.Account{}, "", false, err
	}
	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.Account{}, "", false, err
	}

	now := u.now().UTC()
	account, err := u.accounts.Create(ctx, entities.Account{
		ID:            uuid.NewString(),
		Email:         email,
		PasswordHash:  hash,
		DisplayName:   name,
		EmailVerified: true,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if errors.Is(err, interfaces.ErrAccountAlreadyExists) {
		existing, getErr := u.accounts.GetByEmail(ctx, email)
		if getErr != nil {
			return entities.Account{}, "", false, getErr
		}
		if existing.ID == "" {
			return entities.Account{}, "", false, err
		}
		return existing, "", false, nil
	}
	if err != nil {
		return entities.Account{}, "", false, err
	}
	return account, password, true, nil
}

func (u *ProvisioningUseCase) sendWelcome(ctx context.Context, account entities.Account, password string, log *zap.Logger) {
	msg, err := messages.Welcome(account.DisplayName, account.Email, password, u.appURL)
	if err == nil {
		err = u.mailer.Send(ctx, msg)
	}
	if err != nil {
		log.Error("welcome email failed", zap.String("account_id", account.ID), zap.Error(err))
	}
}
