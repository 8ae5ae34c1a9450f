package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"
	mock_interfaces "fiftymais/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type provisioningMocks struct {
	gateway   *mock_interfaces.MockIPaymentGateway
	accounts  *mock_interfaces.MockIAccountRepository
	profiles  *mock_interfaces.MockIProfileRepository
	mailer    *mock_interfaces.MockIMailer
	passwords *mock_interfaces.MockIPasswordGenerator
	hasher    *mock_interfaces.MockIPasswordHasher
}

func newProvisioningUseCase(t *testing.T) (*ProvisioningUseCase, provisioningMocks) {
	ctrl := gomock.NewController(t)
	m := provisioningMocks{
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
		accounts:  mock_interfaces.NewMockIAccountRepository(ctrl),
		profiles:  mock_interfaces.NewMockIProfileRepository(ctrl),
		mailer:    mock_interfaces.NewMockIMailer(ctrl),
		passwords: mock_interfaces.NewMockIPasswordGenerator(ctrl),
		hasher:    mock_interfaces.NewMockIPasswordHasher(ctrl),
	}
	m.gateway.EXPECT().Provider().Return(entities.PaymentProviderStripe).AnyTimes()
	uc := NewProvisioningUseCase(
		[]interfaces.IPaymentGateway{m.gateway},
		m.accounts, m.profiles, m.mailer, m.passwords, m.hasher,
		"https://app.fiftymais.com.br", zap.NewNop(),
	)
	uc.now = func() time.Time { return time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC) }
	return uc, m
}

var checkoutEvent = entities.BillingEvent{
	ID:             "evt_1",
	Provider:       entities.PaymentProviderStripe,
	Kind:           entities.BillingEventCheckoutCompleted,
	Email:          "Ana@Example.com",
	Name:           "Ana Souza",
	CustomerID:     "cus_1",
	SubscriptionID: "sub_1",
}

func TestProvisioningUseCase_HandleWebhook(t *testing.T) {
	t.Run("unknown provider", func(t *testing.T) {
		uc, _ := newProvisioningUseCase(t)
		_, err := uc.HandleWebhook(context.Background(), entities.PaymentProviderMercadoPago, entities.WebhookDelivery{})
		if !errors.Is(err, ErrUnknownProvider) {
			t.Fatalf("expected ErrUnknownProvider, got %v", err)
		}
	})

	t.Run("bad signature has no side effects", func(t *testing.T) {
		uc, m := newProvisioningUseCase(t)
		m.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(entities.BillingEvent{}, interfaces.ErrInvalidSignature)

		_, err := uc.HandleWebhook(context.Background(), entities.PaymentProviderStripe, entities.WebhookDelivery{Payload: []byte("{}")})
		if !errors.Is(err, interfaces.ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("ignored event", func(t *testing.T) {
		uc, m := newProvisioningUseCase(t)
		m.gateway.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(entities.BillingEvent{Kind: entities.BillingEventIgnored, RawType: "customer.created"}, nil)

		res, err := uc.HandleWebhook(context.Background(), entities.PaymentProviderStripe, entities.WebhookDelivery{})
		if err != nil || res.Outcome != OutcomeIgnored {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestProvisioningUseCase_CheckoutCompleted(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		uc, _ := newProvisioningUseCase(t)
		ev := checkoutEvent
		ev.Email = " "
		if _, err := uc.HandleEvent(context.Background(), ev); !errors.Is(err, ErrMissingPayerEmail) {
			t.Fatalf("expected ErrMissingPayerEmail, got %v", err)
		}
	})

	t.Run("new account is created and welcomed", func(t *testing.T) {
		uc, m := newProvisioningUseCase(t)
		m.accounts.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Account{}, nil)
		m.passwords.EXPECT().Generate().Return("Abc234defg", nil)
		m.hasher.EXPECT().Hash("Abc234defg").Return("hash", nil)
		m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) {
				if a.ID == "" || a.Email != "ana@example.com" || a.PasswordHash != "hash" || !a.EmailVerified || a.DisplayName != "Ana Souza" {
					t.Fatalf("unexpected account: %+v", a)
				}
				return a, nil
			},
		)
		m.profiles.EXPECT().UpsertSubscription(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, s entities.Subscription) error {
				if id == "" || !s.Active || s.Status != entities.SubscriptionStatusActive || s.CustomerID != "cus_1" || s.SubscriptionID != "sub_1" {
					t.Fatalf("unexpected subscription for %s: %+v", id, s)
				}
				return nil
			},
		)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg entities.Email) error {
				if msg.To != "ana@example.com" || !strings.Contains(msg.HTML, "Abc234defg") {
					t.Fatalf("unexpected email: %+v", msg)
				}
				return nil
			},
		)

		res, err := uc.HandleEvent(context.Background(), checkoutEvent)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Outcome != OutcomeProvisioned || !res.AccountCreated {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("existing account only refreshes subscription", func(t *testing.T) {
		uc, m := newProvisioningUseCase(t)
		m.accounts.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Account{ID: "acc-1", Email: "ana@example.com"}, nil)
		m.profiles.EXPECT().UpsertSubscription(gomock.Any(), "acc-1", gomock.Any()).Return(nil)

		res, err := uc.HandleEvent(context.Background(), checkoutEvent)
		if err != nil || res.AccountCreated {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("lost creation race re-reads the winner", func(t *testing.T) {
		uc, m := newProvisioningUseCase(t)
		gomock.InOrder(
			m.accounts.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Account{}, nil),
			m.accounts.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Account{ID: "acc-1"}, nil),
		)
		m.passwords.EXPECT().Generate().Return("Abc234defg", nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
		m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Account{}, interfaces.ErrAccountAlreadyExists)
		m.profiles.EXPECT().UpsertSubscription(gomock.Any(), "acc-1", gomock.Any()).Return(nil)

		res, err := uc.HandleEvent(context.Background(), checkoutEvent)
		if err != nil || res.AccountCreated {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("creation failure", func(t *testing.T) {
		uc, m := newProvisioningUseCase(t)
		m.accounts.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.Account{}, nil)
		m.passwords.EXPECT().Generate().Return("Abc234defg", nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
		m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Account{}, errors.New("db"))

		if _, err := uc.HandleEvent(context.Background(), checkoutEvent); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("email failure does not fail provisioning", func(t *testing.T) {
		uc, m := newProvisioningUseCase(t)
		m.accounts.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(entities.Account{}, nil)
		m.passwords.EXPECT().Generate().Return("Abc234defg", nil)
		m.hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
		m.accounts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a entities.Account) (entities.Account, error) { return a, nil },
		)
		m.profiles.EXPECT().UpsertSubscription(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("resend down"))

		res, err := uc.HandleEvent(context.Background(), checkoutEvent)
		if err != nil || !res.AccountCreated {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestProvisioningUseCase_Deactivation(t *testing.T) {
	for _, kind := range []entities.BillingEventKind{entities.BillingEventSubscriptionDeleted, entities.BillingEventPaymentFailed} {
		t.Run(string(kind), func(t *testing.T) {
			uc, m := newProvisioningUseCase(t)
			m.profiles.EXPECT().DeactivateByCustomerID(gomock.Any(), "cus_1").Return(1, nil)

			res, err := uc.HandleEvent(context.Background(), entities.BillingEvent{Kind: kind, CustomerID: "cus_1"})
			if err != nil || res.Outcome != OutcomeDeactivated || res.Deactivated != 1 {
				t.Fatalf("unexpected result: %+v %v", res, err)
			}
		})
	}

	t.Run("repo error", func(t *testing.T) {
		uc, m := newProvisioningUseCase(t)
		m.profiles.EXPECT().DeactivateByCustomerID(gomock.Any(), "").Return(0, errors.New("db"))

		if _, err := uc.HandleEvent(context.Background(), entities.BillingEvent{Kind: entities.BillingEventPaymentFailed}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
