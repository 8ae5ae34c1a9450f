package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"fiftymais/internal/config"
	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

const stripeSignatureHeader = "Stripe-Signature"

type checkoutSessionCreator interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type StripeGateway struct {
	sessions      checkoutSessionCreator
	webhookSecret string
	priceID       string
	successURL    string
	cancelURL     string
	logger        *zap.Logger
}

var _ interfaces.IPaymentGateway = (*StripeGateway)(nil)

func NewStripeGateway(cfg config.StripeConfig, billing config.BillingConfig, logger *zap.Logger) (*StripeGateway, error) {
	logger = logger.With(zap.String("component", "stripe_gateway"))
	if cfg.SecretKey == "" {
		logger.Error("missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	sc := &client.API{}
	sc.Init(cfg.SecretKey, nil)
	logger.Info("stripe client initialized")

	return &StripeGateway{
		sessions:      sc.CheckoutSessions,
		webhookSecret: cfg.WebhookSecret,
		priceID:       cfg.PriceID,
		successURL:    billing.SuccessURL,
		cancelURL:     billing.CancelURL,
		logger:        logger,
	}, nil
}

func (g *StripeGateway) Provider() entities.PaymentProvider {
	return entities.PaymentProviderStripe
}

func (g *StripeGateway) CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(g.priceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
	}
	params.Context = ctx
	if req.Email != "" {
		params.CustomerEmail = stripe.String(req.Email)
	}
	if req.UserID != "" {
		params.AddMetadata("userId", req.UserID)
	}

	s, err := g.sessions.New(params)
	if err != nil {
		g.logger.Error("checkout session create failed", zap.Error(err))
		return "", err
	}
	g.logger.Info("checkout session created", zap.String("session_id", s.ID))
	return s.URL, nil
}

func (g *StripeGateway) ParseWebhook(_ context.Context, d entities.WebhookDelivery) (entities.BillingEvent, error) {
	event, err := webhook.ConstructEventWithOptions(
		d.Payload,
		d.Header.Get(stripeSignatureHeader),
		g.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		g.logger.Warn("webhook signature verification failed", zap.Error(err))
		return entities.BillingEvent{}, fmt.Errorf("%w: %v", interfaces.ErrInvalidSignature, err)
	}

	out := entities.BillingEvent{
		ID:       event.ID,
		Provider: entities.PaymentProviderStripe,
		Kind:     entities.BillingEventIgnored,
		RawType:  string(event.Type),
	}
	if event.Data == nil {
		return out, nil
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &s); err != nil {
			return entities.BillingEvent{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedEvent, err)
		}
		out.Kind = entities.BillingEventCheckoutCompleted
		out.Email = s.CustomerEmail
		if s.CustomerDetails != nil {
			if s.CustomerDetails.Email != "" {
				out.Email = s.CustomerDetails.Email
			}
			out.Name = s.CustomerDetails.Name
		}
		if s.Customer != nil {
			out.CustomerID = s.Customer.ID
		}
		if s.Subscription != nil {
			out.SubscriptionID = s.Subscription.ID
		}

	case stripe.EventTypeCustomerSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			return entities.BillingEvent{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedEvent, err)
		}
		out.Kind = entities.BillingEventSubscriptionDeleted
		out.SubscriptionID = sub.ID
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}

	case stripe.EventTypeInvoicePaymentFailed:
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			return entities.BillingEvent{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedEvent, err)
		}
		out.Kind = entities.BillingEventPaymentFailed
		out.Email = inv.CustomerEmail
		if inv.Customer != nil {
			out.CustomerID = inv.Customer.ID
		}
	}
	return out, nil
}
