package interfaces

import (
	"context"
	"errors"

	"fiftymais/internal/domain/entities"
)

var (
	// ErrInvalidSignature means the delivery could not be authenticated.
	ErrInvalidSignature = errors.New("invalid webhook signature")
	// ErrMalformedEvent means the signature held but the payload could not be read.
	ErrMalformedEvent = errors.New("malformed webhook event")
)

// IPaymentGateway abstracts a hosted checkout provider (Stripe, Mercado Pago).
//
// ParseWebhook must verify the delivery against the raw payload before
// decoding anything.
type IPaymentGateway interface {
	Provider() entities.PaymentProvider
	CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (string, error)
	ParseWebhook(ctx context.Context, delivery entities.WebhookDelivery) (entities.BillingEvent, error)
}
