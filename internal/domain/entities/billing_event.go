package entities

import "net/http"

type PaymentProvider string

const (
	PaymentProviderStripe      PaymentProvider = "stripe"
	PaymentProviderMercadoPago PaymentProvider = "mercadopago"
)

type BillingEventKind string

const (
	BillingEventCheckoutCompleted   BillingEventKind = "checkout_completed"
	BillingEventSubscriptionDeleted BillingEventKind = "subscription_deleted"
	BillingEventPaymentFailed       BillingEventKind = "payment_failed"
	BillingEventIgnored             BillingEventKind = "ignored"
)

// BillingEvent is a verified provider notification reduced to what provisioning needs.
type BillingEvent struct {
	ID             string           `json:"id"`
	Provider       PaymentProvider  `json:"provider"`
	Kind           BillingEventKind `json:"kind"`
	RawType        string           `json:"raw_type"`
	Email          string           `json:"email"`
	Name           string           `json:"name"`
	CustomerID     string           `json:"customer_id"`
	SubscriptionID string           `json:"subscription_id"`
}

// WebhookDelivery is an unparsed webhook request. Payload must be the exact
// bytes received since signatures are computed over them.
type WebhookDelivery struct {
	Payload []byte
	Header  http.Header
	Query   map[string]string
}

// CheckoutRequest starts a hosted checkout. Both fields are optional.
type CheckoutRequest struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

// Email is an outgoing transactional message.
type Email struct {
	To      string
	Subject string
	HTML    string
}
