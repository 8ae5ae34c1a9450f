package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fiftymais/internal/config"
	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const (
	mercadoPagoSignatureHeader = "x-signature"
	mercadoPagoRequestIDHeader = "x-request-id"
	mercadoPagoMockCheckoutURL = "https://www.mercadopago.com.br/checkout/v1/redirect?pref_id="
)

type paymentFetcher interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

// MercadoPagoGateway sells the subscription through a Checkout Pro preference
// and learns about payments from signed notifications. In mock mode the SDK is
// never called: checkouts get a fake redirect and notified payments are
// treated as approved.
type MercadoPagoGateway struct {
	payments        paymentFetcher
	preferences     preferenceCreator
	webhookSecret   string
	notificationURL string
	billing         config.BillingConfig
	mockMode        bool
	logger          *zap.Logger
	now             func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig, billing config.BillingConfig, logger *zap.Logger) (*MercadoPagoGateway, error) {
	g := &MercadoPagoGateway{
		webhookSecret:   cfg.WebhookSecret,
		notificationURL: cfg.NotificationURL,
		billing:         billing,
		logger:          logger.With(zap.String("component", "mercadopago_gateway")),
		now:             time.Now,
	}
	if cfg.Mock {
		g.mockMode = true
		g.logger.Info("mock mode enabled")
		return g, nil
	}
	if cfg.AccessToken == "" {
		g.logger.Error("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := mpconfig.New(cfg.AccessToken)
	if err != nil {
		g.logger.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	g.payments = payment.NewClient(sdkCfg)
	g.preferences = preference.NewClient(sdkCfg)
	g.logger.Info("mercado pago client initialized")
	return g, nil
}

func (g *MercadoPagoGateway) Provider() entities.PaymentProvider {
	return entities.PaymentProviderMercadoPago
}

func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req entities.CheckoutRequest) (string, error) {
	if g.mockMode {
		id := strconv.FormatInt(g.now().UTC().UnixNano(), 10)
		g.logger.Info("mock checkout created", zap.String("preference_id", id))
		return mercadoPagoMockCheckoutURL + id, nil
	}

	request := preference.Request{
		Items: []preference.ItemRequest{{
			Title:      g.billing.ProductTitle,
			Quantity:   1,
			UnitPrice:  g.billing.PriceAmount,
			CurrencyID: g.billing.Currency,
		}},
		BackURLs: &preference.BackURLsRequest{
			Success: g.billing.SuccessURL,
			Failure: g.billing.CancelURL,
			Pending: g.billing.CancelURL,
		},
		AutoReturn:        "approved",
		ExternalReference: req.UserID,
		NotificationURL:   g.notificationURL,
	}
	if req.Email != "" {
		request.Payer = &preference.PayerRequest{Email: req.Email}
	}

	resp, err := g.preferences.Create(ctx, request)
	if err != nil {
		g.logger.Error("preference create failed", zap.Error(err))
		return "", err
	}
	g.logger.Info("preference created", zap.String("preference_id", resp.ID))
	return resp.InitPoint, nil
}

type mercadoPagoNotification struct {
	ID     json.RawMessage `json:"id"`
	Type   string          `json:"type"`
	Action string          `json:"action"`
	Data   struct {
		ID         string `json:"id"`
		PayerEmail string `json:"payer_email"`
	} `json:"data"`
}

func (g *MercadoPagoGateway) ParseWebhook(ctx context.Context, d entities.WebhookDelivery) (entities.BillingEvent, error) {
	var n mercadoPagoNotification
	var bodyErr error
	if len(d.Payload) > 0 {
		bodyErr = json.Unmarshal(d.Payload, &n)
	}
	dataID := d.Query["data.id"]
	if dataID == "" {
		dataID = n.Data.ID
	}
	eventType := d.Query["type"]
	if eventType == "" {
		eventType = n.Type
	}

	if err := g.verify(d, dataID); err != nil {
		g.logger.Warn("webhook signature verification failed", zap.Error(err))
		return entities.BillingEvent{}, err
	}
	if bodyErr != nil && d.Query["data.id"] == "" {
		return entities.BillingEvent{}, fmt.Errorf("%w: %v", interfaces.ErrMalformedEvent, bodyErr)
	}

	out := entities.BillingEvent{
		ID:       strings.Trim(string(n.ID), `"`),
		Provider: entities.PaymentProviderMercadoPago,
		Kind:     entities.BillingEventIgnored,
		RawType:  eventType,
	}
	if eventType != "payment" {
		return out, nil
	}

	paymentID, err := strconv.Atoi(dataID)
	if err != nil {
		return entities.BillingEvent{}, fmt.Errorf("%w: payment id %q", interfaces.ErrMalformedEvent, dataID)
	}
	p, err := g.fetchPayment(ctx, paymentID, n.Data.PayerEmail)
	if err != nil {
		return entities.BillingEvent{}, err
	}

	out.RawType = eventType + "." + p.Status
	out.Email = p.Payer.Email
	out.Name = p.Payer.FirstName
	out.CustomerID = p.Payer.ID
	out.SubscriptionID = strconv.Itoa(p.ID)
	switch p.Status {
	case "approved":
		out.Kind = entities.BillingEventCheckoutCompleted
	case "rejected", "cancelled":
		out.Kind = entities.BillingEventPaymentFailed
	}
	g.logger.Info("payment notification resolved",
		zap.Int("payment_id", p.ID),
		zap.String("status", p.Status),
		zap.String("kind", string(out.Kind)),
	)
	return out, nil
}

func (g *MercadoPagoGateway) fetchPayment(ctx context.Context, id int, mockEmail string) (*payment.Response, error) {
	if g.mockMode {
		resp := &payment.Response{ID: id, Status: "approved"}
		resp.Payer.Email = mockEmail
		return resp, nil
	}
	p, err := g.payments.Get(ctx, id)
	if err != nil {
		g.logger.Error("payment lookup failed", zap.Int("payment_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// verify checks x-signature ("ts=<unix>,v1=<hex>") against an HMAC-SHA256 of
// the manifest "id:<data.id>;request-id:<x-request-id>;ts:<ts>;". Mock mode
// without a secret accepts everything.
func (g *MercadoPagoGateway) verify(d entities.WebhookDelivery, dataID string) error {
	if g.webhookSecret == "" {
		if g.mockMode {
			return nil
		}
		return fmt.Errorf("%w: webhook secret not configured", interfaces.ErrInvalidSignature)
	}

	var ts, v1 string
	for _, part := range strings.Split(d.Header.Get(mercadoPagoSignatureHeader), ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "ts":
			ts = v
		case "v1":
			v1 = v
		}
	}
	if ts == "" || v1 == "" {
		return fmt.Errorf("%w: missing ts or v1", interfaces.ErrInvalidSignature)
	}

	got, err := hex.DecodeString(v1)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrInvalidSignature, err)
	}
	manifest := MercadoPagoManifest(dataID, d.Header.Get(mercadoPagoRequestIDHeader), ts)
	mac := hmac.New(sha256.New, []byte(g.webhookSecret))
	mac.Write([]byte(manifest))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return fmt.Errorf("%w: digest mismatch", interfaces.ErrInvalidSignature)
	}
	return nil
}

// MercadoPagoManifest is the string Mercado Pago signs. Alphanumeric ids are
// lower-cased by the provider before signing.
func MercadoPagoManifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	if ts != "" {
		b.WriteString("ts:" + ts + ";")
	}
	return b.String()
}
