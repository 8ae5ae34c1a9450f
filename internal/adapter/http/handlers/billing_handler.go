package handlers

import (
	"bytes"
	"errors"
	"net/http"

	request "fiftymais/internal/adapter/http/dto/request"
	response "fiftymais/internal/adapter/http/dto/response"
	"fiftymais/internal/adapter/http/middleware"
	"fiftymais/internal/domain/entities"
	"fiftymais/internal/metrics"
	"fiftymais/internal/usecase"
	"fiftymais/internal/usecase/interfaces"
	"fiftymais/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// BillingHandler starts hosted checkouts and receives provider webhooks.
type BillingHandler struct {
	checkout     usecase.ICheckoutUseCase
	provisioning usecase.IProvisioningUseCase
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewBillingHandler(
	checkout usecase.ICheckoutUseCase,
	provisioning usecase.IProvisioningUseCase,
	m *metrics.Metrics,
	logger *zap.Logger,
) *BillingHandler {
	return &BillingHandler{checkout: checkout, provisioning: provisioning, metrics: m, logger: logger}
}

// CreateCheckout godoc
// @Summary      Start a hosted checkout session
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        body  body      request.CheckoutRequest  false  "optional prefill"
// @Success      200   {object}  response.CheckoutResponse
// @Failure      405   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}
	var payload request.CheckoutRequest
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := binding.JSON.BindBody(raw, &payload); err != nil {
			writeBindError(c, err)
			return
		}
	}

	url, err := h.checkout.Start(c.Request.Context(), payload.ToEntity())
	if err != nil {
		middleware.Logger(c, h.logger).Error("checkout failed", zap.Error(err))
		writeError(c, pkg.NewDomainError("CHECKOUT_FAILED", "Could not start checkout", err, http.StatusInternalServerError))
		return
	}
	c.JSON(http.StatusOK, response.CheckoutResponse{URL: url})
}

// StripeWebhook godoc
// @Summary      Stripe webhook
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header    string  true  "signature"
// @Success      200               {object}  response.WebhookResponse
// @Failure      400               {object}  pkg.HTTPError
// @Router       /webhooks/stripe [post]
func (h *BillingHandler) StripeWebhook(c *gin.Context) {
	h.webhook(c, entities.PaymentProviderStripe)
}

// MercadoPagoWebhook godoc
// @Summary      Mercado Pago webhook
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        x-signature   header    string  true   "signature"
// @Param        x-request-id  header    string  false  "request id"
// @Success      200           {object}  response.WebhookResponse
// @Failure      400           {object}  pkg.HTTPError
// @Router       /webhooks/mercadopago [post]
func (h *BillingHandler) MercadoPagoWebhook(c *gin.Context) {
	h.webhook(c, entities.PaymentProviderMercadoPago)
}

// webhook hands the untouched body to the gateway; nothing may parse it first.
func (h *BillingHandler) webhook(c *gin.Context, provider entities.PaymentProvider) {
	log := middleware.Logger(c, h.logger).With(zap.String("provider", string(provider)))
	payload, err := c.GetRawData()
	if err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	query := make(map[string]string)
	for k, v := range c.Request.URL.Query() {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}

	res, err := h.provisioning.HandleWebhook(c.Request.Context(), provider, entities.WebhookDelivery{
		Payload: payload,
		Header:  c.Request.Header,
		Query:   query,
	})
	if err != nil {
		appErr := mapWebhookError(err)
		outcome := "rejected"
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			outcome = "failed"
			log.Error("webhook processing failed", zap.Error(err))
		} else {
			log.Warn("webhook rejected", zap.Error(err))
		}
		h.metrics.WebhookEvent(string(provider), "unknown", outcome)
		writeError(c, appErr)
		return
	}

	h.metrics.WebhookEvent(string(provider), string(res.Event.Kind), res.Outcome)
	if res.AccountCreated {
		h.metrics.AccountProvisioned()
	}
	c.JSON(http.StatusOK, response.WebhookResponse{Received: true})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrInvalidSignature):
		return pkg.NewDomainError("INVALID_SIGNATURE", "Webhook signature verification failed", err, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrMalformedEvent):
		return pkg.NewDomainError("MALFORMED_EVENT", "Webhook payload could not be read", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPayerEmail):
		return pkg.NewDomainErrorSimple("MISSING_PAYER_EMAIL", "Checkout event has no payer email", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownProvider):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
