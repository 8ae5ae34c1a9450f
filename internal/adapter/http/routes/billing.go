package routes

import (
	"fiftymais/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout = "/checkout"
	PathWebhooks = "/webhooks"
)

// addBillingRoutes registers the public checkout and the provider callbacks.
// None of them require a session.
func addBillingRoutes(rg *gin.RouterGroup, billingHandler *handlers.BillingHandler) {
	rg.POST(PathCheckout, billingHandler.CreateCheckout)

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/stripe", billingHandler.StripeWebhook)
		webhooks.POST("/mercadopago", billingHandler.MercadoPagoWebhook)
	}
}
