package routes

import (
	"fiftymais/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes  = "/quotes"
	PathProfile = "/profile"
	PathAuth    = "/auth"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/draft", quoteHandler.GetDraft)
		quotes.POST("/pricing", quoteHandler.PreviewPricing)
		quotes.POST("/environments", quoteHandler.ApplyEnvironmentOp)
		quotes.POST("/pix-key", quoteHandler.FormatPixKey)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.PATCH("/:id/status", quoteHandler.UpdateQuoteStatus)
		quotes.GET("/:id/pdf", quoteHandler.ExportQuotePDF)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.ProfileHandler) {
	rg.GET(PathProfile, profileHandler.GetProfile)
	rg.PUT(PathProfile, profileHandler.SaveProfile)
}

// addAuthRoutes registers the anonymous auth endpoints on public and the
// session lookup on authed.
func addAuthRoutes(public, authed *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := public.Group(PathAuth)
	{
		auth.POST("/sign-in", authHandler.SignIn)
		auth.POST("/password-reset", authHandler.RequestPasswordReset)
		auth.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
	}
	authed.GET(PathAuth+"/session", authHandler.GetSession)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
