package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	_ "fiftymais/docs"
	"fiftymais/internal/adapter/http/handlers"
	"fiftymais/internal/adapter/http/middleware"
	"fiftymais/internal/config"
	"fiftymais/internal/logger"
	"fiftymais/internal/metrics"
	"fiftymais/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Dependencies is everything the router needs, already built.
type Dependencies struct {
	Auth           usecase.IAuthUseCase
	QuoteHandler   *handlers.QuoteHandler
	ProfileHandler *handlers.ProfileHandler
	AuthHandler    *handlers.AuthHandler
	BillingHandler *handlers.BillingHandler
	Metrics        *metrics.Metrics
	Logger         *zap.Logger
}

// Run loads the configuration, wires the application and serves until
// SIGINT or SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	m := metrics.New(cfg.App.Name, prometheus.NewRegistry())

	deps, closeStores, err := buildDependencies(ctx, cfg, m, log)
	if err != nil {
		log.Error("failed to wire application", zap.Error(err))
		return err
	}
	defer closeStores()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      NewRouter(deps, cfg.Server),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.Int("port", cfg.App.Port),
			zap.String("storage", cfg.Storage.Driver),
			zap.String("billing_provider", cfg.Billing.Provider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok {
			log.Error("server failed", zap.Error(err))
			return err
		}
		return nil
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}

// NewRouter builds the gin engine with every public and authenticated route.
func NewRouter(deps Dependencies, server config.ServerConfig) *gin.Engine {
	registerValidation()

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		middleware.RequestLogger(deps.Logger),
		middleware.Recovery(deps.Logger),
		deps.Metrics.Middleware(),
	)
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"code": "METHOD_NOT_ALLOWED", "error": "Method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "error": "Route not found"})
	})

	if server.EnableMetrics {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	if server.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBillingRoutes(v1, deps.BillingHandler)

	authed := v1.Group("")
	authed.Use(middleware.RequireSession(deps.Auth, deps.Logger))

	addAuthRoutes(v1, authed, deps.AuthHandler)
	addProfileRoutes(authed, deps.ProfileHandler)
	addQuoteRoutes(authed, deps.QuoteHandler)

	return router
}

// registerValidation makes binding errors report the JSON field names clients send.
func registerValidation() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}
