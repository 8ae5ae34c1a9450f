package usecase

import (
	"context"
	"errors"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/logger"
	"fiftymais/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrCheckoutUnavailable = errors.New("checkout provider unavailable")

type ICheckoutUseCase interface {
	Start(ctx context.Context, req entities.CheckoutRequest) (string, error)
}

// CheckoutUseCase opens a hosted checkout with the configured provider.
type CheckoutUseCase struct {
	gateway interfaces.IPaymentGateway
	logger  *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(gateway interfaces.IPaymentGateway, logger *zap.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{gateway: gateway, logger: logger.With(zap.String("component", "checkout_usecase"))}
}

func (u *CheckoutUseCase) Start(ctx context.Context, req entities.CheckoutRequest) (string, error) {
	if u.gateway == nil {
		return "", ErrCheckoutUnavailable
	}
	req.Email = entities.NormalizeEmail(req.Email)

	url, err := u.gateway.CreateCheckout(ctx, req)
	if err != nil {
		u.logger.Error("create checkout failed",
			zap.String("provider", string(u.gateway.Provider())),
			zap.String("email", logger.MaskEmail(req.Email)),
			zap.Error(err),
		)
		return "", err
	}
	u.logger.Info("checkout created", zap.String("provider", string(u.gateway.Provider())))
	return url, nil
}
