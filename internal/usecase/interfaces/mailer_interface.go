package interfaces

import (
	"context"

	"fiftymais/internal/domain/entities"
)

type IMailer interface {
	Send(ctx context.Context, msg entities.Email) error
}
