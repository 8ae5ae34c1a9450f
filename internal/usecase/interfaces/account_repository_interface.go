package interfaces

import (
	"context"
	"errors"

	"fiftymais/internal/domain/entities"
)

// ErrAccountAlreadyExists is returned by Create when the email is taken.
var ErrAccountAlreadyExists = errors.New("account already exists")

type IAccountRepository interface {
	Create(ctx context.Context, a entities.Account) (entities.Account, error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
	GetByID(ctx context.Context, id string) (entities.Account, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
