package interfaces

import (
	"errors"

	"fiftymais/internal/domain/entities"
)

var ErrInvalidToken = errors.New("invalid token")

type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type IPasswordGenerator interface {
	Generate() (string, error)
}

// ITokenIssuer signs session and password-reset tokens.
type ITokenIssuer interface {
	IssueSession(a entities.Account) (string, entities.Session, error)
	ParseSession(token string) (entities.Session, error)
	IssueReset(a entities.Account) (string, error)
	ParseReset(token string) (string, error)
}
