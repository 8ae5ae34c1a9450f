package usecase

import (
	"errors"

	"fiftymais/internal/domain/entities"
)

// ErrInvalidSession is returned by every account-scoped operation called
// without an authenticated session.
var ErrInvalidSession = errors.New("invalid session")

func requireSession(s entities.Session) error {
	if !s.Valid() {
		return ErrInvalidSession
	}
	return nil
}
