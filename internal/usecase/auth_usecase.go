package usecase

import (
	"context"
	"errors"
	"strings"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/domain/messages"
	"fiftymais/internal/logger"
	"fiftymais/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must have at least 8 characters")
)

const minPasswordLength = 8

type SignInResult struct {
	Token   string
	Session entities.Session
}

// IAuthUseCase issues stateless session tokens. Signing out is dropping the
// token on the client.
type IAuthUseCase interface {
	SignIn(ctx context.Context, email, password string) (SignInResult, error)
	GetSession(ctx context.Context, token string) (entities.Session, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AuthUseCase struct {
	accounts interfaces.IAccountRepository
	hasher   interfaces.IPasswordHasher
	tokens   interfaces.ITokenIssuer
	mailer   interfaces.IMailer
	appURL   string
	logger   *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	accounts interfaces.IAccountRepository,
	hasher interfaces.IPasswordHasher,
	tokens interfaces.ITokenIssuer,
	mailer interfaces.IMailer,
	appURL string,
	logger *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
		appURL:   appURL,
		logger:   logger.With(zap.String("component", "auth_usecase")),
	}
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (SignInResult, error) {
	email = entities.NormalizeEmail(email)
	if email == "" || password == "" {
		return SignInResult{}, ErrInvalidCredentials
	}
	a, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return SignInResult{}, err
	}
	if a.ID == "" {
		return SignInResult{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(a.PasswordHash, password); err != nil {
		u.logger.Info("sign in rejected", zap.String("email", logger.MaskEmail(email)))
		return SignInResult{}, ErrInvalidCredentials
	}

	token, session, err := u.tokens.IssueSession(a)
	if err != nil {
		return SignInResult{}, err
	}
	return SignInResult{Token: token, Session: session}, nil
}

func (u *AuthUseCase) GetSession(ctx context.Context, token string) (entities.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, ErrInvalidSession
	}
	s, err := u.tokens.ParseSession(token)
	if err != nil {
		if errors.Is(err, interfaces.ErrInvalidToken) {
			return entities.Session{}, ErrInvalidSession
		}
		return entities.Session{}, err
	}
	return s, nil
}

// RequestPasswordReset returns nil for unknown addresses.
func (u *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	email = entities.NormalizeEmail(email)
	if email == "" {
		return nil
	}
	a, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if a.ID == "" {
		u.logger.Info("password reset for unknown email", zap.String("email", logger.MaskEmail(email)))
		return nil
	}

	token, err := u.tokens.IssueReset(a)
	if err != nil {
		return err
	}
	msg, err := messages.PasswordReset(a.DisplayName, a.Email, token, u.appURL)
	if err != nil {
		return err
	}
	if err := u.mailer.Send(ctx, msg); err != nil {
		u.logger.Error("password reset email failed", zap.String("account_id", a.ID), zap.Error(err))
		return err
	}
	return nil
}

func (u *AuthUseCase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	accountID, err := u.tokens.ParseReset(strings.TrimSpace(token))
	if err != nil {
		if errors.Is(err, interfaces.ErrInvalidToken) {
			return ErrInvalidSession
		}
		return err
	}
	a, err := u.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if a.ID == "" {
		return ErrInvalidSession
	}

	hash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := u.accounts.UpdatePassword(ctx, a.ID, hash); err != nil {
		return err
	}
	u.logger.Info("password reset", zap.String("account_id", a.ID))
	return nil
}
