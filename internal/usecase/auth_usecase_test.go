package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"
	mock_interfaces "fiftymais/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type authMocks struct {
	accounts *mock_interfaces.MockIAccountRepository
	hasher   *mock_interfaces.MockIPasswordHasher
	tokens   *mock_interfaces.MockITokenIssuer
	mailer   *mock_interfaces.MockIMailer
}

func newAuthUseCase(t *testing.T) (*AuthUseCase, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		accounts: mock_interfaces.NewMockIAccountRepository(ctrl),
		hasher:   mock_interfaces.NewMockIPasswordHasher(ctrl),
		tokens:   mock_interfaces.NewMockITokenIssuer(ctrl),
		mailer:   mock_interfaces.NewMockIMailer(ctrl),
	}
	return NewAuthUseCase(m.accounts, m.hasher, m.tokens, m.mailer, "https://app.fiftymais.com.br", zap.NewNop()), m
}

func TestAuthUseCase_SignIn(t *testing.T) {
	account := entities.Account{ID: "acc-1", Email: "ana@example.com", PasswordHash: "hash"}

	t.Run("unknown email", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.accounts.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.Account{}, nil)

		if _, err := uc.SignIn(context.Background(), "ANA@example.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.accounts.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(account, nil)
		m.hasher.EXPECT().Compare("hash", "wrong").Return(errors.New("mismatch"))

		if _, err := uc.SignIn(context.Background(), "ana@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.accounts.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(account, nil)
		m.hasher.EXPECT().Compare("hash", "secret").Return(nil)
		m.tokens.EXPECT().IssueSession(account).Return("tok", entities.Session{UserID: "acc-1", Email: "ana@example.com"}, nil)

		res, err := uc.SignIn(context.Background(), "ana@example.com", "secret")
		if err != nil || res.Token != "tok" || res.Session.UserID != "acc-1" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestAuthUseCase_GetSession(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)
		if _, err := uc.GetSession(context.Background(), " "); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.tokens.EXPECT().ParseSession("bad").Return(entities.Session{}, interfaces.ErrInvalidToken)

		if _, err := uc.GetSession(context.Background(), "bad"); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.tokens.EXPECT().ParseSession("tok").Return(entities.Session{UserID: "acc-1"}, nil)

		s, err := uc.GetSession(context.Background(), "tok")
		if err != nil || s.UserID != "acc-1" {
			t.Fatalf("unexpected result: %+v %v", s, err)
		}
	})
}

func TestAuthUseCase_RequestPasswordReset(t *testing.T) {
	t.Run("unknown email is silent", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.accounts.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(entities.Account{}, nil)

		if err := uc.RequestPasswordReset(context.Background(), "ghost@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("sends reset link", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		a := entities.Account{ID: "acc-1", Email: "ana@example.com", DisplayName: "Ana"}
		m.accounts.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(a, nil)
		m.tokens.EXPECT().IssueReset(a).Return("reset-tok", nil)
		m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg entities.Email) error {
				if msg.To != "ana@example.com" || !strings.Contains(msg.HTML, "reset-tok") {
					t.Fatalf("unexpected email: %+v", msg)
				}
				return nil
			},
		)

		if err := uc.RequestPasswordReset(context.Background(), "ana@example.com"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_ResetPassword(t *testing.T) {
	t.Run("weak password", func(t *testing.T) {
		uc, _ := newAuthUseCase(t)
		if err := uc.ResetPassword(context.Background(), "tok", "123"); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword, got %v", err)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.tokens.EXPECT().ParseReset("tok").Return("", interfaces.ErrInvalidToken)

		if err := uc.ResetPassword(context.Background(), "tok", "novasenha123"); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("expected ErrInvalidSession, got %v", err)
		}
	})

	t.Run("updates hash", func(t *testing.T) {
		uc, m := newAuthUseCase(t)
		m.tokens.EXPECT().ParseReset("tok").Return("acc-1", nil)
		m.accounts.EXPECT().GetByID(gomock.Any(), "acc-1").Return(entities.Account{ID: "acc-1"}, nil)
		m.hasher.EXPECT().Hash("novasenha123").Return("new-hash", nil)
		m.accounts.EXPECT().UpdatePassword(gomock.Any(), "acc-1", "new-hash").Return(nil)

		if err := uc.ResetPassword(context.Background(), "tok", "novasenha123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
