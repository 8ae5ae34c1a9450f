package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fiftymais/internal/domain/entities"
	mock_interfaces "fiftymais/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var testSession = entities.Session{UserID: "user-1", Email: "ana@example.com"}

type quoteMocks struct {
	repo     *mock_interfaces.MockIQuoteRepository
	profiles *mock_interfaces.MockIProfileRepository
	renderer *mock_interfaces.MockIProposalRenderer
}

func newQuoteUseCase(t *testing.T) (*QuoteUseCase, quoteMocks) {
	ctrl := gomock.NewController(t)
	m := quoteMocks{
		repo:     mock_interfaces.NewMockIQuoteRepository(ctrl),
		profiles: mock_interfaces.NewMockIProfileRepository(ctrl),
		renderer: mock_interfaces.NewMockIProposalRenderer(ctrl),
	}
	uc := NewQuoteUseCase(m.repo, m.profiles, m.renderer, zap.NewNop())
	uc.now = func() time.Time { return time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC) }
	return uc, m
}

func TestQuoteUseCase_RequiresSession(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil, zap.NewNop())
	ctx := context.Background()

	if _, err := uc.List(ctx, entities.Session{}, QuoteListFilter{}); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if _, err := uc.Get(ctx, entities.Session{}, "q1"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if _, err := uc.SaveAndSend(ctx, entities.Session{UserID: "  "}, entities.Quote{}); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
	if err := uc.Delete(ctx, entities.Session{}, "q1"); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}

func TestQuoteUseCase_List(t *testing.T) {
	stored := []entities.Quote{
		{ID: "q3", Number: 2, ClientName: "Carla", FurnitureType: "Closet", Status: entities.QuoteStatusSent},
		{ID: "q2", Number: 2, ClientName: "Bruno", FurnitureType: "Cozinha Planejada", Status: "ativa"},
		{ID: "q1", Number: 1, ClientName: "Ana", FurnitureType: "Banheiro", Status: "fechada"},
	}

	t.Run("flags shared numbers and keeps order", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().ListByUser(gomock.Any(), "user-1").Return(stored, nil)

		res, err := uc.List(context.Background(), testSession, QuoteListFilter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 3 || res[0].ID != "q3" || res[2].ID != "q1" {
			t.Fatalf("unexpected list: %+v", res)
		}
		if !res[0].DuplicateNumber || !res[1].DuplicateNumber || res[2].DuplicateNumber {
			t.Fatalf("unexpected duplicate flags: %v %v %v", res[0].DuplicateNumber, res[1].DuplicateNumber, res[2].DuplicateNumber)
		}
	})

	t.Run("status filter uses normalized labels", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().ListByUser(gomock.Any(), "user-1").Return(stored, nil)

		res, err := uc.List(context.Background(), testSession, QuoteListFilter{Status: "sent"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 || res[0].ID != "q3" || res[1].ID != "q1" {
			t.Fatalf("unexpected list: %+v", res)
		}
	})

	t.Run("search matches client or furniture type", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().ListByUser(gomock.Any(), "user-1").Return(stored, nil)

		res, err := uc.List(context.Background(), testSession, QuoteListFilter{Status: "nao_enviada", Search: "COZINHA"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "q2" {
			t.Fatalf("unexpected list: %+v", res)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().ListByUser(gomock.Any(), "user-1").Return(nil, errors.New("db"))

		if _, err := uc.List(context.Background(), testSession, QuoteListFilter{}); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "user-1", "q1").Return(entities.Quote{}, nil)

		if _, err := uc.Get(context.Background(), testSession, " q1 "); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "user-1", "q1").Return(entities.Quote{ID: "q1"}, nil)

		q, err := uc.Get(context.Background(), testSession, "q1")
		if err != nil || q.ID != "q1" {
			t.Fatalf("unexpected result: %+v %v", q, err)
		}
	})
}

func TestQuoteUseCase_Draft(t *testing.T) {
	t.Run("takes validity from profile", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.profiles.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Profile{ID: "user-1", Validity: "15"}, nil)

		d, err := uc.Draft(context.Background(), testSession)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.UserID != "user-1" || d.Validity != "15" || d.Status != entities.QuoteStatusNotSent {
			t.Fatalf("unexpected draft: %+v", d)
		}
		if len(d.Environments) != 1 || d.Costs.MarginPercent != 30 {
			t.Fatalf("unexpected draft defaults: %+v", d)
		}
	})

	t.Run("profile error still returns draft", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.profiles.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Profile{}, errors.New("db"))

		d, err := uc.Draft(context.Background(), testSession)
		if err != nil || d.Validity != "" {
			t.Fatalf("unexpected result: %+v %v", d, err)
		}
	})
}

func TestQuoteUseCase_ApplyEnvironmentOp(t *testing.T) {
	uc := NewQuoteUseCase(nil, nil, nil, zap.NewNop())
	envs := []entities.Environment{{ID: "e1", Type: "Cozinha", Pieces: []entities.Piece{{Name: "Balcão"}}}}

	t.Run("add piece", func(t *testing.T) {
		out, err := uc.ApplyEnvironmentOp(envs, EnvironmentOp{Op: EnvOpAddPiece, EnvironmentID: "e1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out[0].Pieces) != 2 || len(envs[0].Pieces) != 1 {
			t.Fatalf("expected copy-on-write append, got %+v / %+v", out, envs)
		}
	})

	t.Run("update piece", func(t *testing.T) {
		out, err := uc.ApplyEnvironmentOp(envs, EnvironmentOp{Op: EnvOpUpdatePiece, EnvironmentID: "e1", PieceIndex: 0, Field: entities.PieceField("l"), Value: "120"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0].Pieces[0].Width != 120 || envs[0].Pieces[0].Width != 0 {
			t.Fatalf("unexpected update: %+v / %+v", out, envs)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := uc.ApplyEnvironmentOp(envs, EnvironmentOp{Op: EnvOpUpdatePiece, EnvironmentID: "e1", Field: "cor"})
		if !errors.Is(err, ErrInvalidEnvironmentOp) {
			t.Fatalf("expected ErrInvalidEnvironmentOp, got %v", err)
		}
	})

	t.Run("unknown op", func(t *testing.T) {
		_, err := uc.ApplyEnvironmentOp(envs, EnvironmentOp{Op: "explode"})
		if !errors.Is(err, ErrInvalidEnvironmentOp) {
			t.Fatalf("expected ErrInvalidEnvironmentOp, got %v", err)
		}
	})

	t.Run("remove environment", func(t *testing.T) {
		out, err := uc.ApplyEnvironmentOp(envs, EnvironmentOp{Op: EnvOpRemoveEnvironment, EnvironmentID: "e1"})
		if err != nil || len(out) != 0 || len(envs) != 1 {
			t.Fatalf("unexpected result: %+v %v", out, err)
		}
	})
}

func TestQuoteUseCase_SaveAndSend(t *testing.T) {
	base := entities.Quote{
		ClientName:   "Ana",
		ClientPhone:  "11999990000",
		Environments: []entities.Environment{{ID: "1", Type: "Closet"}},
		Costs:        entities.Costs{Materials: 1000, Expenses: 500, MarginPercent: 30},
		Status:       entities.QuoteStatusNotSent,
	}

	t.Run("client name required", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		q := base
		q.ClientName = "  "
		if _, err := uc.SaveAndSend(context.Background(), testSession, q); !errors.Is(err, ErrClientNameRequired) {
			t.Fatalf("expected ErrClientNameRequired, got %v", err)
		}
	})

	t.Run("client phone required", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		q := base
		q.ClientPhone = ""
		if _, err := uc.SaveAndSend(context.Background(), testSession, q); !errors.Is(err, ErrClientPhoneRequired) {
			t.Fatalf("expected ErrClientPhoneRequired, got %v", err)
		}
	})

	t.Run("create assigns id number and status", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().CountByUser(gomock.Any(), "user-1").Return(4, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{})).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if q.ID == "" || q.UserID != "user-1" || q.Number != 5 {
					t.Fatalf("unexpected quote: %+v", q)
				}
				if q.Status != entities.QuoteStatusSent || q.Total != 1950 || q.FurnitureType != "Closet" {
					t.Fatalf("unexpected derived fields: %+v", q)
				}
				if q.CreatedAt.IsZero() || !q.CreatedAt.Equal(q.UpdatedAt) {
					t.Fatalf("expected timestamps, got %v / %v", q.CreatedAt, q.UpdatedAt)
				}
				return q, nil
			},
		)

		res, err := uc.SaveAndSend(context.Background(), testSession, base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Number != 5 || base.ID != "" || base.Status != entities.QuoteStatusNotSent {
			t.Fatalf("caller state changed or wrong result: %+v / %+v", res, base)
		}
	})

	t.Run("create keeps explicit number", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		q := base
		q.Number = 42
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) { return q, nil },
		)

		res, err := uc.SaveAndSend(context.Background(), testSession, q)
		if err != nil || res.Number != 42 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})

	t.Run("create error leaves nothing assigned", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().CountByUser(gomock.Any(), "user-1").Return(0, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Quote{}, errors.New("db"))

		res, err := uc.SaveAndSend(context.Background(), testSession, base)
		if err == nil || err.Error() != "db" || res.ID != "" {
			t.Fatalf("expected db error, got %+v %v", res, err)
		}
	})

	t.Run("update keeps created_at and number", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		q := base
		q.ID = "q1"
		m.repo.EXPECT().GetByID(gomock.Any(), "user-1", "q1").Return(entities.Quote{ID: "q1", Number: 7, CreatedAt: created}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quote) (entities.Quote, error) {
				if !q.CreatedAt.Equal(created) || q.Number != 7 || q.Status != entities.QuoteStatusSent {
					t.Fatalf("unexpected update: %+v", q)
				}
				return q, nil
			},
		)

		if _, err := uc.SaveAndSend(context.Background(), testSession, q); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update of unknown quote", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		q := base
		q.ID = "q1"
		m.repo.EXPECT().GetByID(gomock.Any(), "user-1", "q1").Return(entities.Quote{}, nil)

		if _, err := uc.SaveAndSend(context.Background(), testSession, q); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		if _, err := uc.UpdateStatus(context.Background(), testSession, "q1", ""); !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("unknown label is rejected", func(t *testing.T) {
		uc, _ := newQuoteUseCase(t)
		if _, err := uc.UpdateStatus(context.Background(), testSession, "q1", "garbage"); !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("legacy label is normalized", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "user-1", "q1", entities.QuoteStatusSent).Return(entities.Quote{ID: "q1", Status: entities.QuoteStatusSent}, nil)

		q, err := uc.UpdateStatus(context.Background(), testSession, "q1", "fechada")
		if err != nil || q.Status != entities.QuoteStatusSent {
			t.Fatalf("unexpected result: %+v %v", q, err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "user-1", "q1", entities.QuoteStatusNotSent).Return(entities.Quote{}, nil)

		if _, err := uc.UpdateStatus(context.Background(), testSession, "q1", "nao_enviada"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}

func TestQuoteUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().Delete(gomock.Any(), "user-1", "q1").Return(false, nil)

		if err := uc.Delete(context.Background(), testSession, "q1"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().Delete(gomock.Any(), "user-1", "q1").Return(true, nil)

		if err := uc.Delete(context.Background(), testSession, "q1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_ExportPDF(t *testing.T) {
	quote := entities.Quote{
		ID:         "q1",
		UserID:     "user-1",
		ClientName: "Ana Souza",
		Status:     entities.QuoteStatusNotSent,
		CreatedAt:  time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	vendor := entities.Profile{ID: "user-1", CompanyName: "Marcenaria"}

	t.Run("renders and marks sent", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "user-1", "q1").Return(quote, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "user-1").Return(vendor, nil)
		m.renderer.EXPECT().Render(quote, vendor).Return([]byte("%PDF-1.3"), nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "user-1", "q1", entities.QuoteStatusSent).Return(quote, nil)

		doc, err := uc.ExportPDF(context.Background(), testSession, "q1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Filename != "Proposta_Ana_Souza_01-02-2025.pdf" {
			t.Fatalf("unexpected filename: %s", doc.Filename)
		}
		if !strings.HasPrefix(string(doc.Content), "%PDF") {
			t.Fatalf("unexpected content: %q", doc.Content)
		}
	})

	t.Run("already sent is not updated", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		sent := quote
		sent.Status = entities.QuoteStatusSent
		m.repo.EXPECT().GetByID(gomock.Any(), "user-1", "q1").Return(sent, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "user-1").Return(vendor, nil)
		m.renderer.EXPECT().Render(sent, vendor).Return([]byte("%PDF"), nil)

		if _, err := uc.ExportPDF(context.Background(), testSession, "q1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("render error", func(t *testing.T) {
		uc, m := newQuoteUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "user-1", "q1").Return(quote, nil)
		m.profiles.EXPECT().GetByID(gomock.Any(), "user-1").Return(vendor, nil)
		m.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil, errors.New("pdf"))

		if _, err := uc.ExportPDF(context.Background(), testSession, "q1"); err == nil || err.Error() != "pdf" {
			t.Fatalf("expected pdf error, got %v", err)
		}
	})
}
