package usecase

import (
	"context"
	"errors"
	"testing"

	"fiftymais/internal/domain/entities"
	mock_interfaces "fiftymais/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestProfileUseCase_Get(t *testing.T) {
	t.Run("missing profile yields defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Profile{}, nil)

		p, err := uc.Get(context.Background(), testSession)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "user-1" || p.Unit != entities.UnitCentimeters {
			t.Fatalf("unexpected profile: %+v", p)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.Profile{}, errors.New("db"))

		if _, err := uc.Get(context.Background(), testSession); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestProfileUseCase_Save(t *testing.T) {
	t.Run("company name required", func(t *testing.T) {
		uc := NewProfileUseCase(nil, zap.NewNop())
		_, err := uc.Save(context.Background(), testSession, entities.Profile{CompanyName: "  "})
		if !errors.Is(err, ErrCompanyNameRequired) {
			t.Fatalf("expected ErrCompanyNameRequired, got %v", err)
		}
	})

	t.Run("invalid unit", func(t *testing.T) {
		uc := NewProfileUseCase(nil, zap.NewNop())
		_, err := uc.Save(context.Background(), testSession, entities.Profile{CompanyName: "Marcenaria", Unit: "m"})
		if !errors.Is(err, ErrInvalidUnit) {
			t.Fatalf("expected ErrInvalidUnit, got %v", err)
		}
	})

	t.Run("saves editor fields under the session id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProfileRepository(ctrl)
		uc := NewProfileUseCase(repo, zap.NewNop())

		in := entities.Profile{
			ID:           "someone-else",
			CompanyName:  " Marcenaria Silva ",
			Subscription: entities.Subscription{Active: true, CustomerID: "cus_1"},
		}
		repo.EXPECT().SaveDetails(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Profile) (entities.Profile, error) {
				if p.ID != "user-1" || p.CompanyName != "Marcenaria Silva" || p.Unit != entities.UnitCentimeters {
					t.Fatalf("unexpected profile: %+v", p)
				}
				if p.Subscription != (entities.Subscription{}) {
					t.Fatalf("subscription fields must not be forwarded: %+v", p.Subscription)
				}
				return p, nil
			},
		)

		if _, err := uc.Save(context.Background(), testSession, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
