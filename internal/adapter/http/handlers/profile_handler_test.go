package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"fiftymais/internal/adapter/http/handlers/mocks"
	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestProfileHandler(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc, zap.NewNop())
		r, g := newAuthedRouter(t, ctrl)
		g.GET("/profile", h.GetProfile)

		uc.EXPECT().Get(gomock.Any(), testSession).Return(entities.Profile{ID: "user-1", CompanyName: "Marcenaria"}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodGet, "/v1/profile", ""))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid unit rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc, zap.NewNop())
		r, g := newAuthedRouter(t, ctrl)
		g.PUT("/profile", h.SaveProfile)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPut, "/v1/profile", `{"nome":"Marcenaria","unidade":"m"}`))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("save maps use case errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc, zap.NewNop())
		r, g := newAuthedRouter(t, ctrl)
		g.PUT("/profile", h.SaveProfile)

		uc.EXPECT().Save(gomock.Any(), testSession, gomock.Any()).Return(entities.Profile{}, usecase.ErrCompanyNameRequired)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPut, "/v1/profile", `{"nome":"  "}`))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProfileUseCase(ctrl)
		h := NewProfileHandler(uc, zap.NewNop())
		r, g := newAuthedRouter(t, ctrl)
		g.PUT("/profile", h.SaveProfile)

		uc.EXPECT().Save(gomock.Any(), testSession, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Session, p entities.Profile) (entities.Profile, error) {
				if p.CompanyName != "Marcenaria" || p.Unit != entities.UnitMillimeters {
					t.Fatalf("unexpected profile: %+v", p)
				}
				p.ID = "user-1"
				return p, nil
			},
		)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, authedRequest(http.MethodPut, "/v1/profile", `{"nome":"Marcenaria","unidade":"mm"}`))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
