package usecase

import (
	"context"
	"errors"
	"strings"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrCompanyNameRequired = errors.New("company name is required")
	ErrInvalidUnit         = errors.New("unit must be mm or cm")
)

// IProfileUseCase reads and edits the caller's own profile. Subscription
// fields are owned by provisioning and cannot be changed here.
type IProfileUseCase interface {
	Get(ctx context.Context, s entities.Session) (entities.Profile, error)
	Save(ctx context.Context, s entities.Session, p entities.Profile) (entities.Profile, error)
}

type ProfileUseCase struct {
	repo   interfaces.IProfileRepository
	logger *zap.Logger
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(repo interfaces.IProfileRepository, logger *zap.Logger) *ProfileUseCase {
	return &ProfileUseCase{repo: repo, logger: logger.With(zap.String("component", "profile_usecase"))}
}

// Get returns an empty profile carrying only the id when none was saved yet.
func (u *ProfileUseCase) Get(ctx context.Context, s entities.Session) (entities.Profile, error) {
	if err := requireSession(s); err != nil {
		return entities.Profile{}, err
	}
	p, err := u.repo.GetByID(ctx, s.UserID)
	if err != nil {
		return entities.Profile{}, err
	}
	if p.ID == "" {
		p = entities.Profile{ID: s.UserID, Unit: entities.UnitCentimeters}
	}
	return p, nil
}

func (u *ProfileUseCase) Save(ctx context.Context, s entities.Session, p entities.Profile) (entities.Profile, error) {
	if err := requireSession(s); err != nil {
		return entities.Profile{}, err
	}
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	if p.CompanyName == "" {
		return entities.Profile{}, ErrCompanyNameRequired
	}
	switch p.Unit {
	case "":
		p.Unit = entities.UnitCentimeters
	case entities.UnitMillimeters, entities.UnitCentimeters:
	default:
		return entities.Profile{}, ErrInvalidUnit
	}

	p.ID = s.UserID
	p.Subscription = entities.Subscription{}
	saved, err := u.repo.SaveDetails(ctx, p)
	if err != nil {
		u.logger.Error("save profile failed", zap.String("user_id", s.UserID), zap.Error(err))
		return entities.Profile{}, err
	}
	return saved, nil
}
