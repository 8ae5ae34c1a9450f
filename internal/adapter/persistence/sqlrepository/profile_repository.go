package sqlrepository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var profileDetailColumns = []string{
	"nome", "responsavel", "cpf", "wpp", "insta", "cidade", "especialidade",
	"endereco", "logo", "unidade", "validade", "prazo_min", "prazo_max",
	"rodape", "updated_at",
}

type ProfileRepository struct {
	db *gorm.DB
}

var _ interfaces.IProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (entities.Profile, error) {
	var m ProfileModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Profile{}, nil
	}
	if err != nil {
		return entities.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	return fromProfileModel(m), nil
}

func (r *ProfileRepository) SaveDetails(ctx context.Context, p entities.Profile) (entities.Profile, error) {
	m := ProfileModel{
		ID:            p.ID,
		Nome:          p.CompanyName,
		Responsavel:   p.OwnerName,
		CPF:           p.TaxID,
		Wpp:           p.Phone,
		Insta:         p.Instagram,
		Cidade:        p.City,
		Especialidade: p.Specialty,
		Endereco:      p.Address,
		Logo:          p.Logo,
		Unidade:       string(p.Unit),
		Validade:      p.Validity,
		PrazoMin:      p.DeadlineMin,
		PrazoMax:      p.DeadlineMax,
		Rodape:        p.Footer,
		UpdatedAt:     time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(profileDetailColumns),
		}).
		Create(&m).Error
	if err != nil {
		return entities.Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return r.GetByID(ctx, p.ID)
}

func (r *ProfileRepository) UpsertSubscription(ctx context.Context, accountID string, sub entities.Subscription) error {
	now := time.Now().UTC()
	subUpdatedAt := sub.UpdatedAt
	if subUpdatedAt.IsZero() {
		subUpdatedAt = now
	}
	m := ProfileModel{
		ID:                    accountID,
		Unidade:               string(entities.UnitCentimeters),
		IsActive:              sub.Active,
		StripeCustomerID:      sub.CustomerID,
		StripeSubscriptionID:  sub.SubscriptionID,
		SubscriptionStatus:    sub.Status,
		SubscriptionUpdatedAt: &subUpdatedAt,
		UpdatedAt:             now,
	}

	columns := []string{"is_active", "subscription_status", "subscription_updated_at", "updated_at"}
	if sub.CustomerID != "" {
		columns = append(columns, "stripe_customer_id")
	}
	if sub.SubscriptionID != "" {
		columns = append(columns, "stripe_subscription_id")
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(columns),
		}).
		Create(&m).Error
	if err != nil {
		return fmt.Errorf("upsert subscription: %w", err)
	}
	return nil
}

func (r *ProfileRepository) DeactivateByCustomerID(ctx context.Context, customerID string) (int, error) {
	if customerID == "" {
		return 0, nil
	}
	result := r.db.WithContext(ctx).
		Model(&ProfileModel{}).
		Where("stripe_customer_id = ?", customerID).
		Updates(map[string]any{
			"is_active":           false,
			"subscription_status": entities.SubscriptionStatusInactive,
			"updated_at":          time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("deactivate profiles: %w", result.Error)
	}
	return int(result.RowsAffected), nil
}

func fromProfileModel(m ProfileModel) entities.Profile {
	sub := entities.Subscription{
		Active:         m.IsActive,
		CustomerID:     m.StripeCustomerID,
		SubscriptionID: m.StripeSubscriptionID,
		Status:         m.SubscriptionStatus,
	}
	if m.SubscriptionUpdatedAt != nil {
		sub.UpdatedAt = *m.SubscriptionUpdatedAt
	}
	return entities.Profile{
		ID:           m.ID,
		CompanyName:  m.Nome,
		OwnerName:    m.Responsavel,
		TaxID:        m.CPF,
		Phone:        m.Wpp,
		Instagram:    m.Insta,
		City:         m.Cidade,
		Specialty:    m.Especialidade,
		Address:      m.Endereco,
		Logo:         m.Logo,
		Unit:         entities.MeasurementUnit(m.Unidade),
		Validity:     m.Validade,
		DeadlineMin:  m.PrazoMin,
		DeadlineMax:  m.PrazoMax,
		Footer:       m.Rodape,
		Subscription: sub,
		UpdatedAt:    m.UpdatedAt,
	}
}
