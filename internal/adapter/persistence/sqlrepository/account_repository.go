package sqlrepository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

var _ interfaces.IAccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	a.Email = entities.NormalizeEmail(a.Email)
	m := AccountModel{
		ID:            a.ID,
		Email:         a.Email,
		PasswordHash:  a.PasswordHash,
		DisplayName:   a.DisplayName,
		EmailVerified: a.EmailVerified,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Account{}, interfaces.ErrAccountAlreadyExists
		}
		// Not every driver translates constraint errors.
		if existing, lookupErr := r.GetByEmail(ctx, a.Email); lookupErr == nil && existing.ID != "" {
			return entities.Account{}, interfaces.ErrAccountAlreadyExists
		}
		return entities.Account{}, fmt.Errorf("create account: %w", err)
	}
	return fromAccountModel(m), nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	return r.first(ctx, "email = ?", entities.NormalizeEmail(email))
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *AccountRepository) first(ctx context.Context, query string, arg any) (entities.Account, error) {
	var m AccountModel
	err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Account{}, nil
	}
	if err != nil {
		return entities.Account{}, fmt.Errorf("get account: %w", err)
	}
	return fromAccountModel(m), nil
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	err := r.db.WithContext(ctx).
		Model(&AccountModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    time.Now().UTC(),
		}).Error
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func fromAccountModel(m AccountModel) entities.Account {
	return entities.Account{
		ID:            m.ID,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		DisplayName:   m.DisplayName,
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
