package sqlrepository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fiftymais/internal/adapter/persistence/record"
	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// quoteWriteColumns are the columns a save rewrites. Legacy flat columns are
// left as they are; the nested medidas value supersedes them on read.
var quoteWriteColumns = []string{
	"numero", "cliente_nome", "cliente_wpp", "tipo_movel", "validade",
	"status", "v_total", "medidas", "updated_at",
}

type QuoteRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	row, err := record.Serialize(q)
	if err != nil {
		return entities.Quote{}, err
	}
	m := toQuoteModel(row)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Quote{}, fmt.Errorf("create quote: %w", err)
	}
	return record.Deserialize(fromQuoteModel(m))
}

func (r *QuoteRepository) Update(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	row, err := record.Serialize(q)
	if err != nil {
		return entities.Quote{}, err
	}
	m := toQuoteModel(row)

	result := r.db.WithContext(ctx).
		Model(&QuoteModel{}).
		Where("id = ? AND user_id = ?", q.ID, q.UserID).
		Select(quoteWriteColumns).
		Updates(&m)
	if result.Error != nil {
		return entities.Quote{}, fmt.Errorf("update quote: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Quote{}, nil
	}
	return r.GetByID(ctx, q.UserID, q.ID)
}

func (r *QuoteRepository) GetByID(ctx context.Context, userID, id string) (entities.Quote, error) {
	var m QuoteModel
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Quote{}, nil
	}
	if err != nil {
		return entities.Quote{}, fmt.Errorf("get quote: %w", err)
	}
	return record.Deserialize(fromQuoteModel(m))
}

func (r *QuoteRepository) ListByUser(ctx context.Context, userID string) ([]entities.Quote, error) {
	var models []QuoteModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}

	quotes := make([]entities.Quote, 0, len(models))
	for _, m := range models {
		q, err := record.Deserialize(fromQuoteModel(m))
		if err != nil {
			return nil, fmt.Errorf("quote %s: %w", m.ID, err)
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func (r *QuoteRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&QuoteModel{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count quotes: %w", err)
	}
	return int(n), nil
}

func (r *QuoteRepository) UpdateStatus(ctx context.Context, userID, id string, status entities.QuoteStatus) (entities.Quote, error) {
	result := r.db.WithContext(ctx).
		Model(&QuoteModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return entities.Quote{}, fmt.Errorf("update quote status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Quote{}, nil
	}
	return r.GetByID(ctx, userID, id)
}

func (r *QuoteRepository) Delete(ctx context.Context, userID, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&QuoteModel{})
	if result.Error != nil {
		return false, fmt.Errorf("delete quote: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func toQuoteModel(row record.QuoteRow) QuoteModel {
	return QuoteModel{
		ID:          row.ID,
		UserID:      row.UserID,
		Numero:      row.Numero,
		ClienteNome: row.ClienteNome,
		ClienteWpp:  row.ClienteWpp,
		ClienteEnd:  row.ClienteEnd,
		ClienteRef:  row.ClienteRef,
		TipoMovel:   row.TipoMovel,
		Validade:    row.Validade,
		Status:      row.Status,
		VTotal:      row.VTotal,
		Medidas:     datatypes.JSON(row.Medidas),
		Ambientes:   datatypes.JSON(row.Ambientes),
		PgtoFormas:  datatypes.JSON(record.MarshalStringList(row.PgtoFormas)),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func fromQuoteModel(m QuoteModel) record.QuoteRow {
	return record.QuoteRow{
		ID:           m.ID,
		UserID:       m.UserID,
		Numero:       m.Numero,
		ClienteNome:  m.ClienteNome,
		ClienteWpp:   m.ClienteWpp,
		ClienteEnd:   m.ClienteEnd,
		ClienteRef:   m.ClienteRef,
		TipoMovel:    m.TipoMovel,
		Validade:     m.Validade,
		Status:       m.Status,
		VTotal:       m.VTotal,
		Medidas:      []byte(m.Medidas),
		Ambientes:    []byte(m.Ambientes),
		Chapa:        m.Chapa,
		Acabamento:   m.Acabamento,
		Ferragens:    m.Ferragens,
		Detalhes:     m.Detalhes,
		Inicio:       m.Inicio,
		Entrega:      m.Entrega,
		PrazoObs:     m.PrazoObs,
		Garantia:     m.Garantia,
		Incluso:      m.Incluso,
		Excluso:      m.Excluso,
		ObsFinal:     m.ObsFinal,
		VMat:         m.VMat,
		VDespesas:    m.VDespesas,
		VFerr:        m.VFerr,
		VOutros:      m.VOutros,
		VMargem:      m.VMargem,
		PgtoFormas:   record.UnmarshalStringList(m.PgtoFormas),
		PgtoParcelas: m.PgtoParcelas,
		PgtoJuros:    m.PgtoJuros,
		PgtoPix:      m.PgtoPix,
		PgtoPixTipo:  m.PgtoPixTipo,
		PgtoCondicao: m.PgtoCondicao,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
