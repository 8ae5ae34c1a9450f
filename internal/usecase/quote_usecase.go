package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fiftymais/internal/domain/entities"
	"fiftymais/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrClientNameRequired   = errors.New("client name is required")
	ErrClientPhoneRequired  = errors.New("client phone is required")
	ErrInvalidQuoteStatus   = errors.New("invalid quote status")
	ErrInvalidEnvironmentOp = errors.New("invalid environment operation")
)

// Environment list operations accepted by ApplyEnvironmentOp.
const (
	EnvOpAddEnvironment    = "add_environment"
	EnvOpRemoveEnvironment = "remove_environment"
	EnvOpUpdateEnvironment = "update_environment"
	EnvOpAddPiece          = "add_piece"
	EnvOpUpdatePiece       = "update_piece"
	EnvOpRemovePiece       = "remove_piece"
)

type QuoteListFilter struct {
	Status string
	Search string
}

// QuoteSummary is a list entry. DuplicateNumber flags display numbers shared
// with another quote of the same user.
type QuoteSummary struct {
	entities.Quote
	DuplicateNumber bool
}

type EnvironmentOp struct {
	Op            string
	EnvironmentID string
	Type          string
	Details       string
	PieceIndex    int
	Field         entities.PieceField
	Value         string
}

type PDFDocument struct {
	Filename string
	Content  []byte
}

// IQuoteUseCase covers the proposal wizard and the proposal list.
//
// SaveAndSend always stores status "enviada" and assigns the next display
// number when the quote has none.
type IQuoteUseCase interface {
	List(ctx context.Context, s entities.Session, f QuoteListFilter) ([]QuoteSummary, error)
	Get(ctx context.Context, s entities.Session, id string) (entities.Quote, error)
	Draft(ctx context.Context, s entities.Session) (entities.Quote, error)
	Preview(costs entities.Costs) entities.PriceBreakdown
	ApplyEnvironmentOp(envs []entities.Environment, op EnvironmentOp) ([]entities.Environment, error)
	FormatPixKey(value, keyType string) string
	SaveAndSend(ctx context.Context, s entities.Session, q entities.Quote) (entities.Quote, error)
	UpdateStatus(ctx context.Context, s entities.Session, id, status string) (entities.Quote, error)
	Delete(ctx context.Context, s entities.Session, id string) error
	ExportPDF(ctx context.Context, s entities.Session, id string) (PDFDocument, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	profileRepo interfaces.IProfileRepository
	renderer    interfaces.IProposalRenderer
	logger      *zap.Logger
	now         func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	profileRepo interfaces.IProfileRepository,
	renderer interfaces.IProposalRenderer,
	logger *zap.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{
		repo:        repo,
		profileRepo: profileRepo,
		renderer:    renderer,
		logger:      logger.With(zap.String("component", "quote_usecase")),
		now:         time.Now,
	}
}

func (u *QuoteUseCase) List(ctx context.Context, s entities.Session, f QuoteListFilter) ([]QuoteSummary, error) {
	if err := requireSession(s); err != nil {
		return nil, err
	}
	quotes, err := u.repo.ListByUser(ctx, s.UserID)
	if err != nil {
		u.logger.Error("list quotes failed", zap.String("user_id", s.UserID), zap.Error(err))
		return nil, err
	}

	seen := make(map[int]int, len(quotes))
	for _, q := range quotes {
		if q.Number > 0 {
			seen[q.Number]++
		}
	}

	status, filtered := entities.ParseStatusFilter(f.Status)
	out := make([]QuoteSummary, 0, len(quotes))
	for _, q := range quotes {
		if filtered && !q.MatchesStatus(status) {
			continue
		}
		if !q.MatchesSearch(f.Search) {
			continue
		}
		out = append(out, QuoteSummary{Quote: q, DuplicateNumber: seen[q.Number] > 1})
	}
	return out, nil
}

func (u *QuoteUseCase) Get(ctx context.Context, s entities.Session, id string) (entities.Quote, error) {
	if err := requireSession(s); err != nil {
		return entities.Quote{}, err
	}
	q, err := u.repo.GetByID(ctx, s.UserID, strings.TrimSpace(id))
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// Draft starts a new quote, taking the validity window from the profile.
func (u *QuoteUseCase) Draft(ctx context.Context, s entities.Session) (entities.Quote, error) {
	if err := requireSession(s); err != nil {
		return entities.Quote{}, err
	}
	d := entities.NewDraft()
	d.UserID = s.UserID
	p, err := u.profileRepo.GetByID(ctx, s.UserID)
	if err != nil {
		u.logger.Warn("profile lookup failed for draft", zap.String("user_id", s.UserID), zap.Error(err))
		return d, nil
	}
	d.Validity = p.Validity
	return d, nil
}

func (u *QuoteUseCase) Preview(costs entities.Costs) entities.PriceBreakdown {
	return costs.Breakdown()
}

func (u *QuoteUseCase) ApplyEnvironmentOp(envs []entities.Environment, op EnvironmentOp) ([]entities.Environment, error) {
	switch op.Op {
	case EnvOpAddEnvironment:
		return entities.AddEnvironment(envs, op.Type), nil
	case EnvOpRemoveEnvironment:
		return entities.RemoveEnvironment(envs, op.EnvironmentID), nil
	case EnvOpUpdateEnvironment:
		return entities.UpdateEnvironment(envs, op.EnvironmentID, op.Type, op.Details), nil
	case EnvOpAddPiece:
		return entities.AddPiece(envs, op.EnvironmentID), nil
	case EnvOpUpdatePiece:
		if !op.Field.Valid() {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidEnvironmentOp, op.Field)
		}
		return entities.UpdatePiece(envs, op.EnvironmentID, op.PieceIndex, op.Field, op.Value), nil
	case EnvOpRemovePiece:
		return entities.RemovePiece(envs, op.EnvironmentID, op.PieceIndex), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEnvironmentOp, op.Op)
	}
}

func (u *QuoteUseCase) FormatPixKey(value, keyType string) string {
	return entities.FormatPixKey(value, keyType)
}

// SaveAndSend creates the quote when it has no id and replaces it otherwise.
// The caller's copy is never modified.
func (u *QuoteUseCase) SaveAndSend(ctx context.Context, s entities.Session, q entities.Quote) (entities.Quote, error) {
	if err := requireSession(s); err != nil {
		return entities.Quote{}, err
	}
	if strings.TrimSpace(q.ClientName) == "" {
		return entities.Quote{}, ErrClientNameRequired
	}
	if strings.TrimSpace(q.ClientPhone) == "" {
		return entities.Quote{}, ErrClientPhoneRequired
	}

	q.Environments = entities.CloneEnvironments(q.Environments)
	q.UserID = s.UserID
	q.Status = entities.QuoteStatusSent
	q.Total = q.Costs.Total()
	q.FurnitureType = entities.DeriveFurnitureType(q.Environments)
	now := u.now().UTC()
	q.UpdatedAt = now

	if q.ID == "" {
		return u.create(ctx, s, q, now)
	}

	existing, err := u.repo.GetByID(ctx, s.UserID, q.ID)
	if err != nil {
		return entities.Quote{}, err
	}
	if existing.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	q.CreatedAt = existing.CreatedAt
	if q.Number == 0 {
		q.Number = existing.Number
	}
	if q.Number == 0 {
		if q.Number, err = u.nextNumber(ctx, s.UserID); err != nil {
			return entities.Quote{}, err
		}
	}

	saved, err := u.repo.Update(ctx, q)
	if err != nil {
		u.logger.Error("update quote failed", zap.String("quote_id", q.ID), zap.Error(err))
		return entities.Quote{}, err
	}
	if saved.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	u.logger.Info("quote updated", zap.String("quote_id", saved.ID), zap.Int("numero", saved.Number))
	return saved, nil
}

func (u *QuoteUseCase) create(ctx context.Context, s entities.Session, q entities.Quote, now time.Time) (entities.Quote, error) {
	q.ID = uuid.NewString()
	q.CreatedAt = now
	if q.Number == 0 {
		n, err := u.nextNumber(ctx, s.UserID)
		if err != nil {
			return entities.Quote{}, err
		}
		q.Number = n
	}

	saved, err := u.repo.Create(ctx, q)
	if err != nil {
		u.logger.Error("create quote failed", zap.String("user_id", s.UserID), zap.Error(err))
		return entities.Quote{}, err
	}
	u.logger.Info("quote created", zap.String("quote_id", saved.ID), zap.Int("numero", saved.Number))
	return saved, nil
}

// nextNumber is count+1. Concurrent saves may pick the same number; List
// flags those instead of serializing writers.
func (u *QuoteUseCase) nextNumber(ctx context.Context, userID string) (int, error) {
	n, err := u.repo.CountByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, s entities.Session, id, status string) (entities.Quote, error) {
	if err := requireSession(s); err != nil {
		return entities.Quote{}, err
	}
	st, ok := entities.ParseStatusLabel(status)
	if !ok {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	q, err := u.repo.UpdateStatus(ctx, s.UserID, id, st)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, s entities.Session, id string) error {
	if err := requireSession(s); err != nil {
		return err
	}
	ok, err := u.repo.Delete(ctx, s.UserID, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrQuoteNotFound
	}
	u.logger.Info("quote deleted", zap.String("quote_id", id))
	return nil
}

// ExportPDF renders the proposal and then marks it sent. A failed status
// update is logged; the document is still returned.
func (u *QuoteUseCase) ExportPDF(ctx context.Context, s entities.Session, id string) (PDFDocument, error) {
	q, err := u.Get(ctx, s, id)
	if err != nil {
		return PDFDocument{}, err
	}
	vendor, err := u.profileRepo.GetByID(ctx, s.UserID)
	if err != nil {
		return PDFDocument{}, err
	}

	content, err := u.renderer.Render(q, vendor)
	if err != nil {
		u.logger.Error("render proposal failed", zap.String("quote_id", q.ID), zap.Error(err))
		return PDFDocument{}, err
	}

	if !q.MatchesStatus(entities.QuoteStatusSent) {
		if _, err := u.repo.UpdateStatus(ctx, s.UserID, q.ID, entities.QuoteStatusSent); err != nil {
			u.logger.Warn("mark quote sent failed", zap.String("quote_id", q.ID), zap.Error(err))
		}
	}

	return PDFDocument{
		Filename: entities.ProposalFilename(q, entities.IssueDate(q, u.now())),
		Content:  content,
	}, nil
}
