package interfaces

import (
	"context"

	"fiftymais/internal/domain/entities"
)

// IQuoteRepository persists proposals. Lookups scoped by user return a zero
// Quote (empty ID) when nothing matches.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, userID, id string) (entities.Quote, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Quote, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	UpdateStatus(ctx context.Context, userID, id string, status entities.QuoteStatus) (entities.Quote, error)
	Delete(ctx context.Context, userID, id string) (bool, error)
}
