package interfaces

import (
	"context"

	"fiftymais/internal/domain/entities"
)

// IProfileRepository keeps editor fields and subscription state on the same
// record but writes them independently.
//
//   - SaveDetails never touches subscription fields.
//   - UpsertSubscription creates the profile when missing.
//   - DeactivateByCustomerID returns how many profiles changed.
type IProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.Profile, error)
	SaveDetails(ctx context.Context, p entities.Profile) (entities.Profile, error)
	UpsertSubscription(ctx context.Context, accountID string, sub entities.Subscription) error
	DeactivateByCustomerID(ctx context.Context, customerID string) (int, error)
}
