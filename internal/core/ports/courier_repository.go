package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier. Used by seeding and tests.
	Add(ctx context.Context, c *courier.Courier) error

	// Get retrieves a courier by id. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, id int64) (*courier.Courier, error)

	// GetByUserID retrieves the courier linked to a staff account.
	// Returns errs.ErrObjectNotFound when the account is not a courier.
	GetByUserID(ctx context.Context, userID int64) (*courier.Courier, error)

	// ListCandidates returns the restaurant's active couriers that are
	// available or busy, ordered by id. The load cap is applied by the caller.
	ListCandidates(ctx context.Context, restaurantID int64) ([]*courier.Courier, error)

	// SavePosition writes only the position snapshot and the last seen time.
	SavePosition(ctx context.Context, c *courier.Courier) error
}
