package ports

import (
	"context"

	"dispatch/internal/core/domain/model/locationlog"
)

// LocationLogRepository stores the immutable courier trail.
type LocationLogRepository interface {
	// Add appends an entry and returns it with its id.
	Add(ctx context.Context, entry locationlog.Entry) (locationlog.Entry, error)
}
