package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
)

// TrackingTokenRepository reads tracking tokens issued elsewhere.
type TrackingTokenRepository interface {
	// Get returns the token. Returns errs.ErrObjectNotFound when missing.
	Get(ctx context.Context, value kernel.UUID) (tracking.Token, error)
}
