package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/guard"
)

var ErrTrackingViewQueryIsNotConstructed = errors.New(
	"TrackingViewQuery must be created via NewTrackingViewQuery constructor",
)

// TrackingViewQuery opens the public tracking page of a token holder.
type TrackingViewQuery struct {
	token kernel.UUID
	guard guard.ConstructorGuard
}

// NewTrackingViewQuery checks the token format. A malformed token yields
// tracking.ErrTrackingDenied, the same error as an unknown one.
func NewTrackingViewQuery(rawToken string) (TrackingViewQuery, error) {
	token, err := tracking.ParseValue(rawToken)
	if err != nil {
		return TrackingViewQuery{}, err
	}
	return TrackingViewQuery{token: token, guard: guard.NewConstructorGuard()}, nil
}

// Token returns the public tracking token.
func (q TrackingViewQuery) Token() kernel.UUID {
	return q.token
}

// Validate ensures the query was created through the constructor.
func (q TrackingViewQuery) Validate() error {
	return q.guard.Validate(ErrTrackingViewQueryIsNotConstructed)
}
