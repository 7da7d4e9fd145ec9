package services

import (
	"context"
	"math"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/event"
	"dispatch/internal/core/domain/model/kernel"
)

// Estimate is a distance and travel time. Known is false when either point was
// missing or the route provider failed; the numbers are zero then and must not
// be read as "arrived".
type Estimate struct {
	Known      bool
	DistanceKm float64
	Minutes    float64
}

// Unknown is the estimate returned when nothing can be computed.
var Unknown = Estimate{}

// Payload converts the estimate into its wire form.
func (e Estimate) Payload() event.ETA {
	if !e.Known {
		return event.ETA{Known: false}
	}
	d := math.Round(e.DistanceKm*100) / 100
	m := math.Round(e.Minutes*10) / 10
	return event.ETA{Known: true, DistanceKm: &d, Minutes: &m}
}

// RouteProvider is an external routing service that knows real road distances.
type RouteProvider interface {
	Route(ctx context.Context, from, to kernel.Location, transport courier.Transport) (distanceKm, minutes float64, err error)
}

// ETAEstimator computes an Estimate between two optional points.
type ETAEstimator interface {
	Estimate(ctx context.Context, from, to *kernel.Location, transport courier.Transport) Estimate
}

// Estimator is the default ETAEstimator. Without a RouteProvider it uses the
// great-circle distance and the average speed of the transport.
//
// Example:
//
//	est := services.NewEstimator(nil)
//	from, _ := kernel.NewLocation(55.751, 37.618)
//	to, _ := kernel.NewLocation(55.760, 37.630)
//	e := est.Estimate(ctx, &from, &to, courier.Bicycle) // ~1.25 km, ~5 min
type Estimator struct {
	provider RouteProvider
}

// NewEstimator creates an Estimator. provider may be nil.
func NewEstimator(provider RouteProvider) *Estimator {
	return &Estimator{provider: provider}
}

// Estimate never fails: missing points, invalid points and provider errors all
// yield Unknown.
func (e *Estimator) Estimate(ctx context.Context, from, to *kernel.Location, transport courier.Transport) Estimate {
	if from == nil || to == nil || from.Validate() != nil || to.Validate() != nil {
		return Unknown
	}

	if e.provider != nil {
		d, m, err := e.provider.Route(ctx, *from, *to, transport)
		if err != nil || d < 0 || m < 0 || math.IsNaN(d) || math.IsNaN(m) {
			return Unknown
		}
		return Estimate{Known: true, DistanceKm: d, Minutes: m}
	}

	d, err := from.DistanceKm(*to)
	if err != nil {
		return Unknown
	}
	return Estimate{Known: true, DistanceKm: d, Minutes: d / transport.SpeedKmh() * 60}
}
