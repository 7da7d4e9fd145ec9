package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ErrCourierNotFound is returned when no candidate courier can take the order.
var ErrCourierNotFound = errors.New("no couriers available")

// ScoringWeights is the tunable dispatch policy.
//
// The score of a candidate is
//
//	ProximityWeight / (1 + distance_km)
//	  - LoadPenalty * active_orders
//	  - TransportPenaltyPerKm * max(0, distance_km - comfort_range(transport))
//
// Higher is better.
type ScoringWeights struct {
	ProximityWeight       float64
	LoadPenalty           float64
	TransportPenaltyPerKm float64
	MaxConcurrentOrders   int
}

// DefaultScoringWeights returns the weights used when nothing is configured.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		ProximityWeight:       100,
		LoadPenalty:           25,
		TransportPenaltyPerKm: 10,
		MaxConcurrentOrders:   3,
	}
}

// Validate rejects negative weights and a non-positive order cap.
func (w ScoringWeights) Validate() error {
	return errors.Join(
		nonNegative("proximity_weight", w.ProximityWeight),
		nonNegative("load_penalty", w.LoadPenalty),
		nonNegative("transport_penalty_per_km", w.TransportPenaltyPerKm),
		func() error {
			if w.MaxConcurrentOrders < 1 {
				return errs.NewValueIsOutOfRangeError("max_concurrent_orders", w.MaxConcurrentOrders, 1, math.MaxInt)
			}
			return nil
		}(),
	)
}

// UnknownScore is the score of a candidate whose distance is unknown. It is
// lower than any score a known distance can produce, so such candidates rank
// last and the score never increases down a ranking.
var UnknownScore = math.Inf(-1)

// Score applies the weights. An unknown estimate scores UnknownScore.
func (w ScoringWeights) Score(eta Estimate, activeOrders int, transport courier.Transport) float64 {
	if !eta.Known {
		return UnknownScore
	}
	score := -w.LoadPenalty * float64(activeOrders)
	score += w.ProximityWeight / (1 + eta.DistanceKm)
	if over := eta.DistanceKm - transport.ComfortRangeKm(); over > 0 {
		score -= w.TransportPenaltyPerKm * over
	}
	return score
}

// Candidate is a courier together with its current load.
type Candidate struct {
	Courier      *courier.Courier
	ActiveOrders int
}

// RankedCourier is one scored entry of a ranking.
type RankedCourier struct {
	Courier      *courier.Courier
	ActiveOrders int
	ETA          Estimate
	Score        float64
}

// KnownScore returns the score, or nil for an unknown distance. JSON cannot
// carry an infinite number.
func (r RankedCourier) KnownScore() *float64 {
	if math.IsInf(r.Score, 0) || math.IsNaN(r.Score) {
		return nil
	}
	v := r.Score
	return &v
}

// OrderDispatcher is a domain service that ranks couriers for a delivery
// order and attaches the best one.
//
// Key responsibilities:
//   - Filtering the candidate pool (same restaurant, active, available or busy under the cap)
//   - Scoring each candidate with ScoringWeights and an ETAEstimator
//   - Ordering candidates deterministically
//   - Assigning the top candidate to the order
//
// Ranking order:
//   - score, descending; unknown distances score UnknownScore and come last
//   - then courier id, ascending
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher(services.DefaultScoringWeights(), services.NewEstimator(nil))
//	best, ranked, err := dispatcher.Dispatch(ctx, o, candidates, time.Now())
//	if errors.Is(err, services.ErrCourierNotFound) {
//	    // nobody can take it right now
//	}
type OrderDispatcher struct {
	weights   ScoringWeights
	estimator ETAEstimator
}

// NewOrderDispatcher creates an OrderDispatcher.
//
// Parameters:
//   - weights: scoring policy, see ScoringWeights
//   - estimator: distance and ETA source
func NewOrderDispatcher(weights ScoringWeights, estimator ETAEstimator) *OrderDispatcher {
	return &OrderDispatcher{weights: weights, estimator: estimator}
}

// Weights returns the scoring policy.
func (d *OrderDispatcher) Weights() ScoringWeights {
	return d.weights
}

// Rank scores and orders the eligible candidates for o. It mutates nothing
// and returns the same order for the same input.
//
// Parameters:
//   - o: the order (must be valid)
//   - candidates: couriers with their active order counts; ineligible ones are dropped
//
// Returns:
//   - []RankedCourier: best first, may be empty
//   - error: validation error for an unconstructed order or courier
func (d *OrderDispatcher) Rank(ctx context.Context, o *order.Order, candidates []Candidate) ([]RankedCourier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]RankedCourier, 0, len(candidates))
	for _, c := range candidates {
		if err := c.Courier.Validate(); err != nil {
			return nil, err
		}
		if c.Courier.RestaurantID() != o.RestaurantID() {
			continue
		}
		if !c.Courier.IsDispatchCandidate(c.ActiveOrders, d.weights.MaxConcurrentOrders) {
			continue
		}

		eta := d.estimator.Estimate(ctx, LastKnownLocation(c.Courier), o.Destination(), c.Courier.Transport())

		ranked = append(ranked, RankedCourier{
			Courier:      c.Courier,
			ActiveOrders: c.ActiveOrders,
			ETA:          eta,
			Score:        d.weights.Score(eta, c.ActiveOrders, c.Courier.Transport()),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	return ranked, nil
}

// Best returns the top entry of Rank together with the whole ranking.
//
// Returns:
//   - *RankedCourier: nil when nobody qualifies
//   - []RankedCourier: the full ranking for display
func (d *OrderDispatcher) Best(ctx context.Context, o *order.Order, candidates []Candidate) (*RankedCourier, []RankedCourier, error) {
	ranked, err := d.Rank(ctx, o, candidates)
	if err != nil {
		return nil, nil, err
	}
	if len(ranked) == 0 {
		return nil, ranked, nil
	}
	best := ranked[0]
	return &best, ranked, nil
}

// Dispatch checks that o can take a courier, picks the best candidate and
// assigns it at time at.
//
// Returns:
//   - RankedCourier: the assigned courier with its score
//   - []RankedCourier: the full ranking
//   - error: order.ErrNotDeliveryOrder, order.ErrAlreadyAssigned,
//     order.ErrStatusNotAssignable or ErrCourierNotFound; o is unchanged then
func (d *OrderDispatcher) Dispatch(
	ctx context.Context,
	o *order.Order,
	candidates []Candidate,
	at time.Time,
) (RankedCourier, []RankedCourier, error) {
	if err := o.CheckAssignable(); err != nil {
		return RankedCourier{}, nil, err
	}

	best, ranked, err := d.Best(ctx, o, candidates)
	if err != nil {
		return RankedCourier{}, nil, err
	}
	if best == nil {
		return RankedCourier{}, ranked, ErrCourierNotFound
	}

	if err := o.AssignCourier(best.Courier.ID(), at); err != nil {
		return RankedCourier{}, ranked, err
	}

	return *best, ranked, nil
}

// LastKnownLocation returns the point of the courier's position snapshot,
// nil if the courier never reported one.
func LastKnownLocation(c *courier.Courier) *kernel.Location {
	p := c.Position()
	if p == nil {
		return nil
	}
	loc := p.Location()
	return &loc
}

func less(a, b RankedCourier) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Courier.ID() < b.Courier.ID()
}

func nonNegative(name string, v float64) error {
	if v < 0 || math.IsNaN(v) {
		return errs.NewValueIsOutOfRangeError(name, v, 0, math.Inf(1))
	}
	return nil
}
