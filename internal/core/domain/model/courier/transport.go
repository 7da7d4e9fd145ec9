package courier

import (
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
)

// Transport is the way a courier moves around the city.
type Transport string

const (
	Walking Transport = "walking"
	Bicycle Transport = "bicycle"
	Scooter Transport = "scooter"
	Car     Transport = "car"
)

type transportProfile struct {
	speedKmh       float64
	comfortRangeKm float64
}

// Speeds are averages for urban traffic including stops.
var profiles = map[Transport]transportProfile{
	Walking: {speedKmh: 5, comfortRangeKm: 2},
	Bicycle: {speedKmh: 15, comfortRangeKm: 5},
	Scooter: {speedKmh: 25, comfortRangeKm: 12},
	Car:     {speedKmh: 30, comfortRangeKm: math.Inf(1)},
}

// ParseTransport converts external text into a Transport.
func ParseTransport(s string) (Transport, error) {
	t := Transport(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks that t is a known transport.
func (t Transport) Validate() error {
	if _, ok := profiles[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport", fmt.Errorf("%q is not a valid transport", string(t)))
	}
	return nil
}

func (t Transport) String() string {
	return string(t)
}

// SpeedKmh is the assumed average speed. Unknown transports move at walking speed.
func (t Transport) SpeedKmh() float64 {
	if p, ok := profiles[t]; ok {
		return p.speedKmh
	}
	return profiles[Walking].speedKmh
}

// ComfortRangeKm is the distance the transport covers without penalty.
// Car has no limit and returns +Inf.
func (t Transport) ComfortRangeKm() float64 {
	if p, ok := profiles[t]; ok {
		return p.comfortRangeKm
	}
	return profiles[Walking].comfortRangeKm
}
