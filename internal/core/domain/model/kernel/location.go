package kernel

import (
	"errors"
	"fmt"
	"math"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	// LatitudeMin is the southern bound of a valid latitude.
	LatitudeMin = -90.0
	// LatitudeMax is the northern bound of a valid latitude.
	LatitudeMax = 90.0
	// LongitudeMin is the western bound of a valid longitude.
	LongitudeMin = -180.0
	// LongitudeMax is the eastern bound of a valid longitude.
	LongitudeMax = 180.0

	// earthRadiusKm is the mean Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0088
)

// ErrLocationIsNotConstructed is returned when a zero Location is used.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a point on the Earth's surface.
// Location is an immutable value object; the zero value is invalid.
//
// Example:
//
//	loc, err := kernel.NewLocation(55.751, 37.618)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
//	fmt.Println(loc) // Location(55.751000,37.618000)
type Location struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewLocation creates a Location after checking both coordinates.
//
// Parameters:
//   - lat: latitude in degrees, within [LatitudeMin..LatitudeMax]
//   - lng: longitude in degrees, within [LongitudeMin..LongitudeMax]
//
// Returns:
//   - Location: a valid location
//   - error: joined range errors for every offending coordinate
func NewLocation(lat, lng float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(lat), loc.setLongitude(lng)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate reports ErrLocationIsNotConstructed for a zero Location.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (l Location) Latitude() float64 {
	return l.lat
}

// Longitude returns the longitude in degrees.
func (l Location) Longitude() float64 {
	return l.lng
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.lat, l.lng)
}

// IsEqual reports whether both locations denote the same point.
// Both locations must be constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// DistanceKm returns the great-circle distance between two locations in
// kilometres, using the haversine formula. The result is symmetric:
// a.DistanceKm(b) == b.DistanceKm(a).
//
// Example:
//
//	a, _ := NewLocation(55.751, 37.618)
//	b, _ := NewLocation(55.760, 37.630)
//	d, _ := a.DistanceKm(b) // ≈ 1.19
func (l Location) DistanceKm(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1, lat2 := radians(l.lat), radians(other.lat)
	dLat := lat2 - lat1
	dLng := radians(other.lng - l.lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	h = math.Min(1, math.Max(0, h))

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h)), nil
}

// setLatitude uses a pointer receiver so the constructor can validate in place.
func (l *Location) setLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}

	l.lat = lat
	return nil
}

func (l *Location) setLongitude(lng float64) error {
	if math.IsNaN(lng) || lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}

	l.lng = lng
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
