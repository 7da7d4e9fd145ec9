package courier

import (
	"errors"
	"math"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrPositionIsNotConstructed is returned when a zero Position is used.
var ErrPositionIsNotConstructed = errs.NewValueIsRequiredError(
	"position must be created via NewPosition constructor")

// Position is a single location report from a courier device.
// Accuracy, heading and speed are optional and nil when the device did not
// send them.
type Position struct {
	location   kernel.Location
	accuracy   *float64
	heading    *float64
	speed      *float64
	capturedAt time.Time
	guard      guard.ConstructorGuard
}

// NewPosition validates a location report.
//
// Parameters:
//   - location: reported point
//   - accuracy: horizontal accuracy in meters (>= 0), optional
//   - heading: direction of travel in degrees, [0..360), optional
//   - speed: ground speed in m/s (>= 0), optional
//   - capturedAt: when the report was taken
func NewPosition(location kernel.Location, accuracy, heading, speed *float64, capturedAt time.Time) (Position, error) {
	p := Position{guard: guard.NewConstructorGuard(), capturedAt: capturedAt}

	if err := errors.Join(
		location.Validate(),
		checkOptional("accuracy", accuracy, 0, math.Inf(1)),
		checkOptional("heading", heading, 0, 360),
		checkOptional("speed", speed, 0, math.Inf(1)),
	); err != nil {
		return Position{}, err
	}

	p.location = location
	p.accuracy = copyFloat(accuracy)
	p.heading = copyFloat(heading)
	p.speed = copyFloat(speed)
	return p, nil
}

// Validate reports ErrPositionIsNotConstructed for a zero Position.
func (p Position) Validate() error {
	return p.guard.Validate(ErrPositionIsNotConstructed)
}

func (p Position) Location() kernel.Location {
	return p.location
}

func (p Position) Accuracy() *float64 {
	return copyFloat(p.accuracy)
}

func (p Position) Heading() *float64 {
	return copyFloat(p.heading)
}

func (p Position) Speed() *float64 {
	return copyFloat(p.speed)
}

func (p Position) CapturedAt() time.Time {
	return p.capturedAt
}

// checkOptional accepts nil, otherwise requires minValue <= v < maxValue.
func checkOptional(name string, v *float64, minValue, maxValue float64) error {
	if v == nil {
		return nil
	}
	x := *v
	if math.IsNaN(x) || x < minValue || x >= maxValue {
		return errs.NewValueIsOutOfRangeError(name, x, minValue, maxValue)
	}
	return nil
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	x := *v
	return &x
}
