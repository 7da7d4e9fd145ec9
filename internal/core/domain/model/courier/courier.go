package courier

import (
	"errors"
	"strings"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
	// ErrCourierInactive is returned when a deactivated courier account tries to work.
	ErrCourierInactive = errors.New("courier account is inactive")
)

// Courier represents a delivery courier in the system.
// It is an aggregate root that owns the courier's identity, live status and
// the last known position.
//
// Key responsibilities:
//   - Linking a staff account (user id) to a restaurant's courier roster
//   - Holding the overwritten position snapshot and the last seen time
//   - Deciding whether the courier may be considered for a new order
//
// Business rules:
//   - Courier must have positive identifiers and a non-empty name
//   - Only an active account can report positions
//   - The position snapshot is replaced on every report, history is kept
//     elsewhere (location log)
//
// Example usage:
//
//	c, err := courier.NewCourier(7, 1001, 1, "Ivan Petrov", "+79991234567", courier.Bicycle)
//	if err != nil {
//	    // Handle construction error
//	}
//	pos, _ := courier.NewPosition(loc, nil, nil, nil, time.Now())
//	_ = c.UpdatePosition(pos, time.Now())
type Courier struct {
	id           int64
	userID       int64
	restaurantID int64
	name         string
	phone        string
	active       bool
	status       Status
	transport    Transport
	position     *Position
	lastSeenAt   *time.Time
	guard        guard.ConstructorGuard
}

// NewCourier creates an active, offline courier without a known position.
//
// Parameters:
//   - id: courier identifier (> 0)
//   - userID: linked staff account (> 0)
//   - restaurantID: restaurant whose orders the courier carries (> 0)
//   - name: display name (non-empty)
//   - phone: contact phone, may be empty
//   - transport: walking, bicycle, scooter or car
//
// Returns:
//   - *Courier: a valid courier
//   - error: aggregated validation errors
func NewCourier(id, userID, restaurantID int64, name, phone string, transport Transport) (*Courier, error) {
	c := &Courier{
		active: true,
		status: Offline,
		phone:  phone,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setUserID(userID),
		c.setRestaurantID(restaurantID),
		c.setName(name),
		c.setTransport(transport),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreParams carries persisted courier state into RestoreCourier.
type RestoreParams struct {
	ID           int64
	UserID       int64
	RestaurantID int64
	Name         string
	Phone        string
	Active       bool
	Status       Status
	Transport    Transport
	Position     *Position
	LastSeenAt   *time.Time
}

// RestoreCourier rebuilds a courier loaded from storage.
//
// Example:
//
//	c, err := courier.RestoreCourier(courier.RestoreParams{
//	    ID: 7, UserID: 1001, RestaurantID: 1, Name: "Ivan Petrov",
//	    Active: true, Status: courier.Available, Transport: courier.Car,
//	})
func RestoreCourier(p RestoreParams) (*Courier, error) {
	c := &Courier{
		phone:      p.Phone,
		active:     p.Active,
		lastSeenAt: p.LastSeenAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(p.ID),
		c.setUserID(p.UserID),
		c.setRestaurantID(p.RestaurantID),
		c.setName(p.Name),
		c.setTransport(p.Transport),
		c.setStatus(p.Status),
		c.setPosition(p.Position),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks if the Courier was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() int64 {
	return c.id
}

func (c *Courier) UserID() int64 {
	return c.userID
}

func (c *Courier) RestaurantID() int64 {
	return c.restaurantID
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Phone() string {
	return c.phone
}

// MaskedName is the name shown on public pages.
func (c *Courier) MaskedName() string {
	return MaskName(c.name)
}

// MaskedPhone is the phone shown on public pages.
func (c *Courier) MaskedPhone() string {
	return MaskPhone(c.phone)
}

func (c *Courier) IsActive() bool {
	return c.active
}

func (c *Courier) Status() Status {
	return c.status
}

func (c *Courier) Transport() Transport {
	return c.transport
}

// Position returns the last reported position, nil if the courier never reported one.
func (c *Courier) Position() *Position {
	if c.position == nil {
		return nil
	}
	p := *c.position
	return &p
}

func (c *Courier) LastSeenAt() *time.Time {
	return c.lastSeenAt
}

// IsDispatchCandidate reports whether the courier may receive one more order.
//
// Parameters:
//   - activeOrders: orders currently assigned to the courier in a non-terminal status
//   - maxConcurrent: the per-courier cap
//
// Returns true for an active account that is available, or busy with fewer
// than maxConcurrent active orders.
func (c *Courier) IsDispatchCandidate(activeOrders, maxConcurrent int) bool {
	if !c.active {
		return false
	}
	switch c.status {
	case Available:
		return true
	case Busy:
		return activeOrders < maxConcurrent
	default:
		return false
	}
}

// UpdatePosition overwrites the position snapshot and the last seen time.
//
// Returns:
//   - ErrCourierInactive for a deactivated account
//   - ErrPositionIsNotConstructed for a zero position
func (c *Courier) UpdatePosition(p Position, seenAt time.Time) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.active {
		return ErrCourierInactive
	}
	if err := c.setPosition(&p); err != nil {
		return err
	}

	c.lastSeenAt = &seenAt
	return nil
}

func (c *Courier) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	c.id = id
	return nil
}

func (c *Courier) setUserID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("user_id")
	}
	c.userID = id
	return nil
}

func (c *Courier) setRestaurantID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("restaurant_id")
	}
	c.restaurantID = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setTransport(t Transport) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.transport = t
	return nil
}

func (c *Courier) setStatus(s Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	c.status = s
	return nil
}

func (c *Courier) setPosition(p *Position) error {
	if p == nil {
		c.position = nil
		return nil
	}
	if err := p.Validate(); err != nil {
		return err
	}
	pos := *p
	c.position = &pos
	return nil
}
