package kernel

import (
	"github.com/google/uuid"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrUUIDIsNotConstructed is returned when a zero UUID is used.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID or UUIDFromString")

// UUID wraps uuid.UUID with constructor guarding, so the nil UUID read from a
// malformed request never passes for a real identifier.
type UUID struct {
	value uuid.UUID
	guard guard.ConstructorGuard
}

// NewUUID returns a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{value: uuid.New(), guard: guard.NewConstructorGuard()}
}

// UUIDFromString parses s in any format accepted by uuid.Parse.
// The nil UUID is rejected.
func UUIDFromString(s string) (UUID, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("uuid", err)
	}
	if v == uuid.Nil {
		return UUID{}, errs.NewValueIsInvalidError("uuid")
	}

	return UUID{value: v, guard: guard.NewConstructorGuard()}, nil
}

// String returns the canonical lowercase form.
func (u UUID) String() string {
	return u.value.String()
}

// IsEqual compares two identifiers by value.
func (u UUID) IsEqual(other UUID) bool {
	return u.value == other.value
}

// Validate reports ErrUUIDIsNotConstructed for a zero UUID.
func (u UUID) Validate() error {
	return u.guard.Validate(ErrUUIDIsNotConstructed)
}
