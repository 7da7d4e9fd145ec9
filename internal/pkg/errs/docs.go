// Package errs holds the typed validation and lookup errors of the dispatch
// service.
//
// Each error struct wraps one sentinel:
//   - ValueIsRequiredError wraps ErrValueIsRequired (a mandatory value is missing)
//   - ValueIsInvalidError wraps ErrValueIsInvalid (a value has the wrong shape)
//   - ValueIsOutOfRangeError wraps ErrValueIsOutOfRange (a number is outside its bounds)
//   - ObjectNotFoundError wraps ErrObjectNotFound (a lookup by id found nothing)
//
// Constructors come in pairs, NewXxxError and NewXxxErrorWithCause, and the
// cause is included in the message. Callers match with errors.Is against the
// sentinel; the HTTP adapter maps sentinels to status codes and never looks
// at the concrete struct.
package errs
