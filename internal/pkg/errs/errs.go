package errs

import (
	"errors"
	"strings"
)

var (
	// ErrObjectNotFound is the sentinel for missing aggregates and records.
	ErrObjectNotFound = errors.New("object not found")
	// ErrValueIsInvalid is the sentinel for malformed values.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange is the sentinel for values outside their allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrValueIsRequired is the sentinel for missing mandatory values.
	ErrValueIsRequired = errors.New("value is required")
)

var sanitizer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// sanitize flattens user supplied text so error messages stay on one log line.
func sanitize(s string) string {
	return sanitizer.Replace(s)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return msg + " (cause: " + sanitize(cause.Error()) + ")"
}
