package attrs

import (
	"errors"
	"fmt"
)

// ErrMissingAttribute is the uniform missing-attribute condition: no declared
// field, no lazy-computed value, and no interception logic could resolve the
// name. Callers outside the core cannot distinguish interception-backed
// fields from ordinary ones except through this one signal.
var ErrMissingAttribute = errors.New("missing attribute")

// MissingAttribute wraps ErrMissingAttribute with the unresolved name.
func MissingAttribute(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingAttribute, name)
}

// ErrReadOnlyField is returned when writing a derived field that declares no
// assignment logic.
var ErrReadOnlyField = errors.New("read-only field")

// ValidationError reports a rejected write on a declared field. The write is
// atomic: when validation fails, the field keeps the value it had immediately
// before the call. Validation is pure and deterministic, so retrying with the
// same value always fails identically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}
