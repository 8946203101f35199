package vizconfig

import (
	"errors"
	"fmt"
)

// ErrPropertyNotAvailable is matched by every PropertyNotAvailableError.
var ErrPropertyNotAvailable = errors.New("property not available")

// PropertyNotAvailableError is returned when a property is absent or holds
// a different kind than the one requested.
type PropertyNotAvailableError struct {
	Name string
}

func (e *PropertyNotAvailableError) Error() string {
	return fmt.Sprintf("property %q not available", e.Name)
}

func (e *PropertyNotAvailableError) Unwrap() error {
	return ErrPropertyNotAvailable
}

func notAvailable(name string) error {
	return &PropertyNotAvailableError{Name: name}
}
