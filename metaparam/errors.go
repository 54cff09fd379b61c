package metaparam

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by errors returned when Save cannot find a field input.
var ErrNotFound = errors.New("metaparam: element not found")

// FieldNotFoundError reports the field whose input is missing from a container.
type FieldNotFoundError struct {
	Field string
	Class string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("metaparam: %s input (.%s) not found in container", e.Field, e.Class)
}

func (e *FieldNotFoundError) Unwrap() error {
	return ErrNotFound
}
