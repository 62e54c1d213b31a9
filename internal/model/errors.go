package model

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports malformed input to an item or bin constructor.
type ValidationError struct {
	Entity string // "item" or "bin"
	Name   string
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Entity != "" && e.Name != "":
		return fmt.Sprintf("invalid %s %q: %s %s", e.Entity, e.Name, e.Field, e.Reason)
	case e.Entity != "":
		return fmt.Sprintf("invalid %s: %s %s", e.Entity, e.Field, e.Reason)
	default:
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
}

// Is makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
