package mapper

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFilterValue is matched by every *InvalidFilterValueError.
	ErrInvalidFilterValue = errors.New("invalid filter value")

	// ErrUnknownView is returned for a view id outside ViewIDs.
	ErrUnknownView = errors.New("unknown view")
)

// InvalidFilterValueError reports a selection value outside the dataset's observed domain
type InvalidFilterValueError struct {
	Field string
	Value any
}

func (e *InvalidFilterValueError) Error() string {
	return fmt.Sprintf("invalid filter value for %s: %v", e.Field, e.Value)
}

// Is makes errors.Is(err, ErrInvalidFilterValue) hold
func (e *InvalidFilterValueError) Is(target error) bool {
	return target == ErrInvalidFilterValue
}
