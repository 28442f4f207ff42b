package tracker

import (
	"errors"
	"fmt"
)

// ErrVehicleNotFound covers both an unknown vehicle identifier and a
// vehicle that is not assigned to the calling operator. The two cases
// are deliberately indistinguishable to callers so an unauthorised
// operator cannot probe for vehicle existence.
var ErrVehicleNotFound = errors.New("vehicle not found")

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}
