package schemarules

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors maps attribute names to their validation errors. It is
// an alias for [validation.Errors] from ozzo-validation and implements the
// error interface with a JSON-friendly string representation. Model-level
// failures key under [RootKey].
type ValidationErrors = validation.Errors

// RootKey keys model-level errors in [ValidationErrors].
const RootKey = "__root__"

// asValidationErrors shapes an arbitrary rule error into the map form:
// already-keyed errors pass through, anything else files under [RootKey].
func asValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return ValidationErrors{RootKey: err}
}
