// Package validator wraps the go-playground/validator library with
// thread-safe initialization and standardized error formatting, so domain
// packages can validate tagged structs and return consistent errors.
package validator

import (
	"errors"
	"fmt"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

var (
	// validate is the singleton go-playground validator instance.
	validate *gvalidator.Validate

	// initOnce guards one-time initialization of the singleton.
	initOnce sync.Once
)

// ErrValidation is the first error in the chain returned when one or more
// validation rules are violated. Callers match it with errors.Is.
var ErrValidation = errors.New("validation error")

// errStringFormat is the template used to describe individual field errors.
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Init initializes the validator singleton, enabling required-field
// validation on structs. Safe to call multiple times; only the first call
// takes effect.
func Init() {
	initOnce.Do(func() {
		validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	})
}

// formatError converts a raw validator error into a multi-error chain whose
// first entry is always ErrValidation, followed by one formatted message per
// violated field. Non-validation errors pass through unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks the given struct against its validation tags. It returns
// nil when every field passes, or an error chain rooted at ErrValidation
// otherwise.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
