package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validatorInstance returns the shared validator, reporting field paths by
// their config file key rather than the Go field name.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return strings.ToLower(f.Name)
			}
			return name
		})
	})
	return validate
}

// Validate checks every setting against its constraints.
// The returned error is a ValidationErrors listing each failed setting.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	result := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		result = append(result, toValidationError(fe))
	}
	return result
}

// toValidationError converts a validator field error into a ValidationError.
func toValidationError(fe validator.FieldError) *ValidationError {
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	ve := &ValidationError{
		Path:  path,
		Value: fe.Value(),
	}

	switch fe.Tag() {
	case "required":
		ve.Code = ErrCodeRequiredMissing
		ve.Message = "is required"
	case "oneof":
		ve.Code = ErrCodeInvalidEnum
		ve.Message = fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gte", "min":
		ve.Code = ErrCodeOutOfRange
		ve.Message = fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		ve.Code = ErrCodeOutOfRange
		ve.Message = fmt.Sprintf("must be greater than %s", fe.Param())
	case "lte", "max":
		ve.Code = ErrCodeOutOfRange
		ve.Message = fmt.Sprintf("must be at most %s", fe.Param())
	case "lt":
		ve.Code = ErrCodeOutOfRange
		ve.Message = fmt.Sprintf("must be less than %s", fe.Param())
	default:
		ve.Code = ErrCodeTypeMismatch
		ve.Message = fmt.Sprintf("failed %q check", fe.Tag())
	}
	return ve
}
