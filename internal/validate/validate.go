package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/catalog/catalog.go
//   type Destination struct {
//       ...
//       Price  string  `yaml:"price" validate:"required,price"`
//       Rating float64 `yaml:"rating" validate:"gte=0,lte=5"`
//   }
//
// Custom tags registered here: price ("$1,299") and year ("2024").

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // Compiled once, shared by the custom tags.
var (
	priceRe = regexp.MustCompile(`^\$[0-9]{1,3}(,[0-9]{3})*$`)
	yearRe  = regexp.MustCompile(`^[0-9]{4}$`)
)

// validatorInstance is a shared validator for the application.
// It is initialized once and reused to avoid repeated allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		_ = validatorInst.RegisterValidation("price", func(fl validator.FieldLevel) bool {
			return priceRe.MatchString(fl.Field().String())
		})
		_ = validatorInst.RegisterValidation("year", func(fl validator.FieldLevel) bool {
			return yearRe.MatchString(fl.Field().String())
		})
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
