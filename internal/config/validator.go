package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lvsearch/internal/solver"
)

// ErrInvalidConfig marks configuration that fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validator validates configuration values.
type Validator interface {
	Validate(cfg *Config) error
}

// validatorImpl implements Validator using go-playground/validator.
type validatorImpl struct {
	validate *validator.Validate
}

// NewValidator creates a Validator.
// The algorithm and heuristic tags accept exactly what the solver registry
// resolves.
func NewValidator() Validator {
	v := validator.New()
	_ = v.RegisterValidation("algorithm", func(fl validator.FieldLevel) bool {
		_, err := solver.ParseAlgorithm(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("heuristic", func(fl validator.FieldLevel) bool {
		_, err := solver.ParseHeuristic(fl.Field().String())
		return err == nil
	})

	return &validatorImpl{validate: v}
}

// Validate checks struct tags and returns one message per failing field.
func (v *validatorImpl) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("%w: nil", ErrInvalidConfig)
	}

	err := v.validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatValidationError(e))
	}

	return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(msgs, "\n  - "))
}

// formatValidationError formats a single validation error with field path and details.
func formatValidationError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s (got: %v)", field, e.Param(), e.Value())
	case "algorithm":
		names := make([]string, 0, len(solver.Algorithms()))
		for _, a := range solver.Algorithms() {
			names = append(names, string(a))
			names = append(names, solver.Aliases(a)...)
		}
		return fmt.Sprintf("%s must be one of [%s] (got: %v)", field, strings.Join(names, " "), e.Value())
	case "heuristic":
		return fmt.Sprintf("%s must be one of [%s] (got: %v)", field, strings.Join(solver.Heuristics(), " "), e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got: %v)", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation '%s' (got: %v)", field, e.Tag(), e.Value())
	}
}

// formatFieldPath converts a validator namespace to the YAML key path.
// Example: "Config.Search.MaxExpansions" -> "search.max_expansions"
func formatFieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) <= 1 {
		return namespace
	}
	out := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		out = append(out, camelToSnake(p))
	}

	return strings.Join(out, ".")
}

// camelToSnake converts CamelCase to snake_case.
func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteRune('_')
		}
		b.WriteRune(r)
	}

	return strings.ToLower(b.String())
}
