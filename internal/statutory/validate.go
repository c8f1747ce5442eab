package statutory

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError identifies the input field that failed validation.
// Calculators reject invalid numeric inputs up front rather than clamping.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

func nonNegative(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return &ValidationError{Field: field, Reason: "must not be negative"}
	}
	return nil
}

func positive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return &ValidationError{Field: field, Reason: "must be positive"}
	}
	return nil
}
