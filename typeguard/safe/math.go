package safe

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrDivisionByZero is returned when a divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// Remainder returns numerator mod denominator with a zero check.
//
// The sign of the result follows the numerator, matching Go's % operator.
func Remainder(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return decimal.Zero, ErrDivisionByZero
	}

	return numerator.Mod(denominator), nil
}

// IsMultiple reports whether numerator is an exact multiple of denominator.
func IsMultiple(numerator, denominator decimal.Decimal) (bool, error) {
	rem, err := Remainder(numerator, denominator)
	if err != nil {
		return false, err
	}

	return rem.IsZero(), nil
}
