package payment

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kbukum/paycheck/errors"
)

const (
	// LowerBoundary is the smallest valid amount (inclusive).
	LowerBoundary = 0
	// UpperBoundary is the first invalid amount above the range (exclusive).
	UpperBoundary = 100_000
)

// DefaultBounds is the range used by ValidateAmount.
var DefaultBounds = Bounds{Lower: LowerBoundary, Upper: UpperBoundary}

// Reason identifies why an amount was rejected.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonBelowLower Reason = "below_lower"
	ReasonAboveUpper Reason = "above_upper"
	ReasonNotANumber Reason = "not_a_number"
)

// Result is the verdict for a single amount.
type Result struct {
	Valid        bool   `json:"valid"`
	ErrorMessage string `json:"errorMessage,omitempty"`

	reason Reason
	value  float64
	bounds Bounds
}

// Reason returns why the amount was rejected, or ReasonNone when valid.
func (r Result) Reason() Reason { return r.reason }

// Err converts an invalid Result into an *errors.AppError. It returns nil
// for a valid Result.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	code := errors.ErrCodeInvalidAmount
	switch r.reason {
	case ReasonBelowLower:
		code = errors.ErrCodeAmountBelowMinimum
	case ReasonAboveUpper:
		code = errors.ErrCodeAmountAboveMaximum
	}
	value := r.value
	if math.IsNaN(value) {
		// NaN cannot be encoded in JSON details.
		value = 0
	}
	return errors.AmountOutOfRange(code, r.ErrorMessage, value, r.bounds.Lower, r.bounds.Upper)
}

// Bounds is a half-open amount range [Lower, Upper).
type Bounds struct {
	Lower float64 `yaml:"lower" mapstructure:"lower"`
	Upper float64 `yaml:"upper" mapstructure:"upper"`
}

// Check reports whether the bounds describe a usable, non-empty range.
func (b Bounds) Check() error {
	if math.IsNaN(b.Lower) || math.IsInf(b.Lower, 0) {
		return fmt.Errorf("payment: lower bound must be finite (got %v)", b.Lower)
	}
	if math.IsNaN(b.Upper) || math.IsInf(b.Upper, 0) {
		return fmt.Errorf("payment: upper bound must be finite (got %v)", b.Upper)
	}
	if b.Lower >= b.Upper {
		return fmt.Errorf("payment: lower bound %s must be less than upper bound %s",
			formatBound(b.Lower), formatBound(b.Upper))
	}
	return nil
}

// Validate checks value against the bounds.
func (b Bounds) Validate(value float64) Result {
	res := Result{Valid: true, value: value, bounds: b}
	switch {
	case math.IsNaN(value):
		res.Valid, res.reason = false, ReasonNotANumber
		res.ErrorMessage = "Payment amount must be a number"
	case value < b.Lower:
		res.Valid, res.reason = false, ReasonBelowLower
		res.ErrorMessage = "Payment amount can't be less than " + formatBound(b.Lower)
	case value >= b.Upper:
		res.Valid, res.reason = false, ReasonAboveUpper
		res.ErrorMessage = "Payment amount has to be less than " + formatBound(b.Upper)
	}
	return res
}

// ValidateAmount checks value against DefaultBounds.
func ValidateAmount(value float64) Result {
	return DefaultBounds.Validate(value)
}

// formatBound renders a bound the way a person would write it: 100000, not 1e+05.
func formatBound(b float64) string {
	return strconv.FormatFloat(b, 'f', -1, 64)
}
