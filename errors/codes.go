package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Payment amount errors
const (
	// ErrCodeInvalidAmount indicates the amount is not a number.
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	// ErrCodeAmountBelowMinimum indicates the amount is under the lower boundary.
	ErrCodeAmountBelowMinimum ErrorCode = "AMOUNT_BELOW_MINIMUM"
	// ErrCodeAmountAboveMaximum indicates the amount is at or over the upper boundary.
	ErrCodeAmountAboveMaximum ErrorCode = "AMOUNT_ABOVE_MAXIMUM"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// IsRetryableCode returns true if the error code indicates a retryable error.
// None of the validation codes are; retrying the same amount yields the same verdict.
func IsRetryableCode(code ErrorCode) bool {
	return false
}
