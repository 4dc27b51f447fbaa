// Package payment validates payment amounts against a half-open range.
//
// An amount is valid when lower <= amount < upper. The default range is
// [0, 100000). Validation never fails with an error; the verdict and the
// human-readable reason are returned in a Result.
//
//	res := payment.ValidateAmount(99999.999) // {Valid: true}
//	res = payment.ValidateAmount(100000)     // {Valid: false, ErrorMessage: "Payment amount has to be less than 100000"}
//
// Checker wraps the same rule with logging, metrics and tracing for
// long-running callers.
package payment
