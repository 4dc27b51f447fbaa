// Package validation provides input validation for paycheck requests.
//
// It supports struct tag validation (using the validator library, with a
// payment_amount tag registered) and programmatic validation with error
// collection.
//
// # Struct Tag Validation
//
//	type Request struct {
//	    ID     string  `json:"id" validate:"omitempty,uuid"`
//	    Amount float64 `json:"amount" validate:"payment_amount"`
//	}
//	err := validation.Validate(req)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Amount("amount", amount, payment.DefaultBounds)
//	err := v.Validate()
package validation
