package payment

// Request is a payment submission as it arrives from callers. Its tags are
// enforced by validation.Validate; payment_amount applies DefaultBounds.
type Request struct {
	ID       string  `json:"id" validate:"omitempty,uuid"`
	Amount   float64 `json:"amount" validate:"payment_amount"`
	Currency string  `json:"currency,omitempty" validate:"omitempty,len=3,uppercase"`
}
