package payment

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/kbukum/paycheck/logger"
	"github.com/kbukum/paycheck/observability"
)

const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

// Checker validates amounts against fixed bounds and reports each verdict
// to the logger, metrics and tracer. It is safe for concurrent use.
type Checker struct {
	bounds  Bounds
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger. Defaults to the "payment" component logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Checker) { c.log = l }
}

// WithMetrics enables metric recording. Nil disables it.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Checker) { c.metrics = m }
}

// NewChecker builds a Checker for the given bounds.
func NewChecker(bounds Bounds, opts ...Option) (*Checker, error) {
	if err := bounds.Check(); err != nil {
		return nil, err
	}
	c := &Checker{bounds: bounds}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get("payment")
	}
	return c, nil
}

// Bounds returns the range the checker enforces.
func (c *Checker) Bounds() Bounds { return c.bounds }

// Check validates value. The Result is identical to Bounds.Validate.
func (c *Checker) Check(ctx context.Context, value float64) Result {
	start := time.Now()
	ctx, span := observability.StartSpan(ctx, "payment.validate")
	defer span.End()

	res := c.bounds.Validate(value)

	outcome := OutcomeAccepted
	if !res.Valid {
		outcome = OutcomeRejected
	}
	span.SetAttributes(
		attribute.Float64("payment.amount", value),
		attribute.Bool("payment.valid", res.Valid),
	)
	if !res.Valid {
		span.SetStatus(codes.Error, res.ErrorMessage)
		c.log.WithContext(ctx).Debug("payment amount rejected", logger.Fields(
			logger.FieldAmount, value,
			logger.FieldReason, string(res.reason),
		))
	}

	if c.metrics != nil {
		c.metrics.RecordValidation(ctx, outcome, string(res.reason), time.Since(start))
	}
	return res
}
