// Package observability wires OpenTelemetry tracing and metrics.
//
// Providers always install locally so spans and instruments are live; they
// export over OTLP/HTTP only when an endpoint is configured.
//
//	tp, err := observability.InitTracer(ctx, cfg)
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, cfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("paycheck"))
//	metrics.RecordValidation(ctx, "rejected", "above_upper", time.Since(start))
package observability
