package server

import (
	"context"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/paymesh/session-gate/internal/config"
)

var (
	decisionCounter metric.Int64Counter
	durationHist    metric.Int64Histogram
)

func initMeters(ctx context.Context, cfg *config.Config) error {
	meter := otel.Meter(
		"paymesh/"+cfg.Application.Name,
		metric.WithInstrumentationVersion(otel.Version()),
	)

	var err error

	decisionCounter, err = meter.Int64Counter(
		"gate.decision_count",
		metric.WithDescription("Gate decisions by outcome"),
		metric.WithUnit("decision"),
	)
	if err != nil {
		return oops.In("HTTP Server").
			WithContext(ctx).
			Wrapf(err, "creating decision_count meter")
	}

	durationHist, err = meter.Int64Histogram(
		"gate.evaluate_duration",
		metric.WithDescription("End to end duration of a gate evaluation"),
		metric.WithUnit("milliseconds"),
	)
	if err != nil {
		return oops.In("HTTP Server").
			WithContext(ctx).
			Wrapf(err, "creating evaluate_duration meter")
	}

	return nil
}
