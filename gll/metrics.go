// SPDX-License-Identifier: MIT

package gll

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/katalvlaran/cfpq/gll"

var (
	descriptorsTotal metric.Int64Counter
	solveLatency     metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.Meter(instrumentationName)
		var err error

		descriptorsTotal, err = meter.Int64Counter(
			"cfpq_gll_descriptors_total",
			metric.WithDescription("Total descriptors processed by the GSS solver"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		solveLatency, err = meter.Float64Histogram(
			"cfpq_solve_duration_seconds",
			metric.WithDescription("Duration of path query solves"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func startRunSpan(ctx context.Context, starts int) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, "gll.Run",
		trace.WithAttributes(attribute.Int("cfpq.gll.start_nodes", starts)),
	)
}

func finishRunSpan(span trace.Span, res *Result, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		attribute.Int("cfpq.pairs", res.Pairs.Len()),
		attribute.Int("cfpq.gll.descriptors", res.Descriptors),
		attribute.Int("cfpq.gll.stack_nodes", res.StackNodes),
	)
}

func recordRun(ctx context.Context, descriptors int, d time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	descriptorsTotal.Add(ctx, int64(descriptors))
	solveLatency.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("algorithm", "gll"),
		attribute.Bool("success", success),
	))
}
