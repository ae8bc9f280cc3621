// SPDX-License-Identifier: MIT

package tensor

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

const instrumentationName = "github.com/katalvlaran/cfpq/tensor"

// Metrics for saturation runs.
var (
	iterationsTotal metric.Int64Counter
	factsTotal      metric.Int64Counter
	solveLatency    metric.Float64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.Meter(instrumentationName)
		var err error

		iterationsTotal, err = meter.Int64Counter(
			"cfpq_tensor_iterations_total",
			metric.WithDescription("Total saturation rounds run by the tensor solver"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		factsTotal, err = meter.Int64Counter(
			"cfpq_tensor_facts_total",
			metric.WithDescription("Total nonterminal facts derived by the tensor solver"),
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

// startSpan opens a solver span; the tracer is resolved per call so a
// provider installed later is honored.
func startSpan(ctx context.Context, name string, nodes, edges, grammarStates int) (context.Context, trace.Span) {
	return otel.Tracer(instrumentationName).Start(ctx, name,
		trace.WithAttributes(
			attribute.Int("cfpq.graph.nodes", nodes),
			attribute.Int("cfpq.graph.edges", edges),
			attribute.Int("cfpq.grammar.states", grammarStates),
		),
	)
}

// finishSpan records the outcome on span.
func finishSpan(span trace.Span, res *Result, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetAttributes(
		attribute.Int("cfpq.pairs", res.Pairs.Len()),
		attribute.Int("cfpq.tensor.iterations", res.Iterations),
		attribute.Int("cfpq.tensor.facts", res.Facts),
	)
}

// recordRound records one saturation round.
func recordRound(ctx context.Context, newFacts int) {
	if err := initMetrics(); err != nil {
		return
	}
	iterationsTotal.Add(ctx, 1)
	factsTotal.Add(ctx, int64(newFacts))
}

// recordSolve records the duration of a finished run.
func recordSolve(ctx context.Context, op string, d time.Duration, success bool) {
	if err := initMetrics(); err != nil {
		return
	}
	solveLatency.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("algorithm", op),
		attribute.Bool("success", success),
	))
}
