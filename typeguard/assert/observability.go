package assert

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	constant "github.com/LerianStudio/lib-typeguard/typeguard/constants"
	"github.com/LerianStudio/lib-typeguard/typeguard/log"
	"github.com/LerianStudio/lib-typeguard/typeguard/opentelemetry/metrics"
)

// AssertionSpanEventName is the event name used when recording assertion failures on spans.
const AssertionSpanEventName = constant.EventAssertionFailed

// assertionFailedMetric defines the metric for counting failed assertions.
var assertionFailedMetric = metrics.Metric{
	Name:        constant.MetricAssertionFailedTotal,
	Unit:        "1",
	Description: "Total number of failed assertions",
}

type telemetry struct {
	metrics    *metrics.Factory
	reporter   Reporter
	logger     log.Logger
	production bool
}

func (asserter *Asserter) telemetry() telemetry {
	if asserter == nil {
		return telemetry{}
	}

	return telemetry{
		metrics:    asserter.metrics,
		reporter:   asserter.reporter,
		logger:     asserter.logger,
		production: asserter.Config().Production(),
	}
}

func recordAssertionObservability(ctx context.Context, sinks telemetry, entry *AssertionError, stack []byte) {
	recordAssertionMetric(ctx, sinks, entry)
	recordAssertionToSpan(ctx, entry, stack)
	reportAssertion(ctx, sinks.reporter, entry)
}

// recordAssertionMetric increments assertion_failed_total with labels.
// A nil factory is a no-op.
func recordAssertionMetric(ctx context.Context, sinks telemetry, entry *AssertionError) {
	if sinks.metrics == nil {
		return
	}

	counter, err := sinks.metrics.Counter(assertionFailedMetric)
	if err != nil {
		sinks.logError(ctx, "failed to create assertion metric counter", err)
		return
	}

	if err := counter.With(assertionTags(entry)).Inc(ctx); err != nil {
		sinks.logError(ctx, "failed to record assertion metric", err)
	}
}

func assertionTags(entry *AssertionError) map[string]string {
	return map[string]string{
		"component": constant.SanitizeMetricLabel(entry.Component),
		"operation": constant.SanitizeMetricLabel(entry.Operation),
		"assertion": constant.SanitizeMetricLabel(entry.Assertion),
		"kind":      constant.SanitizeMetricLabel(entry.Kind.String()),
	}
}

func recordAssertionToSpan(ctx context.Context, entry *AssertionError, stack []byte) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrAssertionName, entry.Assertion),
		attribute.String(constant.AttrAssertionKind, entry.Kind.String()),
		attribute.String(constant.AttrAssertionMessage, entry.Message),
	}

	if entry.Component != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionComponent, entry.Component))
	}

	if entry.Operation != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionOperation, entry.Operation))
	}

	if entry.Expected != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionExpected, entry.Expected))
	}

	if entry.Received != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionReceived, entry.Received))
	}

	if len(stack) > 0 {
		attrs = append(attrs, attribute.String(constant.AttrAssertionStack, string(stack)))
	}

	span.AddEvent(AssertionSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(entry)
	span.SetStatus(codes.Error, assertionStatusMessage(entry.Component, entry.Operation))
}

func reportAssertion(ctx context.Context, reporter Reporter, entry *AssertionError) {
	if reporter == nil {
		return
	}

	reporter.CaptureException(ctx, entry, assertionTags(entry))
}

func assertionStatusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return fmt.Sprintf("assertion failed in %s/%s", component, operation)
	case component != "":
		return "assertion failed in " + component
	case operation != "":
		return "assertion failed in " + operation
	default:
		return "assertion failed"
	}
}

// logError reports a telemetry failure through the Asserter's logger. In
// production only the error type is logged.
func (sinks telemetry) logError(ctx context.Context, msg string, err error) {
	logger := sinks.logger
	if logger == nil {
		logger = stderrLogger
	}

	if !logger.Enabled(log.LevelError) {
		return
	}

	field := log.Err(err)
	if sinks.production {
		field = log.String("error_type", fmt.Sprintf("%T", err))
	}

	logger.Log(ctx, log.LevelError, msg, field)
}
