package constant

// TelemetrySDKName identifies this library in OTEL telemetry resource attributes.
const TelemetrySDKName = "lib-typeguard/opentelemetry"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
const MaxMetricLabelLength = 64

// AttrPrefixAssertion is the prefix for assertion event attributes.
const AttrPrefixAssertion = "assertion."

// Telemetry attribute keys attached to assertion span events.
const (
	AttrAssertionName      = AttrPrefixAssertion + "name"
	AttrAssertionKind      = AttrPrefixAssertion + "kind"
	AttrAssertionMessage   = AttrPrefixAssertion + "message"
	AttrAssertionComponent = AttrPrefixAssertion + "component"
	AttrAssertionOperation = AttrPrefixAssertion + "operation"
	AttrAssertionExpected  = AttrPrefixAssertion + "expected"
	AttrAssertionReceived  = AttrPrefixAssertion + "received"
	AttrAssertionStack     = AttrPrefixAssertion + "stack"
)

// MetricAssertionFailedTotal is the counter metric for failed assertions.
const MetricAssertionFailedTotal = "assertion_failed_total"

// EventAssertionFailed is the span event name for assertion failures.
const EventAssertionFailed = "assertion.failed"

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
