// Package zap adapts go.uber.org/zap to the typeguard log.Logger interface.
//
// New builds the logger assert.FromContext falls back to when a context
// carries none. Events keep structured fields, carry trace_id and span_id
// when the context holds a span, and are teed to the OpenTelemetry log bridge.
package zap
