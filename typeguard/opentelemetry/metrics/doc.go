// Package metrics creates and caches OpenTelemetry counters by name.
//
// The assertion engine counts failed assertions per component, operation,
// assertion and failure kind through a Factory.
package metrics
