package metrics

import (
	"context"
	"errors"
	"maps"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrNilCounter is returned when a Counter has no instrument.
var ErrNilCounter = errors.New("counter instrument is nil")

// Counter records increments with a fixed attribute set. Counters are
// immutable; With returns a copy.
type Counter struct {
	instrument metric.Int64Counter
	attrs      []attribute.KeyValue
}

// With returns a copy of c that also records labels. Labels are added in key
// order.
func (c *Counter) With(labels map[string]string) *Counter {
	if c == nil {
		return nil
	}

	attrs := slices.Grow(slices.Clone(c.attrs), len(labels))
	for _, key := range slices.Sorted(maps.Keys(labels)) {
		attrs = append(attrs, attribute.String(key, labels[key]))
	}

	return &Counter{instrument: c.instrument, attrs: attrs}
}

// Add records n.
func (c *Counter) Add(ctx context.Context, n int64) error {
	if c == nil || c.instrument == nil {
		return ErrNilCounter
	}

	c.instrument.Add(ctx, n, metric.WithAttributes(c.attrs...))

	return nil
}

// Inc records one.
func (c *Counter) Inc(ctx context.Context) error {
	return c.Add(ctx, 1)
}
