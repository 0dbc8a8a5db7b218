package metrics

import (
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// ErrNilMeter indicates that a nil OTEL meter was provided.
var ErrNilMeter = errors.New("metric meter cannot be nil")

// Metric describes a counter instrument.
type Metric struct {
	Name        string
	Description string
	Unit        string
}

func (m Metric) options() []metric.Int64CounterOption {
	var opts []metric.Int64CounterOption

	if m.Description != "" {
		opts = append(opts, metric.WithDescription(m.Description))
	}

	if m.Unit != "" {
		opts = append(opts, metric.WithUnit(m.Unit))
	}

	return opts
}

// Factory creates counters on first use and reuses them by name afterwards.
// It is safe for concurrent use.
type Factory struct {
	meter metric.Meter

	mu       sync.RWMutex
	counters map[string]metric.Int64Counter
}

// NewFactory creates a Factory on meter.
func NewFactory(meter metric.Meter) (*Factory, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}

	return &Factory{meter: meter, counters: make(map[string]metric.Int64Counter)}, nil
}

// NewNopFactory returns a Factory on OpenTelemetry's no-op meter.
func NewNopFactory() *Factory {
	factory, _ := NewFactory(noop.NewMeterProvider().Meter("nop"))

	return factory
}

// Counter returns the counter named by m, creating it on the first call.
// Description and unit are taken from the first call for a name.
func (f *Factory) Counter(m Metric) (*Counter, error) {
	instrument, err := f.instrument(m)
	if err != nil {
		return nil, err
	}

	return &Counter{instrument: instrument}, nil
}

func (f *Factory) instrument(m Metric) (metric.Int64Counter, error) {
	f.mu.RLock()
	instrument, ok := f.counters[m.Name]
	f.mu.RUnlock()

	if ok {
		return instrument, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if instrument, ok := f.counters[m.Name]; ok {
		return instrument, nil
	}

	instrument, err := f.meter.Int64Counter(m.Name, m.options()...)
	if err != nil {
		return nil, fmt.Errorf("create counter %q: %w", m.Name, err)
	}

	f.counters[m.Name] = instrument

	return instrument, nil
}
