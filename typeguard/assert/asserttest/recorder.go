// Package asserttest provides helpers for inspecting assertion outcomes in tests.
package asserttest

import (
	"sync/atomic"

	"github.com/LerianStudio/lib-typeguard/typeguard/assert"
	"github.com/LerianStudio/lib-typeguard/typeguard/token"
)

// Recorder keeps the most recent successful observation. Concurrent
// assertions sharing a Recorder race on it: the last write wins.
type Recorder struct {
	last  atomic.Pointer[assert.Observation]
	count atomic.Int64
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observer returns the callback to pass to assert.WithObserver.
func (r *Recorder) Observer() assert.Observer {
	return func(observation assert.Observation) {
		r.last.Store(&observation)
		r.count.Add(1)
	}
}

// Last returns the most recent observation and whether one was recorded.
func (r *Recorder) Last() (assert.Observation, bool) {
	observation := r.last.Load()
	if observation == nil {
		return assert.Observation{}, false
	}

	return *observation, true
}

// LastToken returns the token of the most recent successful type assertion,
// or token.Unknown when none was recorded.
func (r *Recorder) LastToken() token.Token {
	observation, _ := r.Last()
	return observation.Token
}

// Count returns how many successes were observed.
func (r *Recorder) Count() int64 {
	return r.count.Load()
}

// Reset clears the recorded state.
func (r *Recorder) Reset() {
	r.last.Store(nil)
	r.count.Store(0)
}

// Options returns the assert options that enable test mode and attach r.
func (r *Recorder) Options() []assert.Option {
	cfg := assert.DefaultConfig()
	cfg.Environment = assert.EnvironmentTest
	cfg.TestMode = true

	return []assert.Option{assert.WithConfig(cfg), assert.WithObserver(r.Observer())}
}
