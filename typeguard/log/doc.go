// Package log defines the logging interface and typed logging fields used by typeguard.
//
// GoLogger writes to the standard library logger and backs assertions built
// without one. Adapters such as the zap package implement Logger so applications can keep
// assertion diagnostics consistent with their own logging backend.
package log
