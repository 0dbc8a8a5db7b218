// Package safe provides panic-free helpers for dynamic regex compilation and decimal math.
//
// Functions that can fail return explicit errors instead of panicking, so refinement
// checks fed with caller-supplied patterns or divisors fail predictably.
package safe
