// Package deref strips pointers and interfaces from reflected values without
// looping on self-referential chains.
package deref

import "reflect"

// Value follows non-nil interfaces and pointers until it reaches a value of
// any other kind, a nil reference, or an address it has already visited.
//
// cyclic is true only in the last case; the returned value is then the
// pointer that closes the cycle.
func Value(rv reflect.Value) (out reflect.Value, cyclic bool) {
	var seen map[uintptr]struct{}

	for rv.IsValid() {
		switch rv.Kind() {
		case reflect.Interface:
			if rv.IsNil() {
				return rv, false
			}

			rv = rv.Elem()
		case reflect.Pointer:
			if rv.IsNil() {
				return rv, false
			}

			addr := rv.Pointer()
			if _, ok := seen[addr]; ok {
				return rv, true
			}

			if seen == nil {
				seen = make(map[uintptr]struct{}, 2)
			}

			seen[addr] = struct{}{}
			rv = rv.Elem()
		default:
			return rv, false
		}
	}

	return rv, false
}

// Indirect is Value without the cycle flag. Callers that branch on the kind
// of the result treat a cyclic chain as the pointer it stopped on.
func Indirect(rv reflect.Value) reflect.Value {
	out, _ := Value(rv)
	return out
}
