package assert

import (
	"math"
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

var (
	decimalType = reflect.TypeFor[decimal.Decimal]()
	bigIntType  = reflect.TypeFor[big.Int]()
)

// number is an ordered numeric value. inf is -1 or +1 for infinities, in
// which case dec is unused.
type number struct {
	dec decimal.Decimal
	inf int
}

// toNumber converts any numeric kind, decimal.Decimal or big.Int to a number.
// It fails for NaN, complex values with an imaginary part, and non-numbers.
func toNumber(v any) (number, bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return number{}, false
	}

	switch rv.Type() {
	case decimalType:
		d, ok := valueAs[decimal.Decimal](rv)
		return number{dec: d}, ok
	case bigIntType:
		b, ok := valueAs[big.Int](rv)
		if !ok {
			return number{}, false
		}

		return number{dec: decimal.NewFromBigInt(&b, 0)}, true
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return number{dec: decimal.NewFromInt(rv.Int())}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return number{dec: decimal.NewFromBigInt(new(big.Int).SetUint64(rv.Uint()), 0)}, true
	case reflect.Float32, reflect.Float64:
		return fromFloat(rv.Float(), rv.Kind() == reflect.Float32)
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		if imag(c) != 0 {
			return number{}, false
		}

		return fromFloat(real(c), rv.Kind() == reflect.Complex64)
	default:
		return number{}, false
	}
}

func fromFloat(f float64, single bool) (number, bool) {
	switch {
	case math.IsNaN(f):
		return number{}, false
	case math.IsInf(f, 1):
		return number{inf: 1}, true
	case math.IsInf(f, -1):
		return number{inf: -1}, true
	case single:
		return number{dec: decimal.NewFromFloat32(float32(f))}, true
	default:
		return number{dec: decimal.NewFromFloat(f)}, true
	}
}

// valueAs copies rv into a T. rv always originates from an interface value
// handed to the engine, so it is never a read-only unexported field.
func valueAs[T any](rv reflect.Value) (T, bool) {
	out, ok := rv.Interface().(T)
	return out, ok
}

func (n number) finite() bool {
	return n.inf == 0
}

func (n number) cmp(other number) int {
	if n.inf != 0 || other.inf != 0 {
		switch {
		case n.inf == other.inf:
			return 0
		case n.inf > other.inf:
			return 1
		default:
			return -1
		}
	}

	return n.dec.Cmp(other.dec)
}

func (n number) sign() int {
	if n.inf != 0 {
		return n.inf
	}

	return n.dec.Sign()
}
