package token

import (
	"math"
	"math/big"
	"reflect"
	"regexp"
	"time"

	"github.com/LerianStudio/lib-typeguard/typeguard/internal/deref"
	"github.com/LerianStudio/lib-typeguard/typeguard/internal/nilcheck"
	"github.com/shopspring/decimal"
)

var (
	timeType      = reflect.TypeFor[time.Time]()
	regexType     = reflect.TypeFor[regexp.Regexp]()
	bigIntType    = reflect.TypeFor[big.Int]()
	decimalType   = reflect.TypeFor[decimal.Decimal]()
	symbolType    = reflect.TypeFor[SymbolValue]()
	undefinedType = reflect.TypeFor[undefinedValue]()
)

// Classify maps v to exactly one token. It is pure and total: values that fall
// through every rule return Unknown instead of panicking.
//
// Non-nil pointers are dereferenced first, so *time.Time is a Date and
// *regexp.Regexp is a Regex. The zero time.Time still classifies as Date;
// rejecting it is the assertion engine's job.
func Classify(v any) Token {
	if v == nil {
		return Undefined
	}

	return ClassifyValue(reflect.ValueOf(v))
}

// ClassifyValue is Classify for callers already holding a reflect.Value,
// such as formatters walking container elements.
func ClassifyValue(rv reflect.Value) Token {
	rv, tok, done := unwrap(rv)
	if done {
		return tok
	}

	rt := rv.Type()
	if rt == undefinedType {
		return Undefined
	}

	// Ordered, first match wins: categories overlap under plain reflection.
	switch {
	case isNumericKind(rv.Kind()) || rt == decimalType:
		if isNaN(rv) {
			return NaN
		}

		return Number
	case rv.Kind() == reflect.String:
		return String
	case rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array:
		return Array
	case nilcheck.Reference(rv):
		return Null
	case rt == timeType:
		return Date
	case rt == regexType:
		return Regex
	}

	return nativeToken(rv, rt)
}

// unwrap strips interfaces and pointers. A nil interface is absent (Undefined);
// a nil pointer is a typed null; a pointer chain that loops back on itself is
// an opaque Object.
func unwrap(rv reflect.Value) (reflect.Value, Token, bool) {
	rv, cyclic := deref.Value(rv)

	switch {
	case cyclic:
		return rv, Object, true
	case !rv.IsValid():
		return rv, Undefined, true
	case rv.Kind() == reflect.Interface:
		return rv, Undefined, true
	case rv.Kind() == reflect.Pointer:
		return rv, Null, true
	default:
		return rv, Unknown, false
	}
}

func nativeToken(rv reflect.Value, rt reflect.Type) Token {
	switch {
	case rv.Kind() == reflect.Bool:
		return Boolean
	case rt == bigIntType:
		return BigInt
	case rt == symbolType:
		return Symbol
	case rv.Kind() == reflect.Func:
		return Function
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Chan, reflect.UnsafePointer:
		return Object
	default:
		return Unknown
	}
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

func isNaN(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.IsNaN(rv.Float())
	case reflect.Complex64, reflect.Complex128:
		c := rv.Complex()
		return math.IsNaN(real(c)) || math.IsNaN(imag(c))
	default:
		return false
	}
}
