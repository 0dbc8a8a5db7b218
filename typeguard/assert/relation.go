package assert

import (
	"math/big"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/LerianStudio/lib-typeguard/typeguard/internal/deref"
	"github.com/LerianStudio/lib-typeguard/typeguard/token"
)

// evaluate applies op to left and right. Ordering across different or
// unordered tokens is false; any NaN operand makes every operator except
// StrictNotEqual false.
func evaluate(left any, op token.Operator, right any) bool {
	lt, rt := token.Classify(left), token.Classify(right)

	switch op {
	case token.StrictEqual:
		return strictEqual(left, right, lt, rt)
	case token.StrictNotEqual:
		return !strictEqual(left, right, lt, rt)
	}

	c, ok := compare(left, right, lt, rt)
	if !ok {
		return false
	}

	switch op {
	case token.Less:
		return c < 0
	case token.LessOrEqual:
		return c <= 0
	case token.GreaterOrEqual:
		return c >= 0
	case token.Greater:
		return c > 0
	default:
		return false
	}
}

// orderable reports whether ordering operators are defined between two tokens.
func orderable(lt, rt token.Token) bool {
	numeric := func(t token.Token) bool { return t == token.Number || t == token.BigInt }

	switch {
	case numeric(lt) && numeric(rt):
		return true
	case lt != rt:
		return false
	default:
		return lt == token.String || lt == token.Date
	}
}

func compare(left, right any, lt, rt token.Token) (int, bool) {
	if !orderable(lt, rt) {
		return 0, false
	}

	switch lt {
	case token.String:
		return strings.Compare(stringOf(left), stringOf(right)), true
	case token.Date:
		l, _ := timeOf(left)
		r, _ := timeOf(right)

		return l.Compare(r), true
	}

	if lb, ok := bigIntOf(left); ok {
		if rb, ok := bigIntOf(right); ok {
			return lb.Cmp(rb), true
		}
	}

	ln, ok := toNumber(left)
	if !ok {
		return 0, false
	}

	rn, ok := toNumber(right)
	if !ok {
		return 0, false
	}

	return ln.cmp(rn), true
}

func strictEqual(left, right any, lt, rt token.Token) bool {
	if lt != rt || lt == token.NaN {
		return false
	}

	switch lt {
	case token.Undefined, token.Null:
		return true
	case token.Number, token.BigInt:
		if c, ok := compare(left, right, lt, rt); ok {
			return c == 0
		}

		return sameValue(left, right)
	case token.String:
		return stringOf(left) == stringOf(right)
	case token.Date:
		l, _ := timeOf(left)
		r, _ := timeOf(right)

		return l.Equal(r)
	case token.Regex:
		l, lok := left.(*regexp.Regexp)
		r, rok := right.(*regexp.Regexp)

		return lok && rok && l == r
	default:
		return sameValue(left, right)
	}
}

// sameValue is == for comparable values and reference identity for slices,
// maps, funcs and channels.
func sameValue(left, right any) bool {
	lv, rv := indirect(reflect.ValueOf(left)), indirect(reflect.ValueOf(right))
	if !lv.IsValid() || !rv.IsValid() || lv.Type() != rv.Type() {
		return false
	}

	switch lv.Kind() {
	case reflect.Slice:
		return lv.Pointer() == rv.Pointer() && lv.Len() == rv.Len()
	case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return lv.Pointer() == rv.Pointer()
	}

	if !lv.Comparable() || !rv.Comparable() {
		return false
	}

	return lv.Equal(rv)
}

// indirect strips pointers and interfaces. A nil along the way yields the
// invalid Value; a self-referential chain stops at the repeated pointer.
func indirect(rv reflect.Value) reflect.Value {
	rv = deref.Indirect(rv)
	if rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
		return reflect.Value{}
	}

	return rv
}

// stringOf returns the string held by v, including named string types and
// pointers to strings.
func stringOf(v any) string {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Kind() != reflect.String {
		return ""
	}

	return rv.String()
}

func timeOf(v any) (time.Time, bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return time.Time{}, false
	}

	return valueAs[time.Time](rv)
}

func bigIntOf(v any) (*big.Int, bool) {
	if b, ok := v.(*big.Int); ok {
		return b, b != nil
	}

	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Type() != bigIntType {
		return nil, false
	}

	if rv.CanAddr() {
		return rv.Addr().Interface().(*big.Int), true
	}

	b, ok := valueAs[big.Int](rv)

	return &b, ok
}
