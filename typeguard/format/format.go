package format

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/LerianStudio/lib-typeguard/typeguard/internal/deref"
	"github.com/LerianStudio/lib-typeguard/typeguard/token"
	"github.com/shopspring/decimal"
)

const (
	// MaxDepth bounds Deep recursion.
	MaxDepth = 32
	// MaxNodes bounds how many containers one rendering expands. Shared
	// subtrees are rendered once per reference, so depth alone does not bound
	// the work.
	MaxNodes = 4096
	// MaxValueLength is the longest rendering Diagnostic returns before truncating.
	MaxValueLength = 200

	arrayPlaceholder  = "[...]"
	objectPlaceholder = "{...}"
	separator         = ", "
)

// Deep renders v, recursing into nested arrays and objects.
func Deep(v any) string {
	return newWalker(MaxDepth).render(reflect.ValueOf(v), 0)
}

// Shallow renders v, printing nested arrays and objects as [...] and {...}.
func Shallow(v any) string {
	return newWalker(1).render(reflect.ValueOf(v), 0)
}

// Diagnostic is the rendering used in assertion errors and logs: Shallow, then Truncate.
func Diagnostic(v any) string {
	return Truncate(Shallow(v), MaxValueLength)
}

// Truncate shortens s to at most limit bytes, cutting on a rune boundary and
// noting how much was dropped.
func Truncate(s string, limit int) string {
	if limit < 0 || len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "... (truncated " + strconv.Itoa(len(s)-cut) + " chars)"
}

// walker carries the state of one rendering: the depth limit, the number of
// containers expanded so far, and the references on the current path. A
// reference already on the path is a cycle and renders as a placeholder.
type walker struct {
	limit int
	nodes int
	path  map[identity]struct{}
}

type identity struct {
	addr uintptr
	typ  reflect.Type
}

func newWalker(limit int) *walker {
	return &walker{limit: limit, path: make(map[identity]struct{})}
}

func (w *walker) render(rv reflect.Value, depth int) string {
	tok := token.ClassifyValue(rv)
	base := deref.Indirect(rv)

	switch tok {
	case token.Undefined:
		return "undefined"
	case token.Null:
		return "null"
	case token.Array:
		return w.expand(rv, base, depth, arrayPlaceholder, w.renderArray)
	case token.Object:
		return w.expand(rv, base, depth, objectPlaceholder, w.renderObject)
	case token.String:
		return "'" + base.String() + "'"
	case token.Symbol:
		return "Symbol(...)"
	case token.NaN:
		return "NaN"
	case token.Number:
		return renderNumber(base)
	case token.BigInt:
		return renderBigInt(base) + "n"
	case token.Boolean:
		return strconv.FormatBool(base.Bool())
	case token.Date:
		return renderDate(base)
	case token.Regex:
		return renderRegex(base)
	case token.Function:
		return base.Type().String()
	default:
		return renderFallback(base)
	}
}

func (w *walker) expand(rv, base reflect.Value, depth int, placeholder string, fill func(reflect.Value, int) string) string {
	if depth >= w.limit || w.nodes >= MaxNodes {
		return placeholder
	}

	if id, ok := identityOf(rv, base); ok {
		if _, onPath := w.path[id]; onPath {
			return placeholder
		}

		w.path[id] = struct{}{}
		defer delete(w.path, id)
	}

	w.nodes++

	return fill(base, depth)
}

// identityOf returns the reference a container is reached through: the
// outermost pointer, or the map or slice header itself.
func identityOf(rv, base reflect.Value) (identity, bool) {
	for rv.IsValid() && rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}

	if rv.IsValid() && rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return identity{addr: rv.Pointer(), typ: rv.Type()}, true
	}

	switch base.Kind() {
	case reflect.Map:
		return identity{addr: base.Pointer(), typ: base.Type()}, !base.IsNil()
	case reflect.Slice:
		return identity{addr: base.Pointer(), typ: base.Type()}, base.Len() > 0
	default:
		return identity{}, false
	}
}

func (w *walker) renderArray(rv reflect.Value, depth int) string {
	parts := make([]string, 0, rv.Len())
	for i := range rv.Len() {
		parts = append(parts, w.render(rv.Index(i), depth+1))
	}

	return "[" + strings.Join(parts, separator) + "]"
}

func (w *walker) renderObject(rv reflect.Value, depth int) string {
	switch rv.Kind() {
	case reflect.Map:
		return w.renderMap(rv, depth)
	case reflect.Struct:
		return w.renderStruct(rv, depth)
	case reflect.Pointer:
		// Only a self-referential pointer chain classifies as an object
		// without reaching a map or struct.
		return objectPlaceholder
	default:
		// chan and unsafe.Pointer carry no introspectable entries.
		return rv.Type().String()
	}
}

func (w *walker) renderMap(rv reflect.Value, depth int) string {
	type entry struct {
		key   string
		value string
	}

	entries := make([]entry, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{
			key:   renderKey(iter.Key()),
			value: w.render(iter.Value(), depth+1),
		})
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, e.key+": "+e.value)
	}

	return "{" + strings.Join(parts, separator) + "}"
}

func (w *walker) renderStruct(rv reflect.Value, depth int) string {
	rt := rv.Type()
	parts := make([]string, 0, rt.NumField())

	for i := range rt.NumField() {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		parts = append(parts, field.Name+": "+w.render(rv.Field(i), depth+1))
	}

	return "{" + strings.Join(parts, separator) + "}"
}

func renderKey(key reflect.Value) string {
	key = deref.Indirect(key)
	if key.Kind() == reflect.String {
		return key.String()
	}

	if key.CanInterface() {
		return fmt.Sprint(key.Interface())
	}

	return key.Type().String()
}

func renderNumber(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, 128)
	}

	if d, ok := interfaceOf[decimal.Decimal](rv); ok {
		return d.String()
	}

	return renderFallback(rv)
}

// formatFloat avoids exponent notation for ordinary magnitudes, so 1e6 prints as 1000000.
func formatFloat(f float64, bits int) string {
	if math.IsInf(f, 0) || math.Abs(f) >= 1e21 || (f != 0 && math.Abs(f) < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}

	return strconv.FormatFloat(f, 'f', -1, bits)
}

func renderBigInt(rv reflect.Value) string {
	if rv.CanAddr() {
		if n, ok := rv.Addr().Interface().(*big.Int); ok {
			return n.String()
		}
	}

	if n, ok := interfaceOf[big.Int](rv); ok {
		return n.String()
	}

	return renderFallback(rv)
}

func renderDate(rv reflect.Value) string {
	t, ok := interfaceOf[time.Time](rv)
	if !ok {
		return renderFallback(rv)
	}

	if t.IsZero() {
		return "Invalid Date"
	}

	return t.Format(time.RFC3339Nano)
}

func renderRegex(rv reflect.Value) string {
	if rv.CanAddr() {
		if re, ok := rv.Addr().Interface().(*regexp.Regexp); ok {
			return "/" + re.String() + "/"
		}
	}

	if re, ok := interfaceOf[regexp.Regexp](rv); ok {
		return "/" + re.String() + "/"
	}

	return renderFallback(rv)
}

func renderFallback(rv reflect.Value) string {
	if !rv.IsValid() {
		return "undefined"
	}

	if rv.CanInterface() {
		return fmt.Sprintf("%v", rv.Interface())
	}

	return rv.Type().String()
}

func interfaceOf[T any](rv reflect.Value) (T, bool) {
	var zero T

	if !rv.IsValid() || !rv.CanInterface() {
		return zero, false
	}

	v, ok := rv.Interface().(T)

	return v, ok
}
