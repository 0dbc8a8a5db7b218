//go:build unit

package token

import (
	"math"
	"math/big"
	"regexp"
	"testing"
	"time"
	"unsafe"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type account struct {
	ID      string
	Balance int64
}

type status string

type loopPointer *loopPointer

func classificationCases() []struct {
	name  string
	value any
	want  Token
} {
	var (
		nilAccount *account
		nilMap     map[string]int
		nilFunc    func()
		nilChan    chan int
		nilSlice   []int
		nilIface   error
		now        = time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
		count      = 3
		selfRef    any
		loop       loopPointer
	)

	selfRef = &selfRef
	loop = &loop

	return []struct {
		name  string
		value any
		want  Token
	}{
		{name: "untyped nil", value: nil, want: Undefined},
		{name: "nil interface variable", value: nilIface, want: Undefined},
		{name: "undefined sentinel", value: UndefinedValue, want: Undefined},
		{name: "nil pointer", value: nilAccount, want: Null},
		{name: "nil map", value: nilMap, want: Null},
		{name: "nil func", value: nilFunc, want: Null},
		{name: "nil chan", value: nilChan, want: Null},
		{name: "nil slice is an empty array", value: nilSlice, want: Array},
		{name: "slice", value: []int{1, 2, 3}, want: Array},
		{name: "fixed array", value: [2]string{"a", "b"}, want: Array},
		{name: "byte slice", value: []byte("raw"), want: Array},
		{name: "date", value: now, want: Date},
		{name: "date pointer", value: &now, want: Date},
		{name: "zero date still classifies as date", value: time.Time{}, want: Date},
		{name: "regex", value: regexp.MustCompile(`^a+$`), want: Regex},
		{name: "map", value: map[string]int{"a": 1}, want: Object},
		{name: "struct", value: account{ID: "acc"}, want: Object},
		{name: "struct pointer", value: &account{ID: "acc"}, want: Object},
		{name: "chan", value: make(chan int), want: Object},
		{name: "unsafe pointer", value: unsafe.Pointer(&count), want: Object},
		{name: "bool", value: true, want: Boolean},
		{name: "NaN", value: math.NaN(), want: NaN},
		{name: "float32 NaN", value: float32(math.NaN()), want: NaN},
		{name: "complex NaN", value: complex(math.NaN(), 1), want: NaN},
		{name: "int", value: 5, want: Number},
		{name: "uint8", value: uint8(7), want: Number},
		{name: "float", value: 1.5, want: Number},
		{name: "infinity", value: math.Inf(1), want: Number},
		{name: "int pointer", value: &count, want: Number},
		{name: "decimal", value: decimal.RequireFromString("10.25"), want: Number},
		{name: "bigint", value: big.NewInt(42), want: BigInt},
		{name: "string", value: "foo", want: String},
		{name: "named string", value: status("active"), want: String},
		{name: "symbol", value: NewSymbol("id"), want: Symbol},
		{name: "function", value: func(int) string { return "" }, want: Function},
		{name: "self-referential interface", value: selfRef, want: Object},
		{name: "self-referential pointer type", value: loop, want: Object},
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	for _, tt := range classificationCases() {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, Classify(tt.value))
		})
	}
}

func TestClassifyIsTotalAndIdempotent(t *testing.T) {
	t.Parallel()

	for _, tt := range classificationCases() {
		first := Classify(tt.value)
		second := Classify(tt.value)

		assert.True(t, first.Valid(), "%s classified outside the token set", tt.name)
		assert.Equal(t, first, second, "%s is not idempotent", tt.name)
	}
}

func TestClassifyNestedInterfaces(t *testing.T) {
	t.Parallel()

	values := []any{nil, (*account)(nil), 1, "x"}

	assert.Equal(t, Array, Classify(values))
	assert.Equal(t, Undefined, Classify(values[0]))
	assert.Equal(t, Null, Classify(values[1]))
}

func TestArrayIsNotObject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Array, Classify([]int{1, 2, 3}))
	assert.NotEqual(t, Object, Classify([]int{1, 2, 3}))
}
