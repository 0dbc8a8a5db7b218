package token

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownOperator is returned by ParseOperator for unsupported operators.
var ErrUnknownOperator = errors.New("unknown relational operator")

// Operator is one of the six supported relational or equality operators.
// The zero value is not a valid operator.
type Operator uint8

const (
	invalidOperator Operator = iota
	Less
	LessOrEqual
	GreaterOrEqual
	Greater
	StrictEqual
	StrictNotEqual
)

var operatorSymbols = [...]string{
	invalidOperator: "invalid",
	Less:            "<",
	LessOrEqual:     "<=",
	GreaterOrEqual:  ">=",
	Greater:         ">",
	StrictEqual:     "===",
	StrictNotEqual:  "!==",
}

// String returns the operator symbol.
func (op Operator) String() string {
	if int(op) < len(operatorSymbols) {
		return operatorSymbols[op]
	}

	return fmt.Sprintf("Operator(%d)", uint8(op))
}

// Valid reports whether op is one of the supported operators.
func (op Operator) Valid() bool {
	return op >= Less && op <= StrictNotEqual
}

// Ordering reports whether op needs ordered operands.
func (op Operator) Ordering() bool {
	return op >= Less && op <= Greater
}

// ParseOperator returns the operator written as s.
func ParseOperator(s string) (Operator, error) {
	for op := Less; op <= StrictNotEqual; op++ {
		if operatorSymbols[op] == s {
			return op, nil
		}
	}

	return invalidOperator, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
}

// Operators returns every supported operator in canonical order.
func Operators() []Operator {
	return []Operator{Less, LessOrEqual, GreaterOrEqual, Greater, StrictEqual, StrictNotEqual}
}

// ExpectedOperators renders the operator set as a "'<' | '<='" list.
func ExpectedOperators() string {
	symbols := make([]string, 0, len(operatorSymbols)-1)
	for _, op := range Operators() {
		symbols = append(symbols, "'"+op.String()+"'")
	}

	return strings.Join(symbols, " | ")
}
