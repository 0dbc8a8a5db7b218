package token

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownToken is returned by Parse for names outside the token set.
var ErrUnknownToken = errors.New("unknown type token")

// Token is one member of the extended type-category enumeration.
// The zero value is Unknown, which is not a member of the set.
type Token uint8

// Token values. Order follows the canonical listing used in diagnostics.
const (
	Unknown Token = iota
	Undefined
	Null
	Array
	Date
	Object
	Boolean
	NaN
	Number
	BigInt
	String
	Symbol
	Function
	Regex
)

var tokenNames = [...]string{
	Unknown:   "unknown",
	Undefined: "undefined",
	Null:      "null",
	Array:     "array",
	Date:      "date",
	Object:    "object",
	Boolean:   "boolean",
	NaN:       "NaN",
	Number:    "number",
	BigInt:    "bigint",
	String:    "string",
	Symbol:    "symbol",
	Function:  "function",
	Regex:     "regex",
}

// tokensByName provides O(1) lookup for Parse.
var tokensByName = map[string]Token{
	"undefined": Undefined,
	"null":      Null,
	"array":     Array,
	"date":      Date,
	"object":    Object,
	"boolean":   Boolean,
	"NaN":       NaN,
	"number":    Number,
	"bigint":    BigInt,
	"string":    String,
	"symbol":    Symbol,
	"function":  Function,
	"regex":     Regex,
}

// String returns the canonical token name.
func (t Token) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}

	return fmt.Sprintf("Token(%d)", uint8(t))
}

// Valid reports whether t is a member of the closed token set.
func (t Token) Valid() bool {
	return t >= Undefined && t <= Regex
}

// Parse returns the token named s. Names are case-sensitive ("NaN", not "nan").
func Parse(s string) (Token, error) {
	if t, ok := tokensByName[s]; ok {
		return t, nil
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownToken, s)
}

// All returns every valid token in canonical order.
func All() []Token {
	all := make([]Token, 0, int(Regex))
	for t := Undefined; t <= Regex; t++ {
		all = append(all, t)
	}

	return all
}

// Expected renders the token set as a "'a' | 'b'" list for usage diagnostics.
func Expected() string {
	names := make([]string, 0, int(Regex))
	for _, t := range All() {
		names = append(names, "'"+t.String()+"'")
	}

	return strings.Join(names, " | ")
}
