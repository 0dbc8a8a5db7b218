package assert

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/netip"
	"reflect"
	"regexp"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/LerianStudio/lib-typeguard/typeguard/format"
	"github.com/LerianStudio/lib-typeguard/typeguard/safe"
	"github.com/LerianStudio/lib-typeguard/typeguard/token"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	errNegativeLength    = errors.New("length must not be negative")
	errNotNumber         = errors.New("argument must be a number")
	errNotFiniteNumber   = errors.New("argument must be a finite number")
	errUnsupportedRegexp = errors.New("pattern must be a string or *regexp.Regexp")
)

// Subject is the immutable result of a successful type assertion.
type Subject struct {
	asserter *Asserter
	ctx      context.Context
	value    any
	token    token.Token
	message  string
	// inert subjects come from failures swallowed under FailureLog; their
	// refinements are skipped.
	inert bool
	err   *AssertionError
}

// Value returns the asserted value.
func (s Subject) Value() any { return s.value }

// Token returns the classified token.
func (s Subject) Token() token.Token { return s.token }

// Message returns the caller message attached to every refinement failure.
func (s Subject) Message() string { return s.message }

// Err returns the failure that produced an inert Subject, or nil.
func (s Subject) Err() error {
	if s.err == nil {
		return nil
	}

	return s.err
}

// Strings returns the string refinements. On any other token every
// refinement fails with KindInvalidRefinementArgument.
func (s Subject) Strings() StringChain {
	return StringChain{s.open(token.String)}
}

// Numbers returns the number refinements.
func (s Subject) Numbers() NumberChain {
	return NumberChain{s.open(token.Number)}
}

// Arrays returns the array refinements.
func (s Subject) Arrays() ArrayChain {
	return ArrayChain{s.open(token.Array)}
}

func (s Subject) open(want token.Token) chain {
	c := chain{subject: s}
	if s.inert || s.token == want {
		return c
	}

	c.err = s.asserter.fail(s.ctx, failure{
		kind:      KindInvalidRefinementArgument,
		assertion: "Refine",
		message:   messageOrDefault(s.message),
		expected:  want.String(),
		received:  s.token.String(),
		pairs:     []any{"reason", "no refinements for token " + s.token.String()},
	}).result(s.asserter)

	return c
}

// chain carries the first error of a refinement sequence.
type chain struct {
	subject Subject
	err     error
}

// Err returns the first refinement error, or nil.
func (c chain) Err() error { return c.err }

// refinement describes one check. argErr marks a malformed argument; pass is
// only evaluated when argErr is nil.
type refinement struct {
	name     string
	argument any
	argErr   error
	pass     func() bool
}

func (c chain) apply(r refinement) chain {
	if c.err != nil || c.subject.inert {
		return c
	}

	s := c.subject
	pairs := []any{"refinement", r.name}

	if r.argument != nil {
		pairs = append(pairs, "argument", format.Diagnostic(r.argument))
	}

	if r.argErr != nil {
		c.err = s.asserter.fail(s.ctx, failure{
			kind:      KindInvalidRefinementArgument,
			assertion: r.name,
			message:   messageOrDefault(s.message),
			pairs:     append(pairs, "reason", r.argErr.Error()),
			cause:     r.argErr,
		}).result(s.asserter)

		return c
	}

	if r.pass() {
		return c
	}

	c.err = s.asserter.fail(s.ctx, failure{
		kind:      KindRefinementFailed,
		assertion: r.name,
		message:   messageOrDefault(s.message),
		expected:  s.token.String(),
		value:     format.Diagnostic(s.value),
		pairs:     pairs,
	}).result(s.asserter)

	return c
}

// StringChain refines a string subject. Lengths count runes.
type StringChain struct{ chain }

func (c StringChain) str() string { return stringOf(c.subject.value) }

func (c StringChain) length(name string, n int, ok func(int) bool) StringChain {
	return StringChain{c.apply(refinement{
		name:     name,
		argument: n,
		argErr:   lengthErr(n),
		pass:     func() bool { return ok(utf8.RuneCountInString(c.str())) },
	})}
}

// MaxLength requires at most n runes.
func (c StringChain) MaxLength(n int) StringChain {
	return c.length("MaxLength", n, func(l int) bool { return l <= n })
}

// MinLength requires at least n runes.
func (c StringChain) MinLength(n int) StringChain {
	return c.length("MinLength", n, func(l int) bool { return l >= n })
}

// ExactLength requires exactly n runes.
func (c StringChain) ExactLength(n int) StringChain {
	return c.length("ExactLength", n, func(l int) bool { return l == n })
}

// IsEmail requires a local@domain.tld shape.
func (c StringChain) IsEmail() StringChain {
	return StringChain{c.apply(refinement{
		name: "IsEmail",
		pass: func() bool { return emailPattern.MatchString(c.str()) },
	})}
}

// IsUUID requires a UUID in any form accepted by uuid.Parse.
func (c StringChain) IsUUID() StringChain {
	return StringChain{c.apply(refinement{
		name: "IsUUID",
		pass: func() bool {
			_, err := uuid.Parse(c.str())
			return err == nil
		},
	})}
}

// Matches requires the string to match pattern, given either as a string
// compiled through safe.Compile or as a *regexp.Regexp.
func (c StringChain) Matches(pattern any) StringChain {
	re, err := patternOf(pattern)

	return StringChain{c.apply(refinement{
		name:     "Matches",
		argument: pattern,
		argErr:   err,
		pass:     func() bool { return re.MatchString(c.str()) },
	})}
}

// IsBase64 requires padded standard base64.
func (c StringChain) IsBase64() StringChain {
	return StringChain{c.apply(refinement{
		name: "IsBase64",
		pass: func() bool {
			s := c.str()
			if s == "" {
				return false
			}

			_, err := base64.StdEncoding.DecodeString(s)

			return err == nil
		},
	})}
}

// IsIP requires an IPv4 or IPv6 address.
func (c StringChain) IsIP() StringChain {
	return StringChain{c.apply(refinement{
		name: "IsIP",
		pass: func() bool {
			_, err := netip.ParseAddr(c.str())
			return err == nil
		},
	})}
}

func patternOf(pattern any) (*regexp.Regexp, error) {
	switch p := pattern.(type) {
	case *regexp.Regexp:
		if p == nil {
			return nil, errUnsupportedRegexp
		}

		return p, nil
	case string:
		return safe.Compile(p)
	default:
		return nil, fmt.Errorf("%w: got '%s'", errUnsupportedRegexp, token.Classify(pattern))
	}
}

// NumberChain refines a number subject. Arguments must classify as number.
type NumberChain struct{ chain }

func (c NumberChain) num() number {
	n, _ := toNumber(c.subject.value)
	return n
}

func (c NumberChain) compareTo(name string, arg any, ok func(int) bool) NumberChain {
	bound, err := numberArg(arg)

	return NumberChain{c.apply(refinement{
		name:     name,
		argument: arg,
		argErr:   err,
		pass: func() bool {
			n, valid := toNumber(c.subject.value)
			return valid && ok(n.cmp(bound))
		},
	})}
}

// LessThan requires value < n.
func (c NumberChain) LessThan(n any) NumberChain {
	return c.compareTo("LessThan", n, func(cmp int) bool { return cmp < 0 })
}

// AtMost requires value <= n.
func (c NumberChain) AtMost(n any) NumberChain {
	return c.compareTo("AtMost", n, func(cmp int) bool { return cmp <= 0 })
}

// GreaterThan requires value > n.
func (c NumberChain) GreaterThan(n any) NumberChain {
	return c.compareTo("GreaterThan", n, func(cmp int) bool { return cmp > 0 })
}

// AtLeast requires value >= n.
func (c NumberChain) AtLeast(n any) NumberChain {
	return c.compareTo("AtLeast", n, func(cmp int) bool { return cmp >= 0 })
}

// IsMultipleOf requires value to be an exact multiple of n. n must be finite
// and non-zero.
func (c NumberChain) IsMultipleOf(n any) NumberChain {
	divisor, err := numberArg(n)
	if err == nil && !divisor.finite() {
		err = errNotFiniteNumber
	}

	if err == nil && divisor.sign() == 0 {
		err = safe.ErrDivisionByZero
	}

	return NumberChain{c.apply(refinement{
		name:     "IsMultipleOf",
		argument: n,
		argErr:   err,
		pass: func() bool {
			value := c.num()
			if !value.finite() {
				return false
			}

			ok, err := safe.IsMultiple(value.dec, divisor.dec)

			return err == nil && ok
		},
	})}
}

// IsInteger requires a finite value without a fractional part.
func (c NumberChain) IsInteger() NumberChain {
	return NumberChain{c.apply(refinement{
		name: "IsInteger",
		pass: func() bool {
			n := c.num()
			return n.finite() && n.dec.IsInteger()
		},
	})}
}

// IsPositive requires value > 0.
func (c NumberChain) IsPositive() NumberChain {
	return NumberChain{c.apply(refinement{
		name: "IsPositive",
		pass: func() bool {
			_, valid := toNumber(c.subject.value)
			return valid && c.num().sign() > 0
		},
	})}
}

// IsNegative requires value < 0.
func (c NumberChain) IsNegative() NumberChain {
	return NumberChain{c.apply(refinement{
		name: "IsNegative",
		pass: func() bool {
			_, valid := toNumber(c.subject.value)
			return valid && c.num().sign() < 0
		},
	})}
}

func numberArg(arg any) (number, error) {
	if token.Classify(arg) != token.Number {
		return number{}, fmt.Errorf("%w: got '%s'", errNotNumber, token.Classify(arg))
	}

	n, ok := toNumber(arg)
	if !ok {
		return number{}, errNotNumber
	}

	return n, nil
}

// ArrayChain refines an array subject.
type ArrayChain struct{ chain }

func (c ArrayChain) size() int {
	rv := indirect(reflect.ValueOf(c.subject.value))
	if !rv.IsValid() {
		return 0
	}

	return rv.Len()
}

func (c ArrayChain) length(name string, n int, ok func(int) bool) ArrayChain {
	return ArrayChain{c.apply(refinement{
		name:     name,
		argument: n,
		argErr:   lengthErr(n),
		pass:     func() bool { return ok(c.size()) },
	})}
}

// MinLength requires at least n elements.
func (c ArrayChain) MinLength(n int) ArrayChain {
	return c.length("MinLength", n, func(l int) bool { return l >= n })
}

// MaxLength requires at most n elements.
func (c ArrayChain) MaxLength(n int) ArrayChain {
	return c.length("MaxLength", n, func(l int) bool { return l <= n })
}

// ExactLength requires exactly n elements.
func (c ArrayChain) ExactLength(n int) ArrayChain {
	return c.length("ExactLength", n, func(l int) bool { return l == n })
}

func lengthErr(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", errNegativeLength, n)
	}

	return nil
}
