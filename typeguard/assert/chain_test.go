//go:build unit

package assert

import (
	"context"
	"math"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-typeguard/typeguard/safe"
	"github.com/LerianStudio/lib-typeguard/typeguard/token"
)

func mustSubject(t *testing.T, asserter *Asserter, value any, expected token.Token) Subject {
	t.Helper()

	subject, err := asserter.Type(context.Background(), value, expected, "field is invalid")
	require.NoError(t, err)

	return subject
}

func TestStringChain(t *testing.T) {
	t.Parallel()

	asserter := newQuietAsserter()

	tests := []struct {
		name   string
		value  string
		refine func(StringChain) StringChain
		kind   Kind
	}{
		{"email ok", "a@b.com", StringChain.IsEmail, KindUnknown},
		{"email without tld", "foo@bar", StringChain.IsEmail, KindRefinementFailed},
		{"max length in runes", "héllo", func(c StringChain) StringChain { return c.MaxLength(5) }, KindUnknown},
		{"max length exceeded", "héllo", func(c StringChain) StringChain { return c.MaxLength(4) }, KindRefinementFailed},
		{"min length", "abc", func(c StringChain) StringChain { return c.MinLength(3) }, KindUnknown},
		{"min length short", "ab", func(c StringChain) StringChain { return c.MinLength(3) }, KindRefinementFailed},
		{"exact length", "日本語", func(c StringChain) StringChain { return c.ExactLength(3) }, KindUnknown},
		{"negative length", "abc", func(c StringChain) StringChain { return c.MaxLength(-1) }, KindInvalidRefinementArgument},
		{"uuid", "9b2b4a5e-3f4d-4c4e-9d59-6f0c3b0f4a11", StringChain.IsUUID, KindUnknown},
		{"not uuid", "9b2b4a5e", StringChain.IsUUID, KindRefinementFailed},
		{"pattern string", "aaa", func(c StringChain) StringChain { return c.Matches(`^a+$`) }, KindUnknown},
		{"pattern regexp", "abc", func(c StringChain) StringChain { return c.Matches(regexp.MustCompile(`^a+$`)) }, KindRefinementFailed},
		{"pattern invalid", "abc", func(c StringChain) StringChain { return c.Matches(`(`) }, KindInvalidRefinementArgument},
		{"pattern wrong type", "abc", func(c StringChain) StringChain { return c.Matches(42) }, KindInvalidRefinementArgument},
		{"base64", "aGVsbG8=", StringChain.IsBase64, KindUnknown},
		{"base64 unpadded", "aGVsbG8", StringChain.IsBase64, KindRefinementFailed},
		{"base64 empty", "", StringChain.IsBase64, KindRefinementFailed},
		{"ipv4", "127.0.0.1", StringChain.IsIP, KindUnknown},
		{"ipv6", "::1", StringChain.IsIP, KindUnknown},
		{"bad ip", "999.1.1.1", StringChain.IsIP, KindRefinementFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.refine(mustSubject(t, asserter, tt.value, token.String).Strings()).Err()
			if tt.kind == KindUnknown {
				require.NoError(t, err)
				return
			}

			entry := requireKind(t, err, tt.kind)
			assert.Equal(t, "field is invalid", entry.Message)
		})
	}
}

func TestStringChain_InvalidPatternWrapsCause(t *testing.T) {
	t.Parallel()

	err := mustSubject(t, newQuietAsserter(), "abc", token.String).Strings().Matches(`(`).Err()
	assert.ErrorIs(t, err, safe.ErrInvalidRegex)
	assert.ErrorIs(t, err, ErrInvalidUsage)
}

func TestStringChain_NamedStringType(t *testing.T) {
	t.Parallel()

	type email string

	subject := mustSubject(t, newQuietAsserter(), email("a@b.com"), token.String)
	require.NoError(t, subject.Strings().IsEmail().MaxLength(7).Err())
}

func TestChain_StopsAtFirstError(t *testing.T) {
	t.Parallel()

	asserter, logs := newObservedAsserter()

	subject, err := asserter.Type(context.Background(), "not-an-email", token.String, "email")
	require.NoError(t, err)

	chain := subject.Strings().MaxLength(3).IsEmail().Matches(`(`)
	entry := requireKind(t, chain.Err(), KindRefinementFailed)
	assert.Equal(t, "MaxLength", entry.Assertion)
	assert.Contains(t, entry.Details, "refinement=MaxLength")
	assert.Contains(t, entry.Details, "argument=3")
	assert.Contains(t, entry.Details, "value='not-an-email'")
	assert.Equal(t, 1, logs.Len())
}

func TestChain_IsImmutable(t *testing.T) {
	t.Parallel()

	base := mustSubject(t, newQuietAsserter(), "abc", token.String).Strings()

	failed := base.MaxLength(1)
	require.Error(t, failed.Err())
	require.NoError(t, base.Err())
	require.NoError(t, base.MinLength(1).Err())
}

func TestChain_WrongAccessor(t *testing.T) {
	t.Parallel()

	asserter := newQuietAsserter(WithConfig(productionConfig()))
	subject := mustSubject(t, asserter, 5, token.Number)

	err := subject.Strings().MaxLength(3).Err()
	entry := requireKind(t, err, KindInvalidRefinementArgument)
	assert.False(t, entry.Redacted)
	assert.Contains(t, entry.Details, "no refinements for token number")

	requireKind(t, subject.Arrays().MinLength(0).Err(), KindInvalidRefinementArgument)
	requireKind(t, Subject{}.Numbers().IsPositive().Err(), KindInvalidRefinementArgument)
}

func TestChain_ProductionRedactsRefinementFailure(t *testing.T) {
	t.Parallel()

	asserter := newQuietAsserter(WithConfig(productionConfig()))

	err := mustSubject(t, asserter, "secret-token", token.String).Strings().IsEmail().Err()
	entry := requireKind(t, err, KindRefinementFailed)
	assert.True(t, entry.Redacted)
	assert.NotContains(t, err.Error(), "secret-token")
	assert.Contains(t, err.Error(), RedactionNotice)
}

func TestNumberChain(t *testing.T) {
	t.Parallel()

	asserter := newQuietAsserter()

	tests := []struct {
		name   string
		value  any
		refine func(NumberChain) NumberChain
		kind   Kind
	}{
		{"less than", 10, func(c NumberChain) NumberChain { return c.LessThan(11) }, KindUnknown},
		{"less than equal", 10, func(c NumberChain) NumberChain { return c.LessThan(10) }, KindRefinementFailed},
		{"at most", 10, func(c NumberChain) NumberChain { return c.AtMost(10.0) }, KindUnknown},
		{"greater than", 10, func(c NumberChain) NumberChain { return c.GreaterThan(10) }, KindRefinementFailed},
		{"at least decimal", 10, func(c NumberChain) NumberChain { return c.AtLeast(decimal.NewFromInt(10)) }, KindUnknown},
		{"string bound", 10, func(c NumberChain) NumberChain { return c.LessThan("11") }, KindInvalidRefinementArgument},
		{"nan bound", 10, func(c NumberChain) NumberChain { return c.LessThan(math.NaN()) }, KindInvalidRefinementArgument},
		{"infinite value", math.Inf(1), func(c NumberChain) NumberChain { return c.GreaterThan(math.MaxFloat64) }, KindUnknown},
		{"multiple", 10, func(c NumberChain) NumberChain { return c.IsMultipleOf(5) }, KindUnknown},
		{"fractional multiple", 10.5, func(c NumberChain) NumberChain { return c.IsMultipleOf(0.5) }, KindUnknown},
		{"decimal multiple", decimal.RequireFromString("0.30"), func(c NumberChain) NumberChain { return c.IsMultipleOf(0.1) }, KindUnknown},
		{"not multiple", 10, func(c NumberChain) NumberChain { return c.IsMultipleOf(3) }, KindRefinementFailed},
		{"multiple of zero", 10, func(c NumberChain) NumberChain { return c.IsMultipleOf(0) }, KindInvalidRefinementArgument},
		{"multiple of infinity", 10, func(c NumberChain) NumberChain { return c.IsMultipleOf(math.Inf(1)) }, KindInvalidRefinementArgument},
		{"infinity is no multiple", math.Inf(1), func(c NumberChain) NumberChain { return c.IsMultipleOf(2) }, KindRefinementFailed},
		{"integer", 3.0, NumberChain.IsInteger, KindUnknown},
		{"fraction", 3.5, NumberChain.IsInteger, KindRefinementFailed},
		{"infinite integer", math.Inf(-1), NumberChain.IsInteger, KindRefinementFailed},
		{"positive", uint8(1), NumberChain.IsPositive, KindUnknown},
		{"zero not positive", 0, NumberChain.IsPositive, KindRefinementFailed},
		{"negative", -0.5, NumberChain.IsNegative, KindUnknown},
		{"negative infinity", math.Inf(-1), NumberChain.IsNegative, KindUnknown},
		{"complex not positive", complex(1, 1), NumberChain.IsPositive, KindRefinementFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.refine(mustSubject(t, asserter, tt.value, token.Number).Numbers()).Err()
			if tt.kind == KindUnknown {
				require.NoError(t, err)
				return
			}

			requireKind(t, err, tt.kind)
		})
	}
}

func TestNumberChain_MultipleOfZeroWrapsDivisionByZero(t *testing.T) {
	t.Parallel()

	err := mustSubject(t, newQuietAsserter(), 4, token.Number).Numbers().IsMultipleOf(0).Err()
	assert.ErrorIs(t, err, safe.ErrDivisionByZero)
}

func TestArrayChain(t *testing.T) {
	t.Parallel()

	asserter := newQuietAsserter()

	items := mustSubject(t, asserter, []int{1, 2, 3}, token.Array).Arrays()
	require.NoError(t, items.MinLength(3).MaxLength(3).ExactLength(3).Err())
	requireKind(t, items.MaxLength(2).Err(), KindRefinementFailed)
	requireKind(t, items.MinLength(-1).Err(), KindInvalidRefinementArgument)

	empty := mustSubject(t, asserter, []string(nil), token.Array).Arrays()
	require.NoError(t, empty.ExactLength(0).Err())

	fixed := mustSubject(t, asserter, &[2]bool{}, token.Array).Arrays()
	require.NoError(t, fixed.ExactLength(2).Err())
}
