//go:build unit

package safe

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemainder(t *testing.T) {
	t.Parallel()

	rem, err := Remainder(decimal.NewFromInt(10), decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.True(t, rem.Equal(decimal.NewFromInt(1)))

	rem, err = Remainder(decimal.RequireFromString("0.3"), decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	assert.True(t, rem.IsZero(), "decimal arithmetic avoids float drift")

	_, err = Remainder(decimal.NewFromInt(1), decimal.Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestIsMultiple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		numerator   decimal.Decimal
		denominator decimal.Decimal
		want        bool
	}{
		{name: "exact", numerator: decimal.NewFromInt(15), denominator: decimal.NewFromInt(5), want: true},
		{name: "negative exact", numerator: decimal.NewFromInt(-15), denominator: decimal.NewFromInt(5), want: true},
		{name: "not multiple", numerator: decimal.NewFromInt(16), denominator: decimal.NewFromInt(5), want: false},
		{name: "fractional step", numerator: decimal.RequireFromString("1.5"), denominator: decimal.RequireFromString("0.25"), want: true},
		{name: "zero numerator", numerator: decimal.Zero, denominator: decimal.NewFromInt(7), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := IsMultiple(tt.numerator, tt.denominator)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := IsMultiple(decimal.NewFromInt(1), decimal.Zero)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}
