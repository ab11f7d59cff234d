//go:build unit

package money_test

import (
	"math"
	"testing"

	"experience-booking/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		wantCents int64
		errIs     error
	}{
		{name: "two fraction digits", input: "1899.00", wantCents: 189900},
		{name: "whole number", input: "599", wantCents: 59900},
		{name: "single fraction digit", input: "4.5", wantCents: 450},
		{name: "surrounding whitespace", input: "  12.34 ", wantCents: 1234},
		{name: "zero", input: "0.00", wantCents: 0},
		{name: "empty", input: "", errIs: money.ErrInvalidAmount},
		{name: "negative", input: "-1.00", errIs: money.ErrNegativeAmount},
		{name: "three fraction digits", input: "1.005", errIs: money.ErrInvalidAmount},
		{name: "trailing dot", input: "12.", errIs: money.ErrInvalidAmount},
		{name: "leading dot", input: ".50", errIs: money.ErrInvalidAmount},
		{name: "exponent", input: "1e3", errIs: money.ErrInvalidAmount},
		{name: "letters", input: "abc", errIs: money.ErrInvalidAmount},
		{name: "largest amount", input: "92233720368547758.07", wantCents: math.MaxInt64},
		{name: "one cent past the largest amount", input: "92233720368547758.08", errIs: money.ErrAmountOverflow},
		{name: "units past int64", input: "99999999999999999999", errIs: money.ErrAmountOverflow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := money.Parse(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantCents, m.Cents())
		})
	}
}

func TestTimes(t *testing.T) {
	times := func(t *testing.T, price string, n int) string {
		t.Helper()
		m, err := money.MustParse(price).Times(n)
		require.NoError(t, err)
		return m.String()
	}

	t.Run("price per person times guests is exact", func(t *testing.T) {
		assert.Equal(t, "5697.00", times(t, "1899.00", 3))
		assert.Equal(t, "0.00", times(t, "1899.00", 0))
	})

	t.Run("amounts that drift in float64 stay exact", func(t *testing.T) {
		// 0.1 * 3 is 0.30000000000000004 as a float
		assert.Equal(t, "0.30", times(t, "0.10", 3))
		assert.Equal(t, "1009.98", times(t, "336.66", 3))
	})

	t.Run("overflow is an error, not a wrapped total", func(t *testing.T) {
		_, err := money.MustParse("1899.00").Times(100000000000000)
		assert.ErrorIs(t, err, money.ErrAmountOverflow)

		_, err = money.FromCents(math.MaxInt64).Times(2)
		assert.ErrorIs(t, err, money.ErrAmountOverflow)

		_, err = money.FromCents(math.MinInt64).Times(1)
		assert.ErrorIs(t, err, money.ErrAmountOverflow)
	})

	t.Run("largest product that fits", func(t *testing.T) {
		m, err := money.FromCents(math.MaxInt64).Times(1)
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), m.Cents())
	})

	t.Run("negative amounts keep their sign", func(t *testing.T) {
		m, err := money.FromCents(-150).Times(2)
		require.NoError(t, err)
		assert.Equal(t, "-3.00", m.String())
	})

	t.Run("negative count", func(t *testing.T) {
		_, err := money.MustParse("1.00").Times(-1)
		assert.ErrorIs(t, err, money.ErrNegativeAmount)
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "0.05", money.FromCents(5).String())
	assert.Equal(t, "2499.00", money.FromCents(249900).String())
	assert.Equal(t, "-1.50", money.FromCents(-150).String())
	assert.Equal(t, "3.50", money.MustParse("1.25").Add(money.MustParse("2.25")).String())
}
