package kernel_test

import (
	"testing"

	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse and render two fractional digits", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"12.5", "12.50"},
			{"0", "0.00"},
			{"99999999.99", "99999999.99"},
			{"7.05", "7.05"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				m, err := kernel.MoneyFromString(tc.input)

				require.NoError(t, err)
				require.NoError(t, m.Validate())
				assert.Equal(t, tc.expected, m.String())
			})
		}
	})

	t.Run("should reject non numeric input", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative and oversized amounts", func(t *testing.T) {
		for _, input := range []string{"-0.01", "100000000.00"} {
			_, err := kernel.MoneyFromString(input)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, input)
		}
	})

	t.Run("should reject sub-cent precision instead of rounding", func(t *testing.T) {
		_, err := kernel.MoneyFromString("1.005")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "more than 2 fractional digits")
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a, err := kernel.NewMoney(decimal.RequireFromString("1.5"))
	require.NoError(t, err)
	b, err := kernel.MoneyFromString("1.50")
	require.NoError(t, err)
	zero, err := kernel.MoneyFromString("0")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.True(t, a.IsPositive())
	assert.False(t, zero.IsPositive())
	assert.True(t, decimal.RequireFromString("1.5").Equal(a.Decimal()))
}

func TestMoney_ZeroValueIsNotConstructed(t *testing.T) {
	var m kernel.Money

	require.ErrorIs(t, m.Validate(), kernel.ErrMoneyIsNotConstructed)
}
