package kernel

import (
	"errors"
	"fmt"

	"orderlifecycle/internal/pkg/errs"
	"orderlifecycle/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for amounts.
const MoneyScale = 2

// maxMoney is the largest amount a numeric(10,2) column holds.
var maxMoney = decimal.RequireFromString("99999999.99")

var ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney or MoneyFromString")

// Money is a non-negative fixed-point amount with two fractional digits.
//
// Example:
//
//	total, err := kernel.MoneyFromString("24.90")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(total) // 24.90
type Money struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney validates amount and returns it as Money.
// Amounts with more than two fractional digits are rejected rather than rounded.
//
// Returns:
//   - ValueIsOutOfRangeError for negative amounts and amounts above 99999999.99
//   - ValueIsInvalidError for amounts such as 1.005
//
// Example:
//
//	price, err := kernel.NewMoney(decimal.NewFromFloat(12.5))
//	if err != nil {
//	    return err
//	}
//	price.String() // "12.50"
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() || amount.GreaterThan(maxMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), "0", maxMoney.String())
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s has more than %d fractional digits", amount.String(), MoneyScale),
		)
	}
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal string such as "12.50".
// Parse failures are reported as ValueIsInvalidError; the value itself is then checked by NewMoney.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Validate ensures the value was built through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Decimal returns the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares amounts numerically, so 1.5 equals 1.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
