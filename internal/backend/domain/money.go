package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount of USD in minor units (cents). All arithmetic in the
// backend happens on this type; decimal strings exist only at the API edge.
type Money int64

func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Mul(decimal.NewFromInt(100))
	if !cents.IsInteger() {
		return 0, &InvalidArgumentsError{Msg: fmt.Sprintf("amount %s is not representable in cents", d)}
	}

	return Money(cents.IntPart()), nil
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, &InvalidArgumentsError{Msg: fmt.Sprintf("invalid amount %q", s)}
	}

	return MoneyFromDecimal(d)
}

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
