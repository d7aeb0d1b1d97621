package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "BRL"

var ErrUnknownCurrency = errors.New("unknown currency")

// Currency carries the minor unit precision amounts are rounded to.
type Currency struct {
	Code   string
	Places int32
}

// LookupCurrency resolves an ISO 4217 code.
func LookupCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	c := money.GetCurrency(code)
	if c == nil {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return Currency{Code: c.Code, Places: int32(c.Fraction)}, nil
}

// Round rounds amount to the currency minor unit.
func (c Currency) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(c.Places)
}

// Format renders amount with the currency symbol and separators, e.g. "R$100,00".
func (c Currency) Format(amount decimal.Decimal) string {
	minor := c.Round(amount).Shift(c.Places).IntPart()
	return money.New(minor, c.Code).Display()
}

// MinorUnit is the smallest positive amount representable at places decimals.
func MinorUnit(places int32) decimal.Decimal {
	return decimal.New(1, -places)
}

// CanSplit reports whether a positive amount divides into n shares of at
// least one minor unit each.
func CanSplit(amount decimal.Decimal, n int, places int32) bool {
	if n < 1 {
		n = 1
	}
	return amount.GreaterThanOrEqual(MinorUnit(places).Mul(decimal.NewFromInt(int64(n))))
}

// SplitAmount divides amount into n shares truncated to places decimals. The
// first n-1 shares are equal and the last absorbs the remainder, so the shares
// always add up to amount exactly and the last share is never below the
// others. n < 1 is treated as 1.
func SplitAmount(amount decimal.Decimal, n int, places int32) []decimal.Decimal {
	if n < 1 {
		n = 1
	}
	shares := make([]decimal.Decimal, n)
	if n == 1 {
		shares[0] = amount
		return shares
	}

	share := amount.Div(decimal.NewFromInt(int64(n))).RoundDown(places)
	allocated := share.Mul(decimal.NewFromInt(int64(n - 1)))
	for i := 0; i < n-1; i++ {
		shares[i] = share
	}
	shares[n-1] = amount.Sub(allocated)
	return shares
}

// Sum adds amounts.
func Sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
