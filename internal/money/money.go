// Package money holds fixed-point monetary amounts with two decimal places.
package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const scale = 2

// Money is an amount rounded to cents. The zero value is 0.00.
type Money struct {
	amount decimal.Decimal
}

var Zero = Money{}

func New(d decimal.Decimal) Money {
	return Money{amount: d.Round(scale)}
}

func FromCents(cents int64) Money {
	return Money{amount: decimal.New(cents, -scale)}
}

// Parse reads a dot-separated decimal string such as "25.00" or "7".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return New(d), nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return m
}

func (m Money) Add(o Money) Money { return Money{amount: m.amount.Add(o.amount)} }
func (m Money) Sub(o Money) Money { return Money{amount: m.amount.Sub(o.amount)} }

func (m Money) Cmp(o Money) int          { return m.amount.Cmp(o.amount) }
func (m Money) Equal(o Money) bool       { return m.amount.Equal(o.amount) }
func (m Money) LessThan(o Money) bool    { return m.amount.LessThan(o.amount) }
func (m Money) IsPositive() bool         { return m.amount.IsPositive() }
func (m Money) IsNegative() bool         { return m.amount.IsNegative() }
func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) Cents() int64 {
	return m.amount.Shift(scale).Round(0).IntPart()
}

func (m Money) String() string {
	return m.amount.StringFixed(scale)
}

// MarshalJSON writes the amount as a fixed two-decimal string ("25.00").
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both "25.00" and 25.00.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decoding amount: %w", err)
	}

	*m = New(d)

	return nil
}

func (m *Money) Scan(value any) error {
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return err
	}

	*m = New(d)

	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.String(), nil
}
