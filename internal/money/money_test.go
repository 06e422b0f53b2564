package money_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khawla-14/markyticket/internal/money"
)

func TestMoney_Arithmetic(t *testing.T) {
	balance := money.MustParse("30.00")
	price := money.MustParse("25")

	left := balance.Sub(price)
	assert.Equal(t, "5.00", left.String())
	assert.True(t, left.Add(price).Equal(balance))
	assert.True(t, left.LessThan(price))
	assert.False(t, left.IsNegative())
	assert.True(t, left.Sub(price).IsNegative())
}

func TestMoney_RoundsToCents(t *testing.T) {
	m := money.MustParse("0.105")
	assert.Equal(t, "0.11", m.String())
	assert.Equal(t, int64(11), m.Cents())
	assert.Equal(t, "12.34", money.FromCents(1234).String())
}

func TestMoney_JSON(t *testing.T) {
	data, err := json.Marshal(money.MustParse("25"))
	require.NoError(t, err)
	assert.JSONEq(t, `"25.00"`, string(data))

	var fromNumber, fromString money.Money
	require.NoError(t, json.Unmarshal([]byte(`12.5`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"12.50"`), &fromString))
	assert.True(t, fromNumber.Equal(fromString))

	var bad money.Money
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &bad))
}

func TestMoney_Scan(t *testing.T) {
	var m money.Money
	require.NoError(t, m.Scan("42.10"))
	assert.Equal(t, "42.10", m.String())

	v, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "42.10", v)
}

func TestParse_Invalid(t *testing.T) {
	_, err := money.Parse("12,50")
	assert.Error(t, err)
}
