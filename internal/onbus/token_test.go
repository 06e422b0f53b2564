package onbus_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khawla-14/markyticket/internal/onbus"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := onbus.NewCodec("bus-secret")

	token, err := codec.Issue(3, 7)
	require.NoError(t, err)

	receiverID, trajetID, err := codec.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), receiverID)
	assert.Equal(t, int64(7), trajetID)
}

func TestCodec_StaticForTrip(t *testing.T) {
	codec := onbus.NewCodec("bus-secret")

	first, err := codec.Issue(3, 7)
	require.NoError(t, err)

	second, err := codec.Issue(3, 7)
	require.NoError(t, err)

	other, err := codec.Issue(3, 8)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestCodec_RejectsForgery(t *testing.T) {
	codec := onbus.NewCodec("bus-secret")

	forged, err := onbus.NewCodec("someone-else").Issue(3, 7)
	require.NoError(t, err)

	tests := map[string]string{
		"WrongKey":        forged,
		"PlainLegacyCode": "ON_BUS_3_7",
		"Empty":           "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := codec.Parse(token)
			assert.ErrorIs(t, err, onbus.ErrInvalidToken)
		})
	}
}

func TestCodec_RejectsForeignIssuer(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"rid": 3,
		"tid": 7,
		"iss": "someone",
	}).SignedString([]byte("bus-secret"))
	require.NoError(t, err)

	_, _, err = onbus.NewCodec("bus-secret").Parse(token)
	assert.ErrorIs(t, err, onbus.ErrInvalidToken)
}
