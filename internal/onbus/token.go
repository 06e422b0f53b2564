// Package onbus signs the static code a receiver shows on the bus.
//
// A token binds a receiver to one trajet. It carries no issue time or expiry,
// so the same pair always yields the same token for the whole trip; whether
// the trajet is still running is checked when the token is redeemed.
package onbus

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "markyticket/onbus"

var ErrInvalidToken = errors.New("invalid on-bus token")

type claims struct {
	ReceiverID int64 `json:"rid"`
	TrajetID   int64 `json:"tid"`
	jwt.RegisteredClaims
}

type Codec struct {
	secret []byte
	parser *jwt.Parser
}

func NewCodec(secret string) *Codec {
	return &Codec{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
		),
	}
}

func (c *Codec) Issue(receiverID, trajetID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		ReceiverID: receiverID,
		TrajetID:   trajetID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  issuer,
			Subject: strconv.FormatInt(trajetID, 10),
		},
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

func (c *Codec) Parse(token string) (int64, int64, error) {
	var cl claims

	_, err := c.parser.ParseWithClaims(token, &cl, func(*jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if cl.ReceiverID <= 0 || cl.TrajetID <= 0 {
		return 0, 0, fmt.Errorf("%w: missing receiver or trajet", ErrInvalidToken)
	}

	return cl.ReceiverID, cl.TrajetID, nil
}
