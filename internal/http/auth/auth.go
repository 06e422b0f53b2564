// Package auth resolves the caller identity from a bearer JWT.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleClient   Role = "client"
	RoleReceiver Role = "receiver"
)

// Identity is the authenticated caller.
type Identity struct {
	ID   int64
	Role Role
}

type claims struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type ctxKey struct{}

var errNoToken = errors.New("no token provided")

const sessionTTL = 24 * time.Hour

type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

func New(secret string) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// Middleware rejects requests without a valid token and stores the Identity
// in the request context.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := a.identify(r)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// RequireRole lets through only callers holding one of roles.
func RequireRole(roles ...Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := FromContext(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			for _, role := range roles {
				if id.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			http.Error(w, "requires "+string(roles[0])+" role", http.StatusForbidden)
		})
	}
}

// Sign issues a session token for id, valid for 24 hours.
func (a *Authenticator) Sign(id Identity) (string, error) {
	c := claims{
		ID:   id.ID,
		Role: string(id.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(a.secret)
}

func (a *Authenticator) identify(r *http.Request) (Identity, error) {
	raw := r.Header.Get("x-access-token")
	if raw == "" {
		raw = r.Header.Get("Authorization")
	}

	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if raw == "" {
		return Identity{}, errNoToken
	}

	var c claims
	if _, err := a.parser.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}); err != nil {
		return Identity{}, err
	}

	role := Role(c.Role)
	if role == "receveur" {
		role = RoleReceiver
	}

	if c.ID <= 0 {
		return Identity{}, errors.New("token has no subject id")
	}

	return Identity{ID: c.ID, Role: role}, nil
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
