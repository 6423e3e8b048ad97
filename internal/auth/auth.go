// Package auth signs in the dashboard administrator and issues the bearer
// tokens required by the write endpoints.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
)

const issuer = "admin-panel"

var signingMethod = jwt.SigningMethodHS256

type Claims struct {
	jwt.RegisteredClaims
}

type Authorizer struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
}

// New checks the bcrypt hash and secret up front so that a misconfigured
// server fails at start instead of rejecting every login.
func New(username, passwordHash, secret string, ttl time.Duration) (*Authorizer, error) {
	const op = "auth.New"

	if username == "" {
		return nil, fmt.Errorf("%s: empty username", op)
	}
	if len(secret) < 32 {
		return nil, fmt.Errorf("%s: token secret must be at least 32 bytes", op)
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("%s: password hash: %w", op, err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%s: token ttl must be positive", op)
	}

	return &Authorizer{
		username:     username,
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
	}, nil
}

// Login returns a signed token and its expiry for valid credentials.
func (a *Authorizer) Login(username, password string) (string, time.Time, error) {
	const op = "auth.Login"

	// bcrypt runs for unknown users too, so both failures take as long.
	sameUser := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	err := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password))
	if err != nil || !sameUser {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)

	token := jwt.NewWithClaims(signingMethod, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   a.username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expiresAt.Truncate(time.Second), nil
}

// Verify parses the token and returns its claims.
func (a *Authorizer) Verify(token string) (*Claims, error) {
	const op = "auth.Verify"

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrInvalidToken, err)
	}

	return &claims, nil
}

// HashPassword returns the bcrypt hash stored in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	const op = "auth.HashPassword"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(hash), nil
}
