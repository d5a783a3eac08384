package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by ParseToken for any token that cannot be
// trusted: bad signature, expired, malformed, or missing the subject claim.
var ErrInvalidToken = errors.New("invalid token")

// Generator issues and validates signed bearer tokens.
//
// ParseToken validates and decodes in a single call. There is deliberately no
// separate verify step: a decoded payload is only ever obtained from a token
// that has already passed signature and expiry checks.
type Generator interface {
	// GenerateToken creates a signed token identifying the given user.
	GenerateToken(userID uint) (string, error)

	// ParseToken validates the token and returns the user ID it carries.
	// It returns ErrInvalidToken for anything that fails validation.
	ParseToken(token string) (uint, error)
}

// generator implements the Generator interface with HS256 signing.
type generator struct {
	secret     []byte
	expiration time.Duration
}

// NewGenerator creates a new JWT generator with the provided secret and expiration duration.
func NewGenerator(secret string, expiration time.Duration) Generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken creates a signed JWT with standard claims. The token is keyed
// only by user ID; role and profile data are resolved fresh per request.
func (g *generator) GenerateToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(g.expiration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseToken verifies the signature and expiry, then extracts the subject.
func (g *generator) ParseToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}
