// Package http exposes the application over a REST API using echo. Handlers
// translate JSON requests into commands and queries, and domain errors into
// HTTP status codes.
package http

import (
	"errors"
	"fmt"
	"time"

	"fruitmall/internal/core/domain/model/auth"
	"fruitmall/internal/core/domain/model/kernel"
	"fruitmall/internal/core/domain/model/member"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that are malformed, expired, or not
// signed with the configured key.
var ErrInvalidToken = errors.New("access token is invalid")

// accessClaims is the JWT payload carried by access tokens.
type accessClaims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the signed access tokens used by the API.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service. The secret signs tokens with
// HMAC-SHA256; ttl bounds how long an issued token stays valid.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: secret,
		ttl:    ttl,
	}
}

// Issue creates a signed access token for the member.
func (s *TokenService) Issue(m *member.Member) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	claims := accessClaims{
		Username: m.Username(),
		Roles:    m.Roles(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   m.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies a token and reconstructs the principal embedded in it.
func (s *TokenService) Parse(token string) (auth.Principal, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return auth.Principal{}, ErrInvalidToken
	}

	memberID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return auth.Principal{}, ErrInvalidToken
	}

	principal, err := auth.NewPrincipal(memberID, claims.Username, claims.Roles)
	if err != nil {
		return auth.Principal{}, ErrInvalidToken
	}

	return principal, nil
}
