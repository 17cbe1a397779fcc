// Package token issues and verifies signed, time-limited identity tokens.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"devconnect/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failure reasons. The HTTP layer maps all of them to 401; the
// distinction exists for logging and tests.
var (
	ErrMalformed = errors.New("token is malformed")
	ErrExpired   = errors.New("token is expired")
	ErrInvalid   = errors.New("token is invalid")
)

const (
	issuer   = "devconnect-api"
	audience = "devconnect-client"
)

// Service signs and verifies identity tokens. Verification is stateless:
// any correctly signed, non-expired token is accepted, whether or not the
// user still exists.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates a token Service with the given signing secret and
// token lifetime.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue produces a signed token bound to userID. Expiry is fixed at
// issuance; there is no refresh mechanism.
func (s *Service) Issue(userID models.UserID) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": issuer,
		"aud": audience,
		"exp": now.Add(s.ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify parses and validates a token and returns the user ID it binds to.
func (s *Service) Verify(tokenString string) (models.UserID, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
			return 0, ErrExpired
		default:
			return 0, ErrInvalid
		}
	}
	if !tok.Valid {
		return 0, ErrInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalid
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalid
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return 0, ErrInvalid
	}

	return models.UserID(userID), nil
}
