package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer      = "bicc-shop"
	hs256KeyLen = 32
	defaultTTL  = 24 * time.Hour
)

// Claims carried by every issued token. Subject is the account e-mail.
type Claims struct {
	Role  string         `json:"role"`
	Email string         `json:"email"`
	Extra map[string]any `json:"extra,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 tokens. The signing key is decoded
// and length-checked exactly once, at construction; there is no lazy path.
type TokenService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// TokenOption configures a TokenService.
type TokenOption func(*TokenService)

// WithTTL overrides the default 24h token lifetime.
func WithTTL(ttl time.Duration) TokenOption {
	return func(s *TokenService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides the time source (tests).
func WithClock(fn func() time.Time) TokenOption {
	return func(s *TokenService) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewTokenService decodes the configured secret (Base64, falling back to
// Base64URL) and fails fast unless it yields exactly 32 key bytes.
func NewTokenService(secret string, opts ...TokenOption) (*TokenService, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return nil, err
	}
	svc := &TokenService{
		key: key,
		ttl: defaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("auth: signing secret is not configured")
	}
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		key, err = base64.URLEncoding.DecodeString(secret)
		if err != nil {
			return nil, errors.New("auth: secret is not valid Base64 or Base64URL")
		}
	}
	if len(key) != hs256KeyLen {
		return nil, fmt.Errorf("auth: HS256 requires %d decoded key bytes, got %d", hs256KeyLen, len(key))
	}
	return key, nil
}

// Issue signs a token for the given subject and role with optional extra
// claims. The subject is the account e-mail.
func (s *TokenService) Issue(subject, role string, extra map[string]any) (string, time.Time, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", time.Time{}, errors.New("auth: subject is required")
	}
	now := s.now().UTC()
	exp := now.Add(s.ttl)
	claims := Claims{
		Role:  role,
		Email: subject,
		Extra: extra,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Validate verifies signature and expiry and returns the claims. Failures map
// onto ErrExpiredToken, ErrSignatureMismatch or ErrInvalidToken.
func (s *TokenService) Validate(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureMismatch
		default:
			return nil, ErrInvalidToken
		}
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != issuer || strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IsValidFor reports whether the token is unexpired and bound to the expected
// subject. Any validation failure yields false, never an error.
func (s *TokenService) IsValidFor(token, expectedSubject string) bool {
	claims, err := s.Validate(token)
	if err != nil {
		return false
	}
	return strings.EqualFold(claims.Subject, strings.TrimSpace(expectedSubject))
}
