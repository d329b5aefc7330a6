package auth

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

func testSecret(t *testing.T) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x42}, 32))
}

func TestNewTokenServiceRejectsBadSecrets(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"not base64": "!!!not-base64!!!",
		"too short":  base64.StdEncoding.EncodeToString([]byte("short")),
		"too long":   base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, 48)),
	}
	for name, secret := range cases {
		if _, err := NewTokenService(secret); err == nil {
			t.Fatalf("%s: expected constructor to fail fast", name)
		}
	}
}

func TestNewTokenServiceAcceptsBase64URL(t *testing.T) {
	secret := base64.URLEncoding.EncodeToString(bytes.Repeat([]byte{0xfb}, 32))
	if _, err := NewTokenService(secret); err != nil {
		t.Fatalf("expected Base64URL secret to be accepted: %v", err)
	}
}

func TestIssueAndValidateRoundTrip(t *testing.T) {
	svc, err := NewTokenService(testSecret(t))
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, exp, err := svc.Issue("a@b.com", "CUSTOMER", map[string]any{"plan": "basic"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", exp)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.Subject != "a@b.com" || claims.Email != "a@b.com" {
		t.Fatalf("unexpected subject: %q", claims.Subject)
	}
	if claims.Role != "CUSTOMER" {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
	if !svc.IsValidFor(token, "a@b.com") {
		t.Fatal("IsValidFor should accept the issuing subject")
	}
	if svc.IsValidFor(token, "other@b.com") {
		t.Fatal("IsValidFor should reject a different subject")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	now := time.Now().UTC()
	issued, err := NewTokenService(testSecret(t),
		WithTTL(time.Minute),
		WithClock(func() time.Time { return now.Add(-2 * time.Minute) }))
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	token, _, err := issued.Issue("a@b.com", "CUSTOMER", nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	svc, err := NewTokenService(testSecret(t))
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	if _, err := svc.Validate(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
	if svc.IsValidFor(token, "a@b.com") {
		t.Fatal("IsValidFor must be false for an expired token")
	}
}

func TestValidateTamperedSignature(t *testing.T) {
	svc, err := NewTokenService(testSecret(t))
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	token, _, err := svc.Issue("a@b.com", "ADMIN", nil)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Validate(tampered); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
}

func TestValidateMalformedToken(t *testing.T) {
	svc, err := NewTokenService(testSecret(t))
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Validate(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("Validate(%q): expected ErrInvalidToken, got %v", raw, err)
		}
	}
}
