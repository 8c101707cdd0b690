package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u1" {
		t.Fatalf("unexpected subject: %+v", claims)
	}
}

func TestTokenService_VerifyIsIdempotent(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	token, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	first, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("first verify: %v", err)
	}
	second, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("second verify: %v", err)
	}
	if first.UserID != second.UserID || !first.ExpiresAt.Time.Equal(second.ExpiresAt.Time) {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}

func TestTokenService_RejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()
	claims := TokenClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "webapp-auth",
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for expired token, got %v", err)
	}
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	other := NewTokenService("other-secret", time.Hour)
	token, err := other.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc := NewTokenService("secret", time.Hour)
	if _, err := svc.Verify(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}

func TestTokenService_RejectsTamperedPayload(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	tokenA, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	tokenB, err := svc.Issue("u2")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	partsA := strings.Split(tokenA, ".")
	partsB := strings.Split(tokenB, ".")
	if len(partsA) != 3 || len(partsB) != 3 {
		t.Fatalf("unexpected token shape")
	}
	// Payload de otro token con la firma original.
	forged := partsA[0] + "." + partsB[1] + "." + partsA[2]

	if _, err := svc.Verify(forged); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for tampered payload, got %v", err)
	}
}

func TestTokenService_RejectsMalformedToken(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, tok := range []string{"", "   ", "garbage", "a.b.c"} {
		if _, err := svc.Verify(tok); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("expected ErrTokenInvalid for %q, got %v", tok, err)
		}
	}
}

func TestTokenService_RejectsWrongIssuer(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	now := time.Now().UTC()
	claims := TokenClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "other-issuer",
			Subject:   "u1",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong issuer, got %v", err)
	}
}

func TestTokenService_RejectsEmptySecret(t *testing.T) {
	svc := NewTokenService("", time.Hour)
	if _, err := svc.Issue("u1"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid on empty secret, got %v", err)
	}
}

func TestTokenService_DefaultTTLIsOneHour(t *testing.T) {
	svc := NewTokenService("secret", 0)
	token, err := svc.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", ttl)
	}
}
