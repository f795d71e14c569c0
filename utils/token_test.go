package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := "test_secret"

	token, err := GenerateToken(secret, 42, "maria@limpamais.local", "operator", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(secret, token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID expected 42, got %d", claims.UserID)
	}
	if claims.Email != "maria@limpamais.local" {
		t.Errorf("Email expected maria@limpamais.local, got %s", claims.Email)
	}
	if claims.Role != "operator" {
		t.Errorf("Role expected operator, got %s", claims.Role)
	}
	if claims.ID == "" {
		t.Error("token ID (jti) is empty")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken("secret_a", 1, "user@limpamais.local", "driver", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken("secret_b", token); err == nil {
		t.Fatal("ParseToken with wrong secret error = nil, want error")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken("test_secret", 1, "user@limpamais.local", "handler", time.Nanosecond)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ParseToken("test_secret", token); err == nil {
		t.Fatal("ParseToken with expired token error = nil, want error")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	if _, err := ParseToken("test_secret", "not.a.token"); err == nil {
		t.Fatal("ParseToken with malformed token error = nil, want error")
	}
}
