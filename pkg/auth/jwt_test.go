package auth

import (
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour)

	token, err := manager.GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "alice" {
		t.Errorf("Unexpected claims: %+v", claims)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour)
	other := NewJWTManager("different", time.Hour)

	token, err := manager.GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("Expected validation to fail with a different secret")
	}
}

func TestJWTExpired(t *testing.T) {
	manager := NewJWTManager("secret", -time.Minute)

	token, err := manager.GenerateToken("user-1", "alice")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := manager.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("Expected ErrExpiredToken, got %v", err)
	}
}
