package util

import (
	"testing"
	"time"
)

func TestJWTManagerGenerateAndParse(t *testing.T) {
	ttl := time.Minute
	manager := NewJWTManager("top-secret", ttl)

	token, expiresAt, err := manager.Generate(101, 2002)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token to be non-empty")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatalf("expected expiry in the future")
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.OrgID != 101 {
		t.Fatalf("expected org id 101, got %d", claims.OrgID)
	}
	if claims.EmpID != 2002 {
		t.Fatalf("expected emp id 2002, got %d", claims.EmpID)
	}
	if claims.Subject != "101-2002" {
		t.Fatalf("expected subject 101-2002, got %s", claims.Subject)
	}
	if claims.ID == "" {
		t.Fatalf("expected token id claim to be set")
	}
}

func TestJWTManagerParseExpiredToken(t *testing.T) {
	manager := NewJWTManager("secret", time.Millisecond)
	token, _, err := manager.Generate(1, 1)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	time.Sleep(2 * time.Millisecond)

	if _, err := manager.Parse(token); err == nil {
		t.Fatalf("expected parse error for expired token")
	}
}

func TestJWTManagerParseRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTManager("secret-a", time.Minute).Generate(1, 2)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := NewJWTManager("secret-b", time.Minute).Parse(token); err == nil {
		t.Fatalf("expected parse error for token signed with a different secret")
	}
}
