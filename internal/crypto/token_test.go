package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateBlogToken(t *testing.T) {
	token, err := GenerateBlogToken("alice", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateBlogToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateBlogToken() returned empty string")
	}
}

func TestValidateBlogTokenValid(t *testing.T) {
	token, err := GenerateBlogToken("alice", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateBlogToken() unexpected error: %v", err)
	}

	claims, err := ValidateBlogToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ValidateBlogToken() unexpected error: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("ValidateBlogToken() username = %q, want %q", claims.Username, "alice")
	}
}

func TestValidateBlogTokenInvalid(t *testing.T) {
	if _, err := ValidateBlogToken("not-a-valid-token", "test-secret"); err == nil {
		t.Error("ValidateBlogToken() expected error for invalid token")
	}
}

func TestValidateBlogTokenWrongSecret(t *testing.T) {
	token, err := GenerateBlogToken("alice", "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateBlogToken() unexpected error: %v", err)
	}

	if _, err := ValidateBlogToken(token, "wrong-secret"); err == nil {
		t.Error("ValidateBlogToken() expected error for wrong secret")
	}
}

func TestValidateBlogTokenExpired(t *testing.T) {
	token, err := GenerateBlogToken("alice", "test-secret", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateBlogToken() unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := ValidateBlogToken(token, "test-secret"); err == nil {
		t.Error("ValidateBlogToken() expected error for expired token")
	}
}

func TestValidateBlogTokenWrongIssuer(t *testing.T) {
	secret := "test-secret"
	claims := BlogClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Audience:  jwt.ClaimStrings{"wardrobe-blog-api"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Username: "alice",
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err := ValidateBlogToken(tokenString, secret); err == nil {
		t.Error("ValidateBlogToken() expected error for wrong issuer")
	}
}
