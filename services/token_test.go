package services

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken(42, 10*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	userID, ok := VerifyToken(token)
	if !ok {
		t.Fatal("Expected token to verify")
	}
	if userID != 42 {
		t.Errorf("Expected user id 42, got %d", userID)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateToken(42, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, ok := VerifyToken(token); ok {
		t.Error("Expected expired token to be rejected")
	}
}

func TestMalformedTokenRejected(t *testing.T) {
	InitJWT("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, ok := VerifyToken(token); ok {
			t.Errorf("Expected %q to be rejected", token)
		}
	}
}

func TestWrongKeyRejected(t *testing.T) {
	InitJWT("first-secret")
	token, err := GenerateToken(42, 10*time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	InitJWT("second-secret")
	if _, ok := VerifyToken(token); ok {
		t.Error("Expected token signed with another key to be rejected")
	}
}
