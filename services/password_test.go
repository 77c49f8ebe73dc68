package services

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse" {
		t.Fatal("Expected hash to differ from the password")
	}

	match, err := VerifyPassword(hash, "correct horse")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if !match {
		t.Error("Expected matching password to verify")
	}

	match, err = VerifyPassword(hash, "battery staple")
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if match {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	second, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if first == second {
		t.Error("Expected distinct salts to produce distinct hashes")
	}
}

func TestVerifyPasswordBadFormat(t *testing.T) {
	if _, err := VerifyPassword("not-a-valid-hash", "whatever"); err == nil {
		t.Error("Expected error for malformed stored hash")
	}
}
