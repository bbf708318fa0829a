package auth

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "password123" {
		t.Fatalf("hash must differ from the plaintext")
	}
	if !VerifyPassword(hash, "password123") {
		t.Fatalf("hash does not verify against its password")
	}
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if VerifyPassword(hash, "wrong-password") {
		t.Fatalf("wrong password must not verify")
	}
	if VerifyPassword("not-a-hash", "password123") {
		t.Fatalf("malformed hash must not verify")
	}
}
