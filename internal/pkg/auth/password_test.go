package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("correct-pw")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hashed == "correct-pw" {
		t.Fatal("hash equals the plaintext")
	}

	if !CheckPassword(hashed, "correct-pw") {
		t.Error("correct password does not verify")
	}
	if CheckPassword(hashed, "wrong-pw") {
		t.Error("wrong password verifies")
	}
	if CheckPassword("not-a-bcrypt-hash", "correct-pw") {
		t.Error("garbage hash verifies")
	}
}

func TestHashPasswordSalts(t *testing.T) {
	a, err := HashPassword("correct-pw")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	b, err := HashPassword("correct-pw")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical")
	}
}
