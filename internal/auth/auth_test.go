package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("StrongPassword123!")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "StrongPassword123!" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "StrongPassword123!") {
		t.Error("CheckPassword() = false for the correct password, want true")
	}

	if CheckPassword(hash, "wrong-password") {
		t.Error("CheckPassword() = true for a wrong password, want false")
	}

	if CheckPassword("not-a-bcrypt-hash", "StrongPassword123!") {
		t.Error("CheckPassword() = true for a malformed hash, want false")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical, want salted hashes")
	}
}

func TestNewVerificationCode(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 50; i++ {
		code, err := NewVerificationCode()
		if err != nil {
			t.Fatalf("NewVerificationCode() error = %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q has length %d, want 6", code, len(code))
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				t.Fatalf("code %q contains non-digit %q", code, c)
			}
		}
		seen[code] = true
	}

	// 50 draws from a million values colliding down to one code would mean
	// a broken source.
	if len(seen) < 2 {
		t.Error("verification codes show no variation")
	}
}
