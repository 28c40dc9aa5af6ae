package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	svc := NewPasswordService()

	t.Run("hashes and verifies a password", func(t *testing.T) {
		hash, err := svc.HashPassword("correct horse battery")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "correct horse battery" {
			t.Fatal("expected the password hashed")
		}
		if err := svc.VerifyPassword(hash, "correct horse battery"); err != nil {
			t.Errorf("expected the password to verify: %v", err)
		}
		if err := svc.VerifyPassword(hash, "wrong password"); err == nil {
			t.Error("expected a mismatch error")
		}
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		if err := svc.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected a strength error")
		}
		if err := svc.ValidatePasswordStrength("long enough"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
