package services

import (
	"errors"
	"testing"

	"github.com/terraincognita07/headlog/internal/security"
)

func TestValidatePasswordStrength_RejectsWeakPasswords(t *testing.T) {
	testCases := []string{
		"Short1",
		"alllowercase1",
		"ALLUPPERCASE1",
		"NoDigitsHere",
	}

	for _, password := range testCases {
		if err := ValidatePasswordStrength(password); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("expected ErrWeakPassword for %q, got %v", password, err)
		}
	}
}

func TestValidatePasswordStrength_AcceptsStrongPassword(t *testing.T) {
	if err := ValidatePasswordStrength("StrongPass1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidatePasswordStrength_AcceptsResetTemporaryPasswords(t *testing.T) {
	for attempt := 0; attempt < 20; attempt++ {
		password, err := security.TemporaryPassword(12)
		if err != nil {
			t.Fatalf("TemporaryPassword returned error: %v", err)
		}
		if err := ValidatePasswordStrength(password); err != nil {
			t.Fatalf("expected temporary password %q to pass the policy, got %v", password, err)
		}
	}
}
