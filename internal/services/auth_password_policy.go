package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordChangeInvalidInput = errors.New("password change invalid input")
	ErrPasswordMismatch           = errors.New("password mismatch")
	ErrInvalidCurrentPassword     = errors.New("invalid current password")
	ErrNewPasswordMustDiffer      = errors.New("new password must differ")
	ErrPasswordChangeFailed       = errors.New("password change failed")
)

func ValidatePasswordChange(passwordHash string, currentPassword string, newPassword string, confirmPassword string) error {
	currentPassword = strings.TrimSpace(currentPassword)
	newPassword = strings.TrimSpace(newPassword)
	confirmPassword = strings.TrimSpace(confirmPassword)

	if currentPassword == "" || newPassword == "" || confirmPassword == "" {
		return ErrPasswordChangeInvalidInput
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCurrentPassword
	}
	if currentPassword == newPassword {
		return ErrNewPasswordMustDiffer
	}
	return ValidatePasswordStrength(newPassword)
}

// ChangePassword replaces the password of a signed-in user after checking the
// current one.
func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string, confirmPassword string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return ErrAuthLookupFailed
	}
	if err := ValidatePasswordChange(user.PasswordHash, currentPassword, newPassword, confirmPassword); err != nil {
		return err
	}
	if err := service.SetPassword(&user, strings.TrimSpace(newPassword)); err != nil {
		return ErrPasswordChangeFailed
	}
	return nil
}
