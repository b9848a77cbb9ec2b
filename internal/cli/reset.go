package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terraincognita07/headlog/internal/db"
	"github.com/terraincognita07/headlog/internal/models"
	"github.com/terraincognita07/headlog/internal/security"
	"github.com/terraincognita07/headlog/internal/services"
	"gorm.io/gorm"
)

const temporaryPasswordLength = 12

func RunResetPasswordCommand(database *gorm.DB, email string, out io.Writer) error {
	user, err := findUserByEmail(database, email)
	if err != nil {
		return err
	}

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	authService := services.NewAuthService(db.NewRepositories(database).Users)
	if err := authService.SetPassword(&user, temporaryPassword); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "Change it after signing in.")
	return nil
}

func findUserByEmail(database *gorm.DB, email string) (models.User, error) {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return models.User{}, errors.New("a valid email is required")
	}

	user, err := db.NewRepositories(database).Users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, fmt.Errorf("user %s not found", normalizedEmail)
		}
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}
