package cli

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/terraincognita07/headlog/internal/db"
	"github.com/terraincognita07/headlog/internal/models"
	"github.com/terraincognita07/headlog/internal/services"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "headlog-cli-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string) models.User {
	t.Helper()

	user, err := services.NewAuthService(db.NewRepositories(database).Users).Register(email, "StrongPass1")
	if err != nil {
		t.Fatalf("register user: %v", err)
	}
	return user
}

func TestRunResetPasswordCommandPrintsWorkingPassword(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)
	createTestUser(t, database, "reset@example.com")

	var out bytes.Buffer
	if err := RunResetPasswordCommand(database, " RESET@example.com ", &out); err != nil {
		t.Fatalf("RunResetPasswordCommand returned error: %v", err)
	}

	match := regexp.MustCompile(`Temporary password: (\S+)`).FindStringSubmatch(out.String())
	if len(match) != 2 {
		t.Fatalf("temporary password missing from output %q", out.String())
	}

	authService := services.NewAuthService(db.NewRepositories(database).Users)
	if _, err := authService.Authenticate("reset@example.com", match[1]); err != nil {
		t.Fatalf("expected temporary password to authenticate: %v", err)
	}
	if _, err := authService.Authenticate("reset@example.com", "StrongPass1"); err == nil {
		t.Fatal("expected old password to stop working")
	}
}

func TestRunResetPasswordCommandErrors(t *testing.T) {
	t.Parallel()

	database := openTestDatabase(t)

	if err := RunResetPasswordCommand(database, "not-an-email", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for invalid email")
	}

	err := RunResetPasswordCommand(database, "missing@example.com", &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}
