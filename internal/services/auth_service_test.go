package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/terraincognita07/headlog/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type stubAuthUserRepository struct {
	users     []models.User
	lookupErr error
	createErr error
}

func (stub *stubAuthUserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	if stub.lookupErr != nil {
		return false, stub.lookupErr
	}
	for _, user := range stub.users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (stub *stubAuthUserRepository) FindByNormalizedEmail(email string) (models.User, error) {
	if stub.lookupErr != nil {
		return models.User{}, stub.lookupErr
	}
	for _, user := range stub.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubAuthUserRepository) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubAuthUserRepository) Create(user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	user.ID = uint(len(stub.users) + 1)
	stub.users = append(stub.users, *user)
	return nil
}

func (stub *stubAuthUserRepository) Save(user *models.User) error {
	for index := range stub.users {
		if stub.users[index].ID == user.ID {
			stub.users[index] = *user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func TestAuthServiceRegisterAndAuthenticate(t *testing.T) {
	service := NewAuthService(&stubAuthUserRepository{})

	user, err := service.Register(" Owner@Example.com ", "StrongPass1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "owner@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("StrongPass1")) != nil {
		t.Fatal("expected stored bcrypt hash to match password")
	}

	authenticated, err := service.Authenticate("OWNER@example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authenticated.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, authenticated.ID)
	}
}

func TestAuthServiceRegisterRejections(t *testing.T) {
	repo := &stubAuthUserRepository{}
	service := NewAuthService(repo)
	if _, err := service.Register("owner@example.com", "StrongPass1"); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{name: "duplicate email", email: "OWNER@example.com", password: "StrongPass1", want: ErrAuthEmailTaken},
		{name: "weak password", email: "new@example.com", password: "weak", want: ErrWeakPassword},
		{name: "invalid email", email: "nope", password: "StrongPass1", want: ErrAuthCredentialsInvalid},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := service.Register(testCase.email, testCase.password); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}

	repo.lookupErr = errors.New("db down")
	if _, err := service.Register("other@example.com", "StrongPass1"); !errors.Is(err, ErrAuthLookupFailed) {
		t.Fatalf("expected ErrAuthLookupFailed, got %v", err)
	}
}

func TestAuthServiceAuthenticateFailures(t *testing.T) {
	repo := &stubAuthUserRepository{}
	service := NewAuthService(repo)
	if _, err := service.Register("owner@example.com", "StrongPass1"); err != nil {
		t.Fatalf("seed register: %v", err)
	}

	if _, err := service.Authenticate("owner@example.com", "WrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for wrong password, got %v", err)
	}
	if _, err := service.Authenticate("missing@example.com", "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected ErrAuthCredentialsInvalid for unknown email, got %v", err)
	}

	repo.lookupErr = errors.New("db down")
	if _, err := service.Authenticate("owner@example.com", "StrongPass1"); !errors.Is(err, ErrAuthLookupFailed) {
		t.Fatalf("expected ErrAuthLookupFailed, got %v", err)
	}
}

func TestAuthServiceChangePassword(t *testing.T) {
	service := NewAuthService(&stubAuthUserRepository{})
	user, err := service.Register("owner@example.com", "StrongPass1")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	tests := []struct {
		name    string
		current string
		next    string
		confirm string
		want    error
	}{
		{name: "missing input", current: "", next: "NewPass123", confirm: "NewPass123", want: ErrPasswordChangeInvalidInput},
		{name: "mismatch", current: "StrongPass1", next: "NewPass123", confirm: "NewPass124", want: ErrPasswordMismatch},
		{name: "wrong current", current: "WrongPass1", next: "NewPass123", confirm: "NewPass123", want: ErrInvalidCurrentPassword},
		{name: "same password", current: "StrongPass1", next: "StrongPass1", confirm: "StrongPass1", want: ErrNewPasswordMustDiffer},
		{name: "weak password", current: "StrongPass1", next: "weakpass", confirm: "weakpass", want: ErrWeakPassword},
	}
	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if err := service.ChangePassword(user.ID, testCase.current, testCase.next, testCase.confirm); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}

	if err := service.ChangePassword(user.ID, "StrongPass1", "NewPass123", "NewPass123"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, err := service.Authenticate("owner@example.com", "NewPass123"); err != nil {
		t.Fatalf("expected new password to work, got %v", err)
	}
	if _, err := service.Authenticate("owner@example.com", "StrongPass1"); !errors.Is(err, ErrAuthCredentialsInvalid) {
		t.Fatalf("expected old password to fail, got %v", err)
	}
}
