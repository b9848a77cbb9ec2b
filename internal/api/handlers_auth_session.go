package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/headlog/internal/observability"
	"github.com/terraincognita07/headlog/internal/services"
)

type credentialsInput struct {
	Email        string `json:"email" form:"email"`
	Password     string `json:"password" form:"password"`
	RememberMe   string `json:"remember_me" form:"remember_me"`
	CaptchaToken string `json:"captcha_token" form:"cf-turnstile-response"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input, ok := parseCredentials(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if status, message, failed := handler.verifyCaptcha(c, input.CaptchaToken); failed {
		return apiError(c, status, message)
	}

	user, err := handler.authService.Register(input.Email, input.Password)
	if err != nil {
		status, message := mapRegisterError(err)
		return apiError(c, status, message)
	}

	if err := handler.setAuthCookie(c, &user, input.rememberMe()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	observability.RecordAuthAttempt(observability.AuthResultRegistered)
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := time.Now()
	if handler.loginLimiter.blocked(limiterKey, now) {
		observability.RecordAuthAttempt(observability.AuthResultRateLimited)
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input, ok := parseCredentials(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if status, message, failed := handler.verifyCaptcha(c, input.CaptchaToken); failed {
		return apiError(c, status, message)
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.addFailure(limiterKey, now)
			observability.RecordAuthAttempt(observability.AuthResultInvalid)
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load user")
	}

	handler.loginLimiter.reset(limiterKey)
	if err := handler.setAuthCookie(c, &user, input.rememberMe()); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	observability.RecordAuthAttempt(observability.AuthResultSuccess)
	return c.JSON(user)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword, input.ConfirmPassword)
	if err != nil {
		status, message := mapChangePasswordError(err)
		return apiError(c, status, message)
	}

	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) verifyCaptcha(c *fiber.Ctx, token string) (int, string, bool) {
	err := handler.captcha.Verify(token, c.IP())
	if err == nil {
		return 0, "", false
	}

	observability.RecordAuthAttempt(observability.AuthResultCaptcha)
	switch {
	case errors.Is(err, services.ErrCaptchaMissing):
		return fiber.StatusBadRequest, "captcha required", true
	case errors.Is(err, services.ErrCaptchaRejected):
		return fiber.StatusForbidden, "captcha verification failed", true
	default:
		handler.logger.Error("captcha verification error", "error", err)
		return fiber.StatusInternalServerError, "captcha unavailable", true
	}
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, bool) {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return credentialsInput{}, false
	}
	return input, true
}

func (input credentialsInput) rememberMe() bool {
	return parseBoolValue(input.RememberMe)
}

func mapRegisterError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return fiber.StatusBadRequest, "invalid input"
	case errors.Is(err, services.ErrWeakPassword):
		return fiber.StatusBadRequest, "weak password"
	case errors.Is(err, services.ErrAuthEmailTaken):
		return fiber.StatusConflict, "email already exists"
	default:
		return fiber.StatusInternalServerError, "failed to create account"
	}
}

func mapChangePasswordError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrPasswordChangeInvalidInput):
		return fiber.StatusBadRequest, "invalid input"
	case errors.Is(err, services.ErrPasswordMismatch):
		return fiber.StatusBadRequest, "password mismatch"
	case errors.Is(err, services.ErrInvalidCurrentPassword):
		return fiber.StatusUnauthorized, "invalid current password"
	case errors.Is(err, services.ErrNewPasswordMustDiffer):
		return fiber.StatusBadRequest, "new password must differ"
	case errors.Is(err, services.ErrWeakPassword):
		return fiber.StatusBadRequest, "weak password"
	default:
		return fiber.StatusInternalServerError, "failed to update password"
	}
}
