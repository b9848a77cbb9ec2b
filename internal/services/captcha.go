package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const DefaultCaptchaVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

var (
	ErrCaptchaMissing  = errors.New("captcha token missing")
	ErrCaptchaRejected = errors.New("captcha rejected")
	ErrCaptchaFailed   = errors.New("captcha verification failed")
)

// CaptchaVerifier checks a bot-verification challenge token.
type CaptchaVerifier interface {
	Verify(token string, remoteIP string) error
}

type CaptchaVerifierFunc func(token string, remoteIP string) error

func (fn CaptchaVerifierFunc) Verify(token string, remoteIP string) error {
	return fn(token, remoteIP)
}

// DisabledCaptchaVerifier accepts every token. Used when no secret is configured.
type DisabledCaptchaVerifier struct{}

func (DisabledCaptchaVerifier) Verify(string, string) error {
	return nil
}

// TurnstileVerifier validates tokens against a siteverify endpoint.
type TurnstileVerifier struct {
	secret    string
	verifyURL string
	timeout   time.Duration
}

type turnstileResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func NewTurnstileVerifier(secret string, verifyURL string) *TurnstileVerifier {
	if strings.TrimSpace(verifyURL) == "" {
		verifyURL = DefaultCaptchaVerifyURL
	}
	return &TurnstileVerifier{
		secret:    secret,
		verifyURL: verifyURL,
		timeout:   5 * time.Second,
	}
}

// NewCaptchaVerifier returns a Turnstile verifier, or a disabled one for an empty secret.
func NewCaptchaVerifier(secret string, verifyURL string) CaptchaVerifier {
	if strings.TrimSpace(secret) == "" {
		return DisabledCaptchaVerifier{}
	}
	return NewTurnstileVerifier(secret, verifyURL)
}

func (verifier *TurnstileVerifier) Verify(token string, remoteIP string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrCaptchaMissing
	}

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("secret", verifier.secret)
	args.Set("response", token)
	if remoteIP != "" {
		args.Set("remoteip", remoteIP)
	}

	response := turnstileResponse{}
	status, _, errs := fiber.Post(verifier.verifyURL).
		Form(args).
		Timeout(verifier.timeout).
		Struct(&response)
	if len(errs) > 0 {
		return fmt.Errorf("%w: %v", ErrCaptchaFailed, errors.Join(errs...))
	}
	if status != fiber.StatusOK {
		return fmt.Errorf("%w: status %d", ErrCaptchaFailed, status)
	}
	if !response.Success {
		return ErrCaptchaRejected
	}
	return nil
}
