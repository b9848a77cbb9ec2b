package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/terraincognita07/headlog/internal/db"
	"github.com/terraincognita07/headlog/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour

	loginAttemptsLimit  = 8
	loginAttemptsWindow = 15 * time.Minute
)

type HandlerConfig struct {
	SecretKey    string
	Location     *time.Location
	CookieSecure bool
	// EntryStore is one of memory, kv or table.
	EntryStore string
	Captcha    services.CaptchaVerifier
	Logger     *slog.Logger
}

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	captcha      services.CaptchaVerifier
	logger       *slog.Logger
	loginLimiter *attemptLimiter

	repositories  *db.Repositories
	authService   *services.AuthService
	entryService  *services.EntryService
	exportService *services.ExportService
}

func NewHandler(database *gorm.DB, cfg HandlerConfig) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if len(cfg.SecretKey) == 0 {
		return nil, errors.New("secret key is required")
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Captcha == nil {
		cfg.Captcha = services.DisabledCaptchaVerifier{}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(cfg.SecretKey),
		location:     cfg.Location,
		cookieSecure: cfg.CookieSecure,
		captcha:      cfg.Captcha,
		logger:       cfg.Logger,
		loginLimiter: newAttemptLimiter(loginAttemptsLimit, loginAttemptsWindow),
	}
	if err := handler.withDependencies(database, cfg.EntryStore); err != nil {
		return nil, err
	}
	return handler, nil
}
