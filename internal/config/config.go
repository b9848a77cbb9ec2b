package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/terraincognita07/headlog/internal/services"
)

const (
	EntryStoreMemory = services.EntryStoreMemory
	EntryStoreKV     = services.EntryStoreKV
	EntryStoreTable  = services.EntryStoreTable

	minSecretKeyLength = 32
)

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type Config struct {
	Port             string
	Location         *time.Location
	SecretKey        string
	CookieSecure     bool
	DBPath           string
	DatabaseURL      string
	EntryStore       string
	CaptchaSecret    string
	CaptchaVerifyURL string
}

// Load reads .env when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	secretKey, err := resolveSecretKey()
	if err != nil {
		return Config{}, err
	}
	port, err := resolvePort()
	if err != nil {
		return Config{}, err
	}
	entryStore, err := resolveEntryStore()
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:             port,
		Location:         loadLocation(getEnv("TZ", "UTC")),
		SecretKey:        secretKey,
		CookieSecure:     getEnvBool("COOKIE_SECURE", false),
		DBPath:           getEnv("DB_PATH", filepath.Join("data", "headlog.db")),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		EntryStore:       entryStore,
		CaptchaSecret:    strings.TrimSpace(os.Getenv("CAPTCHA_SECRET")),
		CaptchaVerifyURL: strings.TrimSpace(os.Getenv("CAPTCHA_VERIFY_URL")),
	}, nil
}

func resolveSecretKey() (string, error) {
	secretKey := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secretKey == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[secretKey]; insecure {
		return "", errors.New("SECRET_KEY uses a placeholder value")
	}
	if len(secretKey) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secretKey, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("PORT %q is not a number: %w", raw, err)
	}
	if port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT %d is out of range", port)
	}
	return strconv.Itoa(port), nil
}

func resolveEntryStore() (string, error) {
	store := strings.ToLower(getEnv("ENTRY_STORE", EntryStoreTable))
	switch store {
	case EntryStoreMemory, EntryStoreKV, EntryStoreTable:
		return store, nil
	default:
		return "", fmt.Errorf("ENTRY_STORE %q is not one of memory, kv, table", store)
	}
}

func loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
