package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const validSecretKey = "0123456789abcdef0123456789abcdef"

func TestResolveSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	_, err := resolveSecretKey()
	require.Error(t, err)

	t.Setenv("SECRET_KEY", "change_me_in_production")
	_, err = resolveSecretKey()
	require.Error(t, err)

	t.Setenv("SECRET_KEY", "replace_with_at_least_32_random_characters")
	_, err = resolveSecretKey()
	require.Error(t, err)

	t.Setenv("SECRET_KEY", "too-short-secret")
	_, err = resolveSecretKey()
	require.Error(t, err)

	t.Setenv("SECRET_KEY", validSecretKey)
	secret, err := resolveSecretKey()
	require.NoError(t, err)
	require.Equal(t, validSecretKey, secret)
}

func TestResolvePort(t *testing.T) {
	t.Setenv("PORT", "")
	port, err := resolvePort()
	require.NoError(t, err)
	require.Equal(t, "8080", port)

	t.Setenv("PORT", "9090")
	port, err = resolvePort()
	require.NoError(t, err)
	require.Equal(t, "9090", port)

	for _, invalid := range []string{"0", "70000", "not-a-number"} {
		t.Setenv("PORT", invalid)
		_, err := resolvePort()
		require.Errorf(t, err, "expected PORT=%q to fail", invalid)
	}
}

func TestResolveEntryStore(t *testing.T) {
	t.Setenv("ENTRY_STORE", "")
	store, err := resolveEntryStore()
	require.NoError(t, err)
	require.Equal(t, EntryStoreTable, store)

	t.Setenv("ENTRY_STORE", " KV ")
	store, err = resolveEntryStore()
	require.NoError(t, err)
	require.Equal(t, EntryStoreKV, store)

	t.Setenv("ENTRY_STORE", "redis")
	_, err = resolveEntryStore()
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SECRET_KEY", validSecretKey)
	t.Setenv("PORT", "")
	t.Setenv("TZ", "Europe/Berlin")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("DB_PATH", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ENTRY_STORE", "memory")
	t.Setenv("CAPTCHA_SECRET", "")
	t.Setenv("CAPTCHA_VERIFY_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "Europe/Berlin", cfg.Location.String())
	require.True(t, cfg.CookieSecure)
	require.Equal(t, filepath.Join("data", "headlog.db"), cfg.DBPath)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, EntryStoreMemory, cfg.EntryStore)
}

func TestLoadReadsDotEnvWithoutOverridingEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("ENTRY_STORE=kv\nPORT=7070\n"), 0o600))
	t.Setenv("SECRET_KEY", validSecretKey)
	t.Setenv("PORT", "9191")
	t.Setenv("ENTRY_STORE", "")
	os.Unsetenv("ENTRY_STORE")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, EntryStoreKV, cfg.EntryStore)
	require.Equal(t, "9191", cfg.Port)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadLocationFallsBackToUTC(t *testing.T) {
	require.Equal(t, time.UTC, loadLocation("Mars/Olympus"))
}
