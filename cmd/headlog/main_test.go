package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/terraincognita07/headlog/internal/config"
	"github.com/terraincognita07/headlog/internal/db"
)

func TestCSRFMiddlewareConfigUsesCookieSecureFlag(t *testing.T) {
	secureConfig := csrfMiddlewareConfig(true)
	if !secureConfig.CookieSecure {
		t.Fatal("expected csrf cookie secure flag to be enabled")
	}
	if secureConfig.CookieName != "headlog_csrf" {
		t.Fatalf("expected csrf cookie name headlog_csrf, got %q", secureConfig.CookieName)
	}
	if secureConfig.KeyLookup != "header:X-CSRF-Token" {
		t.Fatalf("expected csrf key lookup header:X-CSRF-Token, got %q", secureConfig.KeyLookup)
	}

	insecureConfig := csrfMiddlewareConfig(false)
	if insecureConfig.CookieSecure {
		t.Fatal("expected csrf cookie secure flag to be disabled")
	}
}

func TestRunCommandRejectsBadUsage(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "headlog-cmd-test.db"))
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

	cfg := config.Config{EntryStore: config.EntryStoreTable}
	tests := [][]string{
		{"reset-password"},
		{"import", "someone@example.com"},
		{"serve-forever"},
	}
	for _, args := range tests {
		err := runCommand(database, cfg, args)
		if err == nil {
			t.Fatalf("runCommand(%v): expected error", args)
		}
		if args[0] != "serve-forever" && !strings.Contains(err.Error(), "usage") {
			t.Fatalf("runCommand(%v): expected usage error, got %v", args, err)
		}
	}
}
