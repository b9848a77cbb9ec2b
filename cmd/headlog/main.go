package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/terraincognita07/headlog/internal/api"
	"github.com/terraincognita07/headlog/internal/cli"
	"github.com/terraincognita07/headlog/internal/config"
	"github.com/terraincognita07/headlog/internal/db"
	"github.com/terraincognita07/headlog/internal/services"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	time.Local = cfg.Location

	database, dialect, err := db.Open(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	if len(os.Args) > 1 {
		if err := runCommand(database, cfg, os.Args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	handler, err := api.NewHandler(database, api.HandlerConfig{
		SecretKey:    cfg.SecretKey,
		Location:     cfg.Location,
		CookieSecure: cfg.CookieSecure,
		EntryStore:   cfg.EntryStore,
		Captcha:      services.NewCaptchaVerifier(cfg.CaptchaSecret, cfg.CaptchaVerifyURL),
		Logger:       slogger,
	})
	if err != nil {
		log.Fatalf("handler init failed: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Headlog",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.CookieSecure)))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Headlog listening on http://0.0.0.0:%s (db: %s, store: %s, tz: %s)", cfg.Port, dialect, cfg.EntryStore, cfg.Location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runCommand(database *gorm.DB, cfg config.Config, args []string) error {
	switch args[0] {
	case "reset-password":
		if len(args) != 2 {
			return fmt.Errorf("usage: headlog reset-password <email>")
		}
		return cli.RunResetPasswordCommand(database, args[1], os.Stdout)
	case "import":
		if len(args) != 3 {
			return fmt.Errorf("usage: headlog import <email> <file.json>")
		}
		return cli.RunImportCommand(database, cfg.EntryStore, args[1], args[2], os.Stdout)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "header:X-CSRF-Token",
		CookieName:     "headlog_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: false,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
	}
}
