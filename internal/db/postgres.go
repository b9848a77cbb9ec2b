package db

import (
	"fmt"
	"log"
	"os"
	"time"

	embeddedmigrations "github.com/terraincognita07/headlog/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	postgresConnectAttempts = 10
	postgresRetryInterval   = 3 * time.Second
)

// OpenPostgres connects to the remote database, retrying while it starts up,
// and applies pending migrations.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	var database *gorm.DB
	var err error
	for attempt := 1; attempt <= postgresConnectAttempts; attempt++ {
		database, err = connectPostgres(dsn)
		if err == nil {
			break
		}
		log.Printf("postgres connect attempt %d/%d failed: %v", attempt, postgresConnectAttempts, err)
		if attempt < postgresConnectAttempts {
			time.Sleep(postgresRetryInterval)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open postgres after %d attempts: %w", postgresConnectAttempts, err)
	}

	if err := applyEmbeddedMigrations(database, embeddedmigrations.DialectPostgres); err != nil {
		return nil, fmt.Errorf("apply embedded migrations: %w", err)
	}
	return database, nil
}

func connectPostgres(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(postgres.Open(dsn), newGormConfig())
	if err != nil {
		return nil, err
	}
	sqlDB, err := database.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return database, nil
}

// Open picks PostgreSQL when a DSN is configured and the local SQLite file otherwise.
func Open(databaseURL string, sqlitePath string) (*gorm.DB, string, error) {
	if databaseURL != "" {
		database, err := OpenPostgres(databaseURL)
		return database, embeddedmigrations.DialectPostgres, err
	}
	database, err := OpenSQLite(sqlitePath)
	return database, embeddedmigrations.DialectSQLite, err
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stdout, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
				Colorful:                  true,
			},
		),
	}
}
