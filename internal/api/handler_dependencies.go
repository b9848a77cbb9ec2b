package api

import (
	"github.com/terraincognita07/headlog/internal/db"
	"github.com/terraincognita07/headlog/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB, entryStore string) error {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)

	store, err := services.NewEntryStore(entryStore, handler.repositories.KeyValues, handler.repositories.Entries, handler.logger)
	if err != nil {
		return err
	}
	handler.entryService = services.NewEntryService(store, handler.location, handler.logger)
	handler.exportService = services.NewExportService(handler.entryService)
	return nil
}
