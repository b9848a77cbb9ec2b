package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/terraincognita07/headlog/internal/db"
	"github.com/terraincognita07/headlog/internal/services"
	"gorm.io/gorm"
)

// RunImportCommand loads a JSON array of entries, in the current or the old
// browser-storage shape, into a user's diary.
func RunImportCommand(database *gorm.DB, storeKind string, email string, filePath string, out io.Writer) error {
	if storeKind == services.EntryStoreMemory {
		return errors.New("the memory entry store does not persist imports")
	}

	user, err := findUserByEmail(database, email)
	if err != nil {
		return err
	}

	blob, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}

	repositories := db.NewRepositories(database)
	store, err := services.NewEntryStore(storeKind, repositories.KeyValues, repositories.Entries, slog.Default())
	if err != nil {
		return err
	}

	result, err := services.NewEntryService(store, time.Local, slog.Default()).ImportEntries(user.ID, blob)
	if err != nil {
		return fmt.Errorf("import entries: %w", err)
	}

	fmt.Fprintf(out, "Imported %d entries for %s (skipped %d)\n", result.Imported, user.Email, result.Skipped)
	return nil
}
