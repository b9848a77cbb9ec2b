package services

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/headlog/internal/models"
	"github.com/terraincognita07/headlog/internal/observability"
)

var (
	ErrEntryNotFound      = errors.New("entry not found")
	ErrEntryLoadFailed    = errors.New("load entries failed")
	ErrEntrySaveFailed    = errors.New("save entry failed")
	ErrEntryDeleteFailed  = errors.New("delete entry failed")
	ErrEntryImportFailed  = errors.New("import entries failed")
	ErrEntryImportInvalid = errors.New("import payload invalid")
)

// EntryStore persists a user's entries. Save inserts when the id is unknown
// and updates in place otherwise.
type EntryStore interface {
	LoadAll(userID uint) ([]models.Entry, error)
	Save(userID uint, entry models.Entry) (models.Entry, error)
	Delete(userID uint, id string) (bool, error)
}

type EntryService struct {
	store    EntryStore
	logger   *slog.Logger
	location *time.Location
	now      func() time.Time
}

type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func NewEntryService(store EntryStore, location *time.Location, logger *slog.Logger) *EntryService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EntryService{
		store:    store,
		logger:   logger,
		location: location,
		now:      time.Now,
	}
}

// ListEntries returns the history, most recent first. A failed load is
// treated as an empty diary.
func (service *EntryService) ListEntries(userID uint) []models.Entry {
	entries, err := service.loadEntries(userID)
	if err != nil {
		return []models.Entry{}
	}
	SortEntriesByDate(entries, true)
	return entries
}

func (service *EntryService) FindEntry(userID uint, id string) (models.Entry, error) {
	entries, err := service.loadEntries(userID)
	if err != nil {
		return models.Entry{}, ErrEntryLoadFailed
	}
	entry, found := FindEntryByID(entries, strings.TrimSpace(id))
	if !found {
		return models.Entry{}, ErrEntryNotFound
	}
	return entry, nil
}

func (service *EntryService) CreateEntry(userID uint, input EntryInput) (models.Entry, error) {
	entry, err := NormalizeEntryInput(input, service.now(), service.location)
	if err != nil {
		return models.Entry{}, err
	}
	entry.ID = uuid.NewString()

	saved, err := service.store.Save(userID, entry)
	if err != nil {
		return models.Entry{}, service.storeFailure(observability.OperationCreate, userID, err, ErrEntrySaveFailed)
	}
	observability.RecordEntrySaved(observability.OperationCreate)
	return saved, nil
}

// UpdateEntry rewrites an existing entry in place; the id and creation time
// are kept.
func (service *EntryService) UpdateEntry(userID uint, id string, input EntryInput) (models.Entry, error) {
	existing, err := service.FindEntry(userID, id)
	if err != nil {
		return models.Entry{}, err
	}

	entry, err := NormalizeEntryInput(input, service.now(), service.location)
	if err != nil {
		return models.Entry{}, err
	}
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt

	saved, err := service.store.Save(userID, entry)
	if err != nil {
		return models.Entry{}, service.storeFailure(observability.OperationUpdate, userID, err, ErrEntrySaveFailed)
	}
	observability.RecordEntrySaved(observability.OperationUpdate)
	return saved, nil
}

func (service *EntryService) DeleteEntry(userID uint, id string) error {
	removed, err := service.store.Delete(userID, strings.TrimSpace(id))
	if err != nil {
		return service.storeFailure(observability.OperationDelete, userID, err, ErrEntryDeleteFailed)
	}
	if !removed {
		return ErrEntryNotFound
	}
	observability.RecordEntryDeleted()
	return nil
}

func (service *EntryService) BuildStats(userID uint) EntryStats {
	return BuildEntryStats(service.ListEntries(userID))
}

// ImportEntries saves every record of a JSON array written by any client
// version. Records with an id the user already has replace that entry.
func (service *EntryService) ImportEntries(userID uint, blob []byte) (ImportResult, error) {
	entries, skipped, err := DecodeStoredEntries(blob)
	if err != nil {
		return ImportResult{}, ErrEntryImportInvalid
	}

	result := ImportResult{Skipped: skipped}
	for _, entry := range entries {
		if !IsValidEntryDate(entry.Date) {
			result.Skipped++
			continue
		}
		entry.Medications = CleanMedications(entry.Medications)
		entry.Location = CleanLabels(entry.Location)
		entry.Triggers = CleanLabels(entry.Triggers)

		if _, err := service.store.Save(userID, entry); err != nil {
			return result, service.storeFailure(observability.OperationImport, userID, err, ErrEntryImportFailed)
		}
		observability.RecordEntrySaved(observability.OperationImport)
		result.Imported++
	}

	if result.Skipped > 0 {
		service.logger.Warn("skipped records during import", "user_id", userID, "skipped", result.Skipped)
	}
	return result, nil
}

func (service *EntryService) loadEntries(userID uint) ([]models.Entry, error) {
	entries, err := service.store.LoadAll(userID)
	if err != nil {
		return nil, service.storeFailure(observability.OperationLoad, userID, err, ErrEntryLoadFailed)
	}
	return entries, nil
}

func (service *EntryService) storeFailure(operation string, userID uint, cause error, sentinel error) error {
	observability.RecordStoreFailure(operation)
	service.logger.Error("entry store call failed", "operation", operation, "user_id", userID, "error", cause)
	return sentinel
}
