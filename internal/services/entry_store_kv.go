package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/terraincognita07/headlog/internal/models"
)

// EntriesStorageKey is the key the browser client kept its entries under.
const EntriesStorageKey = "headache_entries"

var errCorruptEntriesBlob = errors.New("stored entries unreadable")

type KeyValueRepository interface {
	Get(key string) (string, bool, error)
	Set(key string, value string) error
}

// KeyValueEntryStore keeps each user's entries as one JSON array in a
// key-value table. Records written by old clients are normalized on load and
// rewritten in the current shape on the next save.
type KeyValueEntryStore struct {
	mu     sync.Mutex
	values KeyValueRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewKeyValueEntryStore(values KeyValueRepository, logger *slog.Logger) *KeyValueEntryStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &KeyValueEntryStore{
		values: values,
		logger: logger,
		now:    time.Now,
	}
}

func EntriesStorageKeyForUser(userID uint) string {
	return fmt.Sprintf("%s:%d", EntriesStorageKey, userID)
}

func CorruptEntriesStorageKey(userID uint) string {
	return EntriesStorageKeyForUser(userID) + ":corrupt"
}

func (store *KeyValueEntryStore) LoadAll(userID uint) ([]models.Entry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.loadLocked(userID)
}

func (store *KeyValueEntryStore) Save(userID uint, entry models.Entry) (models.Entry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, err := store.loadForWriteLocked(userID)
	if err != nil {
		return models.Entry{}, err
	}
	entry = stampEntry(current, entry, store.now())
	if err := store.writeLocked(userID, UpsertEntry(current, entry)); err != nil {
		return models.Entry{}, err
	}
	return entry, nil
}

func (store *KeyValueEntryStore) Delete(userID uint, id string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current, err := store.loadForWriteLocked(userID)
	if err != nil {
		return false, err
	}
	remaining, removed := RemoveEntry(current, id)
	if !removed {
		return false, nil
	}
	if err := store.writeLocked(userID, remaining); err != nil {
		return false, err
	}
	return true, nil
}

func (store *KeyValueEntryStore) loadLocked(userID uint) ([]models.Entry, error) {
	key := EntriesStorageKeyForUser(userID)
	raw, found, err := store.values.Get(key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return []models.Entry{}, nil
	}

	entries, skipped, err := DecodeStoredEntries([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errCorruptEntriesBlob, key, err)
	}
	if skipped > 0 {
		store.logger.Warn("skipped unreadable stored entries", "key", key, "skipped", skipped)
	}
	SortEntriesByDate(entries, false)
	return entries, nil
}

// loadForWriteLocked treats an undecodable blob as an empty diary so writes
// keep working. The unreadable value is parked under a side key first.
func (store *KeyValueEntryStore) loadForWriteLocked(userID uint) ([]models.Entry, error) {
	entries, err := store.loadLocked(userID)
	if err == nil || !errors.Is(err, errCorruptEntriesBlob) {
		return entries, err
	}

	key := EntriesStorageKeyForUser(userID)
	raw, _, readErr := store.values.Get(key)
	if readErr != nil {
		return nil, fmt.Errorf("read %s: %w", key, readErr)
	}
	if setErr := store.values.Set(CorruptEntriesStorageKey(userID), raw); setErr != nil {
		return nil, fmt.Errorf("park corrupt %s: %w", key, setErr)
	}
	store.logger.Warn("replacing unreadable stored entries", "key", key, "error", err)
	return []models.Entry{}, nil
}

func (store *KeyValueEntryStore) writeLocked(userID uint, entries []models.Entry) error {
	SortEntriesByDate(entries, false)
	encoded, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}
	return store.values.Set(EntriesStorageKeyForUser(userID), string(encoded))
}
