package services

import (
	"sync"
	"time"

	"github.com/terraincognita07/headlog/internal/models"
)

// MemoryEntryStore keeps entries in process memory only.
type MemoryEntryStore struct {
	mu      sync.Mutex
	entries map[uint][]models.Entry
	now     func() time.Time
}

func NewMemoryEntryStore() *MemoryEntryStore {
	return &MemoryEntryStore{
		entries: make(map[uint][]models.Entry),
		now:     time.Now,
	}
}

func (store *MemoryEntryStore) LoadAll(userID uint) ([]models.Entry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return cloneEntries(store.entries[userID]), nil
}

func (store *MemoryEntryStore) Save(userID uint, entry models.Entry) (models.Entry, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	current := store.entries[userID]
	entry = stampEntry(current, entry, store.now())
	store.entries[userID] = UpsertEntry(current, entry)
	return entry, nil
}

func (store *MemoryEntryStore) Delete(userID uint, id string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	remaining, removed := RemoveEntry(store.entries[userID], id)
	if removed {
		store.entries[userID] = remaining
	}
	return removed, nil
}

// stampEntry keeps the creation time of an existing entry with the same id.
func stampEntry(current []models.Entry, entry models.Entry, now time.Time) models.Entry {
	now = now.UTC()
	if existing, found := FindEntryByID(current, entry.ID); found && !existing.CreatedAt.IsZero() {
		entry.CreatedAt = existing.CreatedAt
	} else if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now
	return entry
}
