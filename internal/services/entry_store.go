package services

import (
	"fmt"
	"log/slog"
)

const (
	EntryStoreMemory = "memory"
	EntryStoreKV     = "kv"
	EntryStoreTable  = "table"
)

// NewEntryStore builds the store named by kind. An empty kind selects the
// table store.
func NewEntryStore(kind string, values KeyValueRepository, rows EntryRowRepository, logger *slog.Logger) (EntryStore, error) {
	switch kind {
	case EntryStoreMemory:
		return NewMemoryEntryStore(), nil
	case EntryStoreKV:
		return NewKeyValueEntryStore(values, logger), nil
	case EntryStoreTable, "":
		return NewTableEntryStore(rows), nil
	default:
		return nil, fmt.Errorf("unknown entry store %q", kind)
	}
}
