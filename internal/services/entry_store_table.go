package services

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/headlog/internal/models"
)

type EntryRowRepository interface {
	ListByUser(userID uint) ([]models.EntryRow, error)
	FindByUserAndID(userID uint, id string) (models.EntryRow, bool, error)
	Create(row *models.EntryRow) error
	Save(row *models.EntryRow) error
	DeleteByUserAndID(userID uint, id string) (bool, error)
}

// TableEntryStore keeps one row per entry in the entries table.
type TableEntryStore struct {
	rows EntryRowRepository
	now  func() time.Time
}

func NewTableEntryStore(rows EntryRowRepository) *TableEntryStore {
	return &TableEntryStore{rows: rows, now: time.Now}
}

func (store *TableEntryStore) LoadAll(userID uint) ([]models.Entry, error) {
	rows, err := store.rows.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	entries := make([]models.Entry, 0, len(rows))
	for position, row := range rows {
		entries = append(entries, EntryFromRow(row, position))
	}
	return entries, nil
}

func (store *TableEntryStore) Save(userID uint, entry models.Entry) (models.Entry, error) {
	now := store.now().UTC()
	existing, found, err := store.rows.FindByUserAndID(userID, entry.ID)
	if err != nil {
		return models.Entry{}, err
	}

	row := RowFromEntry(userID, entry)
	row.UpdatedAt = now
	if found {
		row.CreatedAt = existing.CreatedAt
		if err := store.rows.Save(&row); err != nil {
			return models.Entry{}, err
		}
		return EntryFromRow(row, 0), nil
	}

	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	if err := store.rows.Create(&row); err != nil {
		return models.Entry{}, err
	}
	return EntryFromRow(row, 0), nil
}

func (store *TableEntryStore) Delete(userID uint, id string) (bool, error) {
	return store.rows.DeleteByUserAndID(userID, id)
}

// EntryFromRow decodes a table row of either shape.
func EntryFromRow(row models.EntryRow, position int) models.Entry {
	record := models.StoredEntry{
		ID:         row.ID,
		Date:       row.Date,
		Onset:      row.Onset,
		Duration:   row.Duration,
		Location:   rawColumnJSON(row.Location),
		Triggers:   rawColumnJSON(row.Triggers),
		Medication: row.Medication,
		Dosage:     row.Dosage,
		Relief:     row.Relief,
		Notes:      row.Notes,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
	if row.Pain != nil {
		record.Pain = json.RawMessage(strconv.Itoa(*row.Pain))
	}
	if row.Medications != nil {
		record.Medications = rawColumnJSON(*row.Medications)
	}
	return NormalizeStoredEntry(record, position)
}

// RowFromEntry encodes an entry in the current row shape; legacy columns are cleared.
func RowFromEntry(userID uint, entry models.Entry) models.EntryRow {
	record := StoredEntryFromEntry(entry)
	medications := string(record.Medications)

	row := models.EntryRow{
		UserID:      userID,
		ID:          entry.ID,
		Date:        entry.Date,
		Onset:       entry.Onset,
		Duration:    entry.Duration,
		Location:    string(record.Location),
		Triggers:    string(record.Triggers),
		Medications: &medications,
		Relief:      entry.Relief,
		Notes:       entry.Notes,
		CreatedAt:   entry.CreatedAt,
		UpdatedAt:   entry.UpdatedAt,
	}
	if entry.Pain != nil {
		pain := *entry.Pain
		row.Pain = &pain
	}
	return row
}

// rawColumnJSON reads a text column that holds JSON, or a bare legacy string.
func rawColumnJSON(value string) json.RawMessage {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed)
	}
	encoded, err := json.Marshal(trimmed)
	if err != nil {
		return nil
	}
	return encoded
}
