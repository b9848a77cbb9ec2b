package services

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/terraincognita07/headlog/internal/models"
)

var legacyEntryIDNamespace = uuid.MustParse("6f1f3d0e-5a52-4c1e-9d0b-0c5b8e7d2a41")

// NormalizeLocations returns the multi-valued form of a stored location
// field. A legacy scalar becomes a one-element list; anything unreadable
// becomes an empty list.
func NormalizeLocations(raw json.RawMessage) []string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []string{}
	}

	switch trimmed[0] {
	case '[':
		items := make([]any, 0)
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return []string{}
		}
		values := make([]string, 0, len(items))
		for _, item := range items {
			if value, ok := item.(string); ok {
				values = append(values, value)
			}
		}
		return values
	case '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil || strings.TrimSpace(value) == "" {
			return []string{}
		}
		return []string{value}
	default:
		return []string{}
	}
}

// NormalizeMedications prefers the medications list and falls back to the
// legacy single medication/dosage pair.
func NormalizeMedications(record models.StoredEntry) []models.Medication {
	trimmed := bytes.TrimSpace(record.Medications)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		medications := make([]models.Medication, 0)
		if err := json.Unmarshal(trimmed, &medications); err == nil {
			return medications
		}
	}

	name := strings.TrimSpace(record.Medication)
	if name == "" || name == models.LegacyNoMedication {
		return []models.Medication{}
	}
	return []models.Medication{{Name: record.Medication, Dosage: record.Dosage, Time: ""}}
}

func normalizePain(raw json.RawMessage) *int {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	var number float64
	if err := json.Unmarshal(trimmed, &number); err != nil {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil
		}
		number = parsed
	}

	if number != math.Trunc(number) || number < models.MinPain || number > models.MaxPain {
		return nil
	}
	pain := int(number)
	return &pain
}

// NormalizeStoredEntry converts a stored record of either shape into an Entry.
// position is the record's index in its collection and only matters when the
// record carries no id.
func NormalizeStoredEntry(record models.StoredEntry, position int) models.Entry {
	id := strings.TrimSpace(record.ID)
	if id == "" {
		id = legacyEntryID(record.Date, position)
	}

	return models.Entry{
		ID:          id,
		Date:        strings.TrimSpace(record.Date),
		Pain:        normalizePain(record.Pain),
		Onset:       record.Onset,
		Duration:    record.Duration,
		Location:    NormalizeLocations(record.Location),
		Triggers:    NormalizeLocations(record.Triggers),
		Medications: NormalizeMedications(record),
		Relief:      record.Relief,
		Notes:       record.Notes,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// StoredEntryFromEntry is the inverse view used when writing current-shape
// records back to storage.
func StoredEntryFromEntry(entry models.Entry) models.StoredEntry {
	record := models.StoredEntry{
		ID:        entry.ID,
		Date:      entry.Date,
		Onset:     entry.Onset,
		Duration:  entry.Duration,
		Relief:    entry.Relief,
		Notes:     entry.Notes,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
	if entry.Pain != nil {
		record.Pain = json.RawMessage(strconv.Itoa(*entry.Pain))
	}
	record.Location = mustMarshalRaw(nonNilStrings(entry.Location))
	record.Triggers = mustMarshalRaw(nonNilStrings(entry.Triggers))
	record.Medications = mustMarshalRaw(nonNilMedications(entry.Medications))
	return record
}

// DecodeStoredEntries decodes a JSON array of stored records. Elements that
// are not objects are skipped and counted.
func DecodeStoredEntries(blob []byte) ([]models.Entry, int, error) {
	trimmed := bytes.TrimSpace(blob)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []models.Entry{}, 0, nil
	}

	elements := make([]json.RawMessage, 0)
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, 0, err
	}

	entries := make([]models.Entry, 0, len(elements))
	skipped := 0
	for position, element := range elements {
		record := models.StoredEntry{}
		if err := json.Unmarshal(element, &record); err != nil {
			skipped++
			continue
		}
		entries = append(entries, NormalizeStoredEntry(record, position))
	}
	return entries, skipped, nil
}

func legacyEntryID(date string, position int) string {
	name := strings.TrimSpace(date) + "#" + strconv.Itoa(position)
	return uuid.NewSHA1(legacyEntryIDNamespace, []byte(name)).String()
}

func mustMarshalRaw(value any) json.RawMessage {
	encoded, err := json.Marshal(value)
	if err != nil {
		return json.RawMessage("[]")
	}
	return encoded
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func nonNilMedications(values []models.Medication) []models.Medication {
	if values == nil {
		return []models.Medication{}
	}
	return values
}
