package services

import (
	"sort"

	"github.com/terraincognita07/headlog/internal/models"
)

// UpsertEntry replaces the entry sharing entry.ID in place, or appends it.
func UpsertEntry(entries []models.Entry, entry models.Entry) []models.Entry {
	for index := range entries {
		if entries[index].ID == entry.ID {
			entries[index] = entry
			return entries
		}
	}
	return append(entries, entry)
}

// RemoveEntry drops the entry with the given id and reports whether one existed.
func RemoveEntry(entries []models.Entry, id string) ([]models.Entry, bool) {
	filtered := make([]models.Entry, 0, len(entries))
	removed := false
	for _, entry := range entries {
		if entry.ID == id {
			removed = true
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered, removed
}

func FindEntryByID(entries []models.Entry, id string) (models.Entry, bool) {
	for _, entry := range entries {
		if entry.ID == id {
			return entry, true
		}
	}
	return models.Entry{}, false
}

func SortEntriesByDate(entries []models.Entry, descending bool) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date == entries[j].Date {
			if descending {
				return entries[i].ID > entries[j].ID
			}
			return entries[i].ID < entries[j].ID
		}
		if descending {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].Date < entries[j].Date
	})
}

func FilterEntriesByDateRange(entries []models.Entry, from string, to string) []models.Entry {
	filtered := make([]models.Entry, 0, len(entries))
	for _, entry := range entries {
		if from != "" && entry.Date < from {
			continue
		}
		if to != "" && entry.Date > to {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

func cloneEntries(entries []models.Entry) []models.Entry {
	result := make([]models.Entry, len(entries))
	copy(result, entries)
	return result
}
