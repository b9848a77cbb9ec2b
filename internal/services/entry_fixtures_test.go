package services

import (
	"testing"

	"github.com/terraincognita07/headlog/internal/models"
)

// legacyDiaryBlob is a diary saved by the first browser client: scalar
// location, single medication field, "None" for no medication.
const legacyDiaryBlob = `[
  {"id":"2025-02-08","date":"2025-02-08","label":"Day 1","pain":7,"onset":"Evening","duration":"All night","location":"Whole Head","triggers":["Unknown"],"medication":"None","relief":"","notes":"First night of headache.","logged":true},
  {"id":"2025-02-09","date":"2025-02-09","label":"Day 2","pain":6,"onset":"Afternoon","duration":"All day","location":"Whole Head","triggers":["Exercise","Food/drink"],"medication":"None","relief":"No relief","notes":"","logged":true},
  {"id":"2025-02-10","date":"2025-02-10","label":"Day 3","pain":4,"onset":"Morning","duration":"All day","location":"Whole Head","triggers":["Food/drink"],"medication":"None","relief":"Partial relief","notes":"","logged":true},
  {"id":"2025-02-11","date":"2025-02-11","label":"Day 4","pain":5,"onset":"Morning","duration":"All day","location":"Whole Head","triggers":["Unknown"],"medication":"Naproxen","relief":"","notes":"","logged":true},
  {"id":"2025-02-12","date":"2025-02-12","label":"Day 5","pain":5,"onset":"Morning","duration":"All day","location":"Whole Head","triggers":["Unknown"],"medication":"Naproxen","relief":"","notes":"","logged":true},
  {"id":"2025-02-13","date":"2025-02-13","label":"Day 6","pain":3,"onset":"Morning","duration":"All day","location":"Whole Head","triggers":["Unknown"],"medication":"Naproxen","relief":"","notes":"","logged":true},
  {"id":"2025-02-14","date":"2025-02-14","label":"Day 7","pain":3,"onset":"Morning","duration":"All day","location":"Whole Head","triggers":["Unknown"],"medication":"Naproxen","relief":"","notes":"","logged":true},
  {"id":"2025-02-15","date":"2025-02-15","label":"Day 8","pain":6,"onset":"Morning","duration":"All day","location":"Whole Head","triggers":["Unknown"],"medication":"Naproxen","relief":"","notes":"","logged":true},
  {"id":"2025-02-16","date":"2025-02-16","label":"Day 9","pain":3,"onset":"Morning","duration":"All day","location":"Whole Head","triggers":["Unknown"],"medication":"None","relief":"","notes":"","logged":true},
  {"id":"2025-02-17","date":"2025-02-17","label":"Day 10","pain":3,"onset":"Morning","duration":"All day","location":"Whole Head","triggers":["Unknown"],"medication":"Tylenol","relief":"","notes":"","logged":true},
  {"id":"2025-02-18","date":"2025-02-18","label":"Day 11","pain":6,"onset":"Morning","duration":"All day","location":"Whole Head","triggers":["Unknown"],"medication":"None","relief":"","notes":"","logged":true},
  {"id":"2025-02-19","date":"2025-02-19","label":"Day 12","pain":7,"onset":"Morning","duration":"All day","location":"Whole Head","triggers":["Stress"],"medication":"Tylenol","relief":"","notes":"Day 12 of continuous headache.","logged":true}
]`

func intPtr(value int) *int {
	return &value
}

func mustDecodeLegacyDiary(t *testing.T) []models.Entry {
	t.Helper()

	entries, skipped, err := DecodeStoredEntries([]byte(legacyDiaryBlob))
	if err != nil {
		t.Fatalf("decode legacy diary: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("expected no skipped records, got %d", skipped)
	}
	return entries
}

func entriesOnDates(dates ...string) []models.Entry {
	entries := make([]models.Entry, 0, len(dates))
	for _, date := range dates {
		entries = append(entries, models.Entry{ID: date, Date: date})
	}
	return entries
}
