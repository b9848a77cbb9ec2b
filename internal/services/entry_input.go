package services

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/terraincognita07/headlog/internal/models"
)

const (
	MaxEntryNotesLength = 2000
	MaxEntryFieldRunes  = 80
)

var (
	ErrInvalidEntryDate = errors.New("invalid entry date")
	ErrInvalidEntryPain = errors.New("invalid entry pain")
)

type EntryInput struct {
	Date        string
	Pain        *int
	Onset       string
	Duration    string
	Location    []string
	Triggers    []string
	Medications []models.Medication
	Relief      string
	Notes       string
}

// NormalizeEntryInput validates input and returns the cleaned entry fields.
// An empty date means today in location.
func NormalizeEntryInput(input EntryInput, now time.Time, location *time.Location) (models.Entry, error) {
	date := strings.TrimSpace(input.Date)
	if date == "" {
		date = DateAtLocation(now, location).Format(models.EntryDateLayout)
	}
	if !IsValidEntryDate(date) {
		return models.Entry{}, ErrInvalidEntryDate
	}

	if input.Pain != nil && (*input.Pain < models.MinPain || *input.Pain > models.MaxPain) {
		return models.Entry{}, ErrInvalidEntryPain
	}

	var pain *int
	if input.Pain != nil {
		value := *input.Pain
		pain = &value
	}

	return models.Entry{
		Date:        date,
		Pain:        pain,
		Onset:       TrimEntryField(input.Onset),
		Duration:    TrimEntryField(input.Duration),
		Location:    CleanLabels(input.Location),
		Triggers:    CleanLabels(input.Triggers),
		Medications: CleanMedications(input.Medications),
		Relief:      TrimEntryField(input.Relief),
		Notes:       TrimEntryNotes(strings.TrimSpace(input.Notes)),
	}, nil
}

func IsValidEntryDate(value string) bool {
	parsed, err := time.Parse(models.EntryDateLayout, value)
	if err != nil {
		return false
	}
	return parsed.Format(models.EntryDateLayout) == value
}

// CleanLabels trims labels, drops blanks and keeps the first of any duplicates.
func CleanLabels(values []string) []string {
	cleaned := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, value := range values {
		label := TrimEntryField(value)
		if label == "" {
			continue
		}
		if _, exists := seen[label]; exists {
			continue
		}
		seen[label] = struct{}{}
		cleaned = append(cleaned, label)
	}
	return cleaned
}

func CleanMedications(values []models.Medication) []models.Medication {
	cleaned := make([]models.Medication, 0, len(values))
	for _, value := range values {
		name := TrimEntryField(value.Name)
		if name == "" {
			continue
		}
		cleaned = append(cleaned, models.Medication{
			Name:   name,
			Dosage: TrimEntryField(value.Dosage),
			Time:   TrimEntryField(value.Time),
		})
	}
	return cleaned
}

func TrimEntryField(value string) string {
	trimmed := strings.TrimSpace(value)
	runes := []rune(trimmed)
	if len(runes) <= MaxEntryFieldRunes {
		return trimmed
	}
	return strings.TrimSpace(string(runes[:MaxEntryFieldRunes]))
}

// TrimEntryNotes caps notes at MaxEntryNotesLength bytes without splitting a
// multi-byte character.
func TrimEntryNotes(value string) string {
	if len(value) <= MaxEntryNotesLength {
		return value
	}
	cut := MaxEntryNotesLength
	for cut > 0 && !utf8.RuneStart(value[cut]) {
		cut--
	}
	return value[:cut]
}
