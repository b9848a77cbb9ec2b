package services

import (
	"strconv"
	"strings"

	"github.com/terraincognita07/headlog/internal/models"
)

var ExportCSVHeaders = []string{
	"Date",
	"Pain",
	"Onset",
	"Duration",
	"Location",
	"Triggers",
	"Medications",
	"Relief",
	"Notes",
}

type ExportEntryReader interface {
	ListEntries(userID uint) []models.Entry
}

type ExportService struct {
	entries ExportEntryReader
}

type ExportSummary struct {
	TotalEntries int    `json:"total_entries"`
	HasData      bool   `json:"has_data"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
}

func NewExportService(entries ExportEntryReader) *ExportService {
	return &ExportService{entries: entries}
}

// LoadEntriesForRange returns the user's entries inside the inclusive range,
// oldest first.
func (service *ExportService) LoadEntriesForRange(userID uint, from string, to string) []models.Entry {
	entries := FilterEntriesByDateRange(service.entries.ListEntries(userID), from, to)
	SortEntriesByDate(entries, false)
	return entries
}

func (service *ExportService) BuildSummary(userID uint, from string, to string) ExportSummary {
	entries := service.LoadEntriesForRange(userID, from, to)
	if len(entries) == 0 {
		return ExportSummary{}
	}
	return ExportSummary{
		TotalEntries: len(entries),
		HasData:      true,
		DateFrom:     entries[0].Date,
		DateTo:       entries[len(entries)-1].Date,
	}
}

func (service *ExportService) BuildCSVRows(userID uint, from string, to string) [][]string {
	entries := service.LoadEntriesForRange(userID, from, to)
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, ExportCSVColumns(entry))
	}
	return rows
}

func ExportCSVColumns(entry models.Entry) []string {
	pain := ""
	if entry.Pain != nil {
		pain = strconv.Itoa(*entry.Pain)
	}

	medications := make([]string, 0, len(entry.Medications))
	for _, medication := range entry.Medications {
		medications = append(medications, csvMedicationLabel(medication))
	}

	return []string{
		entry.Date,
		pain,
		entry.Onset,
		entry.Duration,
		strings.Join(entry.Location, "; "),
		strings.Join(entry.Triggers, "; "),
		strings.Join(medications, "; "),
		entry.Relief,
		entry.Notes,
	}
}

func csvMedicationLabel(medication models.Medication) string {
	label := strings.TrimSpace(medication.Name)
	if dosage := strings.TrimSpace(medication.Dosage); dosage != "" {
		label += " " + dosage
	}
	if at := strings.TrimSpace(medication.Time); at != "" {
		label += " @ " + at
	}
	return label
}
