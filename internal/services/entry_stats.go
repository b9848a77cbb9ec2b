package services

import (
	"sort"
	"time"

	"github.com/terraincognita07/headlog/internal/models"
)

type EntryStats struct {
	Count       int           `json:"count"`
	AveragePain *float64      `json:"average_pain"`
	PeakPain    *models.Entry `json:"peak_pain"`
	StreakDays  int           `json:"streak_days"`
}

func BuildEntryStats(entries []models.Entry) EntryStats {
	return EntryStats{
		Count:       len(entries),
		AveragePain: AveragePain(entries),
		PeakPain:    PeakPainEntry(entries),
		StreakDays:  StreakDays(entries),
	}
}

// AveragePain is the mean over rated entries. Zero is a rating, but the
// average stays empty until at least one entry has pain above zero.
func AveragePain(entries []models.Entry) *float64 {
	total := 0
	rated := 0
	for _, entry := range entries {
		if entry.Pain == nil {
			continue
		}
		total += *entry.Pain
		rated++
	}
	if total == 0 {
		return nil
	}
	average := float64(total) / float64(rated)
	return &average
}

// PeakPainEntry returns the entry holding the highest rating. Ties go to the
// earliest date, then to the first encountered.
func PeakPainEntry(entries []models.Entry) *models.Entry {
	var peak *models.Entry
	for index := range entries {
		candidate := &entries[index]
		if candidate.Pain == nil {
			continue
		}
		switch {
		case peak == nil, *candidate.Pain > *peak.Pain:
			peak = candidate
		case *candidate.Pain == *peak.Pain && candidate.Date < peak.Date:
			peak = candidate
		}
	}
	if peak == nil {
		return nil
	}
	found := *peak
	return &found
}

// StreakDays counts consecutive calendar days back from the most recent
// logged date. Repeated dates count once and unparseable dates are ignored.
func StreakDays(entries []models.Entry) int {
	if len(entries) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(entries))
	days := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		if _, exists := seen[entry.Date]; exists {
			continue
		}
		seen[entry.Date] = struct{}{}
		day, err := time.Parse(models.EntryDateLayout, entry.Date)
		if err != nil {
			continue
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return 1
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	streak := 1
	for index := 1; index < len(days); index++ {
		if !days[index].AddDate(0, 0, 1).Equal(days[index-1]) {
			break
		}
		streak++
	}
	return streak
}
