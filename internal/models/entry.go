package models

import (
	"encoding/json"
	"time"
)

const EntryDateLayout = "2006-01-02"

const (
	MinPain = 0
	MaxPain = 10
)

type Medication struct {
	Name   string `json:"name"`
	Dosage string `json:"dosage"`
	Time   string `json:"time"`
}

// Entry is one logged headache episode in its current shape.
type Entry struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Pain        *int         `json:"pain"`
	Onset       string       `json:"onset"`
	Duration    string       `json:"duration"`
	Location    []string     `json:"location"`
	Triggers    []string     `json:"triggers"`
	Medications []Medication `json:"medications"`
	Relief      string       `json:"relief"`
	Notes       string       `json:"notes"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// StoredEntry is an entry as found in storage. Older clients wrote location as
// a single string and a single medication/dosage pair, so the multi-valued
// fields stay raw until normalized.
type StoredEntry struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Pain        json.RawMessage `json:"pain,omitempty"`
	Onset       string          `json:"onset"`
	Duration    string          `json:"duration"`
	Location    json.RawMessage `json:"location,omitempty"`
	Triggers    json.RawMessage `json:"triggers,omitempty"`
	Medication  string          `json:"medication,omitempty"`
	Dosage      string          `json:"dosage,omitempty"`
	Medications json.RawMessage `json:"medications,omitempty"`
	Relief      string          `json:"relief"`
	Notes       string          `json:"notes"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// EntryRow backs the entries table. Location, Triggers and Medications hold
// JSON text. Rows written by old clients have a plain-text Location, a NULL
// Medications column and the single Medication/Dosage pair instead.
type EntryRow struct {
	UserID      uint   `gorm:"primaryKey;autoIncrement:false"`
	ID          string `gorm:"primaryKey"`
	Date        string `gorm:"not null"`
	Pain        *int
	Onset       string `gorm:"not null;default:''"`
	Duration    string `gorm:"not null;default:''"`
	Location    string `gorm:"not null;default:''"`
	Triggers    string `gorm:"not null;default:'[]'"`
	Medications *string
	Medication  string `gorm:"not null;default:''"`
	Dosage      string `gorm:"not null;default:''"`
	Relief      string `gorm:"not null;default:''"`
	Notes       string `gorm:"not null;default:''"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (EntryRow) TableName() string {
	return "entries"
}
