package services

import (
	"errors"
	"strings"
)

var (
	ErrExportFromDateInvalid = errors.New("export invalid from date")
	ErrExportToDateInvalid   = errors.New("export invalid to date")
	ErrExportRangeInvalid    = errors.New("export invalid range")
)

// ParseExportRange validates optional inclusive YYYY-MM-DD bounds. Empty
// bounds stay empty.
func ParseExportRange(rawFrom string, rawTo string) (string, string, error) {
	from := strings.TrimSpace(rawFrom)
	to := strings.TrimSpace(rawTo)

	if from != "" && !IsValidEntryDate(from) {
		return "", "", ErrExportFromDateInvalid
	}
	if to != "" && !IsValidEntryDate(to) {
		return "", "", ErrExportToDateInvalid
	}
	if from != "" && to != "" && to < from {
		return "", "", ErrExportRangeInvalid
	}
	return from, to, nil
}
