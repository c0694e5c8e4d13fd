package service

import (
	"strings"
	"time"

	"github.com/rectransport/rideshare-api/internal/domain"
)

const (
	layoutDayFirst = "02-01-2006"
	layoutDateOnly = "2006-01-02"
)

// parseFlexibleDate accepts an ISO-8601 timestamp, a date-only ISO string,
// or a DD-MM-YYYY string; the first successfully parsed form wins.
func parseFlexibleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutDateOnly, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutDayFirst, s); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ValidationError{Field: "date", Msg: "invalid date format"}
}

// parseFuelDate parses a YYYY-MM-DD fuel purchase date. Absent or
// unparsable dates default to the current instant.
func parseFuelDate(s string) time.Time {
	if t, err := time.Parse(layoutDateOnly, strings.TrimSpace(s)); err == nil {
		return t
	}
	return time.Now().UTC()
}

// parseDateBound parses a range bound with the flexible rule; an
// unparsable bound is dropped rather than reported, and the query proceeds
// without it.
func parseDateBound(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := parseFlexibleDate(s)
	if err != nil {
		return nil
	}
	return &t
}
