package entity

import (
	"fmt"
	"time"

	errs "github.com/fittrack-app/fittrack-server/internal/domain/error"
)

// DateLayout is the wire format for dates (date of birth, workout date)
const DateLayout = "2006-01-02"

// HistoryDateLayout is the abbreviated month-day format used by the
// calories history endpoint
const HistoryDateLayout = "01-02"

// ParseDate parses a YYYY-MM-DD wire date
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", errs.ErrInvalidDate)
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errs.ErrInvalidDate, value)
	}
	return t, nil
}

// FormatDate renders a date in the YYYY-MM-DD wire format
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatHistoryDate renders a date in the MM-DD history format
func FormatHistoryDate(t time.Time) string {
	return t.Format(HistoryDateLayout)
}
