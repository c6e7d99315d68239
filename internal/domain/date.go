package domain

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time-of-day component. The literal
// year/month/day digits of the input string are kept as written and
// interpreted in UTC, so a record normalizes identically in every
// runtime timezone.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses an ISO-style date string. Date-only and date-time
// forms are accepted; only the calendar date is kept.
func ParseDate(s string) (Date, error) {
	// The parsed digits are taken as written; an offset suffix is not
	// applied, so the calendar date never shifts under conversion.
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("cannot parse %q as a calendar date", s)
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

func (d Date) IsZero() bool {
	return d == Date{}
}
