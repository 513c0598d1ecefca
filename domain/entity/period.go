package entity

import (
	"time"
)

// Period is the closed analysis interval for one reporting run.
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthPeriod returns the period covering one full calendar month in UTC.
func MonthPeriod(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Second),
	}
}

// Month returns the period label used in the report, e.g. "January 2026".
func (p Period) Month() string {
	return p.Start.Format("January 2006")
}

// FileLabel returns the filename-safe month label, e.g. "January_2026".
func (p Period) FileLabel() string {
	return p.Start.Format("January_2006")
}

// Timespan returns the ISO 8601 start/end interval used by metric queries.
func (p Period) Timespan() string {
	return p.Start.Format(time.RFC3339) + "/" + p.End.Format(time.RFC3339)
}
