package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthPeriod(t *testing.T) {
	period := MonthPeriod(2026, time.July)

	assert.Equal(t, time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2026, 7, 31, 23, 59, 59, 0, time.UTC), period.End)
}

func TestMonthPeriod_December(t *testing.T) {
	period := MonthPeriod(2025, time.December)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), period.End)
}

func TestMonthPeriod_February(t *testing.T) {
	// 2024 is a leap year
	period := MonthPeriod(2024, time.February)

	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), period.End)
}

func TestPeriod_Month(t *testing.T) {
	period := MonthPeriod(2026, time.July)
	assert.Equal(t, "July 2026", period.Month())
}

func TestPeriod_FileLabel(t *testing.T) {
	period := MonthPeriod(2026, time.July)
	assert.Equal(t, "July_2026", period.FileLabel())
}

func TestPeriod_Timespan(t *testing.T) {
	period := MonthPeriod(2026, time.July)
	assert.Equal(t, "2026-07-01T00:00:00Z/2026-07-31T23:59:59Z", period.Timespan())
}
