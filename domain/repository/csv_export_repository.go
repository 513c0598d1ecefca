package repository

import (
	"github.com/ca-srg/azusage/domain/entity"
)

// CSVExportRepository writes usage records to a CSV file in the fixed
// report schema.
type CSVExportRepository interface {
	WriteUsageReport(path string, records []entity.UsageRecord, period entity.Period) error

	// ValidateOutputDir checks that the directory exists and is writable
	ValidateOutputDir(dir string) error
}
