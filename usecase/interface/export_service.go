package usecase

import (
	"github.com/ca-srg/azusage/domain/entity"
)

// CSVExportService writes a usage report to a CSV file.
type CSVExportService interface {
	// Export writes the records to a timestamped CSV file in the configured
	// output directory and returns the file path.
	Export(records []entity.UsageRecord, period entity.Period) (string, error)
}
