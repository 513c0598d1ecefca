package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
	"github.com/ca-srg/azusage/domain/repository"
)

// usageCSVHeader is the fixed report schema. Column names and order are
// part of the report contract consumed downstream.
var usageCSVHeader = []string{
	"ID",
	"DeploymentName",
	"ModelName",
	"Processed Inference Tokens (Sum)",
	"Month",
	"Subscription Id",
	"Subscription Name",
	"Kind",
}

// CSVExportRepository writes the usage report as a CSV file.
type CSVExportRepository struct{}

// NewCSVExportRepository creates a new CSV export repository
func NewCSVExportRepository() repository.CSVExportRepository {
	return &CSVExportRepository{}
}

// WriteUsageReport writes usage records to path in the report schema.
// Records are written in the order given; the caller owns the ordering.
func (r *CSVExportRepository) WriteUsageReport(path string, records []entity.UsageRecord, period entity.Period) error {
	if len(records) == 0 {
		return domain.ErrCSVExport("write", "no usage records to export")
	}

	file, err := os.Create(path)
	if err != nil {
		return domain.ErrCSVExportWithCause("write", fmt.Errorf("failed to create file: %w", err))
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close file: %v\n", err)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(usageCSVHeader); err != nil {
		return domain.ErrCSVExportWithCause("write", fmt.Errorf("failed to write header: %w", err))
	}

	month := period.Month()
	for _, record := range records {
		row := []string{
			record.Endpoint.ID,
			record.DeploymentName,
			record.Model.Name,
			strconv.Itoa(int(record.TotalTokens)),
			month,
			record.Endpoint.SubscriptionID,
			record.Endpoint.SubscriptionName,
			record.Endpoint.Kind,
		}
		if err := writer.Write(row); err != nil {
			return domain.ErrCSVExportWithCause("write", fmt.Errorf("failed to write row: %w", err))
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return domain.ErrCSVExportWithCause("write", fmt.Errorf("failed to flush rows: %w", err))
	}

	return nil
}

// ValidateOutputDir checks that the output directory exists and is writable
// before any Azure work starts.
func (r *CSVExportRepository) ValidateOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ErrCSVExport("validate", fmt.Sprintf("directory does not exist: %s", dir))
		}
		return domain.ErrCSVExportWithCause("validate", fmt.Errorf("failed to check directory: %w", err))
	}
	if !info.IsDir() {
		return domain.ErrCSVExport("validate", fmt.Sprintf("path is not a directory: %s", dir))
	}

	testFile := filepath.Join(dir, ".azusage_test_write")
	file, err := os.Create(testFile)
	if err != nil {
		return domain.ErrCSVExport("validate", fmt.Sprintf("directory is not writable: %s", dir))
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(testFile)
		return domain.ErrCSVExportWithCause("validate", fmt.Errorf("failed to close test file: %w", err))
	}
	if err := os.Remove(testFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to remove test file: %v\n", err)
	}

	return nil
}
