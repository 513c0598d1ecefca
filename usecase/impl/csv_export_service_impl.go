package impl

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
	"github.com/ca-srg/azusage/domain/repository"
	usecase "github.com/ca-srg/azusage/usecase/interface"
)

// CSVExportServiceImpl implements CSVExportService
type CSVExportServiceImpl struct {
	csvRepo   repository.CSVExportRepository
	outputDir string
	logger    domain.Logger

	// now is swappable for tests
	now func() time.Time
}

// NewCSVExportService creates a new CSV export service writing into
// outputDir.
func NewCSVExportService(
	csvRepo repository.CSVExportRepository,
	outputDir string,
	logger domain.Logger,
) usecase.CSVExportService {
	return &CSVExportServiceImpl{
		csvRepo:   csvRepo,
		outputDir: outputDir,
		logger:    logger,
		now:       time.Now,
	}
}

// Export writes the records to a timestamped CSV file and returns its path.
// Exporting an empty record set is an error; callers decide beforehand
// whether an empty report is worth writing.
func (s *CSVExportServiceImpl) Export(records []entity.UsageRecord, period entity.Period) (string, error) {
	if len(records) == 0 {
		return "", domain.ErrCSVExport("export", "no usage records to export")
	}

	if err := s.csvRepo.ValidateOutputDir(s.outputDir); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("azure_openai_tokens_%s_%s.csv",
		period.FileLabel(),
		s.now().Format("20060102_150405"))
	path := filepath.Join(s.outputDir, filename)

	if err := s.csvRepo.WriteUsageReport(path, records, period); err != nil {
		return "", err
	}

	s.logger.Info(context.Background(), "usage report exported",
		domain.NewField("path", path),
		domain.NewField("records", len(records)))

	return path, nil
}
