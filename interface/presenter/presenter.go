package presenter

import (
	"github.com/ca-srg/azusage/domain/entity"
	usecase "github.com/ca-srg/azusage/usecase/interface"
)

// ConsolePresenter defines the interface for terminal output
type ConsolePresenter interface {
	// PrintRunHeader prints the program banner and analysis period
	PrintRunHeader(period entity.Period)

	// PrintAuthFailure prints guidance when the Azure session is unusable
	PrintAuthFailure(err error)

	// PrintDiscoveryResult prints how many endpoints were found
	PrintDiscoveryResult(count int)

	// PrintNoUsageData prints the terminal message for an empty report
	PrintNoUsageData(period entity.Period)

	// PrintUsageSummary prints the per-deployment usage table and totals
	PrintUsageSummary(result *usecase.UsageReportResult) error

	// PrintExportSuccess prints the path of the written CSV file
	PrintExportSuccess(path string, records int)

	// PrintExportFailure prints the export error without ending the run
	PrintExportFailure(err error)

	// PrintError prints an error message
	PrintError(err error)
}
