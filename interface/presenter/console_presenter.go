package presenter

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/ca-srg/azusage/domain/entity"
	usecase "github.com/ca-srg/azusage/usecase/interface"
)

// ConsolePresenterImpl implements ConsolePresenter for terminal output
type ConsolePresenterImpl struct {
	writer io.Writer
}

// NewConsolePresenter creates a new console presenter
func NewConsolePresenter() *ConsolePresenterImpl {
	return &ConsolePresenterImpl{
		writer: os.Stdout,
	}
}

// PrintRunHeader prints the program banner and analysis period
func (p *ConsolePresenterImpl) PrintRunHeader(period entity.Period) {
	_, _ = fmt.Fprintln(p.writer, "Azure OpenAI Token Usage Report")
	_, _ = fmt.Fprintln(p.writer, strings.Repeat("=", 60))
	_, _ = fmt.Fprintf(p.writer, "Analysis Period: %s to %s\n",
		period.Start.Format("January 2, 2006"),
		period.End.Format("January 2, 2006"))
}

// PrintAuthFailure prints guidance when the Azure session is unusable
func (p *ConsolePresenterImpl) PrintAuthFailure(err error) {
	fmt.Fprintln(os.Stderr, "Azure authentication failed.")
	fmt.Fprintln(os.Stderr, "Please run 'az login' first to authenticate with Azure.")
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// PrintDiscoveryResult prints how many endpoints were found
func (p *ConsolePresenterImpl) PrintDiscoveryResult(count int) {
	if count == 0 {
		_, _ = fmt.Fprintln(p.writer, "No Azure OpenAI or AIServices resources found.")
		return
	}
	_, _ = fmt.Fprintf(p.writer, "Found %d Azure OpenAI/AIServices resource(s)\n", count)
}

// PrintNoUsageData prints the terminal message for an empty report
func (p *ConsolePresenterImpl) PrintNoUsageData(period entity.Period) {
	_, _ = fmt.Fprintf(p.writer, "No token usage data found across all resources for %s.\n", period.Month())
}

// PrintUsageSummary prints the per-deployment usage table and totals.
// Rows are ordered by endpoint name, then token count descending.
func (p *ConsolePresenterImpl) PrintUsageSummary(result *usecase.UsageReportResult) error {
	_, _ = fmt.Fprintf(p.writer, "\nToken Usage Summary (%s)\n", result.Period.Month())
	_, _ = fmt.Fprintln(p.writer, strings.Repeat("=", 100))

	records := make([]entity.UsageRecord, len(result.Records))
	copy(records, result.Records)
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Endpoint.Name != records[j].Endpoint.Name {
			return records[i].Endpoint.Name < records[j].Endpoint.Name
		}
		return records[i].TotalTokens > records[j].TotalTokens
	})

	w := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "Resource\tDeployment\tModel\tTotal Tokens\n")
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 25),
		strings.Repeat("-", 25),
		strings.Repeat("-", 25),
		strings.Repeat("-", 15))

	for _, record := range records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.truncateString(record.Endpoint.Name, 25),
			p.truncateString(record.DeploymentName, 25),
			p.truncateString(record.Model.Name, 25),
			p.formatNumber(int(record.TotalTokens)))
	}

	_ = w.Flush()
	_, _ = fmt.Fprintln(p.writer, strings.Repeat("=", 100))

	_, _ = fmt.Fprintln(p.writer, "\nOverall Summary:")
	_, _ = fmt.Fprintf(p.writer, "  Total Tokens:     %s\n", p.formatNumber(int(result.TotalTokens())))
	_, _ = fmt.Fprintf(p.writer, "  Resources:        %d\n", result.DistinctEndpoints())
	_, _ = fmt.Fprintf(p.writer, "  Unique Models:    %d\n", result.DistinctModels())

	return nil
}

// PrintExportSuccess prints the path of the written CSV file
func (p *ConsolePresenterImpl) PrintExportSuccess(path string, records int) {
	_, _ = fmt.Fprintf(p.writer, "\nCSV export completed: %s\n", path)
	_, _ = fmt.Fprintf(p.writer, "Total rows exported: %d\n", records)
}

// PrintExportFailure prints the export error without ending the run
func (p *ConsolePresenterImpl) PrintExportFailure(err error) {
	fmt.Fprintf(os.Stderr, "CSV export failed: %v\n", err)
}

// PrintError prints an error message
func (p *ConsolePresenterImpl) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// Helper methods

func (p *ConsolePresenterImpl) formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	// Format with commas
	str := fmt.Sprintf("%d", n)
	result := ""
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(digit)
	}
	return result
}

func (p *ConsolePresenterImpl) truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
