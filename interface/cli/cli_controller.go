package cli

import (
	"context"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
	"github.com/ca-srg/azusage/domain/repository"
	"github.com/ca-srg/azusage/infrastructure/auth"
	"github.com/ca-srg/azusage/interface/presenter"
	usecase "github.com/ca-srg/azusage/usecase/interface"
)

// CLIController drives one reporting run from the command line.
type CLIController struct {
	authenticator    auth.AzureAuthenticator
	usageService     usecase.UsageService
	exportService    usecase.CSVExportService
	pushRepo         repository.UsagePushRepository
	consolePresenter presenter.ConsolePresenter
	logger           domain.Logger
	period           entity.Period
}

// NewCLIController creates a new CLI controller. pushRepo may be nil when no
// remote write target is configured.
func NewCLIController(
	authenticator auth.AzureAuthenticator,
	usageService usecase.UsageService,
	exportService usecase.CSVExportService,
	pushRepo repository.UsagePushRepository,
	consolePresenter presenter.ConsolePresenter,
	logger domain.Logger,
	period entity.Period,
) *CLIController {
	return &CLIController{
		authenticator:    authenticator,
		usageService:     usageService,
		exportService:    exportService,
		pushRepo:         pushRepo,
		consolePresenter: consolePresenter,
		logger:           logger,
		period:           period,
	}
}

// Run executes one reporting run: verify the session, collect usage, print
// the summary, export the CSV, and optionally push metrics. Only an unusable
// Azure session returns an error; everything after authentication degrades
// to logged warnings.
func (c *CLIController) Run(ctx context.Context) error {
	c.consolePresenter.PrintRunHeader(c.period)

	if err := c.authenticator.VerifySession(ctx); err != nil {
		c.consolePresenter.PrintAuthFailure(err)
		return err
	}
	c.logger.Info(ctx, "azure session verified")

	result, err := c.usageService.CollectUsage(ctx, c.period)
	if err != nil {
		c.consolePresenter.PrintError(err)
		c.logger.Error(ctx, "usage collection failed",
			domain.NewField("error", err.Error()))
		return nil
	}

	c.consolePresenter.PrintDiscoveryResult(result.EndpointCount)
	if result.EndpointCount == 0 {
		return nil
	}

	if len(result.Records) == 0 {
		c.consolePresenter.PrintNoUsageData(c.period)
		return nil
	}

	if err := c.consolePresenter.PrintUsageSummary(result); err != nil {
		c.logger.Warn(ctx, "failed to print usage summary",
			domain.NewField("error", err.Error()))
	}

	path, err := c.exportService.Export(result.Records, c.period)
	if err != nil {
		c.consolePresenter.PrintExportFailure(err)
		c.logger.Error(ctx, "csv export failed",
			domain.NewField("error", err.Error()))
	} else {
		c.consolePresenter.PrintExportSuccess(path, len(result.Records))
	}

	if c.pushRepo != nil {
		if err := c.pushRepo.PushUsage(ctx, result.Records, c.period); err != nil {
			c.logger.Warn(ctx, "metrics push failed",
				domain.NewField("error", err.Error()))
		}
	}

	return nil
}
