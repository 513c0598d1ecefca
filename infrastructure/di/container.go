package di

import (
	"fmt"
	"time"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
	"github.com/ca-srg/azusage/domain/repository"
	"github.com/ca-srg/azusage/infrastructure/auth"
	"github.com/ca-srg/azusage/infrastructure/config"
	"github.com/ca-srg/azusage/infrastructure/logging"
	infraRepo "github.com/ca-srg/azusage/infrastructure/repository"
	"github.com/ca-srg/azusage/interface/cli"
	"github.com/ca-srg/azusage/interface/presenter"
	"github.com/ca-srg/azusage/usecase/impl"
	usecase "github.com/ca-srg/azusage/usecase/interface"
)

// Container is the dependency injection container
type Container struct {
	// Configuration
	config *config.AppConfig
	period entity.Period

	// Authentication
	authenticator auth.AzureAuthenticator

	// Repositories
	inventoryRepo  repository.InventoryRepository
	metricsRepo    repository.TokenMetricsRepository
	deploymentRepo repository.DeploymentRepository
	csvRepo        repository.CSVExportRepository
	pushRepo       repository.UsagePushRepository

	// Use Cases
	usageService  usecase.UsageService
	exportService usecase.CSVExportService

	// Presenters
	consolePresenter presenter.ConsolePresenter

	// Controllers
	cliController *cli.CLIController

	// Logging
	loggerFactory domain.LoggerFactory
	logger        domain.Logger

	// Options
	debugMode bool
}

// ContainerOption is a function that configures the container
type ContainerOption func(*Container)

// WithDebugMode sets the debug mode
func WithDebugMode(debug bool) ContainerOption {
	return func(c *Container) {
		c.debugMode = debug
	}
}

// NewContainer creates a new DI container
func NewContainer(opts ...ContainerOption) (*Container, error) {
	container := &Container{}

	// Apply options
	for _, opt := range opts {
		opt(container)
	}

	// Load configuration
	if err := container.initConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logging
	if err := container.initLogging(); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Initialize authentication
	if err := container.initAuth(); err != nil {
		return nil, fmt.Errorf("failed to initialize authentication: %w", err)
	}

	// Initialize repositories
	if err := container.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	// Initialize use cases
	if err := container.initUseCases(); err != nil {
		return nil, fmt.Errorf("failed to initialize use cases: %w", err)
	}

	// Initialize presenters
	if err := container.initPresenters(); err != nil {
		return nil, fmt.Errorf("failed to initialize presenters: %w", err)
	}

	// Initialize controllers
	if err := container.initControllers(); err != nil {
		return nil, fmt.Errorf("failed to initialize controllers: %w", err)
	}

	return container, nil
}

// initConfig loads the configuration and resolves the analysis period
func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.config = cfg
	c.period = cfg.ReportPeriod(time.Now())
	return nil
}

// initLogging initializes the logging system
func (c *Container) initLogging() error {
	if c.debugMode {
		c.config.Logging.Debug = true
		c.config.Logging.Level = "debug"
	}

	c.loggerFactory = logging.NewLoggerFactory(c.config.Logging)
	c.logger = c.loggerFactory.CreateLogger("app")
	return nil
}

// initAuth initializes the Azure CLI authenticator
func (c *Container) initAuth() error {
	authenticator, err := auth.NewAzureCLIAuthenticator()
	if err != nil {
		return err
	}
	c.authenticator = authenticator
	return nil
}

// initRepositories initializes repositories
func (c *Container) initRepositories() error {
	credential := c.authenticator.Credential()

	inventoryRepo, err := infraRepo.NewResourceGraphInventoryRepository(
		credential, c.loggerFactory.CreateLogger("inventory"))
	if err != nil {
		return err
	}
	c.inventoryRepo = inventoryRepo

	metricsRepo, err := infraRepo.NewMonitorMetricsRepository(
		credential, c.loggerFactory.CreateLogger("metrics"))
	if err != nil {
		return err
	}
	c.metricsRepo = metricsRepo

	c.deploymentRepo = infraRepo.NewCognitiveDeploymentsRepository(
		credential, c.loggerFactory.CreateLogger("deployments"))

	c.csvRepo = infraRepo.NewCSVExportRepository()

	// Remote write push is optional
	if c.config.Prometheus.PushEnabled() {
		pushRepo, err := infraRepo.NewPrometheusUsageRepository(
			c.config.Prometheus, c.loggerFactory.CreateLogger("push"))
		if err != nil {
			return err
		}
		c.pushRepo = pushRepo
	}

	return nil
}

// initUseCases initializes use cases
func (c *Container) initUseCases() error {
	c.usageService = impl.NewUsageService(
		c.inventoryRepo,
		c.metricsRepo,
		c.deploymentRepo,
		c.loggerFactory.CreateLogger("usage"),
	)
	c.exportService = impl.NewCSVExportService(
		c.csvRepo,
		c.config.Export.OutputPath,
		c.loggerFactory.CreateLogger("export"),
	)
	return nil
}

// initPresenters initializes presenters
func (c *Container) initPresenters() error {
	c.consolePresenter = presenter.NewConsolePresenter()
	return nil
}

// initControllers initializes controllers
func (c *Container) initControllers() error {
	c.cliController = cli.NewCLIController(
		c.authenticator,
		c.usageService,
		c.exportService,
		c.pushRepo,
		c.consolePresenter,
		c.loggerFactory.CreateLogger("cli"),
		c.period,
	)
	return nil
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.AppConfig {
	return c.config
}

// GetPeriod returns the resolved analysis period
func (c *Container) GetPeriod() entity.Period {
	return c.period
}

// GetCLIController returns the CLI controller
func (c *Container) GetCLIController() *cli.CLIController {
	return c.cliController
}

// GetUsageService returns the usage collection service
func (c *Container) GetUsageService() usecase.UsageService {
	return c.usageService
}

// GetCSVExportService returns the CSV export service
func (c *Container) GetCSVExportService() usecase.CSVExportService {
	return c.exportService
}

// GetLogger returns the application logger
func (c *Container) GetLogger() domain.Logger {
	return c.logger
}

// CreateLogger creates a logger for a specific component
func (c *Container) CreateLogger(component string) domain.Logger {
	return c.loggerFactory.CreateLogger(component)
}

// Close cleans up container resources
func (c *Container) Close() error {
	if c.pushRepo != nil {
		if err := c.pushRepo.Close(); err != nil {
			return err
		}
	}
	if shutdowner, ok := c.logger.(interface{ Shutdown() error }); ok {
		return shutdowner.Shutdown()
	}
	return nil
}
