package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ca-srg/azusage/domain"
	"github.com/ca-srg/azusage/domain/entity"
	"github.com/ca-srg/azusage/domain/valueobject"
	usecase "github.com/ca-srg/azusage/usecase/interface"
)

// Mock implementations
type MockCLILogger struct{}

func (m *MockCLILogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {}
func (m *MockCLILogger) Info(ctx context.Context, msg string, fields ...domain.Field)  {}
func (m *MockCLILogger) Warn(ctx context.Context, msg string, fields ...domain.Field)  {}
func (m *MockCLILogger) Error(ctx context.Context, msg string, fields ...domain.Field) {}
func (m *MockCLILogger) WithFields(fields ...domain.Field) domain.Logger {
	return m
}

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Credential() azcore.TokenCredential {
	return nil
}

func (m *MockAuthenticator) VerifySession(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUsageService struct {
	mock.Mock
}

func (m *MockUsageService) CollectUsage(ctx context.Context, period entity.Period) (*usecase.UsageReportResult, error) {
	args := m.Called(ctx, period)
	if result := args.Get(0); result != nil {
		return result.(*usecase.UsageReportResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(records []entity.UsageRecord, period entity.Period) (string, error) {
	args := m.Called(records, period)
	return args.String(0), args.Error(1)
}

type MockPushRepository struct {
	mock.Mock
}

func (m *MockPushRepository) PushUsage(ctx context.Context, records []entity.UsageRecord, period entity.Period) error {
	args := m.Called(ctx, records, period)
	return args.Error(0)
}

func (m *MockPushRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockPresenter struct {
	mock.Mock
}

func (m *MockPresenter) PrintRunHeader(period entity.Period) {
	m.Called(period)
}

func (m *MockPresenter) PrintAuthFailure(err error) {
	m.Called(err)
}

func (m *MockPresenter) PrintDiscoveryResult(count int) {
	m.Called(count)
}

func (m *MockPresenter) PrintNoUsageData(period entity.Period) {
	m.Called(period)
}

func (m *MockPresenter) PrintUsageSummary(result *usecase.UsageReportResult) error {
	args := m.Called(result)
	return args.Error(0)
}

func (m *MockPresenter) PrintExportSuccess(path string, records int) {
	m.Called(path, records)
}

func (m *MockPresenter) PrintExportFailure(err error) {
	m.Called(err)
}

func (m *MockPresenter) PrintError(err error) {
	m.Called(err)
}

func testResult(period entity.Period) *usecase.UsageReportResult {
	return &usecase.UsageReportResult{
		Period:        period,
		EndpointCount: 1,
		Records: []entity.UsageRecord{
			{
				Endpoint:       entity.Endpoint{ID: "/s/a", Name: "alpha"},
				DeploymentName: "chat",
				Model:          valueobject.RegistryResolved("gpt-4o", ""),
				TotalTokens:    100,
			},
		},
	}
}

func newTestController(
	authenticator *MockAuthenticator,
	usageService *MockUsageService,
	exportService *MockExportService,
	pushRepo *MockPushRepository,
	consolePresenter *MockPresenter,
	period entity.Period,
) *CLIController {
	controller := &CLIController{
		authenticator:    authenticator,
		usageService:     usageService,
		exportService:    exportService,
		consolePresenter: consolePresenter,
		logger:           &MockCLILogger{},
		period:           period,
	}
	if pushRepo != nil {
		controller.pushRepo = pushRepo
	}
	return controller
}

func TestRun_Success(t *testing.T) {
	period := entity.MonthPeriod(2026, time.July)
	authenticator := new(MockAuthenticator)
	usageService := new(MockUsageService)
	exportService := new(MockExportService)
	consolePresenter := new(MockPresenter)

	result := testResult(period)

	consolePresenter.On("PrintRunHeader", period).Return()
	authenticator.On("VerifySession", mock.Anything).Return(nil)
	usageService.On("CollectUsage", mock.Anything, period).Return(result, nil)
	consolePresenter.On("PrintDiscoveryResult", 1).Return()
	consolePresenter.On("PrintUsageSummary", result).Return(nil)
	exportService.On("Export", result.Records, period).Return("/tmp/report.csv", nil)
	consolePresenter.On("PrintExportSuccess", "/tmp/report.csv", 1).Return()

	controller := newTestController(authenticator, usageService, exportService, nil, consolePresenter, period)

	err := controller.Run(context.Background())
	require.NoError(t, err)
	consolePresenter.AssertExpectations(t)
	exportService.AssertExpectations(t)
}

func TestRun_AuthFailureReturnsError(t *testing.T) {
	period := entity.MonthPeriod(2026, time.July)
	authenticator := new(MockAuthenticator)
	usageService := new(MockUsageService)
	exportService := new(MockExportService)
	consolePresenter := new(MockPresenter)

	authErr := domain.ErrAuth("no session")
	consolePresenter.On("PrintRunHeader", period).Return()
	authenticator.On("VerifySession", mock.Anything).Return(authErr)
	consolePresenter.On("PrintAuthFailure", authErr).Return()

	controller := newTestController(authenticator, usageService, exportService, nil, consolePresenter, period)

	err := controller.Run(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsErrorCode(err, domain.ErrCodeAuth))
	usageService.AssertNotCalled(t, "CollectUsage")
}

func TestRun_CollectionFailureDoesNotReturnError(t *testing.T) {
	period := entity.MonthPeriod(2026, time.July)
	authenticator := new(MockAuthenticator)
	usageService := new(MockUsageService)
	exportService := new(MockExportService)
	consolePresenter := new(MockPresenter)

	collectErr := errors.New("resource graph down")
	consolePresenter.On("PrintRunHeader", period).Return()
	authenticator.On("VerifySession", mock.Anything).Return(nil)
	usageService.On("CollectUsage", mock.Anything, period).Return(nil, collectErr)
	consolePresenter.On("PrintError", collectErr).Return()

	controller := newTestController(authenticator, usageService, exportService, nil, consolePresenter, period)

	err := controller.Run(context.Background())
	assert.NoError(t, err)
	exportService.AssertNotCalled(t, "Export")
}

func TestRun_NoEndpoints(t *testing.T) {
	period := entity.MonthPeriod(2026, time.July)
	authenticator := new(MockAuthenticator)
	usageService := new(MockUsageService)
	exportService := new(MockExportService)
	consolePresenter := new(MockPresenter)

	consolePresenter.On("PrintRunHeader", period).Return()
	authenticator.On("VerifySession", mock.Anything).Return(nil)
	usageService.On("CollectUsage", mock.Anything, period).
		Return(&usecase.UsageReportResult{Period: period}, nil)
	consolePresenter.On("PrintDiscoveryResult", 0).Return()

	controller := newTestController(authenticator, usageService, exportService, nil, consolePresenter, period)

	err := controller.Run(context.Background())
	assert.NoError(t, err)
	exportService.AssertNotCalled(t, "Export")
}

func TestRun_NoUsageData(t *testing.T) {
	period := entity.MonthPeriod(2026, time.July)
	authenticator := new(MockAuthenticator)
	usageService := new(MockUsageService)
	exportService := new(MockExportService)
	consolePresenter := new(MockPresenter)

	consolePresenter.On("PrintRunHeader", period).Return()
	authenticator.On("VerifySession", mock.Anything).Return(nil)
	usageService.On("CollectUsage", mock.Anything, period).
		Return(&usecase.UsageReportResult{Period: period, EndpointCount: 2}, nil)
	consolePresenter.On("PrintDiscoveryResult", 2).Return()
	consolePresenter.On("PrintNoUsageData", period).Return()

	controller := newTestController(authenticator, usageService, exportService, nil, consolePresenter, period)

	err := controller.Run(context.Background())
	assert.NoError(t, err)
	exportService.AssertNotCalled(t, "Export")
}

func TestRun_ExportFailureDoesNotReturnError(t *testing.T) {
	period := entity.MonthPeriod(2026, time.July)
	authenticator := new(MockAuthenticator)
	usageService := new(MockUsageService)
	exportService := new(MockExportService)
	consolePresenter := new(MockPresenter)

	result := testResult(period)
	exportErr := domain.ErrCSVExport("write", "disk full")

	consolePresenter.On("PrintRunHeader", period).Return()
	authenticator.On("VerifySession", mock.Anything).Return(nil)
	usageService.On("CollectUsage", mock.Anything, period).Return(result, nil)
	consolePresenter.On("PrintDiscoveryResult", 1).Return()
	consolePresenter.On("PrintUsageSummary", result).Return(nil)
	exportService.On("Export", result.Records, period).Return("", exportErr)
	consolePresenter.On("PrintExportFailure", exportErr).Return()

	controller := newTestController(authenticator, usageService, exportService, nil, consolePresenter, period)

	err := controller.Run(context.Background())
	assert.NoError(t, err)
	consolePresenter.AssertNotCalled(t, "PrintExportSuccess")
}

func TestRun_PushFailureDoesNotReturnError(t *testing.T) {
	period := entity.MonthPeriod(2026, time.July)
	authenticator := new(MockAuthenticator)
	usageService := new(MockUsageService)
	exportService := new(MockExportService)
	pushRepo := new(MockPushRepository)
	consolePresenter := new(MockPresenter)

	result := testResult(period)

	consolePresenter.On("PrintRunHeader", period).Return()
	authenticator.On("VerifySession", mock.Anything).Return(nil)
	usageService.On("CollectUsage", mock.Anything, period).Return(result, nil)
	consolePresenter.On("PrintDiscoveryResult", 1).Return()
	consolePresenter.On("PrintUsageSummary", result).Return(nil)
	exportService.On("Export", result.Records, period).Return("/tmp/report.csv", nil)
	consolePresenter.On("PrintExportSuccess", "/tmp/report.csv", 1).Return()
	pushRepo.On("PushUsage", mock.Anything, result.Records, period).
		Return(domain.ErrMetricsPushWithCause("push", errors.New("unreachable")))

	controller := newTestController(authenticator, usageService, exportService, pushRepo, consolePresenter, period)

	err := controller.Run(context.Background())
	assert.NoError(t, err)
	pushRepo.AssertExpectations(t)
}
