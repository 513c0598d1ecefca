package domain

import (
	"fmt"
)

// ErrorCode represents the type of domain error
type ErrorCode string

const (
	// ErrCodeAuth indicates an Azure session/authentication failure
	ErrCodeAuth ErrorCode = "AUTH_ERROR"

	// ErrCodeInvalidInput indicates that the input provided is invalid
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrCodeConfig indicates a configuration error
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeDiscovery indicates a resource inventory query error
	ErrCodeDiscovery ErrorCode = "DISCOVERY_ERROR"

	// ErrCodeMetricsQuery indicates a token metrics query error
	ErrCodeMetricsQuery ErrorCode = "METRICS_QUERY_ERROR"

	// ErrCodeDeploymentQuery indicates a deployment listing error
	ErrCodeDeploymentQuery ErrorCode = "DEPLOYMENT_QUERY_ERROR"

	// ErrCodeCSVExport indicates a CSV export-related error
	ErrCodeCSVExport ErrorCode = "CSV_EXPORT_ERROR"

	// ErrCodeMetricsPush indicates a metrics push (remote write) error
	ErrCodeMetricsPush ErrorCode = "METRICS_PUSH_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error
func (e *DomainError) WithDetails(key string, value interface{}) *DomainError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewDomainError creates a new domain error
func NewDomainError(code ErrorCode, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// NewDomainErrorWithCause creates a new domain error with an underlying cause
func NewDomainErrorWithCause(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Err:     err,
	}
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error
func GetErrorCode(err error) ErrorCode {
	if domainErr, ok := err.(*DomainError); ok {
		return domainErr.Code
	}
	return ""
}

// ErrAuth creates an authentication error
func ErrAuth(reason string) *DomainError {
	return NewDomainError(ErrCodeAuth, fmt.Sprintf("azure authentication failed: %s", reason)).
		WithDetails("reason", reason)
}

// ErrAuthWithCause creates an authentication error with cause
func ErrAuthWithCause(operation string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeAuth, fmt.Sprintf("azure authentication failed in %s", operation), err).
		WithDetails("operation", operation)
}

// ErrInvalidInput creates an invalid input error
func ErrInvalidInput(field string, reason string) *DomainError {
	return NewDomainError(ErrCodeInvalidInput, fmt.Sprintf("invalid %s: %s", field, reason)).
		WithDetails("field", field).
		WithDetails("reason", reason)
}

// ErrConfig creates a configuration error
func ErrConfig(field string, reason string) *DomainError {
	return NewDomainError(ErrCodeConfig, fmt.Sprintf("invalid configuration for %s: %s", field, reason)).
		WithDetails("field", field).
		WithDetails("reason", reason)
}

// ErrDiscoveryWithCause creates a resource discovery error with cause
func ErrDiscoveryWithCause(operation string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeDiscovery, fmt.Sprintf("resource discovery failed in %s", operation), err).
		WithDetails("operation", operation)
}

// ErrMetricsQueryWithCause creates a token metrics query error with cause
func ErrMetricsQueryWithCause(metricName string, endpointID string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeMetricsQuery, fmt.Sprintf("metrics query failed for %s", metricName), err).
		WithDetails("metricName", metricName).
		WithDetails("endpointID", endpointID)
}

// ErrDeploymentQueryWithCause creates a deployment listing error with cause
func ErrDeploymentQueryWithCause(accountName string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeDeploymentQuery, fmt.Sprintf("deployment listing failed for %s", accountName), err).
		WithDetails("accountName", accountName)
}

// ErrCSVExport creates a CSV export error
func ErrCSVExport(operation string, reason string) *DomainError {
	return NewDomainError(ErrCodeCSVExport, fmt.Sprintf("CSV export error in %s: %s", operation, reason)).
		WithDetails("operation", operation).
		WithDetails("reason", reason)
}

// ErrCSVExportWithCause creates a CSV export error with cause
func ErrCSVExportWithCause(operation string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeCSVExport, fmt.Sprintf("CSV export error in %s", operation), err).
		WithDetails("operation", operation)
}

// ErrMetricsPushWithCause creates a metrics push error with cause
func ErrMetricsPushWithCause(operation string, err error) *DomainError {
	return NewDomainErrorWithCause(ErrCodeMetricsPush, fmt.Sprintf("metrics push error in %s", operation), err).
		WithDetails("operation", operation)
}
