package usecase

import "errors"

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrRiskNotFound = errors.New("component risk not found")

	// Validation errors
	ErrInvalidFilters    = errors.New("invalid filters")
	ErrInvalidPatch      = errors.New("invalid patch")
	ErrUnknownMitigation = errors.New("unknown mitigation option")

	// Execution errors
	ErrMitigationInFlight = errors.New("mitigation already in progress for this component")
)

// Context keys for error values
const (
	RiskIDKey       = "risk_id"
	MitigationIDKey = "mitigation_id"
)

// User-facing envelope messages
const (
	msgRiskNotFound      = "Component risk not found"
	msgUnknownMitigation = "Mitigation option not found for this component"
	msgExecutionError    = "An error occurred while executing mitigation"
)
