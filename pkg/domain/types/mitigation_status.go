package types

import "github.com/m-mizutani/goerr/v2"

// MitigationStatus represents where a component risk is in its mitigation lifecycle
type MitigationStatus string

const (
	MitigationStatusNone      MitigationStatus = "NONE"
	MitigationStatusPlanned   MitigationStatus = "PLANNED"
	MitigationStatusExecuting MitigationStatus = "EXECUTING"
	MitigationStatusCompleted MitigationStatus = "COMPLETED"
	MitigationStatusFailed    MitigationStatus = "FAILED"
)

// AllMitigationStatuses returns all valid mitigation statuses
func AllMitigationStatuses() []MitigationStatus {
	return []MitigationStatus{
		MitigationStatusNone,
		MitigationStatusPlanned,
		MitigationStatusExecuting,
		MitigationStatusCompleted,
		MitigationStatusFailed,
	}
}

// IsValid checks if the mitigation status is valid
func (s MitigationStatus) IsValid() bool {
	switch s {
	case MitigationStatusNone,
		MitigationStatusPlanned,
		MitigationStatusExecuting,
		MitigationStatusCompleted,
		MitigationStatusFailed:
		return true
	default:
		return false
	}
}

// IsActive reports whether a mitigation is planned or running
func (s MitigationStatus) IsActive() bool {
	return s == MitigationStatusPlanned || s == MitigationStatusExecuting
}

func (s MitigationStatus) String() string {
	return string(s)
}

// ParseMitigationStatus parses a string into a MitigationStatus
func ParseMitigationStatus(s string) (MitigationStatus, error) {
	status := MitigationStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid mitigation status", goerr.V("status", s))
	}
	return status, nil
}
