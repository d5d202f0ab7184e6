package model

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidRisk    = goerr.New("invalid component risk")
	ErrInvalidPatch   = goerr.New("invalid risk patch")
	ErrInvalidFilters = goerr.New("invalid risk filters")
)

// Context keys for error values
const (
	RiskIDKey       = "risk_id"
	MitigationIDKey = "mitigation_id"
)
