package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrSeedNotFound      = goerr.New("seed file not found")
	ErrInvalidSeed       = goerr.New("invalid seed data")
	ErrInvalidDate       = goerr.New("invalid date expression")
	ErrInvalidLogLevel   = goerr.New("invalid log level")
	ErrInvalidLogFormat  = goerr.New("invalid log format")
	ErrInvalidSimulation = goerr.New("invalid simulation setting")
	ErrMissingChannel    = goerr.New("slack channel ID is required with a bot token")
)

// Context keys for error values
const (
	SeedPathKey   = "seed_path"
	RiskIndexKey  = "risk_index"
	DateKey       = "date"
	SupplierIDKey = "supplier_id"
	PlantIDKey    = "plant_id"
)
