package config_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controltower/pkg/cli/config"
)

func TestConfigErrors_SentinelIdentification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		sentinelError error
		wantMatch     bool
	}{
		{
			name:          "ErrSeedNotFound can be identified",
			err:           goerr.Wrap(config.ErrSeedNotFound, "failed to load seed"),
			sentinelError: config.ErrSeedNotFound,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidSeed can be identified",
			err:           goerr.Wrap(config.ErrInvalidSeed, "validation failed"),
			sentinelError: config.ErrInvalidSeed,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidDate can be identified",
			err:           goerr.Wrap(config.ErrInvalidDate, "bad offset"),
			sentinelError: config.ErrInvalidDate,
			wantMatch:     true,
		},
		{
			name:          "ErrInvalidSimulation can be identified",
			err:           goerr.Wrap(config.ErrInvalidSimulation, "rate out of range"),
			sentinelError: config.ErrInvalidSimulation,
			wantMatch:     true,
		},
		{
			name:          "ErrMissingChannel can be identified",
			err:           goerr.Wrap(config.ErrMissingChannel, "no channel"),
			sentinelError: config.ErrMissingChannel,
			wantMatch:     true,
		},
		{
			name:          "Different sentinel errors do not match",
			err:           goerr.Wrap(config.ErrSeedNotFound, "failed to load seed"),
			sentinelError: config.ErrInvalidSeed,
			wantMatch:     false,
		},
		{
			name:          "Log level and format errors are distinct",
			err:           goerr.Wrap(config.ErrInvalidLogLevel, "unknown level"),
			sentinelError: config.ErrInvalidLogFormat,
			wantMatch:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := errors.Is(tt.err, tt.sentinelError)
			gt.Value(t, matched).Equal(tt.wantMatch)
		})
	}
}

func TestConfigErrors_ContextKeys(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "SeedPathKey", key: config.SeedPathKey, value: "/path/to/seed.toml"},
		{name: "RiskIndexKey", key: config.RiskIndexKey, value: "3"},
		{name: "DateKey", key: config.DateKey, value: "today+2"},
		{name: "SupplierIDKey", key: config.SupplierIDKey, value: "SUP001"},
		{name: "PlantIDKey", key: config.PlantIDKey, value: "PLT001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := goerr.Wrap(config.ErrInvalidSeed, "test error", goerr.V(tt.key, tt.value))
			gt.Value(t, err).NotNil().Required()
			gt.Value(t, err.Values()[tt.key]).Equal(any(tt.value))
		})
	}
}
