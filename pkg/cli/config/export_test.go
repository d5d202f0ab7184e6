package config

import "time"

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, channelID string) *Slack {
	return &Slack{
		botToken:  botToken,
		channelID: channelID,
	}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(seedFile string, interval time.Duration) *Repository {
	return &Repository{
		seedFile:        seedFile,
		refreshInterval: interval,
	}
}

// NewSimulationForTest creates a Simulation config for testing purposes
func NewSimulationForTest(latency, delay time.Duration, rate float64, seed uint64) *Simulation {
	return &Simulation{
		latency:        latency,
		executionDelay: delay,
		successRate:    rate,
		randomSeed:     seed,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
