package usecase

import (
	"time"

	"github.com/secmon-lab/controltower/pkg/domain/interfaces"
	"github.com/secmon-lab/controltower/pkg/service/executor"
)

// DefaultLatency is the simulated round trip of list and coach operations.
// Lookups by ID take half of it.
const DefaultLatency = 300 * time.Millisecond

type UseCases struct {
	repo interfaces.Repository
	env  *env

	executor executor.Executor
	notifier interfaces.Notifier

	Risk       *RiskUseCase
	Coach      *CoachUseCase
	Mitigation *MitigationUseCase
	Reference  *ReferenceUseCase
}

type Option func(*UseCases)

// WithClock replaces the wall clock, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.env.now = now
	}
}

// WithLatency sets the simulated base latency. Zero disables it.
func WithLatency(d time.Duration) Option {
	return func(uc *UseCases) {
		uc.env.latency = d
	}
}

func WithExecutor(exec executor.Executor) Option {
	return func(uc *UseCases) {
		uc.executor = exec
	}
}

// WithNotifier enables announcements of initiated mitigations
func WithNotifier(n interfaces.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifier = n
	}
}

func WithMetrics(m *Metrics) Option {
	return func(uc *UseCases) {
		uc.env.metrics = m
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
		env: &env{
			now:     time.Now,
			latency: DefaultLatency,
		},
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.env.metrics == nil {
		uc.env.metrics = NewMetrics(nil)
	}
	if uc.executor == nil {
		uc.executor = executor.New(executor.WithClock(uc.env.now))
	}

	uc.Risk = NewRiskUseCase(repo, uc.env)
	uc.Coach = NewCoachUseCase(repo, uc.env)
	uc.Mitigation = NewMitigationUseCase(repo, uc.env, uc.executor, uc.notifier)
	uc.Reference = NewReferenceUseCase(repo, uc.env)

	return uc
}
