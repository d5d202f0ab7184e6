// Package executor runs mitigation actions. The current implementation only
// simulates the external call; it never writes to the repository and instead
// returns the state change for the caller to apply.
package executor

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controltower/pkg/domain/model"
	"github.com/secmon-lab/controltower/pkg/domain/types"
)

const (
	// DefaultDelay is how long a simulated execution takes
	DefaultDelay = 900 * time.Millisecond

	completionLeadTime = 5 * 24 * time.Hour

	MessageSucceeded = "Mitigation action initiated successfully. You will receive updates on progress."
	MessageFailed    = "Failed to initiate mitigation. Please try again or contact support."
)

// Request identifies one execution attempt
type Request struct {
	MitigationID string
	Risk         *model.ComponentRisk
}

// Outcome is the result of an attempt. Delta is nil unless the attempt
// succeeded.
type Outcome struct {
	Result *model.MitigationExecutionResult
	Delta  *model.RiskStatusDelta
}

type Executor interface {
	Execute(ctx context.Context, req Request) (*Outcome, error)
}

// Simulated is an Executor that waits, asks its Decider and fabricates a
// reference number
type Simulated struct {
	delay   time.Duration
	decider Decider
	now     func() time.Time
}

var _ Executor = &Simulated{}

type Option func(*Simulated)

// WithDelay sets the simulated execution time. Zero completes immediately.
func WithDelay(d time.Duration) Option {
	return func(s *Simulated) {
		s.delay = d
	}
}

func WithDecider(d Decider) Option {
	return func(s *Simulated) {
		s.decider = d
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Simulated) {
		s.now = now
	}
}

func New(opts ...Option) *Simulated {
	s := &Simulated{
		delay:   DefaultDelay,
		decider: Probabilistic(DefaultSuccessRate, nil),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Simulated) Execute(ctx context.Context, req Request) (*Outcome, error) {
	if req.Risk == nil {
		return nil, goerr.New("risk is required", goerr.V(model.MitigationIDKey, req.MitigationID))
	}

	if err := s.wait(ctx); err != nil {
		return nil, goerr.Wrap(err, "mitigation execution interrupted",
			goerr.V(model.MitigationIDKey, req.MitigationID),
			goerr.V(model.RiskIDKey, req.Risk.ID))
	}

	ok, err := s.decider.Decide(ctx, req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to execute mitigation",
			goerr.V(model.MitigationIDKey, req.MitigationID),
			goerr.V(model.RiskIDKey, req.Risk.ID))
	}

	now := s.now()
	result := &model.MitigationExecutionResult{
		Success:         ok,
		MitigationID:    req.MitigationID,
		ComponentRiskID: req.Risk.ID,
		Timestamp:       now,
	}
	if !ok {
		result.Message = MessageFailed
		return &Outcome{Result: result}, nil
	}

	completion := now.Add(completionLeadTime)
	result.Message = MessageSucceeded
	result.ReferenceNumber = NewReferenceNumber()
	result.EstimatedCompletionDate = &completion

	return &Outcome{
		Result: result,
		Delta: &model.RiskStatusDelta{
			ComponentRiskID:    req.Risk.ID,
			MitigationStatus:   types.MitigationStatusExecuting,
			ActiveMitigationID: req.MitigationID,
		},
	}, nil
}

func (s *Simulated) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewReferenceNumber returns a tracking number of the form MIT-XXXXXXXXXXXX
func NewReferenceNumber() string {
	id := uuid.New()
	hex := strings.ReplaceAll(id.String(), "-", "")
	return "MIT-" + strings.ToUpper(hex[len(hex)-12:])
}
