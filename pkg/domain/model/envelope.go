package model

import "time"

// FailureReason classifies a failed envelope for transports
type FailureReason string

const (
	ReasonNone             FailureReason = ""
	ReasonNotFound         FailureReason = "NOT_FOUND"
	ReasonInvalidArgument  FailureReason = "INVALID_ARGUMENT"
	ReasonExecutionFailure FailureReason = "EXECUTION_FAILURE"
	ReasonTransient        FailureReason = "TRANSIENT"
)

// Envelope wraps every data access response
type Envelope[T any] struct {
	Data      T             `json:"data"`
	Success   bool          `json:"success"`
	Message   string        `json:"message,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
	Reason    FailureReason `json:"-"`
}

// Succeed builds a successful envelope
func Succeed[T any](data T, now time.Time) *Envelope[T] {
	return &Envelope[T]{
		Data:      data,
		Success:   true,
		Timestamp: now,
	}
}

// Fail builds a failed envelope carrying the zero value of T
func Fail[T any](reason FailureReason, message string, now time.Time) *Envelope[T] {
	var zero T
	return &Envelope[T]{
		Data:      zero,
		Success:   false,
		Message:   message,
		Timestamp: now,
		Reason:    reason,
	}
}
