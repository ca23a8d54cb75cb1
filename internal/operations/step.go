// Package operations drives the cleansing pipeline: a fixed sequence of
// steps executed once per invocation, halting on the first failure. Steps
// communicate only through the State they pass along.
package operations

import (
	"context"
	"time"
)

// Step is one stage of the pipeline.
type Step interface {
	// ID returns the stable machine identifier for the step.
	ID() string

	// Name returns the human-readable step name.
	Name() string

	// Validate checks the state before the step runs. A validation
	// failure is reported as a configuration problem, not an execution one.
	Validate(state *State) error

	// Execute runs the step, reading and replacing the table in the state.
	Execute(ctx context.Context, state *State) error
}

// StepStatus tracks where a step is in its lifecycle.
type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusActive    StepStatus = "active"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
)

// StepState is the runtime record of one step: status, timings and the
// error that stopped it, if any.
type StepState struct {
	ID        string
	Name      string
	Status    StepStatus
	StartTime time.Time
	EndTime   time.Time
	Err       error
}

// NewStepState creates a pending record for a step.
func NewStepState(id, name string) *StepState {
	return &StepState{ID: id, Name: name, Status: StepStatusPending}
}

// Start marks the step active.
func (s *StepState) Start() {
	s.StartTime = time.Now()
	s.Status = StepStatusActive
}

// Complete marks the step done.
func (s *StepState) Complete() {
	s.EndTime = time.Now()
	s.Status = StepStatusCompleted
}

// Fail marks the step failed with the terminating error.
func (s *StepState) Fail(err error) {
	s.EndTime = time.Now()
	s.Status = StepStatusFailed
	s.Err = err
}

// Duration returns how long the step ran.
func (s *StepState) Duration() time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}
