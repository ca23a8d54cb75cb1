package operations

import (
	"context"
	"fmt"
	"log/slog"

	cerrors "cleansecli/internal/errors"
)

// Manager runs the pipeline steps in order, records their states and stops
// on the first failure. There are no retries and no rollback; a failed run
// leaves no partial output because the save step runs last.
type Manager struct {
	steps  []Step
	states map[string]*StepState
	order  []string
	logger *slog.Logger
	tracer *StepTracer
}

// NewManager creates a manager for the given steps.
func NewManager(steps []Step, logger *slog.Logger, tracer *StepTracer) *Manager {
	m := &Manager{
		steps:  steps,
		states: make(map[string]*StepState, len(steps)),
		logger: logger,
		tracer: tracer,
	}
	for _, step := range steps {
		m.states[step.ID()] = NewStepState(step.ID(), step.Name())
		m.order = append(m.order, step.ID())
	}
	return m
}

// Run executes every step in order. The returned error is the first
// failure, already classified under the error taxonomy; steps after a
// failure stay pending.
func (m *Manager) Run(ctx context.Context, state *State) error {
	for _, step := range m.steps {
		stepState := m.states[step.ID()]

		if err := step.Validate(state); err != nil {
			stepState.Fail(err)
			m.logFailure(ctx, stepState, err)
			return cerrors.Wrap(err, step.ID())
		}

		stepState.Start()
		m.logger.InfoContext(ctx, "step started",
			slog.String("step", step.ID()),
			slog.String("name", step.Name()))

		stepCtx, span := m.tracer.Start(ctx, step.ID())
		err := executeStep(stepCtx, step, state)
		m.tracer.End(span, err)

		if err != nil {
			classified := cerrors.Wrap(err, step.ID())
			stepState.Fail(classified)
			m.logFailure(ctx, stepState, classified)
			return classified
		}

		stepState.Complete()
		m.logger.InfoContext(ctx, "step completed",
			slog.String("step", step.ID()),
			slog.Duration("duration", stepState.Duration()))
	}
	return nil
}

// executeStep isolates panics inside a step so an unexpected bug surfaces
// as an internal error instead of a crash without a log line.
func executeStep(ctx context.Context, step Step, state *State) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = cerrors.NewInternalError(step.ID(), fmt.Errorf("panic: %v", rec))
		}
	}()
	return step.Execute(ctx, state)
}

// StepStates returns the recorded states in pipeline order.
func (m *Manager) StepStates() []*StepState {
	out := make([]*StepState, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.states[id])
	}
	return out
}

// StepState returns the state of a single step, or nil.
func (m *Manager) StepState(id string) *StepState {
	return m.states[id]
}

func (m *Manager) logFailure(ctx context.Context, stepState *StepState, err error) {
	m.logger.ErrorContext(ctx, "step failed",
		slog.String("step", stepState.ID),
		slog.String("code", string(cerrors.CodeOf(err))),
		slog.String("error", err.Error()))
}
