package operations

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// StepTracer wraps a tracer so the manager can span each step without
// caring whether tracing is enabled; a no-op tracer flows straight through.
type StepTracer struct {
	tracer trace.Tracer
}

// NewStepTracer creates a tracer for pipeline steps.
func NewStepTracer(tracer trace.Tracer) *StepTracer {
	return &StepTracer{tracer: tracer}
}

// Start opens a span for one step execution.
func (t *StepTracer) Start(ctx context.Context, stepID string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, "pipeline.step."+stepID,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("step.id", stepID)),
	)
}

// End closes the span, recording the failure if the step returned one.
func (t *StepTracer) End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
