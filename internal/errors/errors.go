// Package errors defines the error taxonomy shared by the cleansing pipeline.
// Every failure surfaced to the operator carries one of four codes; the CLI
// maps all of them to exit status 1.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code identifies the class of a pipeline failure.
type Code string

const (
	// CodeLoad covers input files that are missing, unreadable or unparseable.
	CodeLoad Code = "LOAD_ERROR"
	// CodeConfig covers invalid option combinations detected before any data moves.
	CodeConfig Code = "CONFIG_ERROR"
	// CodeSave covers output paths that cannot be written.
	CodeSave Code = "SAVE_ERROR"
	// CodeInternal covers unexpected failures inside a transformation.
	CodeInternal Code = "INTERNAL_ERROR"
)

// PipelineError is the concrete error type used throughout the pipeline.
type PipelineError struct {
	Code    Code
	Step    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	if e == nil {
		return "unknown pipeline error"
	}
	var msg string
	if e.Step != "" {
		msg = fmt.Sprintf("[%s] %s: %s", e.Code, e.Step, e.Message)
	} else {
		msg = fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *PipelineError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewLoadError reports a failure to read or parse the input file.
func NewLoadError(path string, cause error) *PipelineError {
	return &PipelineError{
		Code:    CodeLoad,
		Step:    "load",
		Message: fmt.Sprintf("cannot load %s", path),
		Cause:   cause,
	}
}

// NewConfigError reports an invalid option combination.
func NewConfigError(message string) *PipelineError {
	return &PipelineError{
		Code:    CodeConfig,
		Message: message,
	}
}

// NewSaveError reports a failure to write the output file.
func NewSaveError(path string, cause error) *PipelineError {
	return &PipelineError{
		Code:    CodeSave,
		Step:    "save",
		Message: fmt.Sprintf("cannot save %s", path),
		Cause:   cause,
	}
}

// NewInternalError reports an unexpected failure inside a transformation step.
func NewInternalError(step string, cause error) *PipelineError {
	return &PipelineError{
		Code:    CodeInternal,
		Step:    step,
		Message: "unexpected failure",
		Cause:   cause,
	}
}

// Wrap attaches pipeline context to an arbitrary error. Errors that already
// carry a code keep it; anything else becomes an internal error for the step.
func Wrap(err error, step string) *PipelineError {
	if err == nil {
		return nil
	}
	var perr *PipelineError
	if stderrors.As(err, &perr) {
		if perr.Step == "" {
			perr.Step = step
		}
		return perr
	}
	return NewInternalError(step, err)
}

// CodeOf extracts the taxonomy code from an error chain. Unknown errors
// report CodeInternal so no failure escapes classification.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var perr *PipelineError
	if stderrors.As(err, &perr) {
		return perr.Code
	}
	return CodeInternal
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
