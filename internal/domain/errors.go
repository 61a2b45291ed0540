package domain

import "errors"

// Domain errors.
var (
	// ErrMissingField is returned when a brief lacks one of its required fields.
	// It is the only error that reaches API callers.
	ErrMissingField = errors.New("all fields are required")

	// ErrUpstreamUnavailable is returned when the inference endpoint cannot be reached.
	ErrUpstreamUnavailable = errors.New("inference endpoint unavailable")

	// ErrTimeout is returned when an inference call exceeds its deadline.
	ErrTimeout = errors.New("inference call timed out")

	// ErrExtraction is returned when no usable JSON object is found in model output.
	ErrExtraction = errors.New("no valid JSON object in model output")

	// ErrWeakCaption is returned when the model caption is absent or too short.
	ErrWeakCaption = errors.New("caption missing or too short")

	// ErrIncompleteContext is returned when a product analysis lacks a required field.
	ErrIncompleteContext = errors.New("product context incomplete")
)

// Stage names a step of the generation pipeline.
type Stage string

const (
	StageValidating Stage = "validating"
	StageAnalyzing  Stage = "analyzing"
	StageGenerating Stage = "generating"
	StageExtracting Stage = "extracting"
)

// StageError wraps an error with the pipeline stage it occurred in.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return string(e.Stage) + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage Stage, err error) *StageError {
	return &StageError{
		Stage: stage,
		Err:   err,
	}
}
