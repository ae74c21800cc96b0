package service

import (
	"errors"
	"fmt"
)

// Stage identifies which part of the leaderboard pipeline failed.
type Stage string

const (
	StageFetch    Stage = "fetch"
	StagePersist  Stage = "persist"
	StageRender   Stage = "render"
	StageInternal Stage = "internal"
)

// PipelineError tags an error with the pipeline stage it came from. The
// command layer reports the stage to the user; the wrapped error stays in
// the logs.
type PipelineError struct {
	Stage Stage
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// StageOf extracts the failing stage from err, or StageInternal when err
// carries no stage information.
func StageOf(err error) Stage {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Stage
	}
	return StageInternal
}

func stageErr(stage Stage, err error) error {
	return &PipelineError{Stage: stage, Err: err}
}
