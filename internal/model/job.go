package model

import (
	"github.com/google/uuid"

	"github.com/imgforge/imgforge/internal/format"
)

// Job represents a single conversion request. It is immutable once built
// and owned by the caller for the duration of one conversion; jobs share
// no state and are processed independently.
type Job struct {
	ID     uuid.UUID
	Input  string
	Output string // empty means derive from Input
	Target format.Format
}

// NewJob builds a Job with a fresh correlation ID.
func NewJob(input, output string, target format.Format) Job {
	return Job{
		ID:     uuid.New(),
		Input:  input,
		Output: output,
		Target: target,
	}
}
