package engine

import (
	"errors"
	"fmt"

	"github.com/TGotwig/sic/internal/ops"
)

// Sentinel causes for operation failures.
var (
	// ErrOutOfBounds reports a crop rectangle that exceeds the image.
	ErrOutOfBounds = errors.New("crop rectangle exceeds image bounds")
	// ErrEmptyRect reports a crop rectangle with no area.
	ErrEmptyRect = errors.New("crop rectangle has no area")
	// ErrZeroDimension reports a resize to a degenerate size.
	ErrZeroDimension = errors.New("resize to zero dimensions")
	// ErrNoLoader reports an operation that references another image when
	// the engine has no loader configured.
	ErrNoLoader = errors.New("no image loader configured")
)

// Error locates a failed operation within a pipeline run. It is the
// engine's only failure path; nothing is partially applied when it is
// returned.
type Error struct {
	// Index is the 0-based position of the failing node in the pipeline.
	Index int
	// Kind is the failing operation.
	Kind ops.Kind
	// Cause is the underlying failure.
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("operation %q at index %d failed: %v", e.Kind, e.Index, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }
