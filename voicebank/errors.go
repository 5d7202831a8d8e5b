package voicebank

import "errors"

// Sentinel errors returned by the analysis and scheduling packages. Wrap
// with fmt.Errorf("...: %w", ErrX) at the point of failure so errors.Is
// still matches through added context.
var (
	// ErrInvalidInput marks a rejected argument: a non-positive sample
	// rate, a mismatched buffer length, an out-of-range configuration
	// value caught by constructor validation.
	ErrInvalidInput = errors.New("voicebank: invalid input")

	// ErrAnalysisEmpty marks an analysis that had no signal to work with,
	// e.g. a sample shorter than pitch-mark analysis's minimum length.
	ErrAnalysisEmpty = errors.New("voicebank: analysis produced no result")

	// ErrCancelled names a render aborted through context cancellation.
	// Scheduler.Render reports cancellation through StatusCancelled and
	// does not return this error.
	ErrCancelled = errors.New("voicebank: render cancelled")
)
