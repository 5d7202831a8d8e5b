package schedule

import "errors"

// ErrNoSamples marks a Render call with no notes or an empty sample map —
// there is nothing to schedule.
var ErrNoSamples = errors.New("schedule: no notes or no samples to render")
