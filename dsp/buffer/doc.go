// Package buffer provides a reuse-friendly float64 PCM accumulator for
// schedule.Scheduler's Render loop. Every render mixes a variable number
// of processed note clips into one output buffer; without pooling that
// would mean a fresh make([]float64, outLen) allocation on every call.
// Buffer and Pool let the scheduler hold one accumulator across calls,
// growing it only when a render needs more output samples than the last
// one did, and re-zeroing it on reuse so no PCM from a prior render ever
// leaks into the next.
package buffer
