// Package schedule owns the cross-cutting concerns of turning a melody
// (a sequence of notes plus a map of named source samples) into one output
// PCM buffer: alias resolution, per-note pitch/time parameters, the
// PSOLA/formant/loudness processing pipeline, join smoothing and
// crossfading between consecutive notes, and a final peak limiter. The
// leaf packages (dsp/pitch, dsp/spectral, measure/loudness, voice/alias)
// stay pure transforms; this package is the only one that knows about
// notes, timelines, and concurrency.
package schedule
