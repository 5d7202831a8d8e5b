// Package testutil generates deterministic synthetic PCM for this
// module's DSP tests in place of recorded voicebank fixture samples: a
// sine at a known frequency exercises pitch detection and PSOLA's
// identity/octave-shift invariants (spec scenarios E1/E2), fixed-seed
// noise exercises the unvoiced path, and silence/DC exercise the
// has-content and NaN/Inf-free guarantees every leaf DSP routine makes.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a deterministic sine wave, standing in for
// a sustained vowel phoneme recording at a known, checkable pitch.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility, standing in for an unvoiced consonant: autocorrelation
// pitch detection should report no confident period for it.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position; a position
// outside [0, length) yields all zeros.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal, the degenerate all-zero or
// all-equal case spec §4 requires every leaf DSP routine to pass through
// without producing NaN/Inf.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
