package spectral

import (
	"math"

	"github.com/cwbudde/voicebank-dsp/dsp/core"
	"github.com/cwbudde/voicebank-dsp/dsp/window"
	"github.com/cwbudde/voicebank-dsp/internal/fft"
)

const (
	formantGainMin = 0.1
	formantGainMax = 10.0
	formantEps     = 1e-10
)

// ApplyFormantPreservation corrects the spectral envelope of shifted (PSOLA
// output) so its formants track orig's rather than the pitch shift,
// controlled by cfg.FormantScale. FormantScale >= 1.0 is a fast path that
// returns a byte-identical copy of shifted without doing any FFT work.
func ApplyFormantPreservation(orig, shifted []float32, sampleRate int, pitchShiftSemitones float64, opts ...Option) ([]float32, error) {
	cfg := ApplyOptions(opts...)

	if cfg.FormantScale >= 1.0 {
		out := make([]float32, len(shifted))
		copy(out, shifted)

		return out, nil
	}

	plan, err := fft.CachedPlan(cfg.FFTSize)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(shifted))
	winSum := make([]float64, len(shifted))

	lifterOrder := LifterOrder(sampleRate)

	shiftedF64 := toFloat64(shifted)
	origF64 := toFloat64(orig)

	coeffs := window.Generate(window.TypeHann, cfg.FFTSize)

	var shiftedScratch, origScratch []float64

	for start := 0; start < len(shifted); start += cfg.HopSize {
		shiftedScratch = frameAt(shiftedF64, start, cfg.FFTSize, shiftedScratch)
		origScratch = frameAt(origF64, start, cfg.FFTSize, origScratch)
		shiftedFrame := shiftedScratch
		origFrame := origScratch

		shiftedSpectrum, err := windowedSpectrum(plan, shiftedFrame, coeffs)
		if err != nil {
			return nil, err
		}

		origSpectrum, err := windowedSpectrum(plan, origFrame, coeffs)
		if err != nil {
			return nil, err
		}

		eShift, err := envelopeFromSpectrum(plan, shiftedSpectrum, lifterOrder)
		if err != nil {
			return nil, err
		}

		eOrig, err := envelopeFromSpectrum(plan, origSpectrum, lifterOrder)
		if err != nil {
			return nil, err
		}

		if cfg.FormantScale > 0 {
			eOrig = warpEnvelope(eOrig, pitchShiftSemitones*cfg.FormantScale)
		}

		applyFormantGain(shiftedSpectrum, eOrig, eShift)

		timeDomain := make([]complex128, cfg.FFTSize)
		if err := plan.Inverse(timeDomain, shiftedSpectrum); err != nil {
			return nil, err
		}

		overlapAddComplex(out, winSum, timeDomain, coeffs, start)

		if start+cfg.FFTSize > len(shifted) {
			break
		}
	}

	normalizeBySum(out, winSum)

	result := make([]float32, len(shifted))
	for i, v := range out {
		result[i] = float32(v)
	}

	return result, nil
}

// applyFormantGain scales each bin of spectrum in place by the clamped
// ratio of the target envelope to the shifted envelope, preserving phase
// (both real and imaginary parts scale equally).
func applyFormantGain(spectrum []complex128, eOrig, eShift []float64) {
	for k := range spectrum {
		gain := eOrig[k] / (eShift[k] + formantEps)
		gain = math.Min(math.Max(gain, formantGainMin), formantGainMax)
		spectrum[k] *= complex(gain, 0)
	}
}

func warpEnvelope(e []float64, semitoneShift float64) []float64 {
	ratio := math.Exp2(semitoneShift / 12)
	n := len(e)
	out := make([]float64, n)
	half := n / 2

	warpBin := func(k int) float64 {
		srcPos := float64(k) / ratio
		if srcPos < 0 {
			srcPos = 0
		}

		if srcPos > float64(half) {
			srcPos = float64(half)
		}

		lo := int(math.Floor(srcPos))
		hi := lo + 1

		if hi > half {
			hi = half
		}

		frac := srcPos - float64(lo)

		return e[lo]*(1-frac) + e[hi]*frac
	}

	for k := 0; k <= half; k++ {
		out[k] = warpBin(k)
	}

	for k := half + 1; k < n; k++ {
		out[k] = out[n-k]
	}

	return out
}

// frameAt copies a size-length window starting at start from samples into
// scratch, reusing scratch's backing array across the STFT frame loop
// instead of allocating a fresh frame every hop. The tail is zeroed before
// copying so stale samples from a previous, longer frame never leak
// through when a frame runs past the end of the clip. Returns the (possibly
// grown) scratch for the caller to pass back in on the next hop.
func frameAt(samples []float64, start, size int, scratch []float64) []float64 {
	scratch = core.EnsureLen(scratch, size)
	core.Zero(scratch)

	end := start + size
	if end > len(samples) {
		end = len(samples)
	}

	if start < len(samples) {
		core.CopyInto(scratch, samples[start:end])
	}

	return scratch
}

func windowedSpectrum(plan *fft.Plan, frame, coeffs []float64) ([]complex128, error) {
	windowed := make([]float64, len(frame))
	copy(windowed, frame)

	if err := window.ApplyCoefficientsInPlace(windowed, coeffs); err != nil {
		return nil, err
	}

	spectrum := make([]complex128, len(frame))
	for i, v := range windowed {
		spectrum[i] = complex(v, 0)
	}

	out := make([]complex128, len(frame))
	if err := plan.Forward(out, spectrum); err != nil {
		return nil, err
	}

	return out, nil
}

func overlapAddComplex(out, winSum []float64, grain []complex128, coeffs []float64, start int) {
	for i, v := range grain {
		dst := start + i
		if dst < 0 || dst >= len(out) {
			continue
		}

		w := 1.0
		if i < len(coeffs) {
			w = coeffs[i]
		}

		out[dst] += real(v) * w
		winSum[dst] += w * w
	}
}

func normalizeBySum(out, winSum []float64) {
	const floor = 1e-6

	for i := range out {
		if winSum[i] > floor {
			out[i] /= winSum[i]
		}
	}
}

func toFloat64(samples []float32) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = float64(v)
	}

	return out
}
