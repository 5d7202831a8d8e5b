package spectral

import (
	"math"

	"github.com/cwbudde/voicebank-dsp/dsp/window"
	"github.com/cwbudde/voicebank-dsp/internal/fft"
)

const (
	smoothingGainMin = 0.25
	smoothingGainMax = 2.0
	smoothingRampCap = 0.5
)

// ApplySpectralSmoothing blends the envelopes of tailA (the end of the
// preceding clip) and headB (the start of the next) toward their geometric
// mean, tapered by a ramp toward the join so neither buffer changes by
// more than half the normalized distance between them. Both buffers are
// modified in place. If spectralDistance is below cfg.DistanceThreshold,
// or either buffer is shorter than cfg.FFTSize, neither buffer is touched.
func ApplySpectralSmoothing(tailA, headB []float32, sampleRate int, spectralDistance float64, opts ...Option) error {
	cfg := ApplyOptions(opts...)

	if spectralDistance < cfg.DistanceThreshold {
		return nil
	}

	if len(tailA) < cfg.FFTSize || len(headB) < cfg.FFTSize || len(tailA) == 0 || len(headB) == 0 {
		return nil
	}

	plan, err := fft.CachedPlan(cfg.FFTSize)
	if err != nil {
		return err
	}

	lifterOrder := LifterOrder(sampleRate)

	eA, err := ExtractEnvelope(toFloat64(tailA[len(tailA)-cfg.FFTSize:]), sampleRate, cfg.FFTSize)
	if err != nil {
		return err
	}

	eB, err := ExtractEnvelope(toFloat64(headB[:cfg.FFTSize]), sampleRate, cfg.FFTSize)
	if err != nil {
		return err
	}

	eMid := geometricMean(eA, eB)

	normalizedDistance := math.Min(1.0, spectralDistance/1.0)
	rampCap := smoothingRampCap * normalizedDistance

	gainA := clampedRatio(eMid, eA)
	gainB := clampedRatio(eMid, eB)

	if err := smoothRegion(plan, tailA, gainA, lifterOrder, rampOut(cfg.HopSize, cfg.FFTSize, rampCap, true)); err != nil {
		return err
	}

	if err := smoothRegion(plan, headB, gainB, lifterOrder, rampOut(cfg.HopSize, cfg.FFTSize, rampCap, false)); err != nil {
		return err
	}

	return nil
}

func geometricMean(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = math.Sqrt(math.Max(a[i], 0) * math.Max(b[i], 0))
	}

	return out
}

func clampedRatio(target, base []float64) []float64 {
	out := make([]float64, len(target))
	for i := range target {
		ratio := target[i] / (base[i] + logMagnitudeFloor)
		out[i] = math.Min(math.Max(ratio, smoothingGainMin), smoothingGainMax)
	}

	return out
}

// rampOut returns a per-frame ramp multiplier sequence, linear from 0 at
// the region start to cap at the join. toward controls which end of the
// buffer is the "join": true for tailA (join at the end), false for headB
// (join at the start).
func rampOut(hop, fftSize int, cap float64, towardEnd bool) func(frameIndex, frameCount int) float64 {
	return func(frameIndex, frameCount int) float64 {
		if frameCount <= 1 {
			return cap
		}

		frac := float64(frameIndex) / float64(frameCount-1)
		if !towardEnd {
			frac = 1 - frac
		}

		return frac * cap
	}
}

// smoothRegion applies a per-bin gain to every STFT frame of buf via
// overlap-add, scaled per frame by ramp.
func smoothRegion(plan *fft.Plan, buf []float32, gain []float64, lifterOrder int, ramp func(int, int) float64) error {
	n := plan.Size()
	hop := n / 4

	frameCount := 0

	for start := 0; start+n <= len(buf); start += hop {
		frameCount++
	}

	if frameCount == 0 {
		return nil
	}

	data := toFloat64(buf)
	out := make([]float64, len(buf))
	winSum := make([]float64, len(buf))

	coeffs := window.Generate(window.TypeHann, n)

	frameIdx := 0

	var frameScratch []float64

	for start := 0; start+n <= len(buf); start += hop {
		frameScratch = frameAt(data, start, n, frameScratch)

		spectrum, err := windowedSpectrum(plan, frameScratch, coeffs)
		if err != nil {
			return err
		}

		rampVal := ramp(frameIdx, frameCount)

		for k := range spectrum {
			blended := 1 + rampVal*(gain[k]-1)
			spectrum[k] *= complex(blended, 0)
		}

		timeDomain := make([]complex128, n)
		if err := plan.Inverse(timeDomain, spectrum); err != nil {
			return err
		}

		overlapAddComplex(out, winSum, timeDomain, coeffs, start)

		frameIdx++
	}

	normalizeBySum(out, winSum)

	for i := range buf {
		if winSum[i] > 1e-6 {
			buf[i] = float32(out[i])
		}
	}

	return nil
}
