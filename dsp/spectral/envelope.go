package spectral

import (
	"math"

	"github.com/cwbudde/voicebank-dsp/dsp/window"
	"github.com/cwbudde/voicebank-dsp/internal/fft"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// logMagnitudeFloor is epsilon added before taking the log of a magnitude
// spectrum, keeping silent bins finite.
const logMagnitudeFloor = 1e-10

// ExtractEnvelope computes the cepstral spectral envelope of one frame:
// window it, take the log-magnitude spectrum, inverse-transform to a real
// cepstrum, lifter to keep only the low-order (smooth) coefficients, and
// forward-transform back. frame is zero-padded or truncated to fftSize.
func ExtractEnvelope(frame []float64, sampleRate, fftSize int) (voicebank.SpectralEnvelope, error) {
	plan, err := fft.CachedPlan(fftSize)
	if err != nil {
		return nil, err
	}

	windowed := framed(frame, fftSize)
	window.Apply(window.TypeHann, windowed)

	spectrum := make([]complex128, fftSize)
	for i, v := range windowed {
		spectrum[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, spectrum); err != nil {
		return nil, err
	}

	return envelopeFromSpectrum(plan, freq, LifterOrder(sampleRate))
}

// envelopeFromSpectrum runs the lifter stage of cepstral envelope
// extraction given an already-computed complex spectrum.
func envelopeFromSpectrum(plan *fft.Plan, spectrum []complex128, lifterOrder int) (voicebank.SpectralEnvelope, error) {
	n := plan.Size()

	logMag := make([]float64, n)
	zeroIm := make([]float64, n)

	for i, v := range spectrum {
		logMag[i] = math.Log(cabs(v) + logMagnitudeFloor)
	}

	if err := plan.InverseSplit(logMag, zeroIm); err != nil {
		return nil, err
	}

	applyLifter(logMag, lifterOrder)

	im := make([]float64, n)
	if err := plan.ForwardSplit(logMag, im); err != nil {
		return nil, err
	}

	envelope := make(voicebank.SpectralEnvelope, n)
	for i, v := range logMag {
		envelope[i] = math.Exp(v)
	}

	return envelope, nil
}

// applyLifter zeros cepstral coefficients above lifter order L, tapering
// the boundary with a half-cosine ramp of width w on both the low-index
// side and its Nyquist mirror, per the raised-cosine lifter design.
func applyLifter(cepstrum []float64, lifterOrder int) {
	n := len(cepstrum)
	l := lifterOrder

	w := 4
	if l/2 < w {
		w = l / 2
	}

	if w < 1 {
		w = 1
	}

	for i := l - w + 1; i <= l; i++ {
		if i < 0 || i >= n {
			continue
		}

		frac := float64(i-(l-w)) / float64(w)
		gain := 0.5 + 0.5*math.Cos(math.Pi*frac)
		cepstrum[i] *= gain
	}

	for i := l + 1; i < n-l; i++ {
		if i < 0 || i >= n {
			continue
		}

		cepstrum[i] = 0
	}

	mirrorStart := n - l

	for i := mirrorStart; i < mirrorStart+w && i < n; i++ {
		if i < 0 {
			continue
		}

		frac := float64(i-mirrorStart) / float64(w)
		gain := 0.5 - 0.5*math.Cos(math.Pi*frac)
		cepstrum[i] *= gain
	}
}

func framed(samples []float64, size int) []float64 {
	out := make([]float64, size)
	copy(out, samples)

	return out
}

func cabs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
