package pitch

import (
	"math"

	"github.com/cwbudde/voicebank-dsp/dsp/window"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// PsolaSynthesize resynthesizes sample at an independent pitch shift and
// time stretch using the pitch marks in analysis. pitchShiftSemitones is
// applied to grain spacing only for voiced marks; unvoiced marks keep
// their synthetic spacing so noise-like consonants don't pick up tonal
// artifacts. timeStretch == 1 and pitchShiftSemitones == 0 is a fast path
// that returns a bit-identical copy of sample.Samples.
func PsolaSynthesize(
	sample voicebank.Sample,
	analysis voicebank.PsolaAnalysis,
	pitchShiftSemitones, timeStretch float64,
	opts ...SynthesisOption,
) ([]float32, error) {
	if timeStretch <= 0 {
		timeStretch = 1
	}

	if pitchShiftSemitones == 0 && timeStretch == 1 {
		out := make([]float32, len(sample.Samples))
		copy(out, sample.Samples)

		return out, nil
	}

	cfg := ApplySynthesisOptions(opts...)

	inLen := len(sample.Samples)
	outLen := int(math.Ceil(float64(inLen) * timeStretch))

	if outLen <= 0 || len(analysis.PitchMarks) == 0 {
		return make([]float32, outLen), nil
	}

	alpha := math.Exp2(-pitchShiftSemitones / 12)

	out := make([]float64, outLen)
	winSum := make([]float64, outLen)

	marks := analysis.PitchMarks
	periods := analysis.PitchPeriods
	voiced := analysis.VoicedFlags

	tOut := 0.0

	for tOut < float64(outLen) {
		tIn := tOut / timeStretch

		idx := nearestMarkIndex(marks, tIn)

		period := periods[idx]
		if period < 1 {
			period = 1
		}

		grainLen := 2 * period
		if grainLen < cfg.MinGrainSamples {
			grainLen = cfg.MinGrainSamples
		}

		grain, coeffs := extractGrain(sample.Samples, marks[idx], grainLen, cfg.Window)

		overlapAdd(out, winSum, grain, coeffs, int(math.Round(tOut)))

		advance := period
		if voiced[idx] {
			advance = int(math.Round(float64(period) * alpha))
		}

		if advance < 1 {
			advance = 1
		}

		tOut += float64(advance)
	}

	normalizeBySum(out, winSum)

	result := make([]float32, outLen)
	for i, v := range out {
		result[i] = float32(v)
	}

	return result, nil
}

// nearestMarkIndex finds the pitch mark closest to tIn, clamping to the
// first/last mark rather than extrapolating beyond the analyzed range.
func nearestMarkIndex(marks []int, tIn float64) int {
	if tIn <= float64(marks[0]) {
		return 0
	}

	if tIn >= float64(marks[len(marks)-1]) {
		return len(marks) - 1
	}

	lo, hi := 0, len(marks)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if float64(marks[mid]) < tIn {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	if lo > 0 && math.Abs(float64(marks[lo-1])-tIn) <= math.Abs(float64(marks[lo])-tIn) {
		return lo - 1
	}

	return lo
}

// extractGrain pulls a windowed grain of length grainLen centered on mark
// out of samples, reading zero for any index outside [0, len(samples)).
func extractGrain(samples []float32, mark, grainLen int, kind WindowKind) (grain, coeffs []float64) {
	half := grainLen / 2
	grain = make([]float64, grainLen)

	for i := 0; i < grainLen; i++ {
		srcIdx := mark - half + i
		if srcIdx >= 0 && srcIdx < len(samples) {
			grain[i] = float64(samples[srcIdx])
		}
	}

	wt := window.TypeHann
	if kind == WindowTriangular {
		wt = window.TypeTriangular
	}

	coeffs = window.Generate(wt, grainLen)
	_ = window.ApplyCoefficientsInPlace(grain, coeffs)

	return grain, coeffs
}

// overlapAdd adds grain (already windowed by coeffs) into out centered at
// center, accumulating squared window contributions into winSum for the
// final normalization pass.
func overlapAdd(out, winSum, grain, coeffs []float64, center int) {
	half := len(grain) / 2

	for i, v := range grain {
		dst := center - half + i
		if dst < 0 || dst >= len(out) {
			continue
		}

		out[dst] += v
		winSum[dst] += coeffs[i] * coeffs[i]
	}
}

func normalizeBySum(out, winSum []float64) {
	const floor = 1e-6

	for i := range out {
		if winSum[i] > floor {
			out[i] /= winSum[i]
		} else {
			out[i] = 0
		}
	}
}
