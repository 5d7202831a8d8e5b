package loudness

import (
	"math"

	"github.com/cwbudde/voicebank-dsp/dsp/core"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// silenceRMSFloor is the RMS below which a buffer is considered to have no
// content at all.
const silenceRMSFloor = 1e-6

// Analyze computes RMS, peak, their dB equivalents, and crest factor for
// samples. rms_db and peak_db are negative infinity (never NaN) when the
// corresponding linear value is zero.
func Analyze(samples []float32) voicebank.LoudnessAnalysis {
	if len(samples) == 0 {
		return voicebank.LoudnessAnalysis{RMSDB: math.Inf(-1), PeakDB: math.Inf(-1)}
	}

	var sumSq float64

	var peak float64

	for _, v := range samples {
		f := float64(v)
		sumSq += f * f

		abs := math.Abs(f)
		if abs > peak {
			peak = abs
		}
	}

	rms := math.Sqrt(sumSq / float64(len(samples)))

	crest := 0.0
	if rms > 0 {
		crest = peak / rms
	}

	return voicebank.LoudnessAnalysis{
		RMS:         rms,
		RMSDB:       core.LinearToDB(rms),
		Peak:        peak,
		PeakDB:      core.LinearToDB(peak),
		CrestFactor: crest,
		HasContent:  rms >= silenceRMSFloor,
	}
}
