package spectral

import (
	"math"

	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// SpectralDistance computes the mean absolute log-magnitude difference
// between two envelopes over bins [1, N/2], used to decide whether a join
// needs spectral smoothing at all.
func SpectralDistance(a, b voicebank.SpectralEnvelope) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	half := n / 2
	if half < 1 {
		return 0
	}

	sum := 0.0

	for k := 1; k <= half; k++ {
		sum += math.Abs(math.Log(a[k]+logMagnitudeFloor) - math.Log(b[k]+logMagnitudeFloor))
	}

	return sum / float64(half)
}
