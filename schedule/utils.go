package schedule

import "math"

func toFloat64(samples []float32) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = float64(v)
	}

	return out
}

func toFloat32(samples []float64) []float32 {
	out := make([]float32, len(samples))
	for i, v := range samples {
		out[i] = float32(v)
	}

	return out
}

// timeToSamples converts a time in seconds to a rounded sample index.
func timeToSamples(t float64, sampleRate int) int {
	return int(math.Round(t * float64(sampleRate)))
}

// msToSamples converts a duration in milliseconds to a rounded sample
// count.
func msToSamples(ms float64, sampleRate int) int {
	return int(math.Round(ms / 1000 * float64(sampleRate)))
}

func clampInt(v, min, max int) int {
	if max < min {
		min, max = max, min
	}

	if v < min {
		return min
	}

	if v > max {
		return max
	}

	return v
}
