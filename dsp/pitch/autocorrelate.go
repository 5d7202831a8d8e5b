package pitch

import "math"

// autocorrelationPeak finds the lag in [minLag, maxLag] with the strongest
// normalized autocorrelation in frame, refined to sub-sample precision by
// parabolic interpolation over the peak and its two neighbors. Returns the
// refined lag, the peak's normalized strength in [0, 1], and false if no
// lag in range produced a usable peak (e.g. a silent frame).
func autocorrelationPeak(frame []float64, minLag, maxLag int) (lag float64, strength float64, ok bool) {
	if maxLag >= len(frame) {
		maxLag = len(frame) - 1
	}

	if minLag < 1 || minLag > maxLag {
		return 0, 0, false
	}

	energy := dot(frame, frame)
	if energy <= 0 {
		return 0, 0, false
	}

	bestLag := -1
	bestVal := 0.0

	for l := minLag; l <= maxLag; l++ {
		v := dot(frame[:len(frame)-l], frame[l:])
		if v > bestVal {
			bestVal = v
			bestLag = l
		}
	}

	if bestLag < 0 {
		return 0, 0, false
	}

	normalized := bestVal / energy

	refined := float64(bestLag)
	if bestLag > minLag && bestLag < maxLag {
		prev := dot(frame[:len(frame)-(bestLag-1)], frame[bestLag-1:])
		next := dot(frame[:len(frame)-(bestLag+1)], frame[bestLag+1:])
		refined = parabolicRefine(float64(bestLag), prev, bestVal, next)
	}

	return refined, math.Min(normalized, 1), true
}

// parabolicRefine fits a parabola through three equally spaced samples
// (x-1, y0), (x, y1), (x+1, y2) and returns the x position of its vertex,
// clamped to stay within one sample of x.
func parabolicRefine(x, y0, y1, y2 float64) float64 {
	denom := y0 - 2*y1 + y2
	if math.Abs(denom) < 1e-12 {
		return x
	}

	offset := 0.5 * (y0 - y2) / denom
	if offset > 1 {
		offset = 1
	} else if offset < -1 {
		offset = -1
	}

	return x + offset
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}

	return sum
}
