package pitch

import "math"

// Result is the outcome of a single detect_pitch call.
type Result struct {
	PeriodS     float64
	FrequencyHz float64
	Confidence  float64
	Detected    bool
}

// DetectConfig configures DetectPitch.
type DetectConfig struct {
	StartTimeS    float64
	DurationS     float64
	MinFreqHz     float64
	MaxFreqHz     float64
	PeakThreshold float64
}

// DetectOption mutates a DetectConfig.
type DetectOption func(*DetectConfig)

// DefaultDetectConfig returns the defaults from the original design: a
// 100ms window starting at 0s, searching 50-1000 Hz with a 0.2 peak
// acceptance threshold.
func DefaultDetectConfig() DetectConfig {
	return DetectConfig{
		StartTimeS:    0,
		DurationS:     0.1,
		MinFreqHz:     50,
		MaxFreqHz:     1000,
		PeakThreshold: 0.2,
	}
}

// WithDetectWindow sets the analysis window's start time and duration in
// seconds.
func WithDetectWindow(startS, durationS float64) DetectOption {
	return func(cfg *DetectConfig) {
		if durationS > 0 {
			cfg.StartTimeS = startS
			cfg.DurationS = durationS
		}
	}
}

// WithDetectFreqRange bounds the pitch search range in Hz.
func WithDetectFreqRange(minHz, maxHz float64) DetectOption {
	return func(cfg *DetectConfig) {
		if minHz > 0 && maxHz > minHz {
			cfg.MinFreqHz = minHz
			cfg.MaxFreqHz = maxHz
		}
	}
}

// WithPeakThreshold sets the minimum normalized autocorrelation peak
// accepted as a detection.
func WithPeakThreshold(threshold float64) DetectOption {
	return func(cfg *DetectConfig) {
		if threshold > 0 {
			cfg.PeakThreshold = threshold
		}
	}
}

// ApplyDetectOptions applies zero or more options to the default config.
func ApplyDetectOptions(opts ...DetectOption) DetectConfig {
	cfg := DefaultDetectConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// DetectPitch estimates the dominant period of samples within one analysis
// window via normalized autocorrelation, skipping the near-zero-lag decay
// region before accepting the first local maximum past the search
// threshold. Returns Detected == false for silence or when no lag in range
// clears PeakThreshold.
func DetectPitch(samples []float32, sampleRate int, opts ...DetectOption) Result {
	cfg := ApplyDetectOptions(opts...)

	if sampleRate <= 0 {
		return Result{}
	}

	start := int(cfg.StartTimeS * float64(sampleRate))
	length := int(cfg.DurationS * float64(sampleRate))

	if start < 0 {
		start = 0
	}

	if start >= len(samples) || length <= 0 {
		return Result{}
	}

	end := start + length
	if end > len(samples) {
		end = len(samples)
	}

	frame := toFloat64(samples[start:end])

	minLag := int(float64(sampleRate) / cfg.MaxFreqHz)
	maxLag := int(float64(sampleRate) / cfg.MinFreqHz)

	if minLag < 1 {
		minLag = 1
	}

	lag, strength, ok := firstAcceptedPeak(frame, minLag, maxLag, cfg.PeakThreshold)
	if !ok {
		return Result{}
	}

	period := lag / float64(sampleRate)

	return Result{
		PeriodS:     period,
		FrequencyHz: 1 / period,
		Confidence:  strength,
		Detected:    true,
	}
}

// firstAcceptedPeak walks autocorrelation lags from low to high, skipping
// the monotonically decaying region near lag 0 until the value first dips
// below half of threshold, then accepts the first local maximum above
// threshold.
func firstAcceptedPeak(frame []float64, minLag, maxLag int, threshold float64) (lag, strength float64, ok bool) {
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

	values := make([]float64, maxLag+1)
	for l := minLag; l <= maxLag; l++ {
		values[l] = dot(frame[:len(frame)-l], frame[l:]) / energy
	}

	pastDecay := false

	for l := minLag; l <= maxLag; l++ {
		v := values[l]

		if !pastDecay {
			if v < 0.5*threshold {
				pastDecay = true
			}

			continue
		}

		if v < threshold {
			continue
		}

		isLocalMax := (l == minLag || values[l-1] <= v) && (l == maxLag || values[l+1] <= v)
		if !isLocalMax {
			continue
		}

		refined := float64(l)
		if l > minLag && l < maxLag {
			refined = parabolicRefine(float64(l), values[l-1], v, values[l+1])
		}

		return refined, math.Min(v, 1), true
	}

	return 0, 0, false
}

// referenceFrequencyHz is the default reference pitch (middle C) used by
// PitchCorrectionSemitones when the caller does not supply one.
const referenceFrequencyHz = 261.63

// PitchCorrectionSemitones returns the semitone correction needed to move
// detectedHz to referenceHz. Returns 0 if either frequency is non-positive.
func PitchCorrectionSemitones(detectedHz, referenceHz float64) float64 {
	if detectedHz <= 0 || referenceHz <= 0 {
		return 0
	}

	return 12 * math.Log2(referenceHz/detectedHz)
}

// OptimalGrainSizeS derives a PSOLA grain size from a detected period,
// clamped to a sane range; invalid periods fall back to 0.1s.
func OptimalGrainSizeS(periodS float64) float64 {
	if periodS <= 0 {
		return 0.1
	}

	size := periodS * 2.0

	return math.Min(math.Max(size, 0.02), 0.2)
}

// RepresentativePitch samples nWindows equally spaced voiced windows of
// samples and returns the median detected period in seconds. Windows with
// no detection are skipped; if none detect, returns 0.
func RepresentativePitch(samples []float32, sampleRate int, nWindows int, windowDurationS, startOffsetS float64) float64 {
	if nWindows <= 0 || sampleRate <= 0 || len(samples) == 0 {
		return 0
	}

	totalS := float64(len(samples)) / float64(sampleRate)

	usable := totalS - startOffsetS - windowDurationS
	if usable < 0 {
		usable = 0
	}

	var periods []float64

	for i := 0; i < nWindows; i++ {
		frac := 0.0
		if nWindows > 1 {
			frac = float64(i) / float64(nWindows-1)
		}

		start := startOffsetS + frac*usable

		res := DetectPitch(samples, sampleRate, WithDetectWindow(start, windowDurationS))
		if res.Detected {
			periods = append(periods, res.PeriodS)
		}
	}

	if len(periods) == 0 {
		return 0
	}

	return median(periods)
}

func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sortFloat64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func sortFloat64s(values []float64) {
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j-1] > values[j]; j-- {
			values[j-1], values[j] = values[j], values[j-1]
		}
	}
}
