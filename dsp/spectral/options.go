package spectral

// Config configures STFT-based envelope extraction, formant preservation,
// and spectral join smoothing.
type Config struct {
	// FFTSize is the STFT frame length; must be a power of two.
	FFTSize int
	// HopSize is the stride between STFT frames in
	// ApplyFormantPreservation. ApplySpectralSmoothing does not read it;
	// its frames always advance by FFTSize/4.
	HopSize int
	// FormantScale controls how much a shifted frame's formants follow
	// pitch: 0 keeps formants fixed, 1 lets them move with pitch_shift,
	// and values >= 1 disable the correction filter entirely (fast path).
	FormantScale float64
	// DistanceThreshold is the minimum spectral distance (§4.3.1) that
	// triggers spectral join smoothing; below it, buffers pass through
	// unmodified.
	DistanceThreshold float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults used across envelope extraction,
// formant preservation, and join smoothing.
func DefaultConfig() Config {
	return Config{
		FFTSize:           2048,
		HopSize:           2048 / 4,
		FormantScale:      0,
		DistanceThreshold: 0.1,
	}
}

// WithFFTSize sets the STFT frame length. Values that are not a power of
// two are rejected by the FFT plan at call time, not here.
func WithFFTSize(size int) Option {
	return func(cfg *Config) {
		if size > 0 {
			cfg.FFTSize = size
			cfg.HopSize = size / 4
		}
	}
}

// WithHopSize overrides the formant-preservation STFT hop independently of
// FFTSize. Join smoothing keeps its FFTSize/4 hop.
func WithHopSize(hop int) Option {
	return func(cfg *Config) {
		if hop > 0 {
			cfg.HopSize = hop
		}
	}
}

// WithFormantScale sets how strongly formants follow a pitch shift.
func WithFormantScale(scale float64) Option {
	return func(cfg *Config) {
		cfg.FormantScale = scale
	}
}

// WithDistanceThreshold sets the spectral-distance fast-path threshold for
// join smoothing.
func WithDistanceThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold >= 0 {
			cfg.DistanceThreshold = threshold
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// LifterOrder returns the cepstral lifter order L ~= sampleRate/1000 used
// by envelope extraction at this sample rate.
func LifterOrder(sampleRate int) int {
	l := sampleRate / 1000
	if l < 1 {
		l = 1
	}

	return l
}
