package schedule

import "github.com/cwbudde/voicebank-dsp/internal/cache"

// CrossfadeKind selects the gain ramp applied to the overlap region between
// two consecutive notes before they are additively mixed.
type CrossfadeKind int

const (
	// CrossfadeEqualPower ramps with cos/sin quarter-cycles so the summed
	// power across the overlap stays constant; the recommended default.
	CrossfadeEqualPower CrossfadeKind = iota
	// CrossfadeLinear ramps gain linearly across the overlap.
	CrossfadeLinear
)

// Config configures a Scheduler.
type Config struct {
	// SampleRate is the output buffer's sample rate. Source samples at a
	// different rate are not resampled; callers are expected to supply
	// samples already at this rate.
	SampleRate int

	// PitchCacheCapacity, LoudnessCacheCapacity, and DistanceCacheCapacity
	// bound the scheduler's analysis caches.
	PitchCacheCapacity    int
	LoudnessCacheCapacity int
	DistanceCacheCapacity int

	// Crossfade selects the join ramp shape.
	Crossfade CrossfadeKind

	// ReferenceHz is the target frequency pitch correction pulls a
	// sample's detected pitch toward before a note's own semitone offset
	// is applied.
	ReferenceHz float64

	// MaxPitchCorrectionSemitones bounds the combined note pitch plus
	// pitch-correction shift applied to any one note.
	MaxPitchCorrectionSemitones float64

	// MinTimeStretch and MaxTimeStretch bound the PSOLA time-stretch ratio
	// computed for a note's stretchable region.
	MinTimeStretch float64
	MaxTimeStretch float64

	// LimiterCeilingDB and LimiterKneeDB configure the final soft-knee
	// peak limiter applied to the fully mixed output.
	LimiterCeilingDB float64
	LimiterKneeDB    float64

	// JoinThresholdDB is passed to loudness.NormalizationGain, which does
	// not read it, so it does not change the per-note gain; Render does not
	// call loudness.JoinGainCorrection at joins.
	JoinThresholdDB float64

	// MaxWorkers bounds the pre-analysis worker pool. <= 0 uses
	// runtime.GOMAXPROCS(0).
	MaxWorkers int

	// Sink receives diagnostic log lines for skipped notes, fallbacks, and
	// cancellation. A nil Sink discards everything.
	Sink Sink
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the scheduler defaults.
func DefaultConfig() Config {
	return Config{
		SampleRate:                  44100,
		PitchCacheCapacity:          cache.DefaultCapacity,
		LoudnessCacheCapacity:       cache.DefaultCapacity,
		DistanceCacheCapacity:       cache.DefaultCapacity,
		Crossfade:                   CrossfadeEqualPower,
		ReferenceHz:                 261.63,
		MaxPitchCorrectionSemitones: 24,
		MinTimeStretch:              0.5,
		MaxTimeStretch:              4.0,
		LimiterCeilingDB:            -0.3,
		LimiterKneeDB:               6,
		JoinThresholdDB:             3,
		Sink:                        nopSink{},
	}
}

// WithSampleRate sets the output sample rate.
func WithSampleRate(sr int) Option {
	return func(cfg *Config) {
		if sr > 0 {
			cfg.SampleRate = sr
		}
	}
}

// WithCacheCapacities sets the pitch/loudness/distance analysis cache
// bounds. A non-positive value leaves the corresponding default in place.
func WithCacheCapacities(pitchCap, loudnessCap, distanceCap int) Option {
	return func(cfg *Config) {
		if pitchCap > 0 {
			cfg.PitchCacheCapacity = pitchCap
		}

		if loudnessCap > 0 {
			cfg.LoudnessCacheCapacity = loudnessCap
		}

		if distanceCap > 0 {
			cfg.DistanceCacheCapacity = distanceCap
		}
	}
}

// WithCrossfade selects the crossfade ramp shape.
func WithCrossfade(kind CrossfadeKind) Option {
	return func(cfg *Config) {
		cfg.Crossfade = kind
	}
}

// WithReferenceHz sets the pitch-correction reference frequency.
func WithReferenceHz(hz float64) Option {
	return func(cfg *Config) {
		if hz > 0 {
			cfg.ReferenceHz = hz
		}
	}
}

// WithPitchCorrectionBound sets the maximum combined pitch shift applied to
// any one note, in semitones.
func WithPitchCorrectionBound(semitones float64) Option {
	return func(cfg *Config) {
		if semitones > 0 {
			cfg.MaxPitchCorrectionSemitones = semitones
		}
	}
}

// WithTimeStretchBounds sets the clamp range for a note's computed
// time-stretch ratio.
func WithTimeStretchBounds(min, max float64) Option {
	return func(cfg *Config) {
		if min > 0 && max > min {
			cfg.MinTimeStretch = min
			cfg.MaxTimeStretch = max
		}
	}
}

// WithLimiter sets the final peak limiter's ceiling and knee width in dB.
func WithLimiter(ceilingDB, kneeDB float64) Option {
	return func(cfg *Config) {
		if kneeDB >= 0 {
			cfg.LimiterCeilingDB = ceilingDB
			cfg.LimiterKneeDB = kneeDB
		}
	}
}

// WithJoinThreshold sets Config.JoinThresholdDB (dB). The value is passed to
// loudness.NormalizationGain, which ignores it, so it does not affect the
// rendered output.
func WithJoinThreshold(db float64) Option {
	return func(cfg *Config) {
		cfg.JoinThresholdDB = db
	}
}

// WithMaxWorkers bounds the pre-analysis worker pool size.
func WithMaxWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxWorkers = n
		}
	}
}

// WithSink sets the diagnostic log sink. A nil sink is replaced by a no-op.
func WithSink(sink Sink) Option {
	return func(cfg *Config) {
		if sink != nil {
			cfg.Sink = sink
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
