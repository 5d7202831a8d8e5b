package loudness

// Config configures normalization gain computation.
type Config struct {
	// TargetRMSDB is the default RMS target when no median is supplied.
	TargetRMSDB float64
	// MedianRMSDB, if non-nil, overrides TargetRMSDB as the normalization
	// target (the voicebank's own reference loudness from §4.4.3).
	MedianRMSDB *float64
	// MinGainDB and MaxGainDB bound the requested RMS gain before any peak
	// limiting is considered.
	MinGainDB float64
	MaxGainDB float64
	// MaxPeakDB is the ceiling normalization must not push peak above,
	// subject to the knee.
	MaxPeakDB float64
	// KneeDB is the soft-knee width; 0 enforces the peak ceiling exactly.
	KneeDB float64
	// JoinThresholdDB is the minimum post-gain loudness difference between
	// two joined clips that triggers an extra crossfade ramp.
	JoinThresholdDB float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the normalization defaults.
func DefaultConfig() Config {
	return Config{
		TargetRMSDB:     -18,
		MinGainDB:       -24,
		MaxGainDB:       24,
		MaxPeakDB:       -0.3,
		KneeDB:          6,
		JoinThresholdDB: 3,
	}
}

// WithTargetRMSDB sets the default RMS target used when no median is set.
func WithTargetRMSDB(db float64) Option {
	return func(cfg *Config) {
		cfg.TargetRMSDB = db
	}
}

// WithMedianRMSDB overrides the normalization target with a voicebank-wide
// median RMS, per §4.4.3.
func WithMedianRMSDB(db float64) Option {
	return func(cfg *Config) {
		cfg.MedianRMSDB = &db
	}
}

// WithGainRange bounds the requested RMS gain in dB.
func WithGainRange(minDB, maxDB float64) Option {
	return func(cfg *Config) {
		if maxDB > minDB {
			cfg.MinGainDB = minDB
			cfg.MaxGainDB = maxDB
		}
	}
}

// WithMaxPeakDB sets the peak ceiling normalization targets.
func WithMaxPeakDB(db float64) Option {
	return func(cfg *Config) {
		cfg.MaxPeakDB = db
	}
}

// WithKneeDB sets the soft-knee width in dB; 0 is a hard knee.
func WithKneeDB(db float64) Option {
	return func(cfg *Config) {
		if db >= 0 {
			cfg.KneeDB = db
		}
	}
}

// WithJoinThresholdDB sets the loudness-difference threshold that triggers
// join gain correction.
func WithJoinThresholdDB(db float64) Option {
	return func(cfg *Config) {
		cfg.JoinThresholdDB = db
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
