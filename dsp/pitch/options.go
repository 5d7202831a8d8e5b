package pitch

// AnalysisConfig configures pitch mark analysis.
type AnalysisConfig struct {
	// MinFreqHz and MaxFreqHz bound the periods autocorrelation will
	// search for, rejecting octave errors outside a singer's range.
	MinFreqHz float64
	MaxFreqHz float64

	// VoicingThreshold is the minimum normalized autocorrelation peak
	// required to mark a frame voiced.
	VoicingThreshold float64

	// FrameSizeSamples is the analysis window length for per-frame
	// autocorrelation.
	FrameSizeSamples int

	// HopSizeSamples is stored but not read by AnalyzePitchMarks: its
	// frames always advance by sampleRate/100 samples (~10 ms).
	HopSizeSamples int
}

// AnalysisOption mutates an AnalysisConfig.
type AnalysisOption func(*AnalysisConfig)

// DefaultAnalysisConfig returns defaults tuned for typical singing voice
// recordings at common sample rates.
func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		MinFreqHz:        70,
		MaxFreqHz:        1000,
		VoicingThreshold: 0.3,
		FrameSizeSamples: 1024,
		HopSizeSamples:   256,
	}
}

// WithFreqRange bounds the pitch search range in Hz.
func WithFreqRange(minHz, maxHz float64) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if minHz > 0 && maxHz > minHz {
			cfg.MinFreqHz = minHz
			cfg.MaxFreqHz = maxHz
		}
	}
}

// WithVoicingThreshold sets the minimum normalized autocorrelation peak
// required to mark a frame voiced.
func WithVoicingThreshold(threshold float64) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if threshold > 0 && threshold <= 1 {
			cfg.VoicingThreshold = threshold
		}
	}
}

// WithFrameSize sets the per-frame analysis window length in samples.
func WithFrameSize(samples int) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if samples > 0 {
			cfg.FrameSizeSamples = samples
		}
	}
}

// WithHopSize sets HopSizeSamples. AnalyzePitchMarks does not read it; its
// frame stride stays at sampleRate/100 samples.
func WithHopSize(samples int) AnalysisOption {
	return func(cfg *AnalysisConfig) {
		if samples > 0 {
			cfg.HopSizeSamples = samples
		}
	}
}

// ApplyAnalysisOptions applies zero or more options to the default config.
func ApplyAnalysisOptions(opts ...AnalysisOption) AnalysisConfig {
	cfg := DefaultAnalysisConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// SynthesisConfig configures PSOLA resynthesis.
type SynthesisConfig struct {
	// Window selects the grain taper applied around each pitch mark
	// before overlap-add.
	Window WindowKind

	// MinGrainSamples floors the extracted grain length, guarding against
	// degenerate pitch periods near the analysis edges.
	MinGrainSamples int
}

// WindowKind selects the PSOLA grain window.
type WindowKind int

const (
	// WindowHann is the default raised-cosine grain taper.
	WindowHann WindowKind = iota
	// WindowTriangular uses a linear taper instead.
	WindowTriangular
)

// SynthesisOption mutates a SynthesisConfig.
type SynthesisOption func(*SynthesisConfig)

// DefaultSynthesisConfig returns sensible PSOLA synthesis defaults.
func DefaultSynthesisConfig() SynthesisConfig {
	return SynthesisConfig{
		Window:          WindowHann,
		MinGrainSamples: 32,
	}
}

// WithWindow selects the grain window kind.
func WithWindow(kind WindowKind) SynthesisOption {
	return func(cfg *SynthesisConfig) {
		cfg.Window = kind
	}
}

// WithMinGrainSamples floors the extracted grain length.
func WithMinGrainSamples(samples int) SynthesisOption {
	return func(cfg *SynthesisConfig) {
		if samples > 0 {
			cfg.MinGrainSamples = samples
		}
	}
}

// ApplySynthesisOptions applies zero or more options to the default config.
func ApplySynthesisOptions(opts ...SynthesisOption) SynthesisConfig {
	cfg := DefaultSynthesisConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
