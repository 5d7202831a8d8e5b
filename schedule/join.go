package schedule

import (
	"github.com/cwbudde/voicebank-dsp/dsp/spectral"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// joinNotes smooths and crossfades the tail of a against the head of b
// across the overlap implied by noteB.OverlapS, mutating both clips'
// samples in place. Spectral smoothing is skipped when either clip is a
// silence fallback; the crossfade ramp is still applied so the join stays
// continuous.
func (s *Scheduler) joinNotes(a, b *processedClip, noteB voicebank.Note, sampleRate int, cfg Config) {
	overlapSamples := timeToSamples(noteB.OverlapS, sampleRate)
	if overlapSamples <= 0 {
		return
	}

	regionLen := overlapSamples
	if regionLen > len(a.samples) {
		regionLen = len(a.samples)
	}

	if regionLen > len(b.samples) {
		regionLen = len(b.samples)
	}

	if regionLen <= 0 {
		return
	}

	tailStart := len(a.samples) - regionLen
	tail := a.samples[tailStart:]
	head := b.samples[:regionLen]

	if !a.skipped && !b.skipped {
		s.smoothJoin(tail, head, sampleRate)
	}

	outGain, inGain := crossfadeGains(cfg.Crossfade, regionLen)
	applyGainRamp(tail, outGain)
	applyGainRamp(head, inGain)
}

// smoothJoin computes the spectral distance between the tail and head
// regions (memoized by content fingerprint) and, if it clears the
// configured threshold, blends both regions toward their geometric-mean
// envelope via spectral.ApplySpectralSmoothing.
func (s *Scheduler) smoothJoin(tail, head []float64, sampleRate int) {
	spectralCfg := spectral.ApplyOptions()

	tailF32 := toFloat32(tail)
	headF32 := toFloat32(head)

	envA, err := spectral.ExtractEnvelope(tail, sampleRate, spectralCfg.FFTSize)
	if err != nil {
		return
	}

	envB, err := spectral.ExtractEnvelope(head, sampleRate, spectralCfg.FFTSize)
	if err != nil {
		return
	}

	fpA := voicebank.NewFingerprint(voicebank.Sample{Samples: tailF32, SampleRate: sampleRate})
	fpB := voicebank.NewFingerprint(voicebank.Sample{Samples: headF32, SampleRate: sampleRate})

	distance := s.distanceCache.Distance(fpA, fpB, envA, envB)

	if err := spectral.ApplySpectralSmoothing(tailF32, headF32, sampleRate, distance); err != nil {
		return
	}

	copy(tail, toFloat64(tailF32))
	copy(head, toFloat64(headF32))
}
