package schedule

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/voicebank-dsp/dsp/core"
	"github.com/cwbudde/voicebank-dsp/dsp/pitch"
	"github.com/cwbudde/voicebank-dsp/dsp/spectral"
	"github.com/cwbudde/voicebank-dsp/measure/loudness"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// processedClip is one note's fully processed audio, ready to be mixed
// into the output buffer at placementPos.
type processedClip struct {
	samples      []float64
	placementPos int
	skipped      bool
}

// silentClip builds a zero-filled clip of note's duration, used when an
// alias can't be resolved or its source sample is empty.
func silentClip(note voicebank.Note, sampleRate int) processedClip {
	n := timeToSamples(note.DurationS, sampleRate)
	if n < 0 {
		n = 0
	}

	return processedClip{
		samples:      make([]float64, n),
		placementPos: timeToSamples(note.StartTimeS, sampleRate),
		skipped:      true,
	}
}

// processNote runs one note through the full PSOLA/formant/loudness
// pipeline: pitch correction against the sample's own representative
// pitch, fixed-vs-stretchable region splitting from oto, PSOLA resynthesis
// of each region, formant preservation against the unmodified source, and
// normalization gain derived from the sample's raw loudness relative to
// the render's median.
func (s *Scheduler) processNote(
	cfg Config,
	note voicebank.Note,
	sample voicebank.Sample,
	oto voicebank.Oto,
	medianRMSDB float64,
) processedClip {
	sr := sample.SampleRate
	if sr <= 0 {
		sr = cfg.SampleRate
	}

	durationMs := float64(len(sample.Samples)) / float64(sr) * 1000
	clamped := oto.Clamp(durationMs)
	endMs := effectiveEndMs(oto, clamped, durationMs)

	offsetSamp := clampInt(msToSamples(clamped.OffsetMs, sr), 0, len(sample.Samples))
	consonantSamp := clampInt(msToSamples(clamped.ConsonantMs, sr), offsetSamp, len(sample.Samples))
	endSamp := clampInt(msToSamples(endMs, sr), consonantSamp, len(sample.Samples))

	fixedSeg := sample.Samples[offsetSamp:consonantSamp]
	stretchSeg := sample.Samples[consonantSamp:endSamp]

	timeStretch := computeTimeStretch(cfg, note, fixedSeg, stretchSeg, sr)

	repPeriodS := pitch.RepresentativePitch(sample.Samples, sr, 5, 0.05, 0.05)

	detectedHz := 0.0
	if repPeriodS > 0 {
		detectedHz = 1 / repPeriodS
	}

	correction := pitch.PitchCorrectionSemitones(detectedHz, cfg.ReferenceHz)
	pitchShift := core.Clamp(
		float64(note.PitchSemitones)+correction,
		-cfg.MaxPitchCorrectionSemitones,
		cfg.MaxPitchCorrectionSemitones,
	)

	fixedOut := s.synthesizeRegion(fixedSeg, sr, pitchShift, 1.0)
	stretchOut := s.synthesizeRegion(stretchSeg, sr, pitchShift, timeStretch)

	psolaOut := make([]float32, 0, len(fixedOut)+len(stretchOut))
	psolaOut = append(psolaOut, fixedOut...)
	psolaOut = append(psolaOut, stretchOut...)

	origConcat := make([]float32, 0, len(fixedSeg)+len(stretchSeg))
	origConcat = append(origConcat, fixedSeg...)
	origConcat = append(origConcat, stretchSeg...)

	formantOut, err := spectral.ApplyFormantPreservation(origConcat, psolaOut, sr, pitchShift)
	if err != nil {
		cfg.Sink.Log("warn", "formant preservation failed, using unshaped PSOLA output",
			"alias", note.Alias, "error", err)

		formantOut = psolaOut
	}

	rawAnalysis := s.loudnessCache.AnalyzeCached(sample)
	gain := loudness.NormalizationGain(
		rawAnalysis,
		loudness.WithMedianRMSDB(medianRMSDB),
		loudness.WithJoinThresholdDB(cfg.JoinThresholdDB),
	)

	working := toFloat64(formantOut)
	vecmath.ScaleBlockInPlace(working, gain)

	return processedClip{
		samples:      working,
		placementPos: timeToSamples(note.StartTimeS, sr) - msToSamples(clamped.PreutteranceMs, sr),
	}
}

// synthesizeRegion runs PSOLA on one oto sub-region, falling back to an
// unmodified copy (timeStretch == 1) or silence of the target length
// (otherwise) when the region is too short to analyze.
func (s *Scheduler) synthesizeRegion(seg []float32, sampleRate int, pitchShift, timeStretch float64) []float32 {
	if len(seg) == 0 {
		return nil
	}

	sample := voicebank.Sample{Samples: seg, SampleRate: sampleRate}

	analysis, err := s.pitchCache.AnalyzeCached(sample)
	if err != nil {
		if timeStretch == 1 {
			out := make([]float32, len(seg))
			copy(out, seg)

			return out
		}

		return make([]float32, int(math.Ceil(float64(len(seg))*timeStretch)))
	}

	out, err := pitch.PsolaSynthesize(sample, analysis, pitchShift, timeStretch)
	if err != nil {
		return make([]float32, int(math.Ceil(float64(len(seg))*timeStretch)))
	}

	return out
}

// computeTimeStretch derives the PSOLA time_stretch ratio for a note's
// stretchable region: the fixed region never stretches, so whatever
// duration remains after it is divided among the stretchable samples.
func computeTimeStretch(cfg Config, note voicebank.Note, fixedSeg, stretchSeg []float32, sampleRate int) float64 {
	requiredDurationS := note.DurationS + note.OverlapS
	fixedLenS := float64(len(fixedSeg)) / float64(sampleRate)
	stretchLenS := float64(len(stretchSeg)) / float64(sampleRate)

	requiredStretchLenS := requiredDurationS - fixedLenS
	if requiredStretchLenS < 0 {
		requiredStretchLenS = 0
	}

	ratio := 1.0
	if stretchLenS > 1e-9 {
		ratio = requiredStretchLenS / stretchLenS
	}

	return core.Clamp(ratio, cfg.MinTimeStretch, cfg.MaxTimeStretch)
}

// effectiveEndMs resolves oto's cutoff field: positive is an absolute end
// in ms, negative is relative to the sample's end, zero means play to end.
// The sign is read from the unclamped oto since Clamp folds negative
// values to zero.
func effectiveEndMs(oto, clamped voicebank.Oto, durationMs float64) float64 {
	var end float64

	switch {
	case oto.CutoffMs > 0:
		end = oto.CutoffMs
	case oto.CutoffMs < 0:
		end = durationMs + oto.CutoffMs
	default:
		end = durationMs
	}

	end = core.Clamp(end, clamped.ConsonantMs, durationMs)

	return end
}

// describeAliasFailure formats a human-readable reason a note fell back to
// silence, for the skipped-notes diagnostic trail.
func describeAliasFailure(alias string) string {
	return fmt.Sprintf("alias %q did not resolve against the sample map", alias)
}
