package schedule

import (
	"context"

	"github.com/cwbudde/voicebank-dsp/dsp/buffer"
	"github.com/cwbudde/voicebank-dsp/dsp/pitch"
	"github.com/cwbudde/voicebank-dsp/dsp/spectral"
	"github.com/cwbudde/voicebank-dsp/measure/loudness"
	"github.com/cwbudde/voicebank-dsp/voice/alias"
	"github.com/cwbudde/voicebank-dsp/voicebank"
)

// Status summarizes how a Render call ended.
type Status int

const (
	// StatusOK means every note was rendered (some may still have fallen
	// back to silence for an unresolved alias or too-short sample).
	StatusOK Status = iota
	// StatusNoSamples means Render was called with no notes or an empty
	// sample map.
	StatusNoSamples
	// StatusCancelled means ctx was cancelled partway through; the
	// returned buffer holds every note processed before cancellation was
	// observed.
	StatusCancelled
)

// RenderStatus reports the outcome of one Render call.
type RenderStatus struct {
	Status Status
	// SkippedAliases lists, in note order, the requested aliases that did
	// not resolve against the sample map and were rendered as silence.
	SkippedAliases []string
	// RenderedNotes is how many of the input notes were actually
	// processed before Render returned (all of them, unless cancelled).
	RenderedNotes int
}

// Scheduler renders melodies: sequences of notes against a map of named
// source samples. A Scheduler owns the pitch, loudness, and spectral
// distance analysis caches shared across every Render call made on it, so
// repeated renders of overlapping material reuse prior analysis.
type Scheduler struct {
	cfg           Config
	pitchCache    *pitch.AnalysisCache
	loudnessCache *loudness.AnalysisCache
	distanceCache *spectral.DistanceCache
	mixPool       *buffer.Pool
}

// NewScheduler builds a Scheduler with the given configuration.
func NewScheduler(opts ...Option) *Scheduler {
	cfg := ApplyOptions(opts...)

	return &Scheduler{
		cfg:           cfg,
		pitchCache:    pitch.NewAnalysisCache(cfg.PitchCacheCapacity),
		loudnessCache: loudness.NewAnalysisCache(cfg.LoudnessCacheCapacity),
		distanceCache: spectral.NewDistanceCache(cfg.DistanceCacheCapacity),
		mixPool:       buffer.NewPool(),
	}
}

// Render produces one output PCM buffer from notes, resolving each note's
// alias against samples (and, where present, matching oto timing metadata
// from otos), processing it through PSOLA, formant preservation, and
// loudness normalization, smoothing and crossfading the joins between
// consecutive notes, and finally peak-limiting the mixed result.
//
// Render is synchronous and runs to completion on the calling goroutine
// except for a bounded worker-pool pre-analysis pass over the distinct
// samples referenced by notes. ctx is polled between notes, not inside any
// single note's processing; on cancellation, Render returns the buffer
// produced from every note processed so far with StatusCancelled.
func (s *Scheduler) Render(
	ctx context.Context,
	notes []voicebank.Note,
	samples map[string]voicebank.Sample,
	otos map[string]voicebank.Oto,
	opts ...Option,
) ([]float32, RenderStatus) {
	cfg := applyOverrides(s.cfg, opts...)

	if len(notes) == 0 || len(samples) == 0 {
		cfg.Sink.Log("error", "render aborted", "reason", ErrNoSamples.Error())

		return nil, RenderStatus{Status: StatusNoSamples}
	}

	aliasSet := make(map[string]bool, len(samples))
	for k := range samples {
		aliasSet[k] = true
	}

	resolved := make([]string, len(notes))

	var skipped []string

	for i, note := range notes {
		match, ok := alias.FindMatchingAlias(note.Alias, aliasSet)
		if !ok {
			skipped = append(skipped, note.Alias)
			cfg.Sink.Log("warn", describeAliasFailure(note.Alias), "index", i)

			continue
		}

		resolved[i] = match
	}

	toAnalyze := distinctSamples(resolved, samples)

	if err := s.preanalyze(ctx, toAnalyze); err != nil && ctx.Err() != nil {
		return nil, RenderStatus{Status: StatusCancelled}
	}

	analyses := make([]voicebank.LoudnessAnalysis, len(toAnalyze))
	for i, sample := range toAnalyze {
		analyses[i] = s.loudnessCache.AnalyzeCached(sample)
	}

	medianRMSDB := loudness.MedianRMSDB(analyses)

	clips := make([]processedClip, 0, len(notes))
	cancelled := false

	for i, note := range notes {
		if ctx.Err() != nil {
			cancelled = true

			break
		}

		if resolved[i] == "" {
			clips = append(clips, silentClip(note, cfg.SampleRate))

			continue
		}

		sample := samples[resolved[i]]
		if len(sample.Samples) == 0 {
			clips = append(clips, silentClip(note, cfg.SampleRate))

			continue
		}

		oto := otos[resolved[i]]

		clips = append(clips, s.processNote(cfg, note, sample, oto, medianRMSDB))
	}

	for i := 0; i+1 < len(clips); i++ {
		s.joinNotes(&clips[i], &clips[i+1], notes[i+1], cfg.SampleRate, cfg)
	}

	output := mixClips(clips, cfg, s.mixPool)

	status := RenderStatus{
		Status:         StatusOK,
		SkippedAliases: skipped,
		RenderedNotes:  len(clips),
	}

	if cancelled {
		status.Status = StatusCancelled
	}

	return output, status
}

// applyOverrides layers opts on top of base, used so per-call Render
// options refine rather than replace the Scheduler's own configuration.
func applyOverrides(base Config, opts ...Option) Config {
	cfg := base

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// distinctSamples returns the unique, non-empty resolved samples referenced
// by resolved, in first-seen order, for the pre-analysis pass.
func distinctSamples(resolved []string, samples map[string]voicebank.Sample) []voicebank.Sample {
	seen := make(map[string]bool, len(resolved))

	var out []voicebank.Sample

	for _, r := range resolved {
		if r == "" || seen[r] {
			continue
		}

		seen[r] = true

		out = append(out, samples[r])
	}

	return out
}
