package voicebank

import "fmt"

// Sample is a single-channel PCM buffer at a fixed sample rate, the unit of
// input to every analysis stage in the engine.
type Sample struct {
	Samples    []float32
	SampleRate int
}

// Oto describes an UTAU-style timing entry for one alias: the consonant
// boundary, the preutterance point used to align a note's onset, and the
// overlap region blended against the previous note.
type Oto struct {
	OffsetMs       float64
	ConsonantMs    float64
	CutoffMs       float64
	PreutteranceMs float64
	OverlapMs      float64
}

// Clamp returns a copy of o with every millisecond field clamped into
// [0, durationMs], preserving OffsetMs <= PreutteranceMs and
// OverlapMs <= ConsonantMs so a malformed oto entry can never address
// outside the sample it was parsed against.
func (o Oto) Clamp(durationMs float64) Oto {
	if durationMs < 0 {
		durationMs = 0
	}

	clamped := Oto{
		OffsetMs:       clampMs(o.OffsetMs, durationMs),
		ConsonantMs:    clampMs(o.ConsonantMs, durationMs),
		CutoffMs:       clampMs(o.CutoffMs, durationMs),
		PreutteranceMs: clampMs(o.PreutteranceMs, durationMs),
		OverlapMs:      clampMs(o.OverlapMs, durationMs),
	}

	if clamped.PreutteranceMs < clamped.OffsetMs {
		clamped.PreutteranceMs = clamped.OffsetMs
	}

	if clamped.OverlapMs > clamped.ConsonantMs {
		clamped.OverlapMs = clamped.ConsonantMs
	}

	return clamped
}

func clampMs(v, maxV float64) float64 {
	if v < 0 {
		return 0
	}

	if v > maxV {
		return maxV
	}

	return v
}

// Note is one scheduled event in a melody: the alias to render, its timing
// on the output timeline, and the pitch/overlap it should be rendered at.
type Note struct {
	StartTimeS     float64
	DurationS      float64
	PitchSemitones float32
	Alias          string
	OverlapS       float64
}

// PsolaAnalysis holds the pitch marks and derived periods produced by pitch
// mark analysis, the prerequisite for PSOLA resynthesis.
type PsolaAnalysis struct {
	PitchMarks   []int
	PitchPeriods []int
	VoicedFlags  []bool
	SampleRate   int
}

// LoudnessAnalysis holds the summary loudness statistics of a buffer.
type LoudnessAnalysis struct {
	RMS         float64
	RMSDB       float64
	Peak        float64
	PeakDB      float64
	CrestFactor float64
	HasContent  bool
}

// SpectralEnvelope is a per-bin magnitude envelope, typically extracted by
// cepstral liftering and used to preserve formants across a pitch shift.
type SpectralEnvelope []float64

// String renders a Sample for diagnostic logging without dumping the whole
// buffer.
func (s Sample) String() string {
	return fmt.Sprintf("Sample{len=%d sampleRate=%d}", len(s.Samples), s.SampleRate)
}
